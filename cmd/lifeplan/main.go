// Command lifeplan projects personal finances across life scenarios.
package main

func main() {
	Execute()
}
