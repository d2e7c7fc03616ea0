package output

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lifeplan/planner/internal/domain"
)

// ErrUnsupportedFormat is returned when no formatter matches the requested name.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// extensions maps canonical formatter names to file extensions.
var extensions = map[string]string{
	"console":         "txt",
	"console-verbose": "txt",
	"csv":             "csv",
	"detailed-csv":    "csv",
	"html":            "html",
	"json":            "json",
	"yaml":            "yaml",
}

// Render formats the results with the named formatter without touching disk.
func Render(results *domain.ScenarioComparison, format string) ([]byte, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return nil, unsupported(format)
	}
	return f.Format(results)
}

// GenerateReport writes the results in the named format to a timestamped
// file in dir and returns its path. "all" writes the console text, detailed
// CSV and HTML reports and returns the last path.
func GenerateReport(results *domain.ScenarioComparison, format, dir string) (string, error) {
	if NormalizeFormatName(format) == "all" {
		var last string
		for _, name := range []string{"console", "detailed-csv", "html"} {
			path, err := WriteFormatted(GetFormatterByName(name), results, dir, extensions[name])
			if err != nil {
				return "", err
			}
			last = path
		}
		return last, nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		return "", unsupported(format)
	}
	ext, ok := extensions[f.Name()]
	if !ok {
		ext = "txt"
	}
	return WriteFormatted(f, results, dir, ext)
}

func unsupported(format string) error {
	// enrich error with available formatters and aliases
	return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}
