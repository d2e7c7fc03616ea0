package output

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/lifeplan/planner/internal/domain"
)

// HTMLFormatter produces a self-contained HTML report with an SVG net worth chart.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":  FormatCurrency,
	"pct":   FormatPercentage,
	"lower": strings.ToLower,
	"json": func(v any) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

// Chart geometry in SVG user units.
const (
	chartWidth  = 720.0
	chartHeight = 280.0
	chartPad    = 8.0
)

var chartColors = []string{"#3AA99F", "#4385BE", "#DA702C", "#8B7EC8", "#D14D41", "#879A39"}

type chartSeries struct {
	Name   string
	Color  string
	Points string
}

type chartData struct {
	Width, Height float64
	ZeroY         float64 // y of the zero net worth line, or -1 when off chart
	Series        []chartSeries
}

func (h HTMLFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.ScenarioComparison
		Recommendation Recommendation
		Assumptions    []string
		Chart          chartData
	}{results, AnalyzeScenarios(results), assumptionsFor(results), netWorthChart(results)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// netWorthChart scales every scenario's net worth path into one shared frame.
func netWorthChart(results *domain.ScenarioComparison) chartData {
	chart := chartData{Width: chartWidth, Height: chartHeight, ZeroY: -1}
	maxYears := 0
	lo, hi := 0.0, 0.0
	for _, sc := range results.Scenarios {
		maxYears = max(maxYears, len(sc.Projection))
		for _, y := range sc.Projection {
			v := y.NetWorth.InexactFloat64()
			lo = min(lo, v)
			hi = max(hi, v)
		}
	}
	if maxYears < 2 || hi == lo {
		return chart
	}

	scaleX := (chartWidth - 2*chartPad) / float64(maxYears-1)
	scaleY := (chartHeight - 2*chartPad) / (hi - lo)
	yFor := func(v float64) float64 { return chartHeight - chartPad - (v-lo)*scaleY }
	chart.ZeroY = yFor(0)

	for i, sc := range results.Scenarios {
		var pts strings.Builder
		for j, y := range sc.Projection {
			if j > 0 {
				pts.WriteByte(' ')
			}
			fmt.Fprintf(&pts, "%.1f,%.1f", chartPad+float64(j)*scaleX, yFor(y.NetWorth.InexactFloat64()))
		}
		chart.Series = append(chart.Series, chartSeries{
			Name:   sc.Name,
			Color:  chartColors[i%len(chartColors)],
			Points: pts.String(),
		})
	}
	return chart
}
