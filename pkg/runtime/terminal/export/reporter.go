package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/template"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
)

// Reporter renders Cost Explorer responses to the console, either as a
// formatted text report or as raw indented JSON.
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

// JSON writes the response structure unmodified as indented JSON.
func (r *Reporter) JSON(v any) error {
	enc := json.NewEncoder(r.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// CostAndUsage renders time-bucketed totals and, where present, the
// per-group breakdown.
func (r *Reporter) CostAndUsage(title string, result *costexplorer.GetCostAndUsageOutput) error {
	tmpl := `
=== {{.Title}} ===
{{range .Results}}
Period: {{str .TimePeriod.Start}} to {{str .TimePeriod.End}}
{{- range $metric, $value := .Total}}
  {{$metric}}: {{cost $value}}
{{- end}}
{{- range .Groups}}
  {{join .Keys}}: {{groupCost .Metrics}}
{{- end}}
{{end}}`

	t, err := template.New("report").Funcs(r.funcs()).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(r.writer, struct {
		Title   string
		Results []types.ResultByTime
	}{Title: title, Results: result.ResultsByTime})
}

// Forecast renders the provider's predicted total for a future range.
func (r *Reporter) Forecast(title string, result *costexplorer.GetCostForecastOutput) error {
	tmpl := `
=== {{.Title}} ===
{{if .Result.Total}}Forecasted cost: {{cost (deref .Result.Total)}}
{{end -}}
{{range .Result.ForecastResultsByTime}}  {{str .TimePeriod.Start}} to {{str .TimePeriod.End}}: {{str .MeanValue}}
{{end}}`

	t, err := template.New("forecast").Funcs(r.funcs()).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(r.writer, struct {
		Title  string
		Result *costexplorer.GetCostForecastOutput
	}{Title: title, Result: result})
}

// Profiles lists the profile names found in the shared AWS config.
func (r *Reporter) Profiles(profiles []string) error {
	var b strings.Builder
	b.WriteString("\n=== AWS profiles ===\n")
	for _, p := range profiles {
		fmt.Fprintf(&b, "  %s\n", p)
	}
	_, err := io.WriteString(r.writer, b.String())
	return err
}

func (r *Reporter) funcs() template.FuncMap {
	return template.FuncMap{
		"str":  str,
		"cost": formatMetric,
		"deref": func(v *types.MetricValue) types.MetricValue {
			return *v
		},
		"join": func(keys []string) string {
			return strings.Join(keys, " / ")
		},
		"groupCost": groupCost,
	}
}

func str(s *string) string {
	return aws.ToString(s)
}

// groupCost prefers BlendedCost, matching the default metric set; when a
// query asked for something narrower it falls back to any present metric.
func groupCost(metrics map[string]types.MetricValue) string {
	if v, ok := metrics["BlendedCost"]; ok {
		return formatMetric(v)
	}
	for _, v := range metrics {
		return formatMetric(v)
	}
	return "0.00 USD"
}

func formatMetric(v types.MetricValue) string {
	amount, _ := strconv.ParseFloat(aws.ToString(v.Amount), 64)
	unit := aws.ToString(v.Unit)
	if unit == "" {
		unit = "USD"
	}
	return fmt.Sprintf("%.2f %s", amount, unit)
}
