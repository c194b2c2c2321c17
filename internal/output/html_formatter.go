package output

import (
	"bytes"
	"html/template"
	"time"

	"github.com/rgehrsitz/fireplan/internal/domain"
)

// HTMLFormatter produces a standalone HTML summary
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

const htmlTemplateSource = `<!DOCTYPE html>
<html>
<head>
  <title>FIRE Plan{{if .Report.Name}}: {{.Report.Name}}{{end}}</title>
  <style>
    body { font-family: Arial, sans-serif; margin: 20px; }
    .metric { display: inline-block; margin: 10px 20px 10px 0; }
    .metric-label { font-weight: bold; color: #666; }
    .metric-value { font-size: 1.2em; color: #333; }
    table { border-collapse: collapse; }
    th, td { border: 1px solid #ddd; padding: 6px 10px; text-align: right; }
    th { background-color: #f2f2f2; }
  </style>
</head>
<body>
  <h1>FIRE Plan{{if .Report.Name}}: {{.Report.Name}}{{end}}</h1>
  <p>Generated on: {{.Generated}}</p>
  <div>
    <div class="metric"><div class="metric-label">Net cash position</div><div class="metric-value">{{curr .Report.Breakdown.NetCashPosition}}</div></div>
    <div class="metric"><div class="metric-label">Total tax</div><div class="metric-value">{{curr .Report.Breakdown.TotalTaxBill}}</div></div>
    <div class="metric"><div class="metric-label">Surplus</div><div class="metric-value">{{curr .Report.Surplus}}</div></div>
    <div class="metric"><div class="metric-label">FIRE target</div><div class="metric-value">{{curr .Report.NetWorth.FireTarget}}</div></div>
    <div class="metric"><div class="metric-label">FIRE reached</div><div class="metric-value">{{year .Report.NetWorth.FireYear}}</div></div>
    {{with .Report.Mortgage}}<div class="metric"><div class="metric-label">Mortgage payoff</div><div class="metric-value">{{.PayoffActual}} years</div></div>{{end}}
  </div>
  <h2>Projection</h2>
  <table>
    <tr><th>Year</th><th>Net worth</th><th>FIRE target</th><th>Mortgage</th><th>Property</th></tr>
    {{range .Report.NetWorth.Data}}<tr><td>{{.Year}}</td><td>{{curr .NetWorth}}</td><td>{{curr .FireTarget}}</td><td>{{curr .Mortgage}}</td><td>{{curr .Property}}</td></tr>
    {{end}}
  </table>
  <h2>Assumptions</h2>
  <ul>{{range .Assumptions}}<li>{{.}}</li>{{end}}</ul>
</body>
</html>
`

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr": FormatCurrency,
	"pct":  FormatPercentage,
	"year": FormatYear,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		Report      *domain.Report
		Generated   string
		Assumptions []string
	}{report, time.Now().Format("2006-01-02 15:04:05"), DefaultAssumptions}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
