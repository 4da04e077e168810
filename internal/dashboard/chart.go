package dashboard

import (
	"bytes"
	"html/template"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"healthplatform/internal/healthapi"
)

// historyChart renders a risk-score-over-time line chart for the given
// entries, which are expected to be ordered oldest first already.
func historyChart(entries []healthapi.HistoryEntry) (template.HTML, error) {
	xAxis := make([]string, 0, len(entries))
	yData := make([]opts.LineData, 0, len(entries))
	for _, entry := range entries {
		xAxis = append(xAxis, entry.CreatedAt.Format("2006-01-02 15:04"))
		yData = append(yData, opts.LineData{Value: entry.RiskScore})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Diabetes risk score over time",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "risk_score",
			Min:  0,
			Max:  1,
		}),
	)

	line.SetXAxis(xAxis).
		AddSeries("risk_score", yData).
		SetSeriesOptions(
			charts.WithLineChartOpts(opts.LineChart{
				Smooth:     opts.Bool(true),
				ShowSymbol: opts.Bool(true),
			}),
		)

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
