package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/goddevils777/tgbot3-0-sub001/internal/core/apiclient"
)

// StatsView renders the admin API usage report.
type StatsView struct {
	report apiclient.StatsReport
	width  int
}

// NewStatsView creates a stats view for the given report.
func NewStatsView(report apiclient.StatsReport, width int) StatsView {
	return StatsView{report: report, width: width}
}

// View renders the report.
func (v StatsView) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("API usage") + "\n\n")

	if len(v.report.TopEndpoints) == 0 && len(v.report.Stats) == 0 {
		b.WriteString(placeholderStyle.Render("No statistics recorded yet"))
		return b.String()
	}

	if len(v.report.TopEndpoints) > 0 {
		b.WriteString(tabActiveStyle.Render("Top endpoints") + "\n")
		b.WriteString(v.headerRow("ENDPOINT", "COUNT", "AVG MS", "ERR %"))
		for _, ep := range v.report.TopEndpoints {
			b.WriteString(v.row(
				ep.Endpoint,
				fmt.Sprintf("%d", ep.Count),
				fmt.Sprintf("%.1f", ep.AvgTime),
				fmt.Sprintf("%.1f", ep.ErrorRate),
			))
		}
		b.WriteString("\n")
	}

	if len(v.report.Stats) > 0 {
		b.WriteString(tabActiveStyle.Render("All endpoints") + "\n")
		b.WriteString(v.headerRow("ENDPOINT", "COUNT", "AVG MS", "MIN/MAX", "ERRORS"))
		for _, endpoint := range sortedEndpoints(v.report.Stats) {
			st := v.report.Stats[endpoint]
			b.WriteString(v.row(
				endpoint,
				fmt.Sprintf("%d", st.Count),
				fmt.Sprintf("%.1f", st.AvgTime),
				fmt.Sprintf("%.0f/%.0f", st.MinTime, st.MaxTime),
				fmt.Sprintf("%d (%.1f%%)", st.Errors, st.ErrorRate),
			))
		}
	}

	return b.String()
}

func (v StatsView) headerRow(cols ...string) string {
	return timestampStyle.Render(v.formatRow(cols)) + "\n"
}

func (v StatsView) row(cols ...string) string {
	return v.formatRow(cols) + "\n"
}

// formatRow pads the endpoint column and separates metric columns. The
// endpoint column is clamped so narrow terminals keep the metrics visible.
func (v StatsView) formatRow(cols []string) string {
	if len(cols) == 0 {
		return ""
	}

	endpointWidth := v.width / 3
	if endpointWidth < 16 {
		endpointWidth = 16
	}

	endpoint := cols[0]
	if lipgloss.Width(endpoint) > endpointWidth {
		endpoint = endpoint[:endpointWidth-3] + "..."
	}

	parts := []string{fmt.Sprintf("  %-*s", endpointWidth, endpoint)}
	for _, col := range cols[1:] {
		parts = append(parts, fmt.Sprintf("%10s", col))
	}
	return strings.Join(parts, "")
}

// sortedEndpoints orders endpoints busiest first, name as tiebreaker.
func sortedEndpoints(stats map[string]apiclient.EndpointStat) []string {
	endpoints := make([]string, 0, len(stats))
	for endpoint := range stats {
		endpoints = append(endpoints, endpoint)
	}
	sort.Slice(endpoints, func(i, j int) bool {
		a, b := endpoints[i], endpoints[j]
		if stats[a].Count != stats[b].Count {
			return stats[a].Count > stats[b].Count
		}
		return a < b
	})
	return endpoints
}
