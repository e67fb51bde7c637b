package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"ideaforge/internal/models"
)

func newTable(out io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetAutoWrapText(true)
	table.SetColWidth(60)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderSuggestions(out io.Writer, kind models.SuggestionType, suggestions []models.Suggestion) {
	if len(suggestions) == 0 {
		fmt.Fprintln(out, color.YellowString("No %s suggestions met the confidence threshold.", kind))
		fmt.Fprintln(out, "Lower it with --min-confidence (category scores are keyword overlap and often sit below 0.7).")
		return
	}
	fmt.Fprintln(out, color.New(color.Bold).Sprintf("%d %s suggestion(s)", len(suggestions), kind))

	table := newTable(out, []string{"#", "Confidence", "Source", "Suggestion", "Why"})
	for i, s := range suggestions {
		table.Append([]string{
			strconv.Itoa(i + 1),
			formatScore(s.Confidence),
			string(s.Source),
			s.Content,
			s.Reasoning,
		})
	}
	table.Render()
}

func renderAnalysis(out io.Writer, a models.ContentAnalysis) {
	table := newTable(out, []string{"Metric", "Value"})
	table.Append([]string{"Sentiment", string(a.Sentiment)})
	table.Append([]string{"Keywords", strings.Join(a.Keywords, ", ")})
	table.Append([]string{"Topics", strings.Join(a.Topics, ", ")})
	table.Append([]string{"Readability", formatScore(a.Readability)})
	table.Append([]string{"Engagement", formatScore(a.EngagementPotential)})
	table.Append([]string{"Originality", formatScore(a.Originality)})

	platforms := make([]string, 0, len(a.PlatformFit))
	for p := range a.PlatformFit {
		platforms = append(platforms, p)
	}
	sort.Strings(platforms)
	for _, p := range platforms {
		table.Append([]string{"Fit: " + p, formatScore(a.PlatformFit[p])})
	}
	table.Render()
}

func renderHistory(out io.Writer, entries []models.HistoryEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(out, "No suggestion history found.")
		return
	}
	table := newTable(out, []string{"Recorded At", "Type", "Confidence", "Suggestion"})
	for _, e := range entries {
		for _, s := range e.Suggestions {
			table.Append([]string{
				e.RecordedAt.Format("2006-01-02 15:04:05"),
				string(s.Type),
				formatScore(s.Confidence),
				s.Content,
			})
		}
	}
	table.Render()
}
