package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/dmitrymomot/oscli/internal/search"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	nameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	countStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	sizeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	dimStyle    = lipgloss.NewStyle().Faint(true)

	healthStyles = map[string]lipgloss.Style{
		"green":  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		"yellow": lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		"red":    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
)

func renderIndexTable(w io.Writer, indices []search.IndexSummary) {
	if len(indices) == 0 {
		fmt.Fprintln(w, warnStyle.Render("No indices found."))
		return
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Headers("INDEX", "DOCS", "SIZE", "HEALTH", "STATUS")
	for _, idx := range indices {
		health := idx.Health
		if style, ok := healthStyles[health]; ok {
			health = style.Render(health)
		}
		tbl.Row(
			nameStyle.Render(idx.Name),
			countStyle.Render(humanize.Comma(int64(idx.DocsCount))),
			sizeStyle.Render(humanize.Bytes(uint64(idx.SizeBytes))),
			health,
			idx.Status,
		)
	}

	fmt.Fprintln(w, tbl)
	fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("%d indices total", len(indices))))
}

func renderSample(w io.Writer, sample *search.Sample, showEmbedding bool) {
	note := ""
	if !showEmbedding {
		note = "  " + dimStyle.Render("(embeddings hidden)")
	}
	fmt.Fprintf(w, "\n%s  %s/%d documents%s\n\n",
		headerStyle.Render(sample.Index),
		countStyle.Render(fmt.Sprintf("%d", len(sample.Documents))),
		sample.Total,
		note,
	)

	if len(sample.Documents) == 0 {
		fmt.Fprintln(w, warnStyle.Render("No documents in this index."))
		return
	}

	rule := dimStyle.Render(strings.Repeat("-", 40))
	for _, doc := range sample.Documents {
		fmt.Fprintf(w, "%s %s\n", nameStyle.Render("_id:"), doc.ID)
		fields, err := json.MarshalIndent(doc.Fields, "", "  ")
		if err != nil {
			fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("unrenderable document: %v", err)))
		} else {
			fmt.Fprintln(w, string(fields))
		}
		fmt.Fprintln(w, rule)
	}
}
