// Package render turns derived session data into terminal output: the
// per-day timeline bars, the summary charts, and the grouped detail listing.
package render

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/pveldandi/recap/internal/aggregate"
	"github.com/pveldandi/recap/internal/dataset"
	"github.com/pveldandi/recap/internal/layout"
)

// OutputFormat selects how the detail listing is emitted.
type OutputFormat string

const (
	FormatDefault OutputFormat = "default"
	FormatJSON    OutputFormat = "json"
	FormatCSV     OutputFormat = "csv"
)

// Config controls rendering.
type Config struct {
	Format   OutputFormat
	Width    int
	Color    bool
	Palette  Palette
	Location *time.Location
}

// DefaultConfig returns a render configuration sized to the terminal.
func DefaultConfig() *Config {
	width := 100
	if colEnv := os.Getenv("COLUMNS"); colEnv != "" {
		if v, err := strconv.Atoi(colEnv); err == nil && v > 40 {
			width = v
		}
	}

	return &Config{
		Format:   FormatDefault,
		Width:    width,
		Color:    true,
		Palette:  DefaultPalette(),
		Location: time.Local,
	}
}

// Renderer formats datasets for display.
type Renderer struct {
	config *Config
	styles *Styles
}

// Styles contains the lipgloss styles used across views.
type Styles struct {
	Title     lipgloss.Style
	Header    lipgloss.Style
	Separator lipgloss.Style
	Meta      lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Warning   lipgloss.Style
}

// NewRenderer creates a renderer with the given config.
func NewRenderer(config *Config) *Renderer {
	if config == nil {
		config = DefaultConfig()
	}
	return &Renderer{config: config, styles: initStyles(config.Color)}
}

func initStyles(color bool) *Styles {
	styles := &Styles{}

	if color {
		styles.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1"))
		styles.Header = lipgloss.NewStyle().Bold(true)
		styles.Separator = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
		styles.Meta = lipgloss.NewStyle().Faint(true)
		styles.Label = lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#89B4FA"))
		styles.Value = lipgloss.NewStyle().Foreground(lipgloss.Color("#F2CDCD"))
		styles.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAB387"))
	} else {
		styles.Title = lipgloss.NewStyle().Bold(true)
		styles.Header = lipgloss.NewStyle().Bold(true)
		styles.Separator = lipgloss.NewStyle()
		styles.Meta = lipgloss.NewStyle()
		styles.Label = lipgloss.NewStyle()
		styles.Value = lipgloss.NewStyle()
		styles.Warning = lipgloss.NewStyle()
	}

	return styles
}

func (r *Renderer) typeStyle(typ string) lipgloss.Style {
	if !r.config.Color {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(r.config.Palette.Color(typ))
}

func (r *Renderer) separator() string {
	return r.styles.Separator.Render(strings.Repeat("─", min(r.config.Width, 120)))
}

// ----- Timeline view -----

// barWidth returns the cell width of a 24-hour bar for the current
// terminal width, leaving room for the date gutter.
func (r *Renderer) barWidth() int {
	w := r.config.Width - 4
	if w > 96 {
		w = 96
	}
	if w < 24 {
		w = 24
	}
	return w
}

// RenderTimeline draws one 24-hour bar per day with each session placed at
// its proportional offset and width, followed by a numbered session legend.
func (r *Renderer) RenderTimeline(ds *dataset.Dataset) string {
	var b strings.Builder

	b.WriteString(r.styles.Title.Render("Timeline"))
	b.WriteString("  ")
	b.WriteString(r.styles.Meta.Render(ds.Source))
	b.WriteString("\n")
	b.WriteString(r.separator())
	b.WriteString("\n")

	width := r.barWidth()
	for di, day := range ds.Agg.Days {
		items := layout.PlaceDay(day, ds.Location)

		var total float64
		for _, rec := range day.Records {
			if rec.Seconds > 0 {
				total += rec.Seconds
			}
		}

		b.WriteString(r.styles.Header.Render(FormatDay(day.DayKey)))
		b.WriteString("  ")
		b.WriteString(r.styles.Meta.Render(fmt.Sprintf("%d sessions, %s", len(day.Records), FormatSeconds(total))))
		b.WriteString("\n")

		b.WriteString("  " + r.renderDayBar(items, width) + "\n")
		b.WriteString("  " + r.styles.Meta.Render(hourRuler(width)) + "\n")

		for i, item := range items {
			style := r.typeStyle(item.Record.Type)
			b.WriteString(fmt.Sprintf("  %s %s %s %s\n",
				style.Render(fmt.Sprintf("[%d]", i+1)),
				r.styles.Meta.Render(FormatClock(item.Record.Start)),
				item.Record.Name,
				style.Render(FormatSeconds(item.Record.Seconds)),
			))
		}
		if dropped := len(day.Records) - len(items); dropped > 0 {
			b.WriteString("  " + r.styles.Warning.Render(fmt.Sprintf("%d session(s) outside the day window not shown", dropped)) + "\n")
		}
		if di < len(ds.Agg.Days)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderDayBar paints positioned items onto a fixed-width cell row. Items
// whose width pushes past the last cell are truncated visually and flagged
// with a trailing overflow marker; the underlying fractions stay unclamped.
func (r *Renderer) renderDayBar(items []layout.PositionedItem, width int) string {
	const empty = "░"

	cells := make([]string, width)
	for i := range cells {
		cells[i] = r.styles.Meta.Render(empty)
	}

	overflow := false
	for _, item := range items {
		start := int(item.OffsetFraction * float64(width))
		if start >= width {
			overflow = true
			continue
		}
		span := int(item.WidthFraction*float64(width) + 0.5)
		if span < 1 {
			span = 1
		}
		end := start + span
		if end > width {
			end = width
			overflow = true
		}
		style := r.typeStyle(item.Record.Type)
		for c := start; c < end; c++ {
			cells[c] = style.Render("█")
		}
	}

	bar := strings.Join(cells, "")
	if overflow {
		bar += r.styles.Warning.Render("»")
	}
	return bar
}

// hourRuler draws tick labels under a bar of the given cell width.
func hourRuler(width int) string {
	ruler := []rune(strings.Repeat(" ", width))
	for _, h := range []int{0, 6, 12, 18} {
		pos := h * width / 24
		label := []rune(fmt.Sprintf("%dh", h))
		for i, ch := range label {
			if pos+i < width {
				ruler[pos+i] = ch
			}
		}
	}
	return string(ruler)
}

// ----- Charts view -----

// RenderCharts draws the aggregate-by-type distribution and the daily-total
// series as proportional bars.
func (r *Renderer) RenderCharts(ds *dataset.Dataset) string {
	var b strings.Builder

	b.WriteString(r.styles.Title.Render("Summary"))
	b.WriteString("  ")
	b.WriteString(r.styles.Meta.Render(ds.Source))
	b.WriteString("\n")
	b.WriteString(r.separator())
	b.WriteString("\n")

	total := ds.Agg.TotalSeconds()

	b.WriteString(r.styles.Header.Render("Time by type") + "\n")
	for _, t := range ds.Agg.TypeTotals {
		label := t.Type
		if label == "" {
			label = "(untyped)"
		}
		pct := 0.0
		if total > 0 {
			pct = t.Seconds / total * 100
		}
		bar := r.typeStyle(t.Type).Render(progressBar(pct, 24))
		b.WriteString(fmt.Sprintf("  %-12s %s %s (%.1f%%)\n", label, bar, FormatSeconds(t.Seconds), pct))
	}
	b.WriteString("\n")

	b.WriteString(r.styles.Header.Render("Daily totals") + "\n")
	var maxHours float64
	for _, d := range ds.Agg.DailyTotals {
		if d.Hours() > maxHours {
			maxHours = d.Hours()
		}
	}
	for _, d := range ds.Agg.DailyTotals {
		barWidth := 0
		if maxHours > 0 {
			barWidth = int(d.Hours() / maxHours * 24)
		}
		if barWidth < 1 && d.Seconds > 0 {
			barWidth = 1
		}
		bar := strings.Repeat("█", barWidth) + strings.Repeat("░", 24-barWidth)
		b.WriteString(fmt.Sprintf("  %s %s %.2fh\n", r.styles.Label.Render(d.DayKey), bar, d.Hours()))
	}

	return b.String()
}

func progressBar(percentage float64, width int) string {
	if percentage <= 0 {
		return strings.Repeat("░", width)
	}
	filled := int(percentage / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 1 {
		filled = 1
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// ----- Detail view -----

// detailRecord is the export shape for json output of the detail listing.
type detailRecord struct {
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Tag      string  `json:"tag"`
	Day      string  `json:"day"`
	Start    string  `json:"start"`
	End      string  `json:"end"`
	Seconds  float64 `json:"seconds"`
	Duration string  `json:"duration"`
}

// RenderDetail emits the grouped type -> tag -> session listing in the
// configured output format.
func (r *Renderer) RenderDetail(ds *dataset.Dataset) (string, error) {
	switch r.config.Format {
	case FormatJSON:
		return r.renderDetailJSON(ds)
	case FormatCSV:
		return r.renderDetailCSV(ds), nil
	default:
		return r.renderDetailDefault(ds), nil
	}
}

func (r *Renderer) renderDetailDefault(ds *dataset.Dataset) string {
	var b strings.Builder

	b.WriteString(r.styles.Title.Render("Sessions"))
	b.WriteString("  ")
	b.WriteString(r.styles.Meta.Render(ds.Source))
	b.WriteString("\n")
	b.WriteString(r.separator())
	b.WriteString("\n")

	for gi, group := range ds.Agg.Types {
		label := group.Type
		if label == "" {
			label = "(untyped)"
		}
		b.WriteString(r.typeStyle(group.Type).Bold(true).Render(label) + "\n")

		for _, tg := range group.Tags {
			tag := tg.Tag
			if tag == "" {
				tag = "(untagged)"
			}
			b.WriteString("  " + r.styles.Label.Render("#"+tag) + "\n")
			for _, rec := range tg.Records {
				b.WriteString(fmt.Sprintf("    %s  %s  %s\n",
					r.styles.Meta.Render(rec.DayKey+" "+FormatClock(rec.Start)+"–"+FormatClock(rec.End)),
					rec.Name,
					r.styles.Value.Render(FormatSeconds(rec.Seconds)),
				))
			}
		}
		if gi < len(ds.Agg.Types)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (r *Renderer) renderDetailJSON(ds *dataset.Dataset) (string, error) {
	out := detailExport(ds.Agg)
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}

func (r *Renderer) renderDetailCSV(ds *dataset.Dataset) string {
	var b strings.Builder

	b.WriteString("name,type,tag,day,start,end,seconds,duration\n")
	for _, rec := range detailExport(ds.Agg) {
		row := []string{
			escapeCSV(rec.Name),
			escapeCSV(rec.Type),
			escapeCSV(rec.Tag),
			rec.Day,
			rec.Start,
			rec.End,
			strconv.FormatFloat(rec.Seconds, 'f', -1, 64),
			rec.Duration,
		}
		b.WriteString(strings.Join(row, ","))
		b.WriteString("\n")
	}

	return b.String()
}

// detailExport flattens the type/tag tree in its deterministic group order.
func detailExport(agg aggregate.Aggregate) []detailRecord {
	var out []detailRecord
	for _, group := range agg.Types {
		for _, tg := range group.Tags {
			for _, rec := range tg.Records {
				out = append(out, detailRecord{
					Name:     rec.Name,
					Type:     rec.Type,
					Tag:      rec.Tag,
					Day:      rec.DayKey,
					Start:    rec.Start.Format("2006-01-02T15:04:05.000"),
					End:      rec.End.Format("2006-01-02T15:04:05.000"),
					Seconds:  rec.Seconds,
					Duration: FormatSeconds(rec.Seconds),
				})
			}
		}
	}
	return out
}

func escapeCSV(s string) string {
	if strings.Contains(s, ",") || strings.Contains(s, "\"") || strings.Contains(s, "\n") {
		s = strings.ReplaceAll(s, "\"", "\"\"")
		return "\"" + s + "\""
	}
	return s
}
