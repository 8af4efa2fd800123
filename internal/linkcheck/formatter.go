package linkcheck

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Formatter renders a Result.
type Formatter interface {
	Format(w io.Writer, result *Result) error
}

// NewFormatter creates the appropriate formatter based on format string.
func NewFormatter(format string, useColor bool) Formatter {
	switch format {
	case "json":
		return NewJSONFormatter()
	case "html":
		return NewHTMLFormatter()
	default:
		return NewTextFormatter(useColor)
	}
}

// TextFormatter prints the plain report: one header line per document with
// broken links, one indented line per link, then a summary line.
type TextFormatter struct {
	useColor bool
	document lipgloss.Style
	link     lipgloss.Style
	failure  lipgloss.Style
	success  lipgloss.Style
}

// NewTextFormatter creates a text formatter. Styles are only applied when useColor is set.
func NewTextFormatter(useColor bool) *TextFormatter {
	return &TextFormatter{
		useColor: useColor,
		document: lipgloss.NewStyle().Bold(true),
		link:     lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		failure:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		success:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	}
}

// Format outputs results in human-readable text format.
func (f *TextFormatter) Format(w io.Writer, result *Result) error {
	for _, report := range result.Reports {
		header := fmt.Sprintf("%s -> %d broken links", report.Document, len(report.Broken))
		if _, err := fmt.Fprintln(w, f.render(f.document, header)); err != nil {
			return err
		}
		for _, broken := range report.Broken {
			line := fmt.Sprintf("%s -> %s", broken.Raw, broken.Target)
			if _, err := fmt.Fprintf(w, "  %s\n", f.render(f.link, line)); err != nil {
				return err
			}
		}
	}

	if count := result.BrokenCount(); count > 0 {
		_, err := fmt.Fprintln(w, f.render(f.failure, fmt.Sprintf("Found %d broken links", count)))
		return err
	}
	_, err := fmt.Fprintln(w, f.render(f.success, "No broken relative links found in "+result.Label()))
	return err
}

func (f *TextFormatter) render(style lipgloss.Style, s string) string {
	if !f.useColor {
		return s
	}
	return style.Render(s)
}

// JSONFormatter formats results as JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// JSONOutput represents the JSON output structure.
type JSONOutput struct {
	RunID          string         `json:"run_id"`
	Root           string         `json:"root"`
	DocumentsTotal int            `json:"documents_total"`
	BrokenCount    int            `json:"broken_count"`
	Links          JSONLinkStats  `json:"links"`
	Documents      []JSONDocument `json:"documents"`
}

// JSONLinkStats mirrors LinkStats.
type JSONLinkStats struct {
	Local    int `json:"local"`
	External int `json:"external"`
	Empty    int `json:"empty"`
}

// JSONDocument lists the broken links of one document.
type JSONDocument struct {
	Path   string           `json:"path"`
	Broken []JSONBrokenLink `json:"broken"`
}

// JSONBrokenLink represents a single broken link in JSON format.
type JSONBrokenLink struct {
	Link   string `json:"link"`
	Target string `json:"target"`
}

// Format outputs results in JSON format.
func (f *JSONFormatter) Format(w io.Writer, result *Result) error {
	output := JSONOutput{
		RunID:          result.RunID,
		Root:           result.Root,
		DocumentsTotal: result.DocumentsTotal,
		BrokenCount:    result.BrokenCount(),
		Links: JSONLinkStats{
			Local:    result.Links.Local,
			External: result.Links.External,
			Empty:    result.Links.Empty,
		},
		Documents: []JSONDocument{},
	}

	for _, report := range result.Reports {
		doc := JSONDocument{Path: report.Document, Broken: make([]JSONBrokenLink, 0, len(report.Broken))}
		for _, broken := range report.Broken {
			doc.Broken = append(doc.Broken, JSONBrokenLink{Link: broken.Raw, Target: broken.Target})
		}
		output.Documents = append(output.Documents, doc)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
