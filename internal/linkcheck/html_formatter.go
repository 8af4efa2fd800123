package linkcheck

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/yuin/goldmark"
)

// HTMLFormatter writes a standalone HTML page, built as markdown and rendered
// by goldmark. Raw HTML in link text is escaped, never passed through.
type HTMLFormatter struct {
	md goldmark.Markdown
}

// NewHTMLFormatter creates an HTML formatter.
func NewHTMLFormatter() *HTMLFormatter {
	return &HTMLFormatter{md: goldmark.New()}
}

// Format outputs results as an HTML document.
func (f *HTMLFormatter) Format(w io.Writer, result *Result) error {
	var body bytes.Buffer
	if err := f.md.Convert([]byte(Markdown(result)), &body); err != nil {
		return err
	}

	const title = "Link check report"
	if _, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n",
		html.EscapeString(title)); err != nil {
		return err
	}
	if _, err := body.WriteTo(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</body>\n</html>\n")
	return err
}

// Markdown renders the result as a markdown summary.
func Markdown(result *Result) string {
	var b strings.Builder
	b.WriteString("# Link check report\n\n")
	fmt.Fprintf(&b, "- Run: %s\n", codeSpan(result.RunID))
	fmt.Fprintf(&b, "- Root: %s\n", codeSpan(result.Root))
	fmt.Fprintf(&b, "- Documents scanned: %d\n", result.DocumentsTotal)
	fmt.Fprintf(&b, "- Links: %d local, %d external, %d empty\n",
		result.Links.Local, result.Links.External, result.Links.Empty)
	fmt.Fprintf(&b, "- Broken links: %d\n", result.BrokenCount())

	if !result.HasBroken() {
		fmt.Fprintf(&b, "\nNo broken relative links found in %s\n", codeSpan(result.Label()))
		return b.String()
	}

	for _, report := range result.Reports {
		fmt.Fprintf(&b, "\n## %s\n\n", codeSpan(report.Document))
		for _, broken := range report.Broken {
			fmt.Fprintf(&b, "- %s → %s\n", codeSpan(broken.Raw), codeSpan(broken.Target))
		}
	}
	return b.String()
}

// codeSpan wraps s in a backtick fence longer than any backtick run inside it.
func codeSpan(s string) string {
	if s == "" {
		return "` `"
	}
	s = strings.NewReplacer("\r", " ", "\n", " ").Replace(s)

	longest, run := 0, 0
	for _, r := range s {
		if r == '`' {
			run++
			longest = max(longest, run)
			continue
		}
		run = 0
	}
	fence := strings.Repeat("`", longest+1)

	if strings.HasPrefix(s, "`") || strings.HasSuffix(s, "`") ||
		(strings.HasPrefix(s, " ") && strings.HasSuffix(s, " ")) {
		s = " " + s + " "
	}
	return fence + s + fence
}
