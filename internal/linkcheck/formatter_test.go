package linkcheck

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *Result {
	return &Result{
		RunID:          "run-1",
		Root:           "/repo/docs",
		RootLabel:      "docs/",
		DocumentsTotal: 3,
		Links:          LinkStats{Local: 4, External: 2, Empty: 1},
		Reports: []Report{
			{
				Document: "/repo/docs/a.md",
				Broken: []BrokenLink{
					{Raw: "missing.md", Target: "/repo/docs/missing.md"},
					{Raw: "gone.md#part", Target: "/repo/docs/gone.md"},
				},
			},
			{
				Document: "/repo/docs/sub/b.md",
				Broken:   []BrokenLink{{Raw: "../x", Target: "/repo/docs/x"}},
			},
		},
	}
}

func TestTextFormatter_Broken(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextFormatter(false).Format(&buf, sampleResult()))

	expected := `/repo/docs/a.md -> 2 broken links
  missing.md -> /repo/docs/missing.md
  gone.md#part -> /repo/docs/gone.md
/repo/docs/sub/b.md -> 1 broken links
  ../x -> /repo/docs/x
Found 3 broken links
`
	assert.Equal(t, expected, buf.String())
}

func TestTextFormatter_Clean(t *testing.T) {
	var buf bytes.Buffer
	result := &Result{Root: "/repo/docs", RootLabel: "docs/", DocumentsTotal: 2}
	require.NoError(t, NewTextFormatter(false).Format(&buf, result))

	assert.Equal(t, "No broken relative links found in docs/\n", buf.String())
	assert.Equal(t, 1, strings.Count(buf.String(), "No broken relative links found"))
}

func TestTextFormatter_LabelFallsBackToRoot(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextFormatter(false).Format(&buf, &Result{Root: "/srv/handbook"}))
	assert.Equal(t, "No broken relative links found in /srv/handbook\n", buf.String())
}

func TestTextFormatter_ColorKeepsContent(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextFormatter(true).Format(&buf, sampleResult()))

	out := buf.String()
	assert.Contains(t, out, "missing.md -> /repo/docs/missing.md")
	assert.Contains(t, out, "Found 3 broken links")
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter().Format(&buf, sampleResult()))

	var out JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "run-1", out.RunID)
	assert.Equal(t, "/repo/docs", out.Root)
	assert.Equal(t, 3, out.DocumentsTotal)
	assert.Equal(t, 3, out.BrokenCount)
	assert.Equal(t, JSONLinkStats{Local: 4, External: 2, Empty: 1}, out.Links)
	require.Len(t, out.Documents, 2)
	assert.Equal(t, "/repo/docs/a.md", out.Documents[0].Path)
	assert.Equal(t, JSONBrokenLink{Link: "gone.md#part", Target: "/repo/docs/gone.md"}, out.Documents[0].Broken[1])
}

func TestJSONFormatter_CleanHasEmptyDocuments(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter().Format(&buf, &Result{Root: "/repo/docs"}))
	assert.Contains(t, buf.String(), `"documents": []`)
}

func TestHTMLFormatter(t *testing.T) {
	result := sampleResult()
	result.Reports[0].Broken = append(result.Reports[0].Broken, BrokenLink{
		Raw:    "<script>alert(1)</script>",
		Target: "/repo/docs/<script>alert(1)</script>",
	})

	var buf bytes.Buffer
	require.NoError(t, NewHTMLFormatter().Format(&buf, result))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<h1>Link check report</h1>")
	assert.Contains(t, out, "<code>/repo/docs/a.md</code>")
	assert.Contains(t, out, "<code>missing.md</code>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.NotContains(t, out, "<script>")
	assert.True(t, strings.HasSuffix(out, "</html>\n"))
}

func TestHTMLFormatter_Clean(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewHTMLFormatter().Format(&buf, &Result{RunID: "r", Root: "/repo/docs", RootLabel: "docs/"}))
	assert.Contains(t, buf.String(), "No broken relative links found in <code>docs/</code>")
}

func TestCodeSpan(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain.md", "`plain.md`"},
		{"", "` `"},
		{"a`b", "``a`b``"},
		{"`lead", "`` `lead ``"},
		{"two\nlines", "`two lines`"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, codeSpan(tt.in), tt.in)
	}
}

func TestNewFormatter(t *testing.T) {
	assert.IsType(t, &TextFormatter{}, NewFormatter("text", false))
	assert.IsType(t, &JSONFormatter{}, NewFormatter("json", false))
	assert.IsType(t, &HTMLFormatter{}, NewFormatter("html", false))
	assert.IsType(t, &TextFormatter{}, NewFormatter("", false))
}
