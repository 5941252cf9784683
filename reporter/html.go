package reporter

import (
	"bytes"
	"fmt"
	"os"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/thombet/addon-check/report"
)

// HTML renders the report as a sanitized HTML document. The report is first
// written as GitHub-flavored markdown, converted with goldmark, then run
// through bluemonday so record messages can never inject markup.
type HTML struct {
	Path string
}

func (h *HTML) Report(addonID string, rep *report.Report) error {
	var md bytes.Buffer

	fmt.Fprintf(&md, "# Check report for `%s`\n\n", addonID)
	s := rep.Summary()
	fmt.Fprintf(&md, "%d problems, %d warnings, %d notes\n\n", s.Problems, s.Warnings, s.Information)

	for _, rec := range rep.Records() {
		fmt.Fprintf(&md, "- **%s**: %s\n", rec.Severity, rec.Message)
	}

	body, err := renderMarkdown(md.String())
	if err != nil {
		return err
	}

	return os.WriteFile(h.Path, []byte(body), 0644)
}

// renderMarkdown converts markdown content to sanitized HTML.
func renderMarkdown(content string) (string, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
	)

	var buf bytes.Buffer
	if err := md.Convert([]byte(content), &buf); err != nil {
		return "", err
	}

	p := bluemonday.UGCPolicy()
	return p.Sanitize(buf.String()), nil
}
