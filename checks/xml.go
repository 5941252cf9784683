package checks

import (
	"encoding/xml"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/thombet/addon-check/addon"
	"github.com/thombet/addon-check/report"
)

// InvalidXML parses every XML file in the index and reports a problem for
// each one that is not well-formed.
func InvalidXML(rep *report.Report, addonPath string, index []addon.FileEntry) {
	for _, entry := range index {
		if !strings.Contains(entry.Name, ".xml") {
			continue
		}

		path := filepath.Join(entry.Path, entry.Name)
		if !wellFormedXML(path) {
			rep.Add(report.NewProblem("Invalid xml found. %s", addon.RelativePath(path, addonPath)))
		}
	}
}

// wellFormedXML decodes the whole document. Go's decoder tolerates content
// around the document root, so a well-formed file must additionally have
// exactly one root element and no text outside it; comments, directives and
// processing instructions at the top level stay legal.
func wellFormedXML(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	var sawRoot bool
	depth := 0
	dec := xml.NewDecoder(f)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return sawRoot
		}
		if err != nil {
			return false
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 0 && sawRoot {
				// second top-level element
				return false
			}
			sawRoot = true
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			if depth == 0 && strings.TrimSpace(string(t)) != "" {
				// text before or after the root element
				return false
			}
		}
	}
}
