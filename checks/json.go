package checks

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/thombet/addon-check/addon"
	"github.com/thombet/addon-check/report"
)

// InvalidJSON parses every JSON file in the index and reports a problem for
// each one that does not decode, including empty files.
func InvalidJSON(rep *report.Report, addonPath string, index []addon.FileEntry) {
	for _, entry := range index {
		if !strings.Contains(entry.Name, ".json") {
			continue
		}

		path := filepath.Join(entry.Path, entry.Name)
		if !wellFormedJSON(path) {
			rep.Add(report.NewProblem("Invalid json found. %s", addon.RelativePath(path, addonPath)))
		}
	}
}

func wellFormedJSON(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}

	var v interface{}
	return json.Unmarshal(data, &v) == nil
}
