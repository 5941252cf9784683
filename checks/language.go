package checks

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/thombet/addon-check/addon"
	"github.com/thombet/addon-check/report"
)

// newLanguageMarker flags a language directory using the new naming
// convention ("resource.language.en_gb"); directories without it use the old
// one ("English").
const newLanguageMarker = "resource.language."

// LanguageStructure flags language directories whose naming convention does
// not fit the target version: old-style directories when the new structure
// is supported, new-style directories when it is not. An addon without a
// resources/language directory passes vacuously.
func LanguageStructure(rep *report.Report, addonPath string, newStructureSupported bool) {
	languagePath := filepath.Join(addonPath, "resources", "language")

	entries, err := os.ReadDir(languagePath)
	if err != nil {
		return
	}

	// only the immediate child directories are subject to the convention
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		path := addon.RelativePath(filepath.Join(languagePath, entry.Name()), addonPath)
		usesNew := strings.Contains(entry.Name(), newLanguageMarker)

		switch {
		case !usesNew && newStructureSupported:
			rep.Add(report.NewProblem(
				"Using the old language directory structure in %s, please move to the new one.", path))
		case usesNew && !newStructureSupported:
			rep.Add(report.NewProblem(
				"Using the new language directory structure in %s for a version that does not support it. "+
					"Please use the old language file structure or move the addon to a newer branch.", path))
		}
	}
}
