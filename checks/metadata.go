package checks

import (
	"path/filepath"

	"github.com/thombet/addon-check/addon"
	"github.com/thombet/addon-check/report"
)

// AddonXML confirms the addon descriptor exists and was parseable, reports
// the declared provider, and cross-checks the declared id against the
// containing folder name. md is nil when the descriptor failed to parse; in
// that case a single problem is reported and the folder check is skipped.
func AddonXML(rep *report.Report, addonPath string, md *addon.Metadata, allowFolderIDMismatch bool) {
	if !addon.FileExists(addonPath, addon.MetadataFilename) || md == nil {
		path := filepath.Join(addonPath, addon.MetadataFilename)
		rep.Add(report.NewProblem("Addon xml not valid, check xml. %s", addon.RelativePath(path, addonPath)))
		return
	}

	rep.Add(report.NewInformation("Created by %s", md.ProviderName()))
	addonXMLMatchesFolder(rep, addonPath, md, allowFolderIDMismatch)
}

// addonXMLMatchesFolder checks that the final component of the addon path
// equals the id declared in the descriptor.
func addonXMLMatchesFolder(rep *report.Report, addonPath string, md *addon.Metadata, allowFolderIDMismatch bool) {
	folder := filepath.Base(filepath.Clean(addonPath))

	if folder == md.ID() {
		rep.Add(report.NewInformation("Addon id matches folder name"))
		return
	}

	if allowFolderIDMismatch {
		rep.Add(report.NewInformation(
			"Addon id and folder name does not match. Ensure folder name is %s when submitting to the official repository.",
			md.ID()))
		return
	}

	rep.Add(report.NewProblem("Addon id and folder name does not match."))
}
