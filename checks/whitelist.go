package checks

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/thombet/addon-check/addon"
	"github.com/thombet/addon-check/report"
)

// whitelistExp matches the permitted file endings: documentation, media,
// data and config extensions. Matching is case-insensitive and both the
// leading dot and the extension group are optional, so extensionless files
// (LICENSE, Makefile) are deliberately permitted.
var whitelistExp = regexp.MustCompile(`(?i)^\.?(py|xml|gif|png|jpg|jpeg|md|txt|po|json|gitignore|markdown|yml|` +
	`rst|ini|flv|wav|mp4|html|css|lst|pkla|g|template|in|cfg|xsd|directory|` +
	`help|list|mpeg|pls|info|ttf|xsp|theme|yaml|dict|crt|ico)?$`)

// WhitelistOptions carries the log files the whitelist check must skip. The
// tool writes its own logs next to the addon when those features are on;
// flagging them would be noise.
type WhitelistOptions struct {
	DebugLogEnabled    bool
	DebugLogPath       string
	ReporterLogEnabled bool
	ReporterLogPath    string
}

// FileWhitelist warns about files whose extension is not in the allowed set.
// Module packages are exempt from the whitelist entirely; tool-generated log
// files are skipped when the matching feature is enabled.
func FileWhitelist(rep *report.Report, addonPath string, index []addon.FileEntry, opts WhitelistOptions) {
	if strings.Contains(addonPath, ".module.") {
		rep.Add(report.NewInformation("Module skipping whitelist"))
		return
	}

	var ignored []string
	if opts.DebugLogEnabled {
		ignored = append(ignored, opts.DebugLogPath)
	}
	if opts.ReporterLogEnabled {
		ignored = append(ignored, opts.ReporterLogPath)
	}

	for _, entry := range index {
		path := filepath.Join(entry.Path, entry.Name)
		if contains(ignored, path) {
			continue
		}

		// classification looks at the final dot-delimited suffix only;
		// a name without a dot has no extension and is never flagged
		idx := strings.LastIndex(entry.Name, ".")
		if idx < 0 {
			continue
		}

		if !whitelistExp.MatchString(entry.Name[idx:]) {
			rep.Add(report.NewWarning("Found non whitelisted file ending in filename %s",
				addon.RelativePath(path, addonPath)))
		}
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
