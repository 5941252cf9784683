package checks

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/thombet/addon-check/addon"
	"github.com/thombet/addon-check/report"
)

// execBitSupported is resolved once at startup: on platforms without an
// execute-permission concept the executable check is skipped entirely. A
// runtime flag rather than a build tag keeps the check testable everywhere.
var execBitSupported = runtime.GOOS != "windows" && runtime.GOOS != "plan9"

// Executable reports every regular file in the index that carries an execute
// permission bit, since addons must not ship stand-alone executables. The
// check only detects; it never modifies permissions.
func Executable(rep *report.Report, addonPath string, index []addon.FileEntry) {
	if !execBitSupported {
		return
	}

	for _, entry := range index {
		path := filepath.Join(entry.Path, entry.Name)

		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		// any execute bit counts, not just one the current process can
		// exercise through access(2): a file executable only for a class
		// the process is not in is still flagged
		if info.Mode().Perm()&0o111 != 0 {
			rep.Add(report.NewProblem("%s is marked as stand-alone executable",
				addon.RelativePath(path, addonPath)))
		}
	}
}
