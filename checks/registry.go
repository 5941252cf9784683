package checks

import (
	"github.com/sirupsen/logrus"

	"github.com/thombet/addon-check/addon"
	"github.com/thombet/addon-check/report"
)

// Input is everything one validation pass over one addon works from. The
// index and metadata are built once by the caller and are read-only to
// checks; Metadata is nil when the descriptor failed to parse.
type Input struct {
	AddonPath string
	Index     []addon.FileEntry
	Metadata  *addon.Metadata

	AllowFolderIDMismatch bool
	NewStructureSupported bool
	Whitelist             WhitelistOptions
}

// Func is a single check: it inspects the input and appends findings to the
// report. Checks never fail; anything wrong with the input becomes a record.
type Func func(rep *report.Report, in Input)

// Registry holds named checks in a fixed run order.
type Registry struct {
	names  []string
	checks map[string]Func
}

// NewRegistry returns a registry with every built-in check registered, in
// the order a validation pass runs them.
func NewRegistry() *Registry {
	r := &Registry{checks: make(map[string]Func)}

	r.Register("addon-xml", func(rep *report.Report, in Input) {
		AddonXML(rep, in.AddonPath, in.Metadata, in.AllowFolderIDMismatch)
	})
	r.Register("invalid-xml", func(rep *report.Report, in Input) {
		InvalidXML(rep, in.AddonPath, in.Index)
	})
	r.Register("invalid-json", func(rep *report.Report, in Input) {
		InvalidJSON(rep, in.AddonPath, in.Index)
	})
	r.Register("python-syntax", func(rep *report.Report, in Input) {
		PythonSyntax(rep, in.AddonPath, in.Index)
	})
	r.Register("language-structure", func(rep *report.Report, in Input) {
		LanguageStructure(rep, in.AddonPath, in.NewStructureSupported)
	})
	r.Register("file-whitelist", func(rep *report.Report, in Input) {
		FileWhitelist(rep, in.AddonPath, in.Index, in.Whitelist)
	})
	r.Register("executable", func(rep *report.Report, in Input) {
		Executable(rep, in.AddonPath, in.Index)
	})

	return r
}

// Register adds a check under a name. Registering an existing name replaces
// the check but keeps its position in the run order.
func (r *Registry) Register(name string, fn Func) {
	if _, ok := r.checks[name]; !ok {
		r.names = append(r.names, name)
	}
	r.checks[name] = fn
}

// Names returns the check names in run order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Run invokes every registered check in order against one addon, appending
// all findings to the given report.
func (r *Registry) Run(rep *report.Report, in Input) {
	for _, name := range r.names {
		logrus.WithField("check", name).Debug("running check")
		r.checks[name](rep, in)
	}
}
