// Package reporter renders finished validation reports. Reporters are
// registered under a name and selected by configuration, so a run can fan
// one report out to the console, a JSON file and an HTML file at once.
package reporter

import (
	"fmt"

	"github.com/thombet/addon-check/report"
)

// Reporter renders one addon's report. addonID is the folder name of the
// validated addon.
type Reporter interface {
	Report(addonID string, rep *report.Report) error
}

// Registry holds named reporters.
type Registry struct {
	reporters map[string]Reporter
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{reporters: make(map[string]Reporter)}
}

// Register adds a reporter under a name, replacing any previous one.
func (r *Registry) Register(name string, rep Reporter) {
	r.reporters[name] = rep
}

// Select resolves a list of reporter names, failing on the first unknown
// name.
func (r *Registry) Select(names []string) ([]Reporter, error) {
	out := make([]Reporter, 0, len(names))
	for _, name := range names {
		rep, ok := r.reporters[name]
		if !ok {
			return nil, fmt.Errorf("unknown reporter %q", name)
		}
		out = append(out, rep)
	}
	return out, nil
}
