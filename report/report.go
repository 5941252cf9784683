package report

import "fmt"

// Severity classifies how serious a finding is.
type Severity int

const (
	Information Severity = iota
	Warning
	Problem
)

// String returns the display name of the severity.
func (s Severity) String() string {
	switch s {
	case Information:
		return "INFO"
	case Warning:
		return "WARN"
	case Problem:
		return "PROBLEM"
	default:
		return "UNKNOWN"
	}
}

// MarshalJSON encodes the severity as its display name.
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", s.String())), nil
}

// UnmarshalJSON decodes a severity from its display name.
func (s *Severity) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"INFO"`:
		*s = Information
	case `"WARN"`:
		*s = Warning
	case `"PROBLEM"`:
		*s = Problem
	default:
		return fmt.Errorf("unknown severity %s", data)
	}
	return nil
}

// Record is a single finding. Records are immutable once created.
type Record struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// NewInformation returns an informational record.
func NewInformation(format string, args ...interface{}) Record {
	return Record{Severity: Information, Message: fmt.Sprintf(format, args...)}
}

// NewWarning returns a warning record.
func NewWarning(format string, args ...interface{}) Record {
	return Record{Severity: Warning, Message: fmt.Sprintf(format, args...)}
}

// NewProblem returns a problem record.
func NewProblem(format string, args ...interface{}) Record {
	return Record{Severity: Problem, Message: fmt.Sprintf(format, args...)}
}

// Report is the ordered, append-only sink every check writes its findings to.
// One report covers one validation pass over one addon; record order reflects
// check invocation order and, within a check, file discovery order. Reports
// are not safe for concurrent use.
type Report struct {
	records []Record
}

// New returns an empty report.
func New() *Report {
	return &Report{}
}

// Add appends a record to the report. Records are never reordered or
// deduplicated.
func (r *Report) Add(rec Record) {
	r.records = append(r.records, rec)
}

// Records returns a copy of the findings in the order they were added, so
// callers cannot mutate the report in place.
func (r *Report) Records() []Record {
	return append([]Record(nil), r.records...)
}

// Len returns the number of findings.
func (r *Report) Len() int {
	return len(r.records)
}

// Summary holds per-severity counts for one report.
type Summary struct {
	Information int `json:"information"`
	Warnings    int `json:"warnings"`
	Problems    int `json:"problems"`
}

// Summary tallies the report's findings by severity.
func (r *Report) Summary() Summary {
	var s Summary
	for _, rec := range r.records {
		switch rec.Severity {
		case Information:
			s.Information++
		case Warning:
			s.Warnings++
		case Problem:
			s.Problems++
		}
	}
	return s
}

// HasProblems reports whether any finding has severity Problem.
func (r *Report) HasProblems() bool {
	return r.Summary().Problems > 0
}
