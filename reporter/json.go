package reporter

import (
	"encoding/json"
	"os"

	"github.com/thombet/addon-check/report"
)

// JSON writes the report to a file as indented JSON.
type JSON struct {
	Path string
}

// jsonReport is the serialized form of one addon's report.
type jsonReport struct {
	Addon   string          `json:"addon"`
	Records []report.Record `json:"records"`
	Summary report.Summary  `json:"summary"`
}

func (j *JSON) Report(addonID string, rep *report.Report) error {
	out := jsonReport{
		Addon:   addonID,
		Records: rep.Records(),
		Summary: rep.Summary(),
	}

	data, err := json.MarshalIndent(out, "", "	")
	if err != nil {
		return err
	}

	return os.WriteFile(j.Path, data, 0644)
}
