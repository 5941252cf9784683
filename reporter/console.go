package reporter

import (
	"github.com/sirupsen/logrus"

	"github.com/thombet/addon-check/report"
)

// Console logs every record through logrus, mapping finding severity to log
// level.
type Console struct {
	Logger *logrus.Logger
}

// NewConsole returns a console reporter writing through logger. A nil logger
// falls back to the logrus standard logger.
func NewConsole(logger *logrus.Logger) *Console {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Console{Logger: logger}
}

func (c *Console) Report(addonID string, rep *report.Report) error {
	entry := c.Logger.WithField("addon", addonID)

	for _, rec := range rep.Records() {
		switch rec.Severity {
		case report.Problem:
			entry.Error(rec.Message)
		case report.Warning:
			entry.Warn(rec.Message)
		default:
			entry.Info(rec.Message)
		}
	}

	s := rep.Summary()
	entry.Infof("%d problems, %d warnings, %d notes", s.Problems, s.Warnings, s.Information)
	return nil
}
