package output

import (
	"encoding/json"

	"github.com/sonemaro/clonescan/pkg/formats"
	"github.com/sonemaro/clonescan/pkg/logger"
)

// catalogOutput is the document written for the catalog in JSON and YAML
type catalogOutput struct {
	Formats    []formats.Entry `json:"formats" yaml:"formats"`
	Statistics *stats          `json:"statistics,omitempty" yaml:"statistics,omitempty"`
}

func (f *formatter) catalogDocument(entries []formats.Entry) *catalogOutput {
	doc := &catalogOutput{Formats: entries}
	if f.config.WithStats {
		f.log.Debug("Adding statistics to catalog output")
		doc.Statistics = f.calculateStats(entries)
	}
	return doc
}

func (f *formatter) marshalJSON(v any) (string, error) {
	f.log.Debug("Formatting JSON output")

	bytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		f.log.WithFields(logger.Fields{
			"error": err,
		}).Error("Failed to marshal JSON")
		return "", err
	}

	return string(bytes), nil
}
