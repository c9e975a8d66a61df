package output

import (
	"github.com/sonemaro/clonescan/pkg/formats"
	"github.com/sonemaro/clonescan/pkg/logger"
)

// stats summarizes a format catalog
type stats struct {
	Formats    int `json:"totalFormats" yaml:"totalFormats"`
	Extensions int `json:"totalExtensions" yaml:"totalExtensions"`
	Overridden int `json:"overridden" yaml:"overridden"`
}

func (f *formatter) calculateStats(entries []formats.Entry) *stats {
	f.log.Debug("Calculating catalog statistics")

	s := &stats{}
	for _, entry := range entries {
		s.Formats++
		s.Extensions += len(entry.Extensions)
		if entry.Overridden {
			s.Overridden++
		}
	}

	f.log.WithFields(logger.Fields{
		"formats":    s.Formats,
		"extensions": s.Extensions,
		"overridden": s.Overridden,
	}).Debug("Statistics calculated")

	return s
}
