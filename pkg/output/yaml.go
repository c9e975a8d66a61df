package output

import (
	"github.com/sonemaro/clonescan/pkg/logger"
	"gopkg.in/yaml.v3"
)

func (f *formatter) marshalYAML(v any) (string, error) {
	f.log.Debug("Formatting YAML output")

	bytes, err := yaml.Marshal(v)
	if err != nil {
		f.log.WithFields(logger.Fields{
			"error": err,
		}).Error("Failed to marshal YAML")
		return "", err
	}

	return string(bytes), nil
}
