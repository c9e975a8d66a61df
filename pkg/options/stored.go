package options

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/sonemaro/clonescan/pkg/logger"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// LoadStored reads the persisted config file at path. A missing file is not an
// error: it yields an empty partial and an empty path. On success the returned
// path is the file that was read.
//
// A relative "path" key is anchored at the directory of the config file, not
// at the process working directory. Keys are matched case-insensitively and
// unknown keys are ignored.
func LoadStored(fs afero.Fs, path string, log logger.Logger) (Partial, string, error) {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return Partial{}, "", fmt.Errorf("failed to check config file %s: %w", path, err)
	}
	if !exists {
		log.WithFields(logger.Fields{
			"path": path,
		}).Debug("Config file not found, using defaults")
		return Partial{}, "", nil
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		log.WithFields(logger.Fields{
			"error": err,
			"path":  path,
		}).Error("Failed to read config file")
		return Partial{}, "", fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	v := viper.New()
	v.SetConfigType("json")
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		log.WithFields(logger.Fields{
			"error": err,
			"path":  path,
		}).Error("Config file is not valid JSON")
		return Partial{}, "", &ConfigParseError{Path: path, Err: err}
	}

	var stored Partial
	if err := v.Unmarshal(&stored); err != nil {
		log.WithFields(logger.Fields{
			"error": err,
			"path":  path,
		}).Error("Config file has values of the wrong type")
		return Partial{}, "", &ConfigParseError{Path: path, Err: err}
	}

	if stored.Path != nil && !filepath.IsAbs(*stored.Path) {
		anchored := filepath.Join(filepath.Dir(path), *stored.Path)
		log.WithFields(logger.Fields{
			"from": *stored.Path,
			"to":   anchored,
		}).Trace("Anchored relative path at config directory")
		stored.Path = &anchored
	}

	log.WithFields(logger.Fields{
		"path": path,
		"keys": stored.Keys(),
	}).Debug("Loaded persisted options")

	return stored, path, nil
}
