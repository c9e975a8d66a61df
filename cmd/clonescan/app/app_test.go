package app

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sonemaro/clonescan/internal/config"
	"github.com/sonemaro/clonescan/pkg/logger"
	"github.com/sonemaro/clonescan/pkg/options"
	"github.com/sonemaro/clonescan/pkg/output"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockLogger implements logger.Logger interface for testing
type mockLogger struct {
	logs []string
}

func (m *mockLogger) Info(msg string)                               { m.logs = append(m.logs, "INFO: "+msg) }
func (m *mockLogger) Debug(msg string)                              { m.logs = append(m.logs, "DEBUG: "+msg) }
func (m *mockLogger) Error(msg string)                              { m.logs = append(m.logs, "ERROR: "+msg) }
func (m *mockLogger) Warn(msg string)                               { m.logs = append(m.logs, "WARN: "+msg) }
func (m *mockLogger) Trace(msg string)                              { m.logs = append(m.logs, "TRACE: "+msg) }
func (m *mockLogger) WithFields(fields logger.Fields) logger.Logger { return m }

type recordingDetector struct {
	calls []options.Options
	err   error
}

func (d *recordingDetector) Detect(ctx context.Context, opts options.Options) error {
	d.calls = append(d.calls, opts)
	return d.err
}

func newTestApp(t *testing.T, files map[string]string, detector Detector) (*App, *bytes.Buffer, *mockLogger) {
	t.Helper()

	fs := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}

	out := &bytes.Buffer{}
	log := &mockLogger{}
	a := New(config.Config{LogFormat: "console"},
		WithFs(fs),
		WithOutput(out),
		WithLogger(log),
		WithDetector(detector),
		WithResolverConfig(options.ResolverConfig{
			WorkDir: "/proj",
			Now:     func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) },
			Formats: []string{"go", "javascript"},
		}),
	)
	return a, out, log
}

func TestRunHandsOptionsToDetector(t *testing.T) {
	detector := &recordingDetector{}
	a, out, log := newTestApp(t, map[string]string{
		"/proj/.clonescan.json": `{"minLines": 10, "reporters": ["console", "json"]}`,
	}, detector)

	err := a.Run(context.Background(), options.Args{Silent: ptr(true)})
	require.NoError(t, err)

	require.Len(t, detector.calls, 1)
	opts := detector.calls[0]
	assert.Equal(t, 10, opts.MinLines)
	assert.Equal(t, []string{"json", "silent", "time"}, opts.Reporters)
	assert.Equal(t, "/proj/.clonescan.json", opts.ConfigFile)
	assert.Equal(t, "2024-06-01T00:00:00.000Z", opts.ExecutionID)
	assert.Empty(t, out.String())
	assert.Contains(t, log.logs, "INFO: Starting detection")
}

func TestRunList(t *testing.T) {
	detector := &recordingDetector{}
	a, out, _ := newTestApp(t, nil, detector)

	err := a.Run(context.Background(), options.Args{
		List:        ptr(true),
		FormatsExts: ptr("javascript:es6"),
	})
	require.NoError(t, err)

	assert.Empty(t, detector.calls)
	assert.Contains(t, out.String(), "formats/\n")
	assert.Contains(t, out.String(), ".es6 (overridden)")
	assert.Contains(t, out.String(), "python:")
	assert.NotContains(t, out.String(), "\x1b[")
}

func TestRunDebug(t *testing.T) {
	detector := &recordingDetector{}
	a, out, _ := newTestApp(t, nil, detector)

	err := a.Run(context.Background(), options.Args{
		Debug:     ptr(true),
		Threshold: ptr(5.0),
	})
	require.NoError(t, err)

	assert.Empty(t, detector.calls)
	assert.Contains(t, out.String(), "options/\n")
	assert.Contains(t, out.String(), "console, threshold, time")
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name     string
		files    map[string]string
		args     options.Args
		detector *recordingDetector
		check    func(*testing.T, error)
	}{
		{
			name:     "malformed config file",
			files:    map[string]string{"/proj/.clonescan.json": `not json`},
			detector: &recordingDetector{},
			check: func(t *testing.T, err error) {
				var parseErr *options.ConfigParseError
				assert.True(t, errors.As(err, &parseErr))
			},
		},
		{
			name:     "malformed formats-exts",
			args:     options.Args{FormatsExts: ptr("broken")},
			detector: &recordingDetector{},
			check: func(t *testing.T, err error) {
				var mappingErr *options.InvalidFormatMappingError
				assert.True(t, errors.As(err, &mappingErr))
			},
		},
		{
			name:     "detector failure",
			detector: &recordingDetector{err: errors.New("boom")},
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "detection failed: boom")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _, _ := newTestApp(t, tt.files, tt.detector)

			err := a.Run(context.Background(), tt.args)
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestRunWarnsOnUnknownMode(t *testing.T) {
	a, _, log := newTestApp(t, nil, &recordingDetector{})

	require.NoError(t, a.Run(context.Background(), options.Args{Mode: ptr("fuzzy")}))
	assert.Contains(t, log.logs, "WARN: Unknown mode, passing it through to the detector")
}

func TestRunRecoversFromPanic(t *testing.T) {
	panicking := DetectorFunc(func(ctx context.Context, opts options.Options) error {
		panic("detector exploded")
	})
	a, _, log := newTestApp(t, nil, nil)
	a.detector = panicking

	err := a.Run(context.Background(), options.Args{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "detector exploded")
	assert.Contains(t, log.logs, "ERROR: Recovered from panic")
}

func TestPrintCatalogFormats(t *testing.T) {
	a, out, _ := newTestApp(t, nil, &recordingDetector{})

	require.NoError(t, a.PrintCatalog(output.FormatJSON, true, nil))
	assert.Contains(t, out.String(), `"format": "go"`)
	assert.Contains(t, out.String(), `"statistics"`)

	out.Reset()
	err := a.PrintCatalog("xml", false, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestLogDetector(t *testing.T) {
	log := &mockLogger{}
	d := NewLogDetector(log)

	require.NoError(t, d.Detect(context.Background(), options.Options{Path: "/proj"}))
	assert.Contains(t, log.logs, "INFO: Options handed to detector")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, d.Detect(ctx, options.Options{}), context.Canceled)
}

func TestColorsDisabledForBuffers(t *testing.T) {
	a, _, _ := newTestApp(t, nil, &recordingDetector{})
	assert.False(t, a.colorsEnabled())

	a.out = nil
	a.config.NoColor = true
	assert.False(t, a.colorsEnabled())
}

func ptr[T any](v T) *T {
	return &v
}
