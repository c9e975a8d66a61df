package commands

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sonemaro/clonescan/cmd/clonescan/app"
	"github.com/sonemaro/clonescan/pkg/logger"
	"github.com/sonemaro/clonescan/pkg/options"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captured struct {
	opts  options.Options
	calls int
}

func executeRoot(t *testing.T, files map[string]string, argv ...string) (string, *captured, error) {
	t.Helper()

	for _, env := range []string{"CLONESCAN_VERBOSE", "CLONESCAN_LOG_FORMAT", "CLONESCAN_NO_COLOR"} {
		t.Setenv(env, "")
	}

	fs := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}

	got := &captured{}
	detector := app.DetectorFunc(func(ctx context.Context, opts options.Options) error {
		got.opts = opts
		got.calls++
		return nil
	})

	cmd := newRootCommand(
		app.WithFs(fs),
		app.WithLogger(logger.Nop()),
		app.WithDetector(detector),
		app.WithResolverConfig(options.ResolverConfig{
			WorkDir: "/proj",
			Now:     func() time.Time { return time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC) },
			Formats: []string{"go", "javascript", "python"},
		}),
	)

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	if argv == nil {
		argv = []string{}
	}
	cmd.SetArgs(argv)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), got, err
}

func TestRootCommand(t *testing.T) {
	tests := []struct {
		name   string
		files  map[string]string
		argv   []string
		verify func(*testing.T, options.Options)
	}{
		{
			name: "no flags",
			argv: []string{},
			verify: func(t *testing.T, o options.Options) {
				assert.Equal(t, options.Defaults(time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC), "/proj", []string{"go", "javascript", "python"}), o)
			},
		},
		{
			name:  "unchanged flags do not shadow config file",
			files: map[string]string{"/proj/.clonescan.json": `{"minLines": 10, "cache": false, "mode": "weak"}`},
			argv:  []string{"-s"},
			verify: func(t *testing.T, o options.Options) {
				assert.Equal(t, 10, o.MinLines)
				assert.False(t, o.Cache)
				assert.Equal(t, options.ModeWeak, o.Mode)
				assert.Equal(t, []string{"silent", "time"}, o.Reporters)
			},
		},
		{
			name:  "flags win over config file",
			files: map[string]string{"/proj/.clonescan.json": `{"minLines": 10, "cache": false}`},
			argv:  []string{"-l", "3", "--cache=true"},
			verify: func(t *testing.T, o options.Options) {
				assert.Equal(t, 3, o.MinLines)
				assert.True(t, o.Cache)
			},
		},
		{
			name: "list flags and positional path",
			argv: []string{"-r", "json,html", "-f", "go", "-i", "**/testdata/**", "src"},
			verify: func(t *testing.T, o options.Options) {
				assert.Equal(t, []string{"json", "html", "time"}, o.Reporters)
				assert.Equal(t, []string{"go"}, o.Format)
				assert.Equal(t, []string{"**/testdata/**"}, o.Ignore)
				assert.Equal(t, "/proj/src", o.Path)
			},
		},
		{
			name:  "explicit config file",
			files: map[string]string{"/etc/clonescan.json": `{"blame": true, "threshold": 3}`},
			argv:  []string{"--config", "/etc/clonescan.json"},
			verify: func(t *testing.T, o options.Options) {
				assert.Equal(t, "/etc/clonescan.json", o.ConfigFile)
				assert.Equal(t, []string{"console", "threshold", "time"}, o.Reporters)
				assert.Contains(t, o.Listeners, "blamer")
			},
		},
		{
			name: "remaining scalar flags",
			argv: []string{
				"--execution-id", "ci-7", "-o", "out", "--xsl-href", "r.xsl", "-m", "strict",
				"-a", "-g", "-t", "1.5", "--formats-exts", "go:go,gox",
			},
			verify: func(t *testing.T, o options.Options) {
				assert.Equal(t, "ci-7", o.ExecutionID)
				assert.Equal(t, "out", o.Output)
				assert.Equal(t, "r.xsl", o.XSLHref)
				assert.Equal(t, options.ModeStrict, o.Mode)
				assert.True(t, o.Absolute)
				assert.True(t, o.Gitignore)
				assert.Equal(t, 1.5, o.Threshold)
				assert.Equal(t, map[string][]string{"go": {"go", "gox"}}, o.FormatsExts)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, got, err := executeRoot(t, tt.files, tt.argv...)
			require.NoError(t, err)
			require.Equal(t, 1, got.calls)
			tt.verify(t, got.opts)
		})
	}
}

func TestRootCommandDebugAndList(t *testing.T) {
	out, got, err := executeRoot(t, nil, "-d", "-b")
	require.NoError(t, err)
	assert.Zero(t, got.calls)
	assert.Contains(t, out, "options/\n")
	assert.Contains(t, out, "state, hashes, statistic, sources, blamer")

	out, got, err = executeRoot(t, nil, "--list")
	require.NoError(t, err)
	assert.Zero(t, got.calls)
	assert.Contains(t, out, "formats/\n")
	assert.Contains(t, out, "python:")
}

func TestRootCommandErrors(t *testing.T) {
	t.Run("bad formats-exts", func(t *testing.T) {
		_, got, err := executeRoot(t, nil, "--formats-exts", "nocolon")
		require.Error(t, err)
		assert.Zero(t, got.calls)

		var mappingErr *options.InvalidFormatMappingError
		assert.True(t, errors.As(err, &mappingErr))
	})

	t.Run("bad config file", func(t *testing.T) {
		_, _, err := executeRoot(t, map[string]string{"/proj/.clonescan.json": `{`}, "-s")
		require.Error(t, err)

		var parseErr *options.ConfigParseError
		assert.True(t, errors.As(err, &parseErr))
	})

	t.Run("too many paths", func(t *testing.T) {
		_, got, err := executeRoot(t, nil, "a", "b")
		require.Error(t, err)
		assert.Zero(t, got.calls)
	})

	t.Run("invalid runtime settings", func(t *testing.T) {
		t.Setenv("CLONESCAN_LOG_FORMAT", "xml")
		cmd := newRootCommand(app.WithLogger(logger.Nop()))
		cmd.SetArgs([]string{"version"})
		cmd.SetOut(&bytes.Buffer{})
		err := cmd.Execute()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load configuration")
	})
}

func TestSubcommands(t *testing.T) {
	tests := []struct {
		name    string
		argv    []string
		want    []string
		wantErr string
	}{
		{
			name: "version",
			argv: []string{"version"},
			want: []string{"clonescan dev"},
		},
		{
			name: "version full",
			argv: []string{"version", "--full"},
			want: []string{"Version Information:", "Go Build Information:"},
		},
		{
			name: "formats text",
			argv: []string{"formats"},
			want: []string{"formats/\n", "├── go:"},
		},
		{
			name: "formats json with stats",
			argv: []string{"formats", "-o", "json", "--stats"},
			want: []string{`"format": "go"`, `"totalFormats"`},
		},
		{
			name: "formats yaml",
			argv: []string{"formats", "-o", "yaml"},
			want: []string{"- format: go"},
		},
		{
			name:    "formats invalid output",
			argv:    []string{"formats", "-o", "xml"},
			wantErr: "invalid output format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, got, err := executeRoot(t, nil, tt.argv...)
			assert.Zero(t, got.calls)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, out, want)
			}
		})
	}
}
