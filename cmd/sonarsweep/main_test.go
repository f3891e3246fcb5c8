package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AntonioJCosta/sonarsweep/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name          string
		content       *string // nil means the input file is absent
		args          []string
		wantCode      int
		wantStdout    string
		wantStderrHas []string
	}{
		{name: "empty file", content: ptr(""), wantStdout: "0\n"},
		{name: "single line", content: ptr("5\n"), wantStdout: "0\n"},
		{name: "increasing", content: ptr("1\n2\n3\n"), wantStdout: "2\n"},
		{name: "decreasing", content: ptr("3\n2\n1\n"), wantStdout: "0\n"},
		{name: "ties", content: ptr("1\n1\n1\n"), wantStdout: "0\n"},
		{
			name:       "sonar sweep sample",
			content:    ptr("199\n200\n208\n210\n200\n207\n240\n269\n260\n263\n"),
			wantStdout: "7\n",
		},
		{
			name:       "reading padded past the default scanner limit",
			content:    ptr("1\n" + strings.Repeat(" ", 70000) + "5\n"),
			wantStdout: "1\n",
		},
		{
			name:       "digit groups and values beyond int64",
			content:    ptr("1_000\n99999999999999999999\n-5\n"),
			wantStdout: "1\n",
		},
		{
			name:          "non-numeric line",
			content:       ptr("1\n2\nabc\n4\n"),
			wantCode:      1,
			wantStderrHas: []string{"Error:", "line 3", `"abc"`},
		},
		{
			name:          "missing file",
			content:       nil,
			wantCode:      1,
			wantStderrHas: []string{"Error:", "001.input.txt", "one integer per line"},
		},
		{
			name:          "unexpected argument",
			content:       ptr("1\n"),
			args:          []string{"extra"},
			wantCode:      1,
			wantStderrHas: []string{"unknown command"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), config.DefaultInputPath)
			if tt.content != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tt.content), 0600))
			}
			var stdout, stderr bytes.Buffer

			code := run(config.Default(config.WithInputPath(path)), tt.args, &stdout, &stderr)

			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantStdout, stdout.String())
			for _, s := range tt.wantStderrHas {
				assert.Contains(t, stderr.String(), s)
			}
			if tt.wantCode == 0 {
				assert.Empty(t, stderr.String())
			}
		})
	}
}

func TestRun_BadLogLevel(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run(config.Default(config.WithLogLevel("loud")), nil, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "Error initializing logger")
}

func TestRun_DebugTraceGoesToStderr(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.DefaultInputPath)
	require.NoError(t, os.WriteFile(path, []byte("1\n2\n"), 0600))
	var stdout, stderr bytes.Buffer

	code := run(config.Default(config.WithInputPath(path), config.WithLogLevel("debug")), nil, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Equal(t, "1\n", stdout.String())
	assert.Contains(t, stderr.String(), `"msg":"reading"`)
	assert.Contains(t, stderr.String(), `"app":"sonarsweep"`)
}

func ptr(s string) *string { return &s }

func TestRun_FailureRecordedAtDebugLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.DefaultInputPath)
	require.NoError(t, os.WriteFile(path, []byte("1\nabc\n"), 0600))

	t.Run("default level shows only the diagnostic", func(t *testing.T) {
		var stdout, stderr bytes.Buffer

		code := run(config.Default(config.WithInputPath(path)), nil, &stdout, &stderr)

		assert.Equal(t, 1, code)
		assert.NotContains(t, stderr.String(), `"msg":"run failed"`)
	})

	t.Run("debug level adds a classified record", func(t *testing.T) {
		var stdout, stderr bytes.Buffer

		code := run(config.Default(config.WithInputPath(path), config.WithLogLevel("debug")), nil, &stdout, &stderr)

		assert.Equal(t, 1, code)
		assert.Empty(t, stdout.String())
		assert.Contains(t, stderr.String(), `"level":"debug"`)
		assert.Contains(t, stderr.String(), `"msg":"run failed"`)
		assert.Contains(t, stderr.String(), `"kind":"parse"`)
	})
}
