package cli

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kevindugan/dependencyTree/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name       string
		args       []string
		want       *app.Config
		wantExit   bool
		wantCode   int
		wantOutput string
	}{
		{
			name: "positional source with defaults",
			args: []string{"build/CMakeCache.txt"},
			want: &app.Config{
				SourcePath: "build/CMakeCache.txt",
				Format:     "text",
				LogFormat:  "text",
				LogLevel:   "warn",
			},
		},
		{
			name: "long flag wins over shorthand and positional",
			args: []string{"-source", "a.hcl", "-s", "b.hcl", "c.hcl"},
			want: &app.Config{
				SourcePath: "a.hcl",
				Format:     "text",
				LogFormat:  "text",
				LogLevel:   "warn",
			},
		},
		{
			name: "every option",
			args: []string{
				"-s", "trees",
				"-format", "JSON",
				"-target", "app",
				"-roots-of", "zlib",
				"-strict",
				"-publish-url", "http://localhost:3000",
				"-publish-namespace", "/builds",
				"-log-format", "json",
				"-log-level", "Debug",
			},
			want: &app.Config{
				SourcePath:       "trees",
				Format:           "json",
				Target:           "app",
				RootsOf:          "zlib",
				Strict:           true,
				PublishURL:       "http://localhost:3000",
				PublishNamespace: "/builds",
				LogFormat:        "json",
				LogLevel:         "debug",
			},
		},
		{
			name:       "help",
			args:       []string{"-h"},
			wantExit:   true,
			wantOutput: "Usage:",
		},
		{
			name:       "no source prints usage",
			args:       []string{},
			wantExit:   true,
			wantOutput: "deptree [options] [SOURCE]",
		},
		{name: "unknown flag", args: []string{"-nope"}, wantCode: 2},
		{name: "bad format", args: []string{"-format", "xml", "x"}, wantCode: 2},
		{name: "bad log format", args: []string{"-log-format", "xml", "x"}, wantCode: 2},
		{name: "bad log level", args: []string{"-log-level", "trace", "x"}, wantCode: 2},
		{name: "extra positional", args: []string{"x", "y"}, wantCode: 2},
		{name: "namespace without url", args: []string{"-publish-namespace", "/b", "x"}, wantCode: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			got, exit, err := Parse(tc.args, &out)

			if tc.wantCode != 0 {
				var exitErr *ExitError
				require.ErrorAs(t, err, &exitErr)
				assert.Equal(t, tc.wantCode, exitErr.Code)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantExit, exit)
			if tc.wantOutput != "" {
				assert.Contains(t, out.String(), tc.wantOutput)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
