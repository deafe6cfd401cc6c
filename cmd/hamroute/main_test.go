package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		expectedExit int
		wantOut      string
		wantErr      string
	}{
		{
			name:         "Success with route file",
			args:         []string{"solve", "testdata/routes.txt"},
			expectedExit: 0,
			wantOut:      "shortest path is 605\nlongest path is 982\n",
		},
		{
			name:         "No Hamiltonian path",
			args:         []string{"solve", "testdata/split.txt"},
			expectedExit: 1,
			wantErr:      "no Hamiltonian path",
		},
		{
			name:         "Malformed input",
			args:         []string{"solve", "testdata/malformed.txt"},
			expectedExit: 1,
			wantErr:      "line 2",
		},
		{
			name:         "Error with missing config",
			args:         []string{"-c", "testdata/nonexistent.yaml", "solve", "testdata/routes.txt"},
			expectedExit: 1,
			wantErr:      "nonexistent.yaml",
		},
		{
			name:         "Unknown command",
			args:         []string{"frobnicate"},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			exitCode := run(tt.args, &stdout, &stderr)
			assert.Equal(t, tt.expectedExit, exitCode)
			if tt.wantOut != "" {
				assert.Equal(t, tt.wantOut, stdout.String())
			}
			if tt.wantErr != "" {
				assert.Contains(t, stderr.String(), tt.wantErr)
			}
		})
	}
}
