package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/casedesk/internal/cli"
	"github.com/rshade/casedesk/pkg/version"
)

func TestMainComponents(t *testing.T) {
	t.Run("version available", func(t *testing.T) {
		assert.NotEmpty(t, version.GetVersion())
	})

	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version.GetVersion())
		if assert.NotNil(t, root) {
			assert.NotEmpty(t, root.Use)
		}
	})
}

func TestExtractExitCode(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantExitCode int
	}{
		{
			name:         "ExitError with exit code 2",
			err:          &cli.ExitError{ExitCode: 2, Reason: "invalid case"},
			wantExitCode: 2,
		},
		{
			name:         "wrapped ExitError",
			err:          errors.Join(errors.New("outer"), &cli.ExitError{ExitCode: 3, Reason: "wrapped"}),
			wantExitCode: 3,
		},
		{
			name:         "generic error",
			err:          errors.New("generic error"),
			wantExitCode: 1,
		},
		{
			name:         "nil error",
			err:          nil,
			wantExitCode: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantExitCode, extractExitCode(tt.err))
		})
	}
}
