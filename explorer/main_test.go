package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"bikeshare/pipeline"
	"bikeshare/prompt"
)

func TestGetExitCode(t *testing.T) {
	tests := map[string]struct {
		err      error
		expected int
	}{
		"restart declined": {
			err:      nil,
			expected: exitCodeOK,
		},
		"exit command": {
			err:      prompt.ErrExitRequested,
			expected: exitCodeExitCommand,
		},
		"closed input": {
			err:      fmt.Errorf("%w: %w", prompt.ErrExitRequested, io.EOF),
			expected: exitCodeExitCommand,
		},
		"missing dataset": {
			err:      fmt.Errorf("error loading data: %w", pipeline.ErrDatasetNotFound),
			expected: exitCodeError,
		},
		"unexpected error": {
			err:      errors.New("broken terminal"),
			expected: exitCodeError,
		},
		"interrupted": {
			err:      context.Canceled,
			expected: exitCodeInterrupted,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.expected, getExitCode(test.err))
		})
	}
}

func TestGetExitCodeOfExplorerRun(t *testing.T) {
	_, err := runExplorer(t, "chicago\nexit\n", &fakePublisher{})
	assert.Equal(t, exitCodeExitCommand, getExitCode(err))

	_, err = runExplorer(t, "new york city\nall\nall\n", &fakePublisher{})
	assert.Equal(t, exitCodeError, getExitCode(err))

	_, err = runExplorer(t, "chicago\nall\nall\nno\n", &fakePublisher{})
	assert.Equal(t, exitCodeOK, getExitCode(err))
}
