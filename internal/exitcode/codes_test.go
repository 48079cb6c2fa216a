package exitcode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CodexForgeBR/pidext/internal/exitcode"
)

func TestExitCodeNames(t *testing.T) {
	tests := []struct {
		code         int
		expected     int
		expectedName string
	}{
		{exitcode.Success, 0, "Success"},
		{exitcode.Error, 1, "Error"},
		{exitcode.UnknownCode, 2, "UnknownCode"},
		{exitcode.UnknownIdentifier, 3, "UnknownIdentifier"},
	}

	for _, tt := range tests {
		t.Run(tt.expectedName, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.code)
			assert.Equal(t, tt.expectedName, exitcode.Name(tt.code))
		})
	}
}

func TestExitCodeNameUnknown(t *testing.T) {
	assert.Equal(t, "unknown", exitcode.Name(99))
	assert.Equal(t, "unknown", exitcode.Name(-1))
	assert.Equal(t, "unknown", exitcode.Name(4))
}
