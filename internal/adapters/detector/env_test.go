package detector_test

import (
	"testing"

	"github.com/reqwell/reqcheck/internal/adapters/detector"
	"github.com/stretchr/testify/assert"
)

func TestResolveMode(t *testing.T) {
	tests := []struct {
		flag string
		want detector.OutputMode
	}{
		{flag: "json", want: detector.ModeJSON},
		{flag: "text", want: detector.ModeText},
		{flag: "", want: detector.ModeText},
		{flag: "auto", want: detector.ModeText},
		{flag: "nonsense", want: detector.ModeText},
	}

	for _, tt := range tests {
		t.Run("flag "+tt.flag, func(t *testing.T) {
			assert.Equal(t, tt.want, detector.ResolveMode(tt.flag))
		})
	}
}

func TestIsInteractive_CI(t *testing.T) {
	// Under CI the watch view must never engage, TTY or not.
	t.Setenv("CI", "true")
	assert.False(t, detector.IsInteractive())
}
