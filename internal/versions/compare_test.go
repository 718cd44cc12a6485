package versions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNewer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		candidate string
		current   string
		expected  bool
	}{
		{name: "newer minor", candidate: "1.3.0", current: "1.2.9", expected: true},
		{name: "newer patch with v prefix", candidate: "v0.4.2", current: "v0.4.1", expected: true},
		{name: "equal", candidate: "1.0.0", current: "1.0.0", expected: false},
		{name: "older", candidate: "0.9.0", current: "1.0.0", expected: false},
		{name: "release after prerelease", candidate: "1.0.0", current: "1.0.0-rc.1", expected: true},
		{name: "dev candidate", candidate: "dev", current: "1.0.0", expected: false},
		{name: "dev current", candidate: "1.0.0", current: "dev", expected: false},
		{name: "empty candidate", candidate: "", current: "1.0.0", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, IsNewer(tt.candidate, tt.current))
		})
	}
}
