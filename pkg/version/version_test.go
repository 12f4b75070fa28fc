package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	SynthesizerVersion, GitCommit = "0.3.0", "abc123"
	defer func() { SynthesizerVersion, GitCommit = "", "" }()

	assert.Equal(t, "Synthesizer Version:    0.3.0\n Git commit: abc123\n", String())
}
