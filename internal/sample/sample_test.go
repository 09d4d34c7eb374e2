package sample

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranscript(t *testing.T) {
	lines := strings.Split(strings.TrimRight(Transcript, "\n"), "\n")

	assert.Len(t, lines, 23)
	assert.Equal(t, "$ cd /", lines[0])
	assert.Equal(t, "7214296 k", lines[22])
}
