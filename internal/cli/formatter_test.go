package cli

import (
	"bytes"
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/nospace/internal/dirstat"
	"github.com/idelchi/nospace/internal/tree"
)

func sampleNode() dirstat.Node {
	return dirstat.Node{
		Name: "/",
		Size: 48381165,
		Dirs: []dirstat.Node{
			{
				Name: "a",
				Size: 94853,
				Dirs: []dirstat.Node{
					{Name: "e", Size: 584, Files: []tree.File{{Name: "i", Size: 584}}},
				},
				Files: []tree.File{{Name: "f", Size: 29116}},
			},
		},
		Files: []tree.File{{Name: "b.txt", Size: 14848514}},
	}
}

func TestPrintTree(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintTree(sampleNode(), 0, &buf))

	want := heredoc.Doc(`
		- / (dir, size=48381165)
		  - a (dir, size=94853)
		    - e (dir, size=584)
		      - i (file, size=584)
		    - f (file, size=29116)
		  - b.txt (file, size=14848514)
	`)
	assert.Equal(t, want, buf.String())
}

func TestPrintTree_Depth(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintTree(sampleNode(), 1, &buf))

	want := heredoc.Doc(`
		- / (dir, size=48381165)
		  - a (dir, size=94853)
		  - b.txt (file, size=14848514)
	`)
	assert.Equal(t, want, buf.String())
}

func TestPercent(t *testing.T) {
	assert.InDelta(t, 50.0, percent(1, 2), 0.001)
	assert.Zero(t, percent(1, 0))
}
