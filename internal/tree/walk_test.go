package tree

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalk_VisitsEveryDirectoryOnce(t *testing.T) {
	root := buildTree(t)
	seen := map[string]int{}

	require.NoError(t, Walk(root, func(dir *Directory) error {
		seen[dir.Path()]++

		return nil
	}))

	assert.Equal(t, map[string]int{"/": 1, "/a": 1, "/a/e": 1, "/d": 1}, seen)
}

func TestWalk_StopsOnError(t *testing.T) {
	root := buildTree(t)
	stop := errors.New("stop")
	calls := 0

	err := Walk(root, func(*Directory) error {
		calls++

		return stop
	})

	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}
