package dirstat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/nospace/internal/sample"
	"github.com/idelchi/nospace/internal/transcript"
	"github.com/idelchi/nospace/internal/tree"
)

func sampleTree(t *testing.T) *tree.Directory {
	t.Helper()

	root := tree.NewRoot()
	_, err := transcript.NewParser(root).Parse(context.Background(), sample.Reader())
	require.NoError(t, err)

	return root
}

func TestQueries_Sample(t *testing.T) {
	root := sampleTree(t)

	assert.Equal(t, int64(48381165), root.Size())
	assert.Equal(t, int64(95437), SmallDirectoriesTotal(root, SmallDirectoryThreshold))
	assert.Equal(t, int64(8381165), SpaceNeeded(root, TotalDiskCapacity, UpdateSizeRequirement))

	dir, err := DirectoryToFree(root, TotalDiskCapacity, UpdateSizeRequirement)
	require.NoError(t, err)
	assert.Equal(t, "/d", dir.Path())
	assert.Equal(t, int64(24933642), dir.Size())
}

func TestQueries_Idempotent(t *testing.T) {
	root := sampleTree(t)

	first := SmallDirectoriesTotal(root, SmallDirectoryThreshold)
	firstDir, err := DirectoryToFree(root, TotalDiskCapacity, UpdateSizeRequirement)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		assert.Equal(t, first, SmallDirectoriesTotal(root, SmallDirectoryThreshold))

		dir, err := DirectoryToFree(root, TotalDiskCapacity, UpdateSizeRequirement)
		require.NoError(t, err)
		assert.Same(t, firstDir, dir)
	}

	assert.Equal(t, int64(48381165), root.Size())
}

func TestSmallDirectoriesTotal_ThresholdBoundary(t *testing.T) {
	root := tree.NewRoot()
	exact := tree.NewDirectory("exact")
	above := tree.NewDirectory("above")

	require.NoError(t, root.AddSubdirectory(exact))
	require.NoError(t, root.AddSubdirectory(above))

	exact.AddFile(tree.File{Name: "f", Size: SmallDirectoryThreshold})
	above.AddFile(tree.File{Name: "f", Size: SmallDirectoryThreshold + 1})

	assert.Equal(t, SmallDirectoryThreshold, SmallDirectoriesTotal(root, SmallDirectoryThreshold))
}

func TestSmallDirectoriesTotal_IncludesRoot(t *testing.T) {
	root := tree.NewRoot()
	sub := tree.NewDirectory("a")
	require.NoError(t, root.AddSubdirectory(sub))
	sub.AddFile(tree.File{Name: "f", Size: 10})

	assert.Equal(t, int64(20), SmallDirectoriesTotal(root, SmallDirectoryThreshold))
}

func TestDirectoryToFree_Minimal(t *testing.T) {
	root := sampleTree(t)
	needed := SpaceNeeded(root, TotalDiskCapacity, UpdateSizeRequirement)

	dir, err := DirectoryToFree(root, TotalDiskCapacity, UpdateSizeRequirement)
	require.NoError(t, err)
	require.GreaterOrEqual(t, dir.Size(), needed)

	require.NoError(t, tree.Walk(root, func(other *tree.Directory) error {
		if other.Size() >= needed {
			assert.LessOrEqual(t, dir.Size(), other.Size(), other.Path())
		}

		return nil
	}))
}

func TestDirectoryToFree_InclusiveBound(t *testing.T) {
	root := tree.NewRoot()
	a := tree.NewDirectory("a")
	require.NoError(t, root.AddSubdirectory(a))
	a.AddFile(tree.File{Name: "f", Size: 40})
	root.AddFile(tree.File{Name: "g", Size: 50})

	// capacity 100, used 90, free 10, need 50 - 10 = 40.
	dir, err := DirectoryToFree(root, 100, 50)
	require.NoError(t, err)
	assert.Same(t, a, dir)
}

func TestDirectoryToFree_NoCandidate(t *testing.T) {
	root := tree.NewRoot()
	root.AddFile(tree.File{Name: "f", Size: 5})

	_, err := DirectoryToFree(root, 10, 100)
	assert.ErrorIs(t, err, ErrNoCandidate)
}
