package dirstat

import (
	"errors"
	"fmt"

	"github.com/idelchi/nospace/internal/tree"
)

const (
	// TotalDiskCapacity is the size of the device the transcript was taken on.
	TotalDiskCapacity int64 = 70_000_000
	// UpdateSizeRequirement is the free space the pending update needs.
	UpdateSizeRequirement int64 = 30_000_000
	// SmallDirectoryThreshold is the inclusive upper bound for a "small" directory.
	SmallDirectoryThreshold int64 = 100_000
)

// ErrNoCandidate is returned when no directory is large enough to free the needed space.
var ErrNoCandidate = errors.New("no directory is large enough")

// SmallDirectoriesTotal returns the sum of sizes of every directory (root
// included) whose size is at most threshold. Nested directories are counted
// once on their own and again within each qualifying ancestor.
func SmallDirectoriesTotal(root *tree.Directory, threshold int64) int64 {
	var total int64

	_ = tree.Walk(root, func(dir *tree.Directory) error {
		if size := dir.Size(); size <= threshold {
			total += size
		}

		return nil
	})

	return total
}

// SpaceNeeded returns how many bytes must be freed so that required bytes are
// available on a device of the given capacity. It is negative when enough space
// is already free.
func SpaceNeeded(root *tree.Directory, capacity, required int64) int64 {
	free := capacity - root.Size()

	return required - free
}

// DirectoryToFree returns the smallest directory (root included) whose size is
// at least the space needed. Ties are broken by path.
func DirectoryToFree(root *tree.Directory, capacity, required int64) (*tree.Directory, error) {
	needed := SpaceNeeded(root, capacity, required)

	var (
		best     *tree.Directory
		bestSize int64
	)

	_ = tree.Walk(root, func(dir *tree.Directory) error {
		size := dir.Size()
		if size < needed {
			return nil
		}

		if best == nil || size < bestSize || (size == bestSize && dir.Path() < best.Path()) {
			best, bestSize = dir, size
		}

		return nil
	})

	if best == nil {
		return nil, fmt.Errorf("need %d bytes, root holds %d: %w", needed, root.Size(), ErrNoCandidate)
	}

	return best, nil
}
