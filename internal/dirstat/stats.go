package dirstat

import (
	"sort"
	"time"

	"github.com/idelchi/nospace/internal/tree"
)

// DefaultTopN is the number of largest directories tracked when none is requested.
const DefaultTopN = 10

// ExtStat represents statistics for a file extension.
type ExtStat struct {
	// Count is the number of files with this extension.
	Count int `json:"count" yaml:"count"`
	// Size is the cumulative size in bytes.
	Size int64 `json:"size" yaml:"size"`
}

// DirStat represents a single directory path and size.
type DirStat struct {
	// Path is the directory path from the root.
	Path string `json:"path" yaml:"path"`
	// Size is the size in bytes.
	Size int64 `json:"size" yaml:"size"`
}

// Node is a read-only snapshot of a directory for encoding.
type Node struct {
	// Name is the directory name.
	Name string `json:"name" yaml:"name"`
	// Size is the total size in bytes.
	Size int64 `json:"size" yaml:"size"`
	// Dirs holds the subdirectories sorted by name.
	Dirs []Node `json:"dirs,omitempty" yaml:"dirs,omitempty"`
	// Files holds the files in declaration order.
	Files []tree.File `json:"files,omitempty" yaml:"files,omitempty"`
}

// Stats holds the results of analyzing a transcript.
type Stats struct {
	// Source is the transcript path, or the sample name.
	Source string `json:"source" yaml:"source"`
	// LineCount is the number of lines in the transcript.
	LineCount int `json:"line_count" yaml:"line_count"`
	// DirCount is the number of directories, root included.
	DirCount int64 `json:"dir_count" yaml:"dir_count"`
	// FileCount is the number of file entries.
	FileCount int64 `json:"file_count" yaml:"file_count"`
	// TotalBytes is the size of the whole tree.
	TotalBytes int64 `json:"total_bytes" yaml:"total_bytes"`
	// SmallDirsTotal is the sum of all directory sizes at or below SmallDirectoryThreshold.
	SmallDirsTotal int64 `json:"small_dirs_total" yaml:"small_dirs_total"`
	// FreeSpace is the unused capacity of the device.
	FreeSpace int64 `json:"free_space" yaml:"free_space"`
	// SpaceNeeded is the number of bytes that must be freed for the update.
	SpaceNeeded int64 `json:"space_needed" yaml:"space_needed"`
	// DirToFree is the smallest directory that frees enough space.
	DirToFree DirStat `json:"dir_to_free" yaml:"dir_to_free"`
	// ExtStats maps file extensions to their statistics.
	ExtStats map[string]ExtStat `json:"ext_stats" yaml:"ext_stats"`
	// TopDirs contains the N largest directories, smallest first.
	TopDirs []DirStat `json:"top_dirs" yaml:"top_dirs"`
	// Tree is a snapshot of the rebuilt tree.
	Tree Node `json:"tree" yaml:"tree"`
	// Elapsed is the total time taken for analysis.
	Elapsed time.Duration `json:"elapsed" yaml:"elapsed"`
	// TopN is the number of top results tracked.
	TopN int `json:"top_n" yaml:"top_n"`
}

// collector aggregates per-directory and per-extension statistics during a walk.
type collector struct {
	topN      int
	extStats  map[string]ExtStat
	dirs      []DirStat
	fileCount int64
}

// newCollector creates a collector tracking the topN largest directories.
func newCollector(topN int) *collector {
	return &collector{
		topN:     topN,
		extStats: make(map[string]ExtStat),
	}
}

// add records a directory and its own files.
func (c *collector) add(dir *tree.Directory) {
	c.dirs = append(c.dirs, DirStat{Path: dir.Path(), Size: dir.Size()})

	for _, f := range dir.Files() {
		c.fileCount++

		stat := c.extStats[f.Ext()]
		stat.Count++
		stat.Size += f.Size
		c.extStats[f.Ext()] = stat
	}
}

// finalize copies the collected data into stats.
// Directories are sorted by size (largest first), trimmed to top N and then
// reversed so the largest is displayed last.
func (c *collector) finalize(stats *Stats) {
	top := make([]DirStat, len(c.dirs))
	copy(top, c.dirs)

	sort.Slice(top, func(i, j int) bool {
		if top[i].Size != top[j].Size {
			return top[i].Size > top[j].Size
		}

		return top[i].Path < top[j].Path
	})

	if len(top) > c.topN {
		top = top[:c.topN]
	}

	for i, j := 0, len(top)-1; i < j; i, j = i+1, j-1 {
		top[i], top[j] = top[j], top[i]
	}

	stats.DirCount = int64(len(c.dirs))
	stats.FileCount = c.fileCount
	stats.ExtStats = c.extStats
	stats.TopDirs = top
	stats.TopN = c.topN
}

// snapshot builds an encodable copy of the tree rooted at dir.
func snapshot(dir *tree.Directory) Node {
	node := Node{
		Name:  dir.Name(),
		Size:  dir.Size(),
		Files: dir.Files(),
	}

	for _, sub := range dir.Subdirectories() {
		node.Dirs = append(node.Dirs, snapshot(sub))
	}

	return node
}

// Analyze aggregates a finished tree. It does not modify the tree and can be
// called any number of times with identical results.
func Analyze(root *tree.Directory, topN int) (*Stats, error) {
	if topN <= 0 {
		topN = DefaultTopN
	}

	toFree, err := DirectoryToFree(root, TotalDiskCapacity, UpdateSizeRequirement)
	if err != nil {
		return nil, err
	}

	c := newCollector(topN)

	_ = tree.Walk(root, func(dir *tree.Directory) error {
		c.add(dir)

		return nil
	})

	total := root.Size()

	stats := &Stats{
		TotalBytes:     total,
		SmallDirsTotal: SmallDirectoriesTotal(root, SmallDirectoryThreshold),
		FreeSpace:      TotalDiskCapacity - total,
		SpaceNeeded:    SpaceNeeded(root, TotalDiskCapacity, UpdateSizeRequirement),
		DirToFree:      DirStat{Path: toFree.Path(), Size: toFree.Size()},
		Tree:           snapshot(root),
	}

	c.finalize(stats)

	return stats, nil
}
