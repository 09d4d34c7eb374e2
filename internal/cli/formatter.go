package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/idelchi/nospace/internal/dirstat"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
	// TreeIndent is the indentation added per tree level.
	TreeIndent = 2
)

// PrintJSON outputs statistics in JSON format.
func PrintJSON(stats *dirstat.Stats, writer io.Writer) error {
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintYAML outputs statistics in YAML format.
func PrintYAML(stats *dirstat.Stats, writer io.Writer) error {
	enc := yaml.NewEncoder(writer)
	enc.SetIndent(TreeIndent)

	if err := enc.Encode(stats); err != nil {
		return fmt.Errorf("encoding YAML output: %w", err)
	}

	return enc.Close()
}

// PrintTree writes the tree indented by TreeIndent per level: each directory
// with its size, then its subdirectories, then its files. A depth of 0 prints
// the whole tree; otherwise directories deeper than depth are not expanded.
func PrintTree(node dirstat.Node, depth int, writer io.Writer) error {
	return printNode(node, 0, depth, writer)
}

func printNode(node dirstat.Node, level, depth int, writer io.Writer) error {
	indent := strings.Repeat(" ", level*TreeIndent)

	if _, err := fmt.Fprintf(writer, "%s- %s (dir, size=%d)\n", indent, node.Name, node.Size); err != nil {
		return err
	}

	if depth > 0 && level >= depth {
		return nil
	}

	for _, sub := range node.Dirs {
		if err := printNode(sub, level+1, depth, writer); err != nil {
			return err
		}
	}

	indent += strings.Repeat(" ", TreeIndent)

	for _, f := range node.Files {
		if _, err := fmt.Fprintf(writer, "%s- %s (file, size=%d)\n", indent, f.Name, f.Size); err != nil {
			return err
		}
	}

	return nil
}

// PrintTable outputs the tree followed by statistics in human-readable table format.
//
//nolint:forbidigo // This function prints output to the console.
func PrintTable(stats *dirstat.Stats, depth int, writer io.Writer) error {
	if err := PrintTree(stats.Tree, depth, writer); err != nil {
		return err
	}

	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	// Extension statistics
	fmt.Fprintln(w, "\nTop extensions:\t\t")

	extList := make([]string, 0, len(stats.ExtStats))
	for ext := range stats.ExtStats {
		extList = append(extList, ext)
	}

	sort.Slice(extList, func(i, j int) bool {
		a, b := stats.ExtStats[extList[i]], stats.ExtStats[extList[j]]
		if a.Size != b.Size {
			return a.Size < b.Size
		}

		return extList[i] < extList[j]
	})

	startIdx := 0
	if len(extList) > stats.TopN {
		startIdx = len(extList) - stats.TopN
	}

	displayList := extList[startIdx:]
	for i, ext := range displayList {
		extStat := stats.ExtStats[ext]
		if ext == "" {
			ext = "\"\""
		}

		fmt.Fprintf(w, "  %d) %s:\t%d files, %s (%.1f%%)\n",
			len(displayList)-i, ext, extStat.Count, humanize.IBytes(uint64(extStat.Size)), //nolint:gosec // Sizes are non-negative
			percent(extStat.Size, stats.TotalBytes))
	}

	// Top directories
	fmt.Fprintln(w, "\nTop directories:\t\t")

	for i, d := range stats.TopDirs {
		fmt.Fprintf(w, "  %d) '%s'\t%s (%.1f%%)\n",
			len(stats.TopDirs)-i, d.Path, humanize.IBytes(uint64(d.Size)), //nolint:gosec // Sizes are non-negative
			percent(d.Size, stats.TotalBytes))
	}

	// Stats summary
	fmt.Fprintln(w, "\nStats:\t\t")
	fmt.Fprintf(w, "Total directories:\t%d\n", stats.DirCount)
	fmt.Fprintf(w, "Total files:\t%d\n", stats.FileCount)
	fmt.Fprintf(w, "Total size of the entire tree:\t%d (%s)\n",
		stats.TotalBytes, humanize.IBytes(uint64(stats.TotalBytes))) //nolint:gosec // Sizes are non-negative
	fmt.Fprintf(w, "Total size of directories of at most %s:\t%d\n",
		humanize.Comma(dirstat.SmallDirectoryThreshold), stats.SmallDirsTotal)
	fmt.Fprintf(w, "Size of smallest directory to delete ('%s', frees %s needed):\t%d\n",
		stats.DirToFree.Path, humanize.Comma(stats.SpaceNeeded), stats.DirToFree.Size)

	fmt.Fprintf(w, "\nElapsed:\t%v\n", stats.Elapsed)

	return w.Flush()
}

func percent(part, total int64) float64 {
	if total <= 0 {
		return 0
	}

	return 100.0 * float64(part) / float64(total)
}
