package dirstat

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/idelchi/nospace/internal/sample"
	"github.com/idelchi/nospace/internal/transcript"
	"github.com/idelchi/nospace/internal/tree"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// Options configures transcript analysis.
type Options struct {
	// Path is the transcript file to analyze.
	Path string
	// Sample indicates whether to analyze the embedded sample instead of Path.
	Sample bool
	// TopN is the number of largest directories to track.
	TopN int
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
}

// progressReporter throttles progress callbacks to one per interval.
type progressReporter struct {
	hook     func(lines, bytes int64)
	interval time.Duration
	last     time.Time
	root     *tree.Directory
}

// report invokes the hook if the interval has elapsed since the last call.
func (r *progressReporter) report(lines int) {
	if r.hook == nil {
		return
	}

	now := time.Now()
	if now.Sub(r.last) < r.interval {
		return
	}

	r.last = now
	r.hook(int64(lines), r.root.Size())
}

// countLines counts lines the way a line reader does: a final line without
// a trailing newline still counts.
func countLines(data []byte) int {
	n := bytes.Count(data, []byte{'\n'})
	if len(data) > 0 && data[len(data)-1] != '\n' {
		n++
	}

	return n
}

// Run reads the transcript selected by opt, rebuilds the directory tree and
// returns the aggregated statistics.
//
// Trace events for every processed line are written to log. Progress updates
// are sent to progressHook, if provided, while parsing.
func Run(ctx context.Context, opt Options, log *zap.Logger, progressHook func(int64, int64)) (*Stats, error) {
	if log == nil {
		log = zap.NewNop()
	}

	source := opt.Path

	var (
		data []byte
		err  error
	)

	if opt.Sample {
		source = sample.Name
		data, err = io.ReadAll(sample.Reader())
	} else {
		data, err = os.ReadFile(opt.Path)
	}

	if err != nil {
		return nil, fmt.Errorf("reading transcript %q: %w", source, err)
	}

	lineCount := countLines(data)
	log.Info(fmt.Sprintf("%d total lines in input file %s", lineCount, source))

	start := time.Now()

	interval := opt.ProgressInterval
	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	root := tree.NewRoot()
	progress := &progressReporter{hook: progressHook, interval: interval, root: root, last: start}

	parser := transcript.NewParser(root,
		transcript.WithLogger(log),
		transcript.WithLineHook(progress.report),
	)

	if _, err := parser.Parse(ctx, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", source, err)
	}

	log.Debug("transcript replayed", zap.Stringer("cwd", parser.Cwd()))

	stats, err := Analyze(root, opt.TopN)
	if err != nil {
		return nil, err
	}

	stats.Source = source
	stats.LineCount = lineCount
	stats.Elapsed = time.Since(start)

	return stats, nil
}
