package transcript

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/idelchi/nospace/internal/tree"
)

const (
	promptToken = "$"
	dirToken    = "dir"
	cdCommand   = "cd"
	lsCommand   = "ls"
	parentName  = ".."

	// maxLineSize bounds a single transcript line.
	maxLineSize = 1024 * 1024
)

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger that receives per-line trace events.
func WithLogger(log *zap.Logger) Option {
	return func(p *Parser) {
		if log != nil {
			p.log = log
		}
	}
}

// WithLineHook registers a callback invoked after every processed line with
// the running line count.
func WithLineHook(hook func(lines int)) Option {
	return func(p *Parser) {
		p.onLine = hook
	}
}

// Parser applies transcript lines to a tree.
// It holds the cursor explicitly; one Parser works on exactly one tree.
type Parser struct {
	root   *tree.Directory
	cwd    *tree.Directory
	log    *zap.Logger
	onLine func(lines int)
	lines  int
}

// NewParser returns a parser whose cursor starts at root.
func NewParser(root *tree.Directory, opts ...Option) *Parser {
	p := &Parser{
		root: root,
		cwd:  root,
		log:  zap.NewNop(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Cwd returns the directory the cursor currently points at.
func (p *Parser) Cwd() *tree.Directory {
	return p.cwd
}

// Parse reads r line by line and applies each line in order.
// It returns the number of lines read. Any failure aborts the parse;
// the tree is left as it was after the last successful line.
func (p *Parser) Parse(ctx context.Context, r io.Reader) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return p.lines, ctx.Err()
		default:
		}

		p.lines++

		if err := p.ParseLine(sc.Text()); err != nil {
			var lineErr *LineError
			if errors.As(err, &lineErr) {
				lineErr.Line = p.lines
			}

			return p.lines, err
		}

		if p.onLine != nil {
			p.onLine(p.lines)
		}
	}

	if err := sc.Err(); err != nil {
		return p.lines, fmt.Errorf("scanning transcript: %w", err)
	}

	return p.lines, nil
}

// ParseLine applies a single transcript line. Blank lines are ignored.
func (p *Parser) ParseLine(text string) error {
	line := strings.TrimSpace(text)
	if line == "" {
		return nil
	}

	tokens := strings.Split(line, " ")

	var err error

	switch tokens[0] {
	case promptToken:
		err = p.command(tokens[1:])
	case dirToken:
		err = p.directory(tokens[1:])
	default:
		err = p.file(tokens)
	}

	if err != nil {
		return &LineError{Text: line, Err: err}
	}

	return nil
}

func (p *Parser) command(args []string) error {
	if len(args) == 0 {
		return ErrMalformedLine
	}

	switch args[0] {
	case cdCommand:
		if len(args) < 2 {
			return ErrMalformedLine
		}

		return p.cd(strings.Join(args[1:], " "))
	case lsCommand:
		if len(args) != 1 {
			return ErrMalformedLine
		}

		p.log.Info("nothing to do for ls", zap.Stringer("cwd", p.cwd))

		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}
}

func (p *Parser) cd(name string) error {
	switch name {
	case tree.RootName:
		p.cwd = p.root
	case parentName:
		if p.cwd.IsRoot() {
			return ErrNoParent
		}

		p.cwd = p.cwd.Parent()
	default:
		sub, ok := p.cwd.Subdirectory(name)
		if !ok {
			return fmt.Errorf("%w: %q in %s", ErrUnknownDirectory, name, p.cwd.Path())
		}

		p.cwd = sub
	}

	p.log.Info("set cwd", zap.Stringer("cwd", p.cwd))

	return nil
}

// directory handles a `dir <name>` listing entry. Re-declaring a known
// subdirectory (e.g. `ls` run twice) leaves the existing one in place.
func (p *Parser) directory(args []string) error {
	if len(args) == 0 {
		return ErrMalformedLine
	}

	name := strings.Join(args, " ")

	if _, ok := p.cwd.Subdirectory(name); ok {
		p.log.Debug("subdirectory already known", zap.String("name", name), zap.Stringer("cwd", p.cwd))

		return nil
	}

	p.log.Info("found subdirectory", zap.String("name", name), zap.Stringer("cwd", p.cwd))

	return p.cwd.AddSubdirectory(tree.NewDirectory(name))
}

func (p *Parser) file(tokens []string) error {
	if len(tokens) < 2 {
		return ErrMalformedLine
	}

	size, err := strconv.ParseUint(tokens[0], 10, 63)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrMalformedSize, tokens[0])
	}

	f := tree.File{Name: strings.Join(tokens[1:], " "), Size: int64(size)} //nolint:gosec // Parsed with a 63-bit limit

	p.log.Info("found file",
		zap.String("name", f.Name),
		zap.Int64("size", f.Size),
		zap.Stringer("cwd", p.cwd),
	)

	p.cwd.AddFile(f)

	return nil
}
