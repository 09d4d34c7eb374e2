package tree

import (
	"fmt"
	"slices"
	"strings"
)

// RootName is the name of the root directory.
const RootName = "/"

// Directory is a node in the tree.
type Directory struct {
	name   string
	parent *Directory
	dirs   map[string]*Directory
	files  []File
}

// NewDirectory creates an empty, detached directory.
func NewDirectory(name string) *Directory {
	return &Directory{
		name: name,
		dirs: make(map[string]*Directory),
	}
}

// NewRoot creates an empty root directory named "/".
func NewRoot() *Directory {
	return NewDirectory(RootName)
}

// Name returns the directory name.
func (d *Directory) Name() string {
	return d.name
}

// Parent returns the owning directory, or nil for the root.
func (d *Directory) Parent() *Directory {
	return d.parent
}

// IsRoot reports whether the directory has no parent.
func (d *Directory) IsRoot() bool {
	return d.parent == nil
}

// AddSubdirectory attaches sub under d and points its parent link at d.
// It fails with ErrDuplicateName if d already holds a subdirectory of that name.
func (d *Directory) AddSubdirectory(sub *Directory) error {
	if _, ok := d.dirs[sub.name]; ok {
		return fmt.Errorf("%q already contains subdirectory %q: %w", d.Path(), sub.name, ErrDuplicateName)
	}

	d.dirs[sub.name] = sub
	sub.parent = d

	return nil
}

// AddFile appends f to the directory's file list. Duplicate names are allowed.
func (d *Directory) AddFile(f File) {
	d.files = append(d.files, f)
}

// Subdirectory looks up an immediate subdirectory by name.
func (d *Directory) Subdirectory(name string) (*Directory, bool) {
	sub, ok := d.dirs[name]

	return sub, ok
}

// Subdirectories returns the immediate subdirectories sorted by name.
func (d *Directory) Subdirectories() []*Directory {
	subs := make([]*Directory, 0, len(d.dirs))
	for _, sub := range d.dirs {
		subs = append(subs, sub)
	}

	slices.SortFunc(subs, func(a, b *Directory) int {
		return strings.Compare(a.name, b.name)
	})

	return subs
}

// Files returns the files in declaration order.
func (d *Directory) Files() []File {
	return slices.Clone(d.files)
}

// Size returns the total bytes of all files below d, recomputed on each call.
// The sum is not checked for int64 overflow.
func (d *Directory) Size() int64 {
	var size int64

	for _, f := range d.files {
		size += f.Size
	}

	for _, sub := range d.dirs {
		size += sub.Size()
	}

	return size
}

// Path returns the slash-separated path from the root, e.g. "/a/e".
func (d *Directory) Path() string {
	if d.IsRoot() {
		return d.name
	}

	var names []string
	for p := d; !p.IsRoot(); p = p.parent {
		names = append(names, p.name)
	}

	slices.Reverse(names)

	return RootName + strings.Join(names, "/")
}

// String implements fmt.Stringer.
func (d *Directory) String() string {
	return fmt.Sprintf("Directory(%q)", d.Path())
}
