package tree

import "path"

// File is a named file entry with a size in bytes.
type File struct {
	// Name is the file name as listed in the transcript.
	Name string `json:"name" yaml:"name"`
	// Size is the size in bytes.
	Size int64 `json:"size" yaml:"size"`
}

// Ext returns the file extension, including the leading dot, or "" if there is none.
func (f File) Ext() string {
	return path.Ext(f.Name)
}
