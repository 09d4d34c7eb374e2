// Package sample provides an embedded example transcript.
package sample

import (
	_ "embed"
	"io"
	"strings"
)

// Name is the display name used in place of a file path for the embedded transcript.
const Name = "<sample>"

// Transcript contains the canonical 23-line example session.
//
//go:embed transcript.txt
var Transcript string

// Reader returns a fresh reader over Transcript.
func Reader() io.Reader {
	return strings.NewReader(Transcript)
}
