// Package transcript rebuilds a directory tree from a shell session transcript.
//
// The transcript is a sequence of `$ cd <dir>` and `$ ls` commands, each `ls`
// followed by its listing (`dir <name>` or `<size> <name>`). Lines are processed
// strictly in order against a cursor that tracks the current directory.
package transcript
