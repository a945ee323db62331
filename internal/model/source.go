// Package model defines the data structures shared by the migration engine.
package model

import "strings"

// Path represents a file system path.
type Path string

// WorkingFile is the in-memory text of one file being migrated.
// Lines never carry their terminators.
type WorkingFile struct {
	Path            Path
	Lines           []string
	TrailingNewline bool
}

// NewWorkingFile splits content into lines and remembers whether the last
// line was terminated.
func NewWorkingFile(path Path, content []byte) WorkingFile {
	text := string(content)
	if text == "" {
		return WorkingFile{Path: path, Lines: []string{}}
	}

	trailing := strings.HasSuffix(text, "\n")
	if trailing {
		text = strings.TrimSuffix(text, "\n")
	}

	return WorkingFile{
		Path:            path,
		Lines:           strings.Split(text, "\n"),
		TrailingNewline: trailing,
	}
}

// Bytes joins the lines back into file content.
func (f WorkingFile) Bytes() []byte {
	if len(f.Lines) == 0 {
		return []byte{}
	}

	text := strings.Join(f.Lines, "\n")
	if f.TrailingNewline {
		text += "\n"
	}

	return []byte(text)
}
