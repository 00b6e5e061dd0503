package blame

import "path/filepath"

// InputFile is a file submitted for annotation.
type InputFile interface {
	// AbsolutePath is the path sent to the engine and expected back in its echo.
	AbsolutePath() string
	// RelativePath is used to identify the file in error messages.
	RelativePath() string
	// Lines is the total number of lines of the file, counting a trailing
	// empty line after a final newline.
	Lines() int
}

// File is the default InputFile implementation.
type File struct {
	Path      string
	RelPath   string
	LineCount int
}

// Compile-time verification that File implements InputFile.
var _ InputFile = (*File)(nil)

// AbsolutePath implements InputFile.
func (f *File) AbsolutePath() string { return f.Path }

// RelativePath implements InputFile. It falls back to the base name of the
// absolute path when no relative path was recorded.
func (f *File) RelativePath() string {
	if f.RelPath != "" {
		return f.RelPath
	}

	return filepath.Base(f.Path)
}

// Lines implements InputFile.
func (f *File) Lines() int { return f.LineCount }
