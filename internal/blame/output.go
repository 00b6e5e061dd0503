package blame

import "context"

// Result is the ordered annotation of one file.
type Result struct {
	Path      string `json:"path"`
	SessionID string `json:"session_id,omitempty"`
	Lines     []Line `json:"lines"`
}

// Output receives the result of every successfully annotated file, in the
// order the files were submitted within a session.
//
// Implementations used with concurrent sessions must be safe for concurrent use.
type Output interface {
	BlameResult(ctx context.Context, file InputFile, result *Result) error
}

// OutputFunc adapts a function to the Output interface.
type OutputFunc func(ctx context.Context, file InputFile, result *Result) error

// BlameResult implements Output.
func (f OutputFunc) BlameResult(ctx context.Context, file InputFile, result *Result) error {
	return f(ctx, file, result)
}
