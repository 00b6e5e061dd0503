package tfsblame

import (
	"github.com/wagiedev/tfsblame-go/internal/blame"
	"github.com/wagiedev/tfsblame-go/internal/config"
)

// Line is the attribution of one line of a file. Date is the zero time when
// the engine's date could not be parsed.
type Line = blame.Line

// InputFile is a file submitted for annotation.
type InputFile = blame.InputFile

// File is the default InputFile implementation.
type File = blame.File

// Result is the ordered annotation of one file.
type Result = blame.Result

// Output receives the result of every annotated file.
type Output = blame.Output

// OutputFunc adapts a function to the Output interface.
type OutputFunc = blame.OutputFunc

// Channel is the line channel to the annotate engine.
// Implement this to reach the engine through something other than a local
// child process, or to test code built on this package.
type Channel = config.Channel

// Options configures a blame session.
type Options = config.Options
