// Package subprocess provides the process channel to the TFS annotate engine.
//
// The Channel spawns the engine as a child process with no arguments and
// exposes its standard input as a writer and its standard output as a line
// reader. Standard error is drained in the background and kept for error
// reporting. Close always attempts to release all three streams.
package subprocess
