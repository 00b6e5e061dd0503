// Package session drives one blame session against the TFS annotate engine.
//
// A Driver owns one process channel for its whole lifetime. It sends the
// files one at a time, strictly alternating requests and responses, hands
// every decoded result to the output, and finally closes the engine's input
// and checks its exit status. The channel is released on every exit path.
//
// Drivers are single-use: a failed session must be discarded and the batch
// restarted with a fresh driver and engine process.
package session
