// Package errors defines error types for the TFS blame driver.
//
// Fatal errors abort a session and are returned to the caller; recoverable
// errors (DateParseError, MalformedLineError) are only logged. All error types
// support unwrapping and can be checked using errors.Is, errors.As, and errors.AsType.
package errors
