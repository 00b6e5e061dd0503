// Package protocol implements the line protocol spoken with the TFS annotate engine.
//
// For every file the driver sends one request line and reads one response:
//
//	request:   <absolute-path>\r\n
//	response:  <absolute-path>
//	           <line-count>
//	           <revision> <author> <MM/dd/yyyy>    (line-count times)
//
// A response line starting with "local" or "unknow" means the engine has no
// history for that line. Lines that do not have the three-field shape are
// skipped, and dates that cannot be parsed leave the record without a date.
//
// Example usage:
//
//	enc := protocol.NewEncoder(channel)
//	dec := protocol.NewDecoder(log, channel, time.Local)
//
//	if err := enc.Send(file.AbsolutePath()); err != nil {
//	    return err
//	}
//	lines, err := dec.Receive(file.AbsolutePath(), file.Lines())
package protocol
