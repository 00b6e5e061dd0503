// Command tfsblame prints TFS blame information for a list of files.
//
//	tfsblame --exe /opt/tfs/SonarTfsAnnotate.exe src/a.cs src/b.cs
//
// Every annotated file is written to stdout as one JSON object, or stored in
// Redis when --redis is given.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
