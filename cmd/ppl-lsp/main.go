// Command ppl-lsp is a language server for PPL sources over stdio.
package main

import (
	"fmt"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

func main() {
	// stdout carries the protocol, the log goes to stderr or a file
	verbosity := 0
	var logPath *string
	for i := 1; i < len(os.Args); i++ {
		switch os.Args[i] {
		case "-v":
			verbosity++
		case "--log":
			if i+1 < len(os.Args) {
				i++
				logPath = &os.Args[i]
			}
		}
	}
	commonlog.Configure(verbosity, logPath)

	if err := NewServer().Run(); err != nil {
		fmt.Fprintf(os.Stderr, "ppl-lsp: %s\n", err)
		os.Exit(1)
	}
}
