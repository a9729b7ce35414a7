// Command psolve runs the psolving exercises from the command line.
package main

import (
	"os"

	"github.com/ledgerwatch/log/v3"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Root().SetHandler(log.StreamHandler(os.Stderr, log.LogfmtFormat()))
		log.Error("psolve failed", "err", err)
		os.Exit(1)
	}
}
