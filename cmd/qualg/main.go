// SPDX-License-Identifier: MIT

// Command qualg generates photon-counting POVMs and inspects operator dumps.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "qualg:", err)
		os.Exit(1)
	}
}
