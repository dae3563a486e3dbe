// gridastar finds shortest paths on occupancy-grid map files.
//
// Usage:
//
//	gridastar find   [--config=<scenario>] [--map=<file>] [--start=r,c] [--target=r,c]
//	gridastar render [--config=<scenario>] [--out=<png>]
//	gridastar gen    --out=<file> [--rows=N] [--cols=N] [--seed=N]
//	gridastar batch  --config=<scenario>
//	gridastar serve  [--port=N]
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
