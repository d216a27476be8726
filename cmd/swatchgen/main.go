// swatchgen - striped colour swatch renderer
//
// swatchgen renders a 256x32 PNG swatch for each built-in theme and writes
// it to <theme>.png.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/jmylchreest/swatchgen/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
