// Command dispenser plays scripted sessions against a payment-gated
// dispenser or serves one over HTTP.
//
//	dispenser run                       # the classic tissue machine session
//	dispenser run --builtin two-units
//	dispenser run --steps insert,crank,inventory --inventory 3
//	dispenser run ./lobby.yaml
//	dispenser scenarios
//	dispenser serve --addr :8080
//
// The transcript goes to stdout and logs go to stderr.
package main

import (
	"context"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
