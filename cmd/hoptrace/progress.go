// progress.go - a raw-mode terminal progress reporter for batch renders,
// grounded on terminal_host.go's raw-mode stdin handling: put the terminal
// into raw mode and non-blocking reads so a keypress can cancel the render
// early, then poll the renderer's pass state on a ticker instead of reading
// stdin into an MMIO device.
package main

import (
	"context"
	"fmt"
	"os"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/hoptracer/hoptracer/internal/render"
)

// reportProgress prints a periodically-updated status line until ctx is
// canceled. If stdin is a terminal, pressing 'q' cancels the render early.
// Meant to run as a background goroutine; it never panics or blocks the
// caller past ctx cancellation.
func reportProgress(ctx context.Context, cancel context.CancelFunc, r *render.Renderer) {
	fd := int(os.Stdin.Fd())
	raw := term.IsTerminal(fd)
	if raw {
		oldState, err := term.MakeRaw(fd)
		if err != nil {
			raw = false
		} else {
			defer term.Restore(fd, oldState)
			if err := syscall.SetNonblock(fd, true); err != nil {
				raw = false
			}
		}
	}

	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()

	buf := make([]byte, 1)
	for {
		select {
		case <-ctx.Done():
			if raw {
				fmt.Println()
			}
			return
		case <-ticker.C:
			fmt.Printf("\rrendering... (done=%v)", r.Done())
			if raw {
				if n, _ := syscall.Read(fd, buf); n > 0 && (buf[0] == 'q' || buf[0] == 'Q') {
					cancel()
					return
				}
			}
		}
	}
}
