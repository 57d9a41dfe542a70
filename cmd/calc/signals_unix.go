//go:build unix

package main

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"

	"github.com/zephyrtronium/calc"
)

// notifyInterrupt sets flag whenever the process receives SIGINT or SIGTERM.
// A second SIGTERM while the first is pending exits.
func notifyInterrupt(flag *calc.Flag) (stop func()) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, unix.SIGINT, unix.SIGTERM)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case sig := <-c:
				if sig == unix.SIGTERM && flag.ShouldInterrupt() {
					os.Exit(1)
				}
				flag.Set()
			case <-done:
				return
			}
		}
	}()
	return func() {
		signal.Stop(c)
		close(done)
	}
}
