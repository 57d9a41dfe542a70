//go:build !unix

package main

import (
	"os"
	"os/signal"

	"github.com/zephyrtronium/calc"
)

func notifyInterrupt(flag *calc.Flag) (stop func()) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-c:
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
