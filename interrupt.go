package calc

import (
	"context"
	"errors"
	"sync/atomic"
)

// Interrupt is a cooperative cancellation signal. Long-running computations
// poll ShouldInterrupt and abort with ErrInterrupted once it reports true.
// Implementations must be safe to poll at any point without blocking.
type Interrupt interface {
	ShouldInterrupt() bool
}

// ErrInterrupted is the error returned by any operation that was aborted
// because its Interrupt was signaled. It is never a user error.
var ErrInterrupted = errors.New("interrupted")

// IsInterrupted reports whether err is or wraps ErrInterrupted.
func IsInterrupted(err error) bool {
	return errors.Is(err, ErrInterrupted)
}

// check returns ErrInterrupted if intr has been signaled.
func check(intr Interrupt) error {
	if intr != nil && intr.ShouldInterrupt() {
		return ErrInterrupted
	}
	return nil
}

// Flag is an Interrupt that is signaled by calling Set. It is safe to Set
// from another goroutine, e.g. a signal handler, while an evaluation polls it.
// The zero value is an unsignaled flag.
type Flag struct {
	set atomic.Bool
}

// ShouldInterrupt implements Interrupt.
func (f *Flag) ShouldInterrupt() bool {
	return f.set.Load()
}

// Set signals the flag.
func (f *Flag) Set() {
	f.set.Store(true)
}

// Reset clears the flag. The owner of the flag calls Reset before each
// independent evaluation; evaluation itself never resets it.
func (f *Flag) Reset() {
	f.set.Store(false)
}

// NeverInterrupt is an Interrupt that is never signaled.
type NeverInterrupt struct{}

// ShouldInterrupt implements Interrupt.
func (NeverInterrupt) ShouldInterrupt() bool {
	return false
}

type ctxInterrupt struct {
	ctx context.Context
}

func (c ctxInterrupt) ShouldInterrupt() bool {
	return c.ctx.Err() != nil
}

// ContextInterrupt adapts a context to an Interrupt which is signaled once
// the context is done.
func ContextInterrupt(ctx context.Context) Interrupt {
	return ctxInterrupt{ctx}
}
