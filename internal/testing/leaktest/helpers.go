package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleDelay  = 10 * time.Millisecond
	pollInterval = 10 * time.Millisecond
)

// Goroutines records the current goroutine count and returns a check that
// fails the test if, after timeout, more than tolerance goroutines remain on
// top of the baseline. Background pools and tickers need a moment to unwind,
// so the check polls instead of sampling once.
func Goroutines(t testing.TB, tolerance int, timeout time.Duration) func() {
	t.Helper()

	runtime.Gosched()
	time.Sleep(settleDelay)
	before := runtime.NumGoroutine()

	return func() {
		t.Helper()

		deadline := time.Now().Add(timeout)
		for {
			runtime.Gosched()
			after := runtime.NumGoroutine()
			if after-before <= tolerance {
				return
			}
			if time.Now().After(deadline) {
				t.Errorf("goroutine leak: before=%d after=%d tolerance=%d", before, after, tolerance)
				return
			}
			time.Sleep(pollInterval)
		}
	}
}
