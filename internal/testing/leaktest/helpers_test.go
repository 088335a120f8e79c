package leaktest

import (
	"sync"
	"testing"
	"time"
)

func TestGoroutines_Clean(t *testing.T) {
	check := Goroutines(t, 0, 200*time.Millisecond)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() { defer wg.Done() }()
	}
	wg.Wait()

	check()
}

func TestGoroutines_WaitsForStragglers(t *testing.T) {
	check := Goroutines(t, 0, time.Second)

	release := make(chan struct{})
	go func() { <-release }()
	time.AfterFunc(50*time.Millisecond, func() { close(release) })

	check()
}

func TestGoroutines_Tolerance(t *testing.T) {
	check := Goroutines(t, 1, 100*time.Millisecond)

	stop := make(chan struct{})
	defer close(stop)
	go func() { <-stop }()

	check()
}
