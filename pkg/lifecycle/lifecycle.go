// Package lifecycle runs subsystem startup and shutdown hooks concurrently
// and tracks readiness for health probes.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"
)

// ErrShutdownTimeout is returned when shutdown hooks outlive the deadline.
var ErrShutdownTimeout = errors.New("shutdown timed out")

// StartupCheck is the name Pending reports until WaitForStartup returns.
const StartupCheck = "startup"

// ReadinessChecker reports whether a subsystem can serve traffic.
type ReadinessChecker interface {
	Ready() bool
}

// ReadyFunc adapts a function to ReadinessChecker.
type ReadyFunc func() bool

// Ready calls f.
func (f ReadyFunc) Ready() bool { return f() }

// Coordinator owns the service context. Startup hooks run as soon as they
// are registered; shutdown hooks run immediately too and are expected to
// block on Context().Done() before releasing their resources.
type Coordinator struct {
	ctx      context.Context
	cancel   context.CancelFunc
	startup  sync.WaitGroup
	shutdown sync.WaitGroup

	mu       sync.RWMutex
	started  bool
	checkers map[string]ReadinessChecker
}

// New creates a Coordinator.
func New() *Coordinator {
	ctx, cancel := context.WithCancel(context.Background())
	return &Coordinator{
		ctx:      ctx,
		cancel:   cancel,
		checkers: make(map[string]ReadinessChecker),
	}
}

// Context returns the service context, cancelled when Shutdown begins.
func (c *Coordinator) Context() context.Context {
	return c.ctx
}

// OnStartup runs fn in its own goroutine.
func (c *Coordinator) OnStartup(fn func()) {
	c.startup.Go(fn)
}

// OnShutdown runs fn in its own goroutine; Shutdown waits for it.
func (c *Coordinator) OnShutdown(fn func()) {
	c.shutdown.Go(fn)
}

// Register adds a named readiness check. Registering a name again replaces it.
func (c *Coordinator) Register(name string, checker ReadinessChecker) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checkers[name] = checker
}

// Ready reports whether startup finished and every check passes.
func (c *Coordinator) Ready() bool {
	return len(c.Pending()) == 0
}

// Pending returns the sorted names of checks that are not ready, including
// StartupCheck while startup hooks are still running.
func (c *Coordinator) Pending() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var names []string
	if !c.started {
		names = append(names, StartupCheck)
	}
	for name, checker := range c.checkers {
		if !checker.Ready() {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// WaitForStartup blocks until every startup hook has returned.
func (c *Coordinator) WaitForStartup() {
	c.startup.Wait()
	c.mu.Lock()
	c.started = true
	c.mu.Unlock()
}

// Shutdown cancels the service context and waits up to timeout for the
// shutdown hooks.
func (c *Coordinator) Shutdown(timeout time.Duration) error {
	c.cancel()

	done := make(chan struct{})
	go func() {
		c.shutdown.Wait()
		close(done)
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-done:
		return nil
	case <-timer.C:
		return fmt.Errorf("%w after %v", ErrShutdownTimeout, timeout)
	}
}
