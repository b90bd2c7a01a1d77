// Package diag installs the process-wide fault reporter used by hosts.
//
// Install runs at most once; later calls are no-ops. Hosts defer Recover
// around each entry point so a panic is written to the installed logger with
// its stack before it continues unwinding. Return values are never changed.
package diag

import (
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"
)

var (
	once     sync.Once
	reporter atomic.Pointer[slog.Logger]
)

// Install sets logger as the fault reporter and reports whether this call
// performed the installation. A nil logger installs slog.Default().
func Install(logger *slog.Logger) bool {
	installed := false
	once.Do(func() {
		if logger == nil {
			logger = slog.Default()
		}
		reporter.Store(logger)
		installed = true
	})
	return installed
}

// Installed reports whether Install has run.
func Installed() bool {
	return reporter.Load() != nil
}

// Recover must be deferred directly. It logs an in-flight panic for op and
// re-panics with the same value.
func Recover(op string) {
	r := recover()
	if r == nil {
		return
	}
	if logger := reporter.Load(); logger != nil {
		logger.Error("panic in signal core",
			slog.String("op", op),
			slog.Any("panic", r),
			slog.String("stack", string(debug.Stack())),
		)
	}
	panic(r)
}
