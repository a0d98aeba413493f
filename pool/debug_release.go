//go:build !debug

package pool

// debugLog is a no-op outside of -tags debug builds. See debug.go.
func debugLog(format string, args ...any) {}

// debugLogState is a no-op outside of -tags debug builds. See debug.go.
func debugLogState(p *Pool, format string, args ...any) {}
