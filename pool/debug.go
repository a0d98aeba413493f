//go:build debug

package pool

import (
	"fmt"
	"log"
	"os"
)

var debugLogger = log.New(os.Stderr, "[flexpool] ", log.Ltime|log.Lmicroseconds|log.Lshortfile)

// debugLog logs pool-internal events (worker spawn/retire, backpressure,
// shutdown phases) when built with -tags debug. Outside that build tag
// it is a no-op (see debug_release.go) so normal builds pay nothing for
// it.
func debugLog(format string, args ...any) {
	_ = debugLogger.Output(2, fmt.Sprintf(format, args...))
}

// debugLogState is debugLog with the pool's mode and live counters
// prefixed, for the events (spawn, retire) whose meaning depends on
// whether the pool is Fixed or Cached and how loaded it currently is.
func debugLogState(p *Pool, format string, args ...any) {
	prefix := fmt.Sprintf("[mode=%s workers=%d idle=%d queue=%d] ",
		p.mode, p.currentWorkerCount.Load(), p.idleWorkerCount.Load(), p.queueSize.Load())
	_ = debugLogger.Output(2, prefix+fmt.Sprintf(format, args...))
}
