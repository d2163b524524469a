package dispatch

import (
	"log"
	"os"
	"sync"
)

// Registry is a process-wide set of subprocesses spawned by runs. The
// signal handler drains it synchronously before exiting, replacing
// implicit exit-hook mechanisms.
type Registry struct {
	mu    sync.Mutex
	procs map[int]*os.Process
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{procs: make(map[int]*os.Process)}
}

// Register adds a running subprocess.
func (reg *Registry) Register(p *os.Process) {
	if p == nil {
		return
	}
	reg.mu.Lock()
	reg.procs[p.Pid] = p
	reg.mu.Unlock()
}

// Release removes a subprocess that finished on its own.
func (reg *Registry) Release(p *os.Process) {
	if p == nil {
		return
	}
	reg.mu.Lock()
	delete(reg.procs, p.Pid)
	reg.mu.Unlock()
}

// KillAll kills every registered subprocess. Processes that are already
// gone are ignored, so calling it more than once is harmless.
func (reg *Registry) KillAll(logger *log.Logger) {
	logger = ensureLogger(logger)
	reg.mu.Lock()
	defer reg.mu.Unlock()
	for pid, p := range reg.procs {
		if err := p.Kill(); err == nil {
			logger.Printf("terminating subprocess %d", pid)
		}
		delete(reg.procs, pid)
	}
}
