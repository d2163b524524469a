package dispatch

import (
	"log"
	"os"
	"os/signal"
	"syscall"
)

// HandleSignals installs a handler for SIGINT and SIGTERM that logs the
// event, kills every subprocess registered in reg and exits with a
// non-zero status.
func HandleSignals(reg *Registry, logger *log.Logger) {
	logger = ensureLogger(logger)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-ch
		logger.Printf("received termination signal - the scan will be stopped")
		if reg != nil {
			reg.KillAll(logger)
		}
		os.Exit(1)
	}()
}
