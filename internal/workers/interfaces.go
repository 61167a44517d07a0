// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

// Worker is the interface that must be implemented by any background worker.
//
// Implementations are expected to spawn their goroutines in Run and wind
// them down in Stop.
type Worker interface {
	// Run starts the worker's execution. Must not block.
	Run()

	// Stop signals the worker to finish and waits for it.
	Stop()
}
