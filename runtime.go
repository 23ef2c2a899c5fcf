// File: appconf/runtime.go
package appconf

import "sync"

// Runtime holds process-behavior toggles compiled out of the configuration.
// The import_warnings and traces settings mutate it instead of global
// interpreter state; subsystems that care receive the Runtime explicitly.
type Runtime struct {
	mutex    sync.RWMutex
	warnings bool
	traces   bool
}

// Warnings reports whether strict warning behavior is enabled.
func (r *Runtime) Warnings() bool {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.warnings
}

// Traces reports whether verbose error traces are enabled.
func (r *Runtime) Traces() bool {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.traces
}

func (r *Runtime) setWarnings(on bool) {
	r.mutex.Lock()
	r.warnings = on
	r.mutex.Unlock()
}

func (r *Runtime) setTraces(on bool) {
	r.mutex.Lock()
	r.traces = on
	r.mutex.Unlock()
}
