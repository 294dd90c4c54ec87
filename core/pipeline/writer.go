package pipeline

import "net/http"

// writeTracker is a minimal wrapper around http.ResponseWriter that tracks
// whether a response has been written, so the finalizer emits its reply
// exactly once even when it runs again on a recovery level.
type writeTracker struct {
	http.ResponseWriter
	status  int
	written bool
}

func newWriteTracker(w http.ResponseWriter) *writeTracker {
	return &writeTracker{ResponseWriter: w}
}

func (w *writeTracker) WriteHeader(status int) {
	if !w.written {
		w.status = status
		w.written = true
		w.ResponseWriter.WriteHeader(status)
	}
}

func (w *writeTracker) Write(b []byte) (int, error) {
	if !w.written {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

// Written returns true if WriteHeader has been called.
func (w *writeTracker) Written() bool {
	return w.written
}

// Status returns the HTTP status code.
func (w *writeTracker) Status() int {
	return w.status
}

// Flush implements http.Flusher if the underlying writer supports it.
func (w *writeTracker) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
