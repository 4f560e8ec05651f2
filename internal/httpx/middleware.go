package httpx

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

// PolicyHeaders are attached to every response, including errors and static files.
var PolicyHeaders = [][2]string{
	{"X-Content-Type-Options", "nosniff"},
	{"X-Frame-Options", "DENY"},
	{"X-XSS-Protection", "1; mode=block"},
	{"Cache-Control", "public, max-age=3600"},
	{"Access-Control-Allow-Origin", "*"},
	{"Access-Control-Allow-Methods", "GET, POST, OPTIONS"},
	{"Access-Control-Allow-Headers", "Content-Type"},
}

// WithPolicyHeaders sets the fixed security, cache and CORS headers before the
// wrapped handler runs and again when the status line is written, since
// http.FileServer strips Cache-Control from its error responses.
func WithPolicyHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		applyPolicyHeaders(w.Header())
		next.ServeHTTP(&policyWriter{ResponseWriter: w}, r)
	})
}

func applyPolicyHeaders(h http.Header) {
	for _, kv := range PolicyHeaders {
		h.Set(kv[0], kv[1])
	}
}

type policyWriter struct {
	http.ResponseWriter
	wroteHeader bool
}

func (w *policyWriter) WriteHeader(statusCode int) {
	if !w.wroteHeader {
		w.wroteHeader = true
		applyPolicyHeaders(w.Header())
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *policyWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

func (w *policyWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func (w *policyWriter) Flush() {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if flusher, ok := w.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

func WithRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, requestID)
		r.Header.Set(requestIDHeader, requestID)
		next.ServeHTTP(w, r)
	})
}

func WithLogging(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		recorder := NewStatusRecorder(w)
		next.ServeHTTP(recorder, r)
		logger.Info("brand request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", recorder.Status(),
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(started).Milliseconds(),
			"request_id", r.Header.Get(requestIDHeader),
		)
	})
}

// WithRecovery converts a handler panic into the same 500 body the handlers
// produce for their own failures. onPanic may be nil.
func WithRecovery(logger *slog.Logger, onPanic func(), next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}
			if recovered == http.ErrAbortHandler {
				panic(recovered)
			}
			if onPanic != nil {
				onPanic()
			}
			logger.Error("handler panic", "panic", fmt.Sprint(recovered), "path", r.URL.Path)
			http.Error(w, fmt.Sprintf("Server error: %v", recovered), http.StatusInternalServerError)
		}()
		next.ServeHTTP(w, r)
	})
}
