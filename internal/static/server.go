package static

import (
	"fmt"
	"net/http"
	"path"
)

// Server streams files below a root directory. Conditional requests, ranges,
// index.html lookup and directory listings come from http.FileServer.
type Server struct {
	files http.Handler
	types MIMETable
}

func NewServer(root string, types MIMETable) *Server {
	return &Server{
		files: http.FileServer(http.Dir(root)),
		types: types,
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, fmt.Sprintf("Unsupported method ('%s')", r.Method), http.StatusNotImplemented)
		return
	}

	// A preset Content-Type wins over the delegate's own sniffing.
	if ct, ok := s.types.Lookup(path.Ext(r.URL.Path)); ok {
		w.Header().Set("Content-Type", ct)
	}
	s.files.ServeHTTP(w, r)
}
