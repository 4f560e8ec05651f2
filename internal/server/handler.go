package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/dreschagin/brand-server/internal/brand"
	brandmetrics "github.com/dreschagin/brand-server/internal/metrics"
	"github.com/dreschagin/brand-server/internal/routing"
)

// Handler answers the logical routes and hands every other request to the
// static file server.
type Handler struct {
	site    brand.Site
	static  http.Handler
	logger  *slog.Logger
	metrics *brandmetrics.Metrics
}

// NewHandler wires a site and its fallback. metrics may be nil.
func NewHandler(site brand.Site, static http.Handler, logger *slog.Logger, metrics *brandmetrics.Metrics) *Handler {
	return &Handler{
		site:    site,
		static:  static,
		logger:  logger,
		metrics: metrics,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	route := routing.Match(r.URL.EscapedPath())
	if r.Method != http.MethodGet || !route.Logical() {
		h.static.ServeHTTP(w, r)
		return
	}

	var (
		body        []byte
		contentType string
		err         error
	)
	switch route {
	case routing.RouteIndex:
		body, contentType = []byte(brand.IndexPage), "text/html; charset=utf-8"
	case routing.RouteDownload:
		body, err = renderJSON(brand.Download())
		contentType = "application/json"
	case routing.RouteBrandInfo:
		var info brand.Info
		if info, err = h.site.Info(); err == nil {
			body, err = renderJSON(info)
		}
		contentType = "application/json"
	}

	if err != nil {
		h.fail(w, r, route, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// fail reports err to the client verbatim, matching the server's historical
// behaviour. This exposes filesystem paths in the body.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, route routing.Route, err error) {
	kind := errorKind(err)
	if h.metrics != nil {
		h.metrics.HandlerError(kind)
	}
	h.logger.Error("route handler failed",
		"route", string(route),
		"kind", kind,
		"path", r.URL.Path,
		"error", err,
	)
	http.Error(w, fmt.Sprintf("Server error: %v", err), http.StatusInternalServerError)
}

func errorKind(err error) string {
	var (
		readErr  *brand.ManifestReadError
		parseErr *brand.ManifestParseError
		fsErr    *brand.FilesystemError
	)
	switch {
	case errors.As(err, &readErr):
		return brandmetrics.ErrorKindManifestRead
	case errors.As(err, &parseErr):
		return brandmetrics.ErrorKindManifestParse
	case errors.As(err, &fsErr):
		return brandmetrics.ErrorKindFilesystem
	default:
		return brandmetrics.ErrorKindOther
	}
}

// renderJSON encodes v with two-space indentation and no HTML escaping.
// The output is pure ASCII: every non-ASCII rune becomes a \uXXXX escape,
// astral runes as a surrogate pair.
func renderJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return escapeNonASCII(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

// escapeNonASCII rewrites encoded JSON so that it contains only ASCII. Bytes
// >= 0x80 only occur inside string literals, where \u escapes are valid.
func escapeNonASCII(b []byte) []byte {
	if !bytes.ContainsFunc(b, func(r rune) bool { return r >= utf8.RuneSelf }) {
		return b
	}
	out := make([]byte, 0, len(b)+len(b)/4)
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		b = b[size:]
		switch {
		case r < utf8.RuneSelf:
			out = append(out, byte(r))
		case r > 0xFFFF:
			hi, lo := utf16.EncodeRune(r)
			out = fmt.Appendf(out, `\u%04x\u%04x`, hi, lo)
		default:
			out = fmt.Appendf(out, `\u%04x`, r)
		}
	}
	return out
}
