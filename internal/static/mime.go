package static

import "strings"

// defaultTypes covers the asset kinds the brand site ships. Web font and
// stylesheet/script entries override whatever the platform registry says.
var defaultTypes = map[string]string{
	".html":  "text/html; charset=utf-8",
	".htm":   "text/html; charset=utf-8",
	".css":   "text/css",
	".js":    "application/javascript",
	".jsx":   "application/javascript",
	".mjs":   "application/javascript",
	".json":  "application/json",
	".md":    "text/markdown; charset=utf-8",
	".txt":   "text/plain; charset=utf-8",
	".svg":   "image/svg+xml",
	".png":   "image/png",
	".jpg":   "image/jpeg",
	".jpeg":  "image/jpeg",
	".gif":   "image/gif",
	".webp":  "image/webp",
	".ico":   "image/x-icon",
	".woff":  "application/font-woff",
	".woff2": "application/font-woff2",
	".ttf":   "font/ttf",
	".otf":   "font/otf",
}

// MIMETable is a read-only extension to content-type mapping.
type MIMETable struct {
	types map[string]string
}

// NewMIMETable copies the defaults and applies extra on top. Keys are
// normalised to a lower-case ".ext" form.
func NewMIMETable(extra map[string]string) MIMETable {
	types := make(map[string]string, len(defaultTypes)+len(extra))
	for ext, ct := range defaultTypes {
		types[ext] = ct
	}
	for ext, ct := range extra {
		types[normalizeExt(ext)] = ct
	}
	return MIMETable{types: types}
}

// Lookup returns the content type registered for ext, if any.
func (t MIMETable) Lookup(ext string) (string, bool) {
	ct, ok := t.types[normalizeExt(ext)]
	return ct, ok
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
