package brand

import (
	"encoding/json"
	"os"
)

var (
	emptyObject = json.RawMessage(`{}`)
	jsonNull    = json.RawMessage(`null`)
)

// Manifest is the package metadata file. Only two keys are consumed; the rest
// is kept opaque.
type Manifest struct {
	fields map[string]json.RawMessage
}

// LoadManifest reads and parses the manifest at path. It is called on every
// brand-info request, so edits to the file show up without a restart.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, &ManifestReadError{Path: path, Err: err}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return Manifest{}, &ManifestParseError{Path: path, Err: err}
	}
	if fields == nil {
		// A literal null decodes without error but is not an object.
		return Manifest{}, &ManifestParseError{Path: path, Err: errNotObject}
	}

	return Manifest{fields: fields}, nil
}

// BrandSystem returns the "brandSystem" value, or {} when the key is absent.
func (m Manifest) BrandSystem() json.RawMessage {
	if raw, ok := m.fields["brandSystem"]; ok {
		return raw
	}
	return emptyObject
}

// Version returns the "version" value, or null when the key is absent.
func (m Manifest) Version() json.RawMessage {
	if raw, ok := m.fields["version"]; ok {
		return raw
	}
	return jsonNull
}
