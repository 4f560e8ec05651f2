package brand

import (
	"encoding/json"
	"path/filepath"
)

// AdvertisedPort is the port reported inside serverInfo. It has never
// matched the default listen port (8081); clients that read it get 8080.
const AdvertisedPort = 8080

// DownloadInfo describes the downloadable brand package.
type DownloadInfo struct {
	BrandSystem     string   `json:"brandSystem"`
	Version         string   `json:"version"`
	DownloadSize    string   `json:"downloadSize"`
	Components      []string `json:"components"`
	Features        []string `json:"features"`
	DownloadCommand string   `json:"downloadCommand"`
	QuickStart      string   `json:"quickStart"`
	Documentation   string   `json:"documentation"`
}

// Download returns the fixed package description served on /download.
func Download() DownloadInfo {
	return DownloadInfo{
		BrandSystem:  "NEXUS TLDark Glassmorphic",
		Version:      "1.0.0",
		DownloadSize: "~2.5MB",
		Components: []string{
			"Complete Design System",
			"React Interactive Components",
			"Premium Landing Pages",
			"Marketing Banner Collection",
			"Logo System & Assets",
			"Typography & Icon Library",
		},
		Features: []string{
			"TLDark Premium Aesthetics",
			"Glassmorphic Effects",
			"Backdrop-filter Support",
			"Responsive Design",
			"Commercial License",
			"Framework Agnostic",
		},
		DownloadCommand: "npm run package",
		QuickStart:      "go run ./cmd/brand-server",
		Documentation:   "/DOWNLOAD_PACKAGE_GUIDE.md",
	}
}

// ServerInfo is static metadata about the serving process.
type ServerInfo struct {
	Port        int    `json:"port"`
	Protocol    string `json:"protocol"`
	Compression string `json:"compression"`
	CORS        string `json:"cors"`
}

// Info is the brand-info payload.
type Info struct {
	System     json.RawMessage `json:"system"`
	Version    json.RawMessage `json:"version"`
	Components []Component     `json:"components"`
	Assets     Assets          `json:"assets"`
	Status     string          `json:"status"`
	ServerInfo ServerInfo      `json:"serverInfo"`
}

// Site is a brand site rooted at a directory on disk.
type Site struct {
	Root         string
	ManifestPath string
}

// NewSite resolves manifest relative to root unless it is absolute.
func NewSite(root, manifest string) Site {
	if !filepath.IsAbs(manifest) {
		manifest = filepath.Join(root, manifest)
	}
	return Site{Root: root, ManifestPath: manifest}
}

// Info reads the manifest and inspects the site directory. Nothing is cached.
func (s Site) Info() (Info, error) {
	manifest, err := LoadManifest(s.ManifestPath)
	if err != nil {
		return Info{}, err
	}

	components, err := Components(s.Root)
	if err != nil {
		return Info{}, err
	}

	assets, err := AssetInventory(s.Root)
	if err != nil {
		return Info{}, err
	}

	return Info{
		System:     manifest.BrandSystem(),
		Version:    manifest.Version(),
		Components: components,
		Assets:     assets,
		Status:     "active",
		ServerInfo: ServerInfo{
			Port:        AdvertisedPort,
			Protocol:    "HTTP/1.1",
			Compression: "gzip",
			CORS:        "enabled",
		},
	}, nil
}
