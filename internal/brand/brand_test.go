package brand

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadManifest(t *testing.T) {
	tests := []struct {
		name        string
		content     *string
		wantErr     any
		wantSystem  string
		wantVersion string
	}{
		{
			name:        "full manifest",
			content:     ptr(`{"name":"nexus","version":"2.1.0","brandSystem":{"theme":"tldark"}}`),
			wantSystem:  `{"theme":"tldark"}`,
			wantVersion: `"2.1.0"`,
		},
		{
			name:        "defaults",
			content:     ptr(`{"name":"nexus"}`),
			wantSystem:  `{}`,
			wantVersion: `null`,
		},
		{name: "missing file", content: nil, wantErr: &ManifestReadError{}},
		{name: "malformed", content: ptr(`{"version":`), wantErr: &ManifestParseError{}},
		{name: "array", content: ptr(`[1,2,3]`), wantErr: &ManifestParseError{}},
		{name: "null", content: ptr(`null`), wantErr: &ManifestParseError{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "package.json")
			if tt.content != nil {
				writeFile(t, path, *tt.content)
			}

			manifest, err := LoadManifest(path)
			switch want := tt.wantErr.(type) {
			case *ManifestReadError:
				if !errors.As(err, &want) {
					t.Fatalf("err = %v, want ManifestReadError", err)
				}
				if !errors.Is(err, fs.ErrNotExist) {
					t.Fatalf("read error should wrap fs.ErrNotExist: %v", err)
				}
				return
			case *ManifestParseError:
				if !errors.As(err, &want) {
					t.Fatalf("err = %v, want ManifestParseError", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("LoadManifest() error = %v", err)
			}
			if got := string(manifest.BrandSystem()); got != tt.wantSystem {
				t.Fatalf("BrandSystem() = %s, want %s", got, tt.wantSystem)
			}
			if got := string(manifest.Version()); got != tt.wantVersion {
				t.Fatalf("Version() = %s, want %s", got, tt.wantVersion)
			}
		})
	}
}

func TestComponents(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{
		"nexus_logo_system.html",
		"nexus_landing_page.html",
		"nexus_BRAND_showcase.html",
		"nexus_.css",
		"landing.html",
		"nexus_design_system.css",
	} {
		writeFile(t, filepath.Join(root, name), "<html></html>")
	}

	components, err := Components(root)
	if err != nil {
		t.Fatalf("Components() error = %v", err)
	}

	want := []Component{
		{Name: "Brand Showcase", File: "nexus_BRAND_showcase.html", URL: "/nexus_BRAND_showcase.html"},
		{Name: "Landing Page", File: "nexus_landing_page.html", URL: "/nexus_landing_page.html"},
		{Name: "Logo System", File: "nexus_logo_system.html", URL: "/nexus_logo_system.html"},
	}
	if len(components) != len(want) {
		t.Fatalf("components = %+v, want %+v", components, want)
	}
	for i := range want {
		if components[i] != want[i] {
			t.Fatalf("components[%d] = %+v, want %+v", i, components[i], want[i])
		}
	}
}

func TestComponentsEmptyIsNotNil(t *testing.T) {
	components, err := Components(t.TempDir())
	if err != nil {
		t.Fatalf("Components() error = %v", err)
	}
	data, _ := json.Marshal(components)
	if string(data) != "[]" {
		t.Fatalf("empty components marshal to %s, want []", data)
	}
}

func TestComponentsMissingRoot(t *testing.T) {
	_, err := Components(filepath.Join(t.TempDir(), "gone"))
	var fsErr *FilesystemError
	if !errors.As(err, &fsErr) {
		t.Fatalf("err = %v, want FilesystemError", err)
	}
}

func TestAssetInventory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "assets", "images", "hero.png"), "png")
	writeFile(t, filepath.Join(root, "assets", "images", "card.png"), "png")
	writeFile(t, filepath.Join(root, "assets", "images", ".keep"), "")
	writeFile(t, filepath.Join(root, "assets", "icons"), "not a directory")

	assets, err := AssetInventory(root)
	if err != nil {
		t.Fatalf("AssetInventory() error = %v", err)
	}
	want := Assets{Images: 3, Fonts: 0, Icons: 0}
	if assets != want {
		t.Fatalf("assets = %+v, want %+v", assets, want)
	}
}

func TestEnsureAssetDirsIsIdempotent(t *testing.T) {
	root := t.TempDir()
	for i := 0; i < 2; i++ {
		dirs, err := EnsureAssetDirs(root)
		if err != nil {
			t.Fatalf("EnsureAssetDirs() run %d error = %v", i, err)
		}
		if strings.Join(dirs, ",") != "assets/images,assets/fonts,assets/icons" {
			t.Fatalf("dirs = %v", dirs)
		}
	}
	for _, dir := range AssetDirs {
		info, err := os.Stat(filepath.Join(root, dir))
		if err != nil || !info.IsDir() {
			t.Fatalf("%s not created: %v", dir, err)
		}
	}
}

func TestSiteInfo(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "package.json"), `{"version":"1.0.0","brandSystem":{"name":"NEXUS"}}`)
	writeFile(t, filepath.Join(root, "nexus_landing_page.html"), "<html></html>")
	writeFile(t, filepath.Join(root, "assets", "fonts", "inter.woff2"), "font")

	info, err := NewSite(root, "package.json").Info()
	if err != nil {
		t.Fatalf("Info() error = %v", err)
	}
	if string(info.Version) != `"1.0.0"` || string(info.System) != `{"name":"NEXUS"}` {
		t.Fatalf("manifest fields = %s %s", info.Version, info.System)
	}
	if len(info.Components) != 1 || info.Components[0].Name != "Landing Page" {
		t.Fatalf("components = %+v", info.Components)
	}
	if info.Assets.Fonts != 1 {
		t.Fatalf("fonts = %d, want 1", info.Assets.Fonts)
	}
	if info.ServerInfo.Port != AdvertisedPort || info.Status != "active" {
		t.Fatalf("server info = %+v status = %q", info.ServerInfo, info.Status)
	}
}

func TestNewSiteAbsoluteManifest(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "meta.json")
	if site := NewSite("/srv/site", abs); site.ManifestPath != abs {
		t.Fatalf("ManifestPath = %q, want %q", site.ManifestPath, abs)
	}
}

func TestIndexPageLinks(t *testing.T) {
	for _, link := range []string{
		`href="nexus_landing_page.html"`,
		`href="nexus_brand_showcase.html"`,
		`href="nexus_banner_campaigns.html"`,
		`href="nexus_logo_system.html"`,
		`href="DOWNLOAD_PACKAGE_GUIDE.md"`,
		`href="/download"`,
		`href="/api/brand-info"`,
	} {
		if !strings.Contains(IndexPage, link) {
			t.Fatalf("index page missing %s", link)
		}
	}
}

func ptr(s string) *string { return &s }
