package brand

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	componentPrefix  = "nexus_"
	componentSuffix  = ".html"
	componentPattern = componentPrefix + "*" + componentSuffix
)

// AssetDirs are created at startup and counted by the brand-info route.
var AssetDirs = []string{
	filepath.Join("assets", "images"),
	filepath.Join("assets", "fonts"),
	filepath.Join("assets", "icons"),
}

// Component is one demo page found in the site root.
type Component struct {
	Name string `json:"name"`
	File string `json:"file"`
	URL  string `json:"url"`
}

// Assets counts entries in each asset directory.
type Assets struct {
	Images int `json:"images"`
	Fonts  int `json:"fonts"`
	Icons  int `json:"icons"`
}

// EnsureAssetDirs creates the asset directories under root if they are
// missing and returns them relative to root.
func EnsureAssetDirs(root string) ([]string, error) {
	dirs := make([]string, 0, len(AssetDirs))
	for _, dir := range AssetDirs {
		full := filepath.Join(root, dir)
		if err := os.MkdirAll(full, 0o755); err != nil {
			return nil, &FilesystemError{Op: "create directory", Path: full, Err: err}
		}
		dirs = append(dirs, filepath.ToSlash(dir))
	}
	return dirs, nil
}

// Components lists nexus_*.html entries in root, ordered by file name.
func Components(root string) ([]Component, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, &FilesystemError{Op: "list components in", Path: root, Err: err}
	}

	caser := cases.Title(language.English)
	components := make([]Component, 0)
	for _, entry := range entries {
		name := entry.Name()
		if ok, _ := filepath.Match(componentPattern, name); !ok {
			continue
		}
		components = append(components, Component{
			Name: displayName(caser, name),
			File: name,
			URL:  "/" + name,
		})
	}

	sort.Slice(components, func(i, j int) bool {
		return components[i].File < components[j].File
	})
	return components, nil
}

// displayName turns "nexus_landing_page.html" into "Landing Page".
func displayName(caser cases.Caser, file string) string {
	stem := strings.TrimSuffix(file, filepath.Ext(file))
	stem = strings.ReplaceAll(stem, componentPrefix, "")
	stem = strings.ReplaceAll(stem, "_", " ")
	return caser.String(stem)
}

// AssetInventory counts the entries of each asset directory. A missing
// directory, or a plain file in its place, counts as zero.
func AssetInventory(root string) (Assets, error) {
	counts := make([]int, len(AssetDirs))
	for i, dir := range AssetDirs {
		n, err := countEntries(filepath.Join(root, dir))
		if err != nil {
			return Assets{}, err
		}
		counts[i] = n
	}
	return Assets{Images: counts[0], Fonts: counts[1], Icons: counts[2]}, nil
}

func countEntries(dir string) (int, error) {
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, &FilesystemError{Op: "stat", Path: dir, Err: err}
	}
	if !info.IsDir() {
		return 0, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, &FilesystemError{Op: "count entries in", Path: dir, Err: err}
	}
	return len(entries), nil
}
