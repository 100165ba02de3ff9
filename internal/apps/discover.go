package apps

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
)

// ManifestName is the per-bundle manifest file.
const ManifestName = "app.toml"

// Discoverer produces the list of launchable applications.
type Discoverer interface {
	Discover() ([]AppInfo, error)
}

// CacheDiscoverer reads the pipe-delimited apps index.
type CacheDiscoverer struct {
	Path   string
	Root   string
	Logger *zap.Logger
}

// Discover returns the apps listed in the cache in file order. Invalid lines
// are skipped with a warning.
func (d *CacheDiscoverer) Discover() ([]AppInfo, error) {
	data, err := os.ReadFile(d.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read apps cache %s: %w", d.Path, err)
	}
	return parseCache(data, d.Root, d.logger()), nil
}

func (d *CacheDiscoverer) logger() *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}

func parseCache(data []byte, root string, log *zap.Logger) []AppInfo {
	var out []AppInfo
	sc := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		info, ok, err := ParseCacheLine(sc.Text(), root)
		if err != nil {
			log.Warn("skipping invalid apps cache line", zap.Int("line", lineNo), zap.Error(err))
			continue
		}
		if ok {
			out = append(out, info)
		}
	}
	return out
}

// Manifest is the subset of app.toml the shell reads.
type Manifest struct {
	Name     string `toml:"name"`
	Category string `toml:"category"`
	Icon     string `toml:"icon"`
	Version  string `toml:"version"`
}

// ManifestDiscoverer scans <vendor>/<name>/app.toml manifests.
type ManifestDiscoverer struct {
	// FS is rooted at Root; it defaults to os.DirFS(Root).
	FS     fs.FS
	Root   string
	Logger *zap.Logger
}

// Discover returns the apps whose manifests parse, sorted by display name.
func (d *ManifestDiscoverer) Discover() ([]AppInfo, error) {
	fsys := d.FS
	if fsys == nil {
		fsys = os.DirFS(d.Root)
	}
	log := d.Logger
	if log == nil {
		log = zap.NewNop()
	}

	matches, err := doublestar.Glob(fsys, "*/*/"+ManifestName)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", d.Root, err)
	}

	out := make([]AppInfo, 0, len(matches))
	for _, m := range matches {
		info, err := readManifest(fsys, m, d.Root)
		if err != nil {
			log.Warn("skipping app manifest", zap.String("manifest", m), zap.Error(err))
			continue
		}
		out = append(out, info)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out, nil
}

func readManifest(fsys fs.FS, manifestPath, root string) (AppInfo, error) {
	data, err := fs.ReadFile(fsys, manifestPath)
	if err != nil {
		return AppInfo{}, err
	}

	var m Manifest
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&m); err != nil {
		return AppInfo{}, err
	}

	dir := path.Dir(manifestPath)
	name := path.Base(dir)
	vendor := path.Base(path.Dir(dir))

	display := strings.TrimSpace(m.Name)
	if display == "" {
		display = name
	}
	category := strings.TrimSpace(m.Category)
	if category == "" {
		category = "other"
	}
	icon := strings.TrimSpace(m.Icon)
	if icon != "" && !path.IsAbs(icon) {
		icon = path.Join(root, dir, icon)
	}

	return AppInfo{
		ID:       vendor + "." + name,
		Name:     display,
		Vendor:   vendor,
		Path:     ExecPath(root, vendor, name),
		IconPath: icon,
		Category: category,
		bundle:   name,
	}, nil
}

// Chain tries each discoverer in order and returns the first non-empty list.
// Errors are only returned when every discoverer failed.
type Chain []Discoverer

func (c Chain) Discover() ([]AppInfo, error) {
	var errs []error
	for _, d := range c {
		list, err := d.Discover()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if len(list) > 0 {
			return list, nil
		}
	}
	if len(errs) == len(c) && len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return nil, nil
}

// WriteCache writes apps to path in the cache format, creating parent
// directories as needed.
func WriteCache(path string, apps []AppInfo) error {
	var buf bytes.Buffer
	buf.WriteString("# vendor|name|display_name|icon_path|category\n")
	for _, a := range apps {
		buf.WriteString(a.CacheLine())
		buf.WriteByte('\n')
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write apps cache: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace apps cache: %w", err)
	}
	return nil
}
