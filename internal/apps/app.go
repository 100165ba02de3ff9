// Package apps discovers installed applications and launches them.
package apps

import (
	"fmt"
	"path"
	"strings"
)

// AppInfo describes one launchable application.
type AppInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Vendor   string `json:"vendor"`
	Path     string `json:"path"`
	IconPath string `json:"icon_path,omitempty"`
	Category string `json:"category"`

	bundle string
}

// HasIcon reports whether the app ships an icon.
func (a AppInfo) HasIcon() bool { return a.IconPath != "" }

// ExecPath returns the executable path of bundle <vendor>/<name> under root.
func ExecPath(root, vendor, name string) string {
	return path.Join(root, vendor, name, name+".app")
}

const cacheFields = 5

// ParseCacheLine parses one `vendor|name|display_name|icon_path|category`
// line. Blank lines and `#` comments return ok=false with no error.
func ParseCacheLine(line, root string) (info AppInfo, ok bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return AppInfo{}, false, nil
	}

	parts := strings.Split(line, "|")
	if len(parts) < cacheFields {
		return AppInfo{}, false, fmt.Errorf("expected %d fields, got %d", cacheFields, len(parts))
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	vendor, name := parts[0], parts[1]
	if vendor == "" || name == "" {
		return AppInfo{}, false, fmt.Errorf("vendor and name are required")
	}

	return AppInfo{
		ID:       vendor + "." + name,
		Name:     parts[2],
		Vendor:   vendor,
		Path:     ExecPath(root, vendor, name),
		IconPath: parts[3],
		Category: parts[4],
		bundle:   name,
	}, true, nil
}

// CacheLine renders info in the apps cache format.
func (a AppInfo) CacheLine() string {
	name := a.bundle
	if name == "" {
		name = strings.TrimPrefix(a.ID, a.Vendor+".")
	}
	return strings.Join([]string{a.Vendor, name, a.Name, a.IconPath, a.Category}, "|")
}
