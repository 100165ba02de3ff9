package x11

import (
	"errors"
	"fmt"
	"sort"

	"github.com/BurntSushi/xgb/randr"
)

// Monitor represents a physical display
type Monitor struct {
	ID     int
	Name   string
	X      int
	Y      int
	Width  int
	Height int
}

// GetMonitors retrieves all active monitors using XRandR
func (c *Connection) GetMonitors() ([]Monitor, error) {
	if err := randr.Init(c.XUtil.Conn()); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	resources, err := randr.GetScreenResources(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var monitors []Monitor
	for i, crtc := range resources.Crtcs {
		info, err := randr.GetCrtcInfo(c.XUtil.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}
		// Disabled CRTC.
		if info.Width == 0 || info.Height == 0 || len(info.Outputs) == 0 {
			continue
		}

		name := fmt.Sprintf("Monitor%d", i)
		if out, err := randr.GetOutputInfo(c.XUtil.Conn(), info.Outputs[0], resources.ConfigTimestamp).Reply(); err == nil {
			name = string(out.Name)
		}

		monitors = append(monitors, Monitor{
			ID:     i,
			Name:   name,
			X:      int(info.X),
			Y:      int(info.Y),
			Width:  int(info.Width),
			Height: int(info.Height),
		})
	}
	return monitors, nil
}

var errNoMonitors = errors.New("no monitors found")

// PrimaryMonitor returns the monitor the shell lives on. Without RandR it
// falls back to the root screen.
func (c *Connection) PrimaryMonitor() (Monitor, error) {
	monitors, err := c.GetMonitors()
	if err == nil {
		if m, err := pickPrimary(monitors); err == nil {
			return m, nil
		}
	}

	screen := c.XUtil.Screen()
	if screen == nil || screen.WidthInPixels == 0 || screen.HeightInPixels == 0 {
		return Monitor{}, errNoMonitors
	}
	return Monitor{
		Name:   "screen",
		Width:  int(screen.WidthInPixels),
		Height: int(screen.HeightInPixels),
	}, nil
}

// pickPrimary prefers the monitor at the origin, then the lowest id.
func pickPrimary(monitors []Monitor) (Monitor, error) {
	if len(monitors) == 0 {
		return Monitor{}, errNoMonitors
	}
	sorted := append([]Monitor(nil), monitors...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	for _, m := range sorted {
		if m.X == 0 && m.Y == 0 {
			return m, nil
		}
	}
	return sorted[0], nil
}
