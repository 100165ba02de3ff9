package desktop

import (
	"go.uber.org/zap"

	"github.com/1broseidon/glasshell/internal/panel"
	"github.com/1broseidon/glasshell/internal/platform"
	"github.com/1broseidon/glasshell/internal/taskbar"
	"github.com/1broseidon/glasshell/internal/wire"
)

func (d *Desktop) processInput() {
	events, err := d.surface.PollEvents()
	if err != nil {
		d.log.Warn("input poll failed", zap.Error(err))
	}
	for _, ev := range events {
		switch ev.Kind {
		case platform.EventPress:
			d.handlePress(ev)
		case platform.EventMotion:
			if d.menu.Hover(ev.X, ev.Y) {
				d.dirty = true
			}
		case platform.EventResize:
			d.resize(ev.Size)
		case platform.EventExpose:
			d.dirty = true
		}
	}
}

func (d *Desktop) handlePress(ev platform.InputEvent) {
	switch ev.Button {
	case platform.ButtonWheelUp:
		if d.menu.Scroll(-1) {
			d.dirty = true
		}
	case platform.ButtonWheelDown:
		if d.menu.Scroll(1) {
			d.dirty = true
		}
	case platform.ButtonLeft:
		d.handleClick(ev.X, ev.Y)
	}
}

// handleClick dispatches a click top-down: quick settings, launcher, widget
// panel, taskbar. An unclaimed click closes every panel.
func (d *Desktop) handleClick(x, y int) {
	if d.quick.IsVisible() && d.quick.HandleClick(x, y) {
		d.metrics.Click("quick_settings")
		d.applyPanelAction(d.quick.TakeAction())
		d.dirty = true
		return
	}

	if d.menu.IsVisible() {
		if d.menu.HandleClick(x, y) {
			d.metrics.Click("launcher")
			d.applyPanelAction(d.menu.TakeAction())
			d.dirty = true
			return
		}
		d.menu.SetVisible(false)
		d.dirty = true
	}

	if d.widget.IsVisible() && d.widget.HandleClick(x, y) {
		d.metrics.Click("widget")
		d.dirty = true
		return
	}

	if d.taskbar.ContainsPoint(x, y) {
		action := d.taskbar.HandleClick(x, y)
		d.metrics.Click("taskbar_" + action.Kind.String())
		d.handleTaskbarAction(action)
		return
	}

	d.metrics.Click("desktop")
	d.closeAllPanels()
}

func (d *Desktop) handleTaskbarAction(a taskbar.Action) {
	switch a.Kind {
	case taskbar.ActionToggleWidgetPanel:
		d.togglePanel(d.widget)
	case taskbar.ActionToggleStartMenu:
		d.togglePanel(d.menu)
	case taskbar.ActionToggleQuickSettings:
		d.togglePanel(d.quick)
	case taskbar.ActionToggleWindow:
		d.toggleWindow(a.WindowID)
		d.dirty = true
	case taskbar.ActionLaunchApp:
		if app, ok := d.taskbar.App(a.AppIndex); ok {
			d.launch(app.Path)
		}
	}
}

// togglePanel closes the other panels and toggles p.
func (d *Desktop) togglePanel(p panel.Panel) {
	for _, other := range d.panels() {
		if other != p {
			other.SetVisible(false)
		}
	}
	p.Toggle()
	d.dirty = true
}

func (d *Desktop) closeAllPanels() {
	for _, p := range d.panels() {
		p.SetVisible(false)
	}
	d.dirty = true
}

// toggleWindow asks the compositor to restore a minimized window or minimize
// a visible one. The taskbar changes when the compositor reports back.
func (d *Desktop) toggleWindow(id uint32) {
	minimized, ok := d.taskbar.WindowMinimized(id)
	if !ok {
		return
	}
	op := wire.OpMinimizeWindow
	if minimized {
		op = wire.OpRestoreWindow
	}
	err := d.compositor.SendWindowOp(id, op)
	d.metrics.WindowOp(op.String(), err)
	if err != nil {
		d.log.Warn("window op failed", zap.Uint32("window", id), zap.Stringer("op", op), zap.Error(err))
	}
}

func (d *Desktop) applyPanelAction(a panel.Action) {
	switch a.Kind {
	case panel.ActionLaunch:
		d.launch(a.Path)
	case panel.ActionToggleSetting:
		d.log.Info("quick setting toggled", zap.Stringer("setting", a.Setting), zap.Bool("enabled", a.Enabled))
	}
}

func (d *Desktop) launch(path string) {
	if d.launcher == nil {
		d.log.Warn("no launcher configured", zap.String("path", path))
		return
	}
	pid, err := d.launcher.Launch(path)
	d.metrics.Launch(err)
	if err != nil {
		d.log.Warn("launch failed", zap.String("path", path), zap.Error(err))
		return
	}
	d.log.Info("app launched", zap.String("path", path), zap.Int("pid", pid))
}
