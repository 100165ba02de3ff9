package panel

import (
	"fmt"
	"testing"

	"github.com/1broseidon/glasshell/internal/apps"
	"github.com/1broseidon/glasshell/internal/config"
	"github.com/1broseidon/glasshell/internal/geom"
	"github.com/1broseidon/glasshell/internal/glass"
)

var screen = geom.Size{Width: 1920, Height: 1080}

func settle(t *testing.T, p Panel) int {
	t.Helper()
	for i := 1; i <= 100; i++ {
		if !p.UpdateAnimation() {
			return i
		}
	}
	t.Fatalf("%s panel never settled", p.Kind())
	return 0
}

func testApps(n int) []apps.AppInfo {
	out := make([]apps.AppInfo, n)
	for i := range out {
		name := fmt.Sprintf("app%d", i)
		out[i] = apps.AppInfo{ID: "test." + name, Name: name, Vendor: "test", Path: "/apps/test/" + name + "/" + name + ".app"}
	}
	return out
}

func TestRestingBounds(t *testing.T) {
	layout := config.DefaultLayout()

	tests := []struct {
		p    Panel
		want geom.Rect
	}{
		{NewWidget(screen, layout, 0.15, nil), geom.Rect{X: 8, Y: 516, Width: 380, Height: 500}},
		{NewLauncher(screen, layout, 0.12, nil), geom.Rect{X: 760, Y: 516, Width: 400, Height: 500}},
		{NewQuickSettings(screen, layout, 0.15, nil), geom.Rect{X: 1592, Y: 736, Width: 320, Height: 280}},
	}
	for _, tt := range tests {
		if got := tt.p.Bounds(); got != tt.want {
			t.Fatalf("%s bounds = %+v, want %+v", tt.p.Kind(), got, tt.want)
		}
	}
}

func TestResizeRepositions(t *testing.T) {
	p := NewQuickSettings(screen, config.DefaultLayout(), 0.15, nil)
	p.Resize(geom.Size{Width: 1280, Height: 720})
	if got := p.Bounds(); got.X != 1280-320-8 || got.Y != 720-56-280-8 {
		t.Fatalf("bounds after resize = %+v", got)
	}
}

func TestAnimationOpensAndCloses(t *testing.T) {
	p := NewWidget(screen, config.DefaultLayout(), 0.15, nil)

	if p.IsVisible() {
		t.Fatal("new panel should be hidden")
	}
	if p.UpdateAnimation() {
		t.Fatal("hidden panel at rest should not animate")
	}

	p.SetVisible(true)
	if !p.IsVisible() {
		t.Fatal("panel should be visible as soon as its target is set")
	}
	if !p.UpdateAnimation() {
		t.Fatal("first step should report movement")
	}
	if got := p.Progress(); got < 0.149 || got > 0.151 {
		t.Fatalf("progress after one step = %v, want 0.15", got)
	}
	settle(t, p)
	if p.Progress() != 1 {
		t.Fatalf("progress = %v, want 1", p.Progress())
	}

	p.SetVisible(false)
	if !p.IsVisible() {
		t.Fatal("closing panel should stay visible while it slides out")
	}
	p.UpdateAnimation()
	if !p.IsVisible() {
		t.Fatal("panel should still be visible mid-close")
	}
	settle(t, p)
	if p.Progress() != 0 || p.IsVisible() {
		t.Fatalf("closed panel progress = %v visible = %v", p.Progress(), p.IsVisible())
	}
}

func TestProgressStaysInRange(t *testing.T) {
	for _, speed := range []float64{0.12, 0.15, 0.7, 1} {
		p := NewLauncher(screen, config.DefaultLayout(), speed, nil)
		p.SetVisible(true)
		for i := 0; i < 30; i++ {
			p.UpdateAnimation()
			if pr := p.Progress(); pr < 0 || pr > 1 {
				t.Fatalf("speed %v: progress %v out of range", speed, pr)
			}
		}
		p.SetVisible(false)
		for i := 0; i < 30; i++ {
			p.UpdateAnimation()
			if pr := p.Progress(); pr < 0 || pr > 1 {
				t.Fatalf("speed %v: progress %v out of range", speed, pr)
			}
		}
	}
}

func TestToggleWhileClosingKeepsClosing(t *testing.T) {
	p := NewWidget(screen, config.DefaultLayout(), 0.15, nil)
	p.SetVisible(true)
	settle(t, p)

	p.SetVisible(false)
	p.UpdateAnimation()
	// Still visible on screen, so Toggle targets hidden.
	p.Toggle()
	settle(t, p)
	if p.IsVisible() {
		t.Fatal("toggle during close should leave the panel closing")
	}

	p.Toggle()
	if !p.IsVisible() {
		t.Fatal("toggle on a hidden panel should open it")
	}
}

func TestAnimatedPosition(t *testing.T) {
	p := NewWidget(screen, config.DefaultLayout(), 0.5, nil)
	p.SetVisible(true)
	p.UpdateAnimation()

	if got := p.animated().Y; got != 1080+(516-1080)/2 {
		t.Fatalf("animated y = %d, want %d", got, 1080+(516-1080)/2)
	}
	p.UpdateAnimation()
	if got := p.animated(); got != p.Bounds() {
		t.Fatalf("fully open bounds = %+v, want resting %+v", got, p.Bounds())
	}
}

func TestHiddenPanelsIgnoreClicks(t *testing.T) {
	layout := config.DefaultLayout()
	for _, p := range []Panel{
		NewWidget(screen, layout, 0.15, nil),
		NewLauncher(screen, layout, 0.12, nil),
		NewQuickSettings(screen, layout, 0.15, nil),
	} {
		b := p.Bounds()
		if p.HandleClick(b.X+10, b.Y+10) {
			t.Fatalf("%s: hidden panel consumed click", p.Kind())
		}
		p.SetVisible(true)
		if !p.HandleClick(b.X+10, b.Y+10) {
			t.Fatalf("%s: visible panel should consume click inside bounds", p.Kind())
		}
		if p.HandleClick(b.X-1, b.Y-1) {
			t.Fatalf("%s: click outside bounds consumed", p.Kind())
		}
	}
}

func TestLauncherClickQueuesLaunchAndCloses(t *testing.T) {
	p := NewLauncher(screen, config.DefaultLayout(), 0.12, nil)
	list := testApps(3)
	p.SetApps(list)
	p.SetVisible(true)

	// First row starts at 516 + 16 + 24 + 12 = 568.
	if !p.HandleClick(800, 570) {
		t.Fatal("click on row should be consumed")
	}
	a := p.TakeAction()
	if a.Kind != ActionLaunch || a.Path != list[0].Path {
		t.Fatalf("action = %+v, want launch of %q", a, list[0].Path)
	}
	if again := p.TakeAction(); again.Kind != ActionNone {
		t.Fatalf("second TakeAction = %+v, want none", again)
	}
	if p.visible {
		t.Fatal("launching should close the launcher")
	}

	p.SetVisible(true)
	if !p.HandleClick(800, 568+2*56+5) {
		t.Fatal("click should be consumed")
	}
	if a := p.TakeAction(); a.Path != list[2].Path {
		t.Fatalf("third row launched %q, want %q", a.Path, list[2].Path)
	}

	p.SetVisible(true)
	p.HandleClick(800, 568+3*56+5)
	if a := p.TakeAction(); a.Kind != ActionNone {
		t.Fatalf("click below the list queued %+v", a)
	}
}

func TestLauncherScroll(t *testing.T) {
	p := NewLauncher(screen, config.DefaultLayout(), 0.12, nil)
	list := testApps(10)
	p.SetApps(list)

	if p.Scroll(1) {
		t.Fatal("hidden launcher should not scroll")
	}
	p.SetVisible(true)

	// Viewport is 500 - 52 - 16 = 432px; 10 rows are 560px.
	if !p.Scroll(1) || p.ScrollOffset() != 56 {
		t.Fatalf("scroll offset = %d, want 56", p.ScrollOffset())
	}
	p.Scroll(10)
	if p.ScrollOffset() != 128 {
		t.Fatalf("scroll offset = %d, want clamp at 128", p.ScrollOffset())
	}
	if p.Scroll(1) {
		t.Fatal("scrolling past the end should report no movement")
	}
	p.Scroll(-10)
	if p.ScrollOffset() != 0 {
		t.Fatalf("scroll offset = %d, want 0", p.ScrollOffset())
	}

	p.Scroll(1)
	p.HandleClick(800, 570)
	if a := p.TakeAction(); a.Path != list[1].Path {
		t.Fatalf("scrolled click launched %q, want %q", a.Path, list[1].Path)
	}
	if p.ScrollOffset() != 0 {
		t.Fatal("closing the launcher should reset scroll")
	}
}

func TestLauncherHover(t *testing.T) {
	p := NewLauncher(screen, config.DefaultLayout(), 0.12, nil)
	p.SetApps(testApps(2))
	p.SetVisible(true)

	if !p.Hover(800, 570) {
		t.Fatal("hover over first row should change state")
	}
	if p.Hover(800, 572) {
		t.Fatal("hover within the same row should not change state")
	}
	if !p.Hover(10, 10) {
		t.Fatal("leaving the panel should clear hover")
	}
}

func TestQuickSettingsToggle(t *testing.T) {
	p := NewQuickSettings(screen, config.DefaultLayout(), 0.15, nil)
	p.SetVisible(true)

	if p.Enabled(SettingBluetooth) {
		t.Fatal("bluetooth should start disabled")
	}
	// Second tile: x = 1592 + 16 + 92, y = 736 + 16.
	if !p.HandleClick(1710, 760) {
		t.Fatal("click on tile should be consumed")
	}
	a := p.TakeAction()
	if a.Kind != ActionToggleSetting || a.Setting != SettingBluetooth || !a.Enabled {
		t.Fatalf("action = %+v", a)
	}
	if !p.Enabled(SettingBluetooth) {
		t.Fatal("bluetooth should now be enabled")
	}

	// Gap between tiles: consumed, nothing toggled.
	if !p.HandleClick(1592+16+80+4, 760) {
		t.Fatal("click in the gap should still be consumed")
	}
	if a := p.TakeAction(); a.Kind != ActionNone {
		t.Fatalf("gap click queued %+v", a)
	}
}

func TestDrawOnlyWhenVisible(t *testing.T) {
	small := geom.Size{Width: 640, Height: 640}
	layout := config.DefaultLayout()
	c := glass.NewCanvas(small)
	c.Clear(0xFF000000)

	p := NewWidget(small, layout, 1, nil)
	p.Draw(c)
	for _, px := range c.Pix {
		if px != 0xFF000000 {
			t.Fatal("hidden panel drew pixels")
		}
	}

	p.SetVisible(true)
	p.UpdateAnimation()
	p.Draw(c)
	b := p.Bounds()
	if c.PixelAt(b.X+b.Width/2, b.Y+5) == 0xFF000000 {
		t.Fatal("open panel should paint its background")
	}
}

func TestProgressRisesMonotonicallyToOne(t *testing.T) {
	layout := config.DefaultLayout()
	for _, speed := range []float64{0.12, 0.13, 0.14, 0.15} {
		for _, p := range []Panel{
			NewWidget(screen, layout, speed, nil),
			NewLauncher(screen, layout, speed, nil),
			NewQuickSettings(screen, layout, speed, nil),
		} {
			p.SetVisible(true)
			prev := p.Progress()
			steps := 0
			for p.UpdateAnimation() {
				steps++
				if steps > 100 {
					t.Fatalf("%s at speed %v never settled", p.Kind(), speed)
				}
				got := p.Progress()
				if got <= prev {
					t.Fatalf("%s at speed %v: progress %v after %v", p.Kind(), speed, got, prev)
				}
				prev = got
			}
			if p.Progress() != 1.0 {
				t.Fatalf("%s at speed %v settled at %v, want exactly 1", p.Kind(), speed, p.Progress())
			}
			if p.UpdateAnimation() {
				t.Fatalf("%s at speed %v still animating after settling", p.Kind(), speed)
			}
		}
	}
}
