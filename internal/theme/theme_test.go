package theme

import "testing"

func TestStylesCarryRadius(t *testing.T) {
	if got := Bar(12); got.CornerRadius != 12 || got.BorderThickness != 1 || got.Background != GlassBG {
		t.Fatalf("Bar(12) = %+v", got)
	}
	if got := Panel(16); got.CornerRadius != 16 || got.Background != MenuBG {
		t.Fatalf("Panel(16) = %+v", got)
	}
	if got := Button(); got.Background.Alpha() != 0 || got.BorderThickness != 0 {
		t.Fatalf("Button() should be fully transparent, got %+v", got)
	}
	if got := ButtonActive(); got.Border != Accent {
		t.Fatalf("ButtonActive().Border = %#08x, want accent", uint32(got.Border))
	}
}

func TestAppColorIsStable(t *testing.T) {
	a := AppColor("redstone.terminal")
	if a != AppColor("redstone.terminal") {
		t.Fatal("AppColor should be deterministic")
	}
	if a.Alpha() != 0xFF {
		t.Fatalf("AppColor alpha = %#x, want opaque", a.Alpha())
	}
}
