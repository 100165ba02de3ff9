package x11

import "testing"

func TestPickPrimary(t *testing.T) {
	tests := []struct {
		name     string
		monitors []Monitor
		wantID   int
		wantErr  bool
	}{
		{name: "none", wantErr: true},
		{
			name:     "single",
			monitors: []Monitor{{ID: 3, X: 100, Y: 0, Width: 800, Height: 600}},
			wantID:   3,
		},
		{
			name: "origin wins",
			monitors: []Monitor{
				{ID: 0, X: 1920, Y: 0, Width: 1280, Height: 1024},
				{ID: 1, X: 0, Y: 0, Width: 1920, Height: 1080},
			},
			wantID: 1,
		},
		{
			name: "lowest id without origin",
			monitors: []Monitor{
				{ID: 5, X: 10, Y: 10, Width: 640, Height: 480},
				{ID: 2, X: 700, Y: 10, Width: 640, Height: 480},
			},
			wantID: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pickPrimary(tt.monitors)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.ID != tt.wantID {
				t.Fatalf("primary = %d, want %d", got.ID, tt.wantID)
			}
		})
	}
}
