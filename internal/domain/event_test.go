package domain

import "testing"

func TestApply_GeometryEvent(t *testing.T) {
	out := Output{Global: 7}
	out = Apply(out, OutputEvent{
		Kind:           EventGeometry,
		X:              100,
		Y:              200,
		PhysicalWidth:  600,
		PhysicalHeight: 340,
		Subpixel:       SubpixelHorizontalRGB,
		Transform:      Transform90,
		Make:           "Acme",
		Model:          "X1",
	})

	if out.X != 100 || out.Y != 200 {
		t.Errorf("position = (%d,%d), want (100,200)", out.X, out.Y)
	}
	if out.PhysicalWidth != 600 || out.PhysicalHeight != 340 {
		t.Errorf("physical size = %dx%d, want 600x340", out.PhysicalWidth, out.PhysicalHeight)
	}
	if out.Make != "Acme" || out.Model != "X1" {
		t.Errorf("make/model = %q/%q", out.Make, out.Model)
	}
	if out.Subpixel != SubpixelHorizontalRGB || out.Transform != Transform90 {
		t.Errorf("subpixel/transform = %v/%v", out.Subpixel, out.Transform)
	}
}

func TestApply_ModeDerivesRefreshHz(t *testing.T) {
	out := Apply(Output{}, OutputEvent{Kind: EventMode, Width: 1920, Height: 1080, RefreshMHz: 59997})
	if out.Width != 1920 || out.Height != 1080 {
		t.Errorf("size = %dx%d, want 1920x1080", out.Width, out.Height)
	}
	if out.RefreshHz != 59.997 {
		t.Errorf("refresh = %v Hz, want 59.997", out.RefreshHz)
	}
}

func TestApply_LogicalSizeWinsOverMode(t *testing.T) {
	out := Apply(Output{}, OutputEvent{Kind: EventMode, Width: 3840, Height: 2160, RefreshMHz: 60000})
	out = Apply(out, OutputEvent{Kind: EventLogicalSize, Width: 1920, Height: 1080})
	if out.Width != 1920 || out.Height != 1080 {
		t.Errorf("size = %dx%d, want logical 1920x1080", out.Width, out.Height)
	}
	if out.RefreshHz != 60 {
		t.Errorf("refresh = %v Hz, want 60", out.RefreshHz)
	}
}

func TestApply_ExtendedEvents(t *testing.T) {
	out := Output{}
	out = Apply(out, OutputEvent{Kind: EventLogicalPosition, X: 1920, Y: 0})
	out = Apply(out, OutputEvent{Kind: EventName, Name: "DP-1"})
	out = Apply(out, OutputEvent{Kind: EventDescription, Description: "Acme X1 27\""})
	out = Apply(out, OutputEvent{Kind: EventScale, Scale: 2})

	if out.X != 1920 || out.Y != 0 {
		t.Errorf("position = (%d,%d), want (1920,0)", out.X, out.Y)
	}
	if out.Name != "DP-1" || out.Description != "Acme X1 27\"" {
		t.Errorf("name/description = %q/%q", out.Name, out.Description)
	}
	if out.Scale != 2 {
		t.Errorf("scale = %d, want 2", out.Scale)
	}
}

func TestApply_DoneIsNoop(t *testing.T) {
	before := Output{Global: 3, Make: "Acme", Width: 800}
	after := Apply(before, OutputEvent{Kind: EventDone})
	if after != before {
		t.Errorf("done event mutated output: %+v != %+v", after, before)
	}
}
