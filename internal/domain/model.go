package domain

// Subpixel layout of an output, as advertised by the compositor.
type Subpixel int32

const (
	SubpixelUnknown       Subpixel = 0
	SubpixelNone          Subpixel = 1
	SubpixelHorizontalRGB Subpixel = 2
	SubpixelHorizontalBGR Subpixel = 3
	SubpixelVerticalRGB   Subpixel = 4
	SubpixelVerticalBGR   Subpixel = 5
)

// Transform is the rotation/flip applied to an output.
type Transform int32

const (
	TransformNormal     Transform = 0
	Transform90         Transform = 1
	Transform180        Transform = 2
	Transform270        Transform = 3
	TransformFlipped    Transform = 4
	TransformFlipped90  Transform = 5
	TransformFlipped180 Transform = 6
	TransformFlipped270 Transform = 7
)

// Output describes one display advertised by the compositor. X/Y and
// Width/Height are logical pixels; PhysicalWidth/PhysicalHeight are
// millimeters. Name and Description come from the extended xdg-output
// events and stay empty when the compositor never advertises that
// capability.
type Output struct {
	// Global is the registry name the compositor announced the output
	// under. It identifies the output for the whole session.
	Global uint32

	Name        string
	Description string
	Make        string
	Model       string

	X      int32
	Y      int32
	Width  int32
	Height int32

	PhysicalWidth  int32
	PhysicalHeight int32

	Subpixel  Subpixel
	Transform Transform
	Scale     int32

	// RefreshHz is derived from the advertised milli-hertz rate.
	RefreshHz float64
}
