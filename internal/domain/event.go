package domain

// EventKind identifies one inbound protocol event that mutates an output.
type EventKind int

const (
	// Basic wl_output events.
	EventGeometry EventKind = iota
	EventMode
	EventScale
	EventDone

	// Extended xdg-output events.
	EventLogicalPosition
	EventLogicalSize
	EventName
	EventDescription
)

// OutputEvent is the decoded payload of a single protocol event. Only the
// fields relevant to its Kind are meaningful.
type OutputEvent struct {
	Kind EventKind

	X, Y           int32
	Width, Height  int32
	PhysicalWidth  int32
	PhysicalHeight int32
	Subpixel       Subpixel
	Transform      Transform
	Scale          int32
	RefreshMHz     int32

	Make, Model       string
	Name, Description string
}

// Apply reduces one event onto an output descriptor and returns the
// updated copy. The listener callbacks of the wire protocol all funnel
// through here, so the accumulation logic can be exercised with synthetic
// events and no connection.
func Apply(o Output, ev OutputEvent) Output {
	switch ev.Kind {
	case EventGeometry:
		o.X = ev.X
		o.Y = ev.Y
		o.PhysicalWidth = ev.PhysicalWidth
		o.PhysicalHeight = ev.PhysicalHeight
		o.Subpixel = ev.Subpixel
		o.Transform = ev.Transform
		o.Make = ev.Make
		o.Model = ev.Model
	case EventMode:
		o.Width = ev.Width
		o.Height = ev.Height
		o.RefreshHz = float64(ev.RefreshMHz) / 1000
	case EventScale:
		o.Scale = ev.Scale
	case EventLogicalPosition:
		o.X = ev.X
		o.Y = ev.Y
	case EventLogicalSize:
		// Logical size wins over the mode size when both arrive.
		o.Width = ev.Width
		o.Height = ev.Height
	case EventName:
		o.Name = ev.Name
	case EventDescription:
		o.Description = ev.Description
	case EventDone:
		// Synchronization marker, no fields to apply.
	}
	return o
}
