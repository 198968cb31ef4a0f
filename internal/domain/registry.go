package domain

// Registry collects outputs as the bootstrap discovers them, preserving
// registration order. The first registered output is the provisional
// default until Select installs an override.
type Registry struct {
	order    []uint32
	outputs  map[uint32]*Output
	selected *Output
}

// NewRegistry returns an empty output registry.
func NewRegistry() *Registry {
	return &Registry{outputs: make(map[uint32]*Output)}
}

// Register inserts an output under its global name and returns it. The
// first registration becomes the provisional default. Registering the
// same global twice returns the existing descriptor.
func (r *Registry) Register(global uint32) *Output {
	if out, ok := r.outputs[global]; ok {
		return out
	}
	out := &Output{Global: global}
	r.outputs[global] = out
	r.order = append(r.order, global)
	if r.selected == nil {
		r.selected = out
	}
	return out
}

// Apply reduces an event onto the output registered under global. Events
// for unknown globals are dropped.
func (r *Registry) Apply(global uint32, ev OutputEvent) {
	if out, ok := r.outputs[global]; ok {
		*out = Apply(*out, ev)
	}
}

// Len reports the number of registered outputs.
func (r *Registry) Len() int { return len(r.order) }

// Outputs returns all registered outputs in registration order.
func (r *Registry) Outputs() []*Output {
	outs := make([]*Output, 0, len(r.order))
	for _, global := range r.order {
		outs = append(outs, r.outputs[global])
	}
	return outs
}

// Select installs the output matching label as the default. The scan runs
// in registration order and the first output whose make, or whose
// "make model" concatenation, equals label wins. An empty or unmatched
// label leaves the current default in place.
func (r *Registry) Select(label string) {
	if label == "" {
		return
	}
	for _, global := range r.order {
		out := r.outputs[global]
		if out.Make == label || out.Make+" "+out.Model == label {
			r.selected = out
			return
		}
	}
}

// Selected returns the current default output, or nil when nothing has
// been registered.
func (r *Registry) Selected() *Output { return r.selected }

// Finalize returns the selected output. It fails when no output was ever
// registered, which means the compositor advertised no displays.
func (r *Registry) Finalize() (*Output, error) {
	if r.selected == nil {
		return nil, Errorf(Protocol, "unable to get outputs")
	}
	return r.selected, nil
}
