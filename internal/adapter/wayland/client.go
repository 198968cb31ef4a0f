package wayland

import (
	"io"

	"xwayback/internal/domain"
)

// Core protocol object ids and opcodes.
const (
	displayID uint32 = 1

	displaySync        uint16 = 0
	displayGetRegistry uint16 = 1
	displayEvError     uint16 = 0
	displayEvDeleteID  uint16 = 1

	registryBind           uint16 = 0
	registryEvGlobal       uint16 = 0
	registryEvGlobalRemove uint16 = 1

	callbackEvDone uint16 = 0

	outputEvGeometry uint16 = 0
	outputEvMode     uint16 = 1
	outputEvDone     uint16 = 2
	outputEvScale    uint16 = 3

	managerGetXDGOutput uint16 = 1

	xdgEvLogicalPosition uint16 = 0
	xdgEvLogicalSize     uint16 = 1
	xdgEvDone            uint16 = 2
	xdgEvName            uint16 = 3
	xdgEvDescription     uint16 = 4
)

const (
	outputInterface  = "wl_output"
	managerInterface = "zxdg_output_manager_v1"

	// Highest interface revisions the client understands.
	outputMaxVersion  = 3
	managerMaxVersion = 2
)

// boundOutput tracks the protocol objects bound for one output global.
type boundOutput struct {
	global uint32 // registry name, the output's identity
	id     uint32 // wl_output object
	xdgID  uint32 // zxdg_output_v1 object, 0 until bound
}

// Client drives the one-shot output discovery against the compositor.
type Client struct {
	conn   io.ReadWriter
	logger domain.Logger
	reg    *domain.Registry

	nextID   uint32
	registry uint32
	manager  uint32 // zxdg_output_manager_v1 object, 0 until advertised

	outputs   map[uint32]*boundOutput // wl_output object id → output
	xdg       map[uint32]*boundOutput // zxdg_output object id → output
	callbacks map[uint32]bool         // outstanding sync callbacks
}

// NewClient creates a bootstrap client over an established connection.
func NewClient(logger domain.Logger) *Client {
	return &Client{logger: logger}
}

// Discover runs the bootstrap: bind the registry, collect output globals
// behind the first barrier, bind extended output objects, and collect
// their attributes behind the second barrier. Extended attributes are
// not read before the second barrier completes; if the compositor never
// advertises the extended-info capability they simply stay at their
// zero values.
func (c *Client) Discover(conn io.ReadWriter, reg *domain.Registry) error {
	c.conn = conn
	c.reg = reg
	c.nextID = displayID
	c.outputs = make(map[uint32]*boundOutput)
	c.xdg = make(map[uint32]*boundOutput)
	c.callbacks = make(map[uint32]bool)

	c.registry = c.newID()
	var req argWriter
	req.putUint32(c.registry)
	if err := writeMessage(c.conn, message{Object: displayID, Opcode: displayGetRegistry, Data: req.buf}); err != nil {
		return domain.Errorf(domain.Protocol, "get registry: %w", err)
	}

	// Barrier 1: all registry globals and capability announcements have
	// been delivered. Extended bind requests are issued as the globals
	// arrive, so by the time this returns every known output has its
	// bind request queued.
	if err := c.roundtrip(); err != nil {
		return err
	}

	// Barrier 2: extended attributes are populated for every output.
	if err := c.roundtrip(); err != nil {
		return err
	}

	c.logger.Debug("output discovery complete", "outputs", reg.Len())
	return nil
}

func (c *Client) newID() uint32 {
	c.nextID++
	return c.nextID
}

// roundtrip issues a sync and dispatches inbound events until its
// callback fires, guaranteeing all previously sent requests have been
// processed and their replies flushed.
func (c *Client) roundtrip() error {
	callback := c.newID()
	c.callbacks[callback] = true

	var req argWriter
	req.putUint32(callback)
	if err := writeMessage(c.conn, message{Object: displayID, Opcode: displaySync, Data: req.buf}); err != nil {
		return domain.Errorf(domain.Protocol, "sync: %w", err)
	}

	for c.callbacks[callback] {
		m, err := readMessage(c.conn)
		if err != nil {
			return domain.Errorf(domain.Protocol, "read event: %w", err)
		}
		if err := c.dispatch(m); err != nil {
			return err
		}
	}
	return nil
}

// dispatch routes one inbound message to its object handler. Events for
// objects the client never bound are silently dropped.
func (c *Client) dispatch(m message) error {
	switch {
	case m.Object == displayID:
		return c.handleDisplay(m)
	case m.Object == c.registry:
		return c.handleRegistry(m)
	case c.callbacks[m.Object]:
		if m.Opcode == callbackEvDone {
			delete(c.callbacks, m.Object)
		}
		return nil
	default:
		if out, ok := c.outputs[m.Object]; ok {
			return c.handleOutput(out, m)
		}
		if out, ok := c.xdg[m.Object]; ok {
			return c.handleXDGOutput(out, m)
		}
		return nil
	}
}

func (c *Client) handleDisplay(m message) error {
	switch m.Opcode {
	case displayEvError:
		args := argReader{data: m.Data}
		object := args.uint32()
		code := args.uint32()
		text := args.string()
		return domain.Errorf(domain.Protocol, "compositor error on object %d (code %d): %s", object, code, text)
	case displayEvDeleteID:
		// Object id reclamation; nothing to free on our side.
	}
	return nil
}

func (c *Client) handleRegistry(m message) error {
	switch m.Opcode {
	case registryEvGlobal:
		args := argReader{data: m.Data}
		name := args.uint32()
		iface := args.string()
		version := args.uint32()
		if args.err != nil {
			return domain.Errorf(domain.Protocol, "global event: %w", args.err)
		}
		return c.handleGlobal(name, iface, version)
	case registryEvGlobalRemove:
		// Outputs cannot disappear during the one-shot bootstrap window
		// in any way the launcher could act on.
	}
	return nil
}

func (c *Client) handleGlobal(name uint32, iface string, version uint32) error {
	switch iface {
	case outputInterface:
		id := c.newID()
		if err := c.bind(name, iface, min32(version, outputMaxVersion), id); err != nil {
			return err
		}
		out := &boundOutput{global: name, id: id}
		c.outputs[id] = out
		c.reg.Register(name)
		c.logger.Debug("output advertised", "global", name, "version", version)
		if c.manager != 0 {
			return c.bindExtended(out)
		}
	case managerInterface:
		c.manager = c.newID()
		if err := c.bind(name, iface, min32(version, managerMaxVersion), c.manager); err != nil {
			return err
		}
		c.logger.Debug("xdg output manager advertised", "global", name, "version", version)
		// The capability can arrive after outputs have already been
		// discovered; issue extended bindings for every known output.
		for _, out := range c.outputs {
			if out.xdgID == 0 {
				if err := c.bindExtended(out); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (c *Client) bind(name uint32, iface string, version, id uint32) error {
	var req argWriter
	req.putUint32(name)
	req.putString(iface)
	req.putUint32(version)
	req.putUint32(id)
	if err := writeMessage(c.conn, message{Object: c.registry, Opcode: registryBind, Data: req.buf}); err != nil {
		return domain.Errorf(domain.Protocol, "bind %s: %w", iface, err)
	}
	return nil
}

func (c *Client) bindExtended(out *boundOutput) error {
	out.xdgID = c.newID()
	c.xdg[out.xdgID] = out
	var req argWriter
	req.putUint32(out.xdgID)
	req.putUint32(out.id)
	if err := writeMessage(c.conn, message{Object: c.manager, Opcode: managerGetXDGOutput, Data: req.buf}); err != nil {
		return domain.Errorf(domain.Protocol, "get xdg output: %w", err)
	}
	return nil
}

func (c *Client) handleOutput(out *boundOutput, m message) error {
	args := argReader{data: m.Data}
	var ev domain.OutputEvent
	switch m.Opcode {
	case outputEvGeometry:
		ev.Kind = domain.EventGeometry
		ev.X = args.int32()
		ev.Y = args.int32()
		ev.PhysicalWidth = args.int32()
		ev.PhysicalHeight = args.int32()
		ev.Subpixel = domain.Subpixel(args.int32())
		ev.Make = args.string()
		ev.Model = args.string()
		ev.Transform = domain.Transform(args.int32())
	case outputEvMode:
		args.uint32() // flags
		ev.Kind = domain.EventMode
		ev.Width = args.int32()
		ev.Height = args.int32()
		ev.RefreshMHz = args.int32()
	case outputEvScale:
		ev.Kind = domain.EventScale
		ev.Scale = args.int32()
	case outputEvDone:
		ev.Kind = domain.EventDone
	default:
		return nil
	}
	if args.err != nil {
		return domain.Errorf(domain.Protocol, "output event %d: %w", m.Opcode, args.err)
	}
	c.reg.Apply(out.global, ev)
	return nil
}

func (c *Client) handleXDGOutput(out *boundOutput, m message) error {
	args := argReader{data: m.Data}
	var ev domain.OutputEvent
	switch m.Opcode {
	case xdgEvLogicalPosition:
		ev.Kind = domain.EventLogicalPosition
		ev.X = args.int32()
		ev.Y = args.int32()
	case xdgEvLogicalSize:
		ev.Kind = domain.EventLogicalSize
		ev.Width = args.int32()
		ev.Height = args.int32()
	case xdgEvName:
		ev.Kind = domain.EventName
		ev.Name = args.string()
	case xdgEvDescription:
		ev.Kind = domain.EventDescription
		ev.Description = args.string()
	case xdgEvDone:
		ev.Kind = domain.EventDone
	default:
		return nil
	}
	if args.err != nil {
		return domain.Errorf(domain.Protocol, "xdg output event %d: %w", m.Opcode, args.err)
	}
	c.reg.Apply(out.global, ev)
	return nil
}

func min32(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}

var _ domain.OutputDiscoverer = (*Client)(nil)
