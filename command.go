package vita49

import (
	"fmt"
	"strings"
)

// ActionMode is the two-bit CAM action field.
type ActionMode uint8

const (
	ActionNoAction ActionMode = 0
	ActionDryRun   ActionMode = 1
	ActionExecute  ActionMode = 2
)

func (a ActionMode) String() string {
	switch a {
	case ActionNoAction:
		return "no_action"
	case ActionDryRun:
		return "dry_run"
	case ActionExecute:
		return "execute"
	}
	return fmt.Sprintf("reserved(%d)", uint8(a))
}

// TimingControl is the two-bit CAM timestamp-handling field.
type TimingControl uint8

const (
	TimingIgnoreTimestamp TimingControl = 0
	TimingDevice          TimingControl = 1
	TimingLate            TimingControl = 2
	TimingEarly           TimingControl = 3
)

// IDFormat selects a 32-bit identifier or a 128-bit UUID.
type IDFormat uint8

const (
	IDFormat32  IDFormat = 0
	IDFormat128 IDFormat = 1
)

// CAM is the Control/Acknowledge/Action Mode word leading every command
// payload. The controllee/controller enable and format bits are owned by
// the Command identifier setters; SetCAM leaves them untouched.
type CAM uint32

const (
	camControlleeEnable  = 31
	camControlleeFormat  = 30
	camControllerEnable  = 29
	camControllerFormat  = 28
	camPartialPermitted  = 27
	camWarningsPermitted = 26
	camErrorsPermitted   = 25
	camActionShift       = 23
	camNackOnly          = 22
	camValidation        = 20
	camExecution         = 19
	camState             = 18
	camWarningsIncluded  = 17
	camErrorsIncluded    = 16
	camTimingShift       = 14
)

const camIdentityMask CAM = 1<<camControlleeEnable | 1<<camControlleeFormat |
	1<<camControllerEnable | 1<<camControllerFormat

func (c CAM) bit(n uint) bool {
	return c&(1<<n) != 0
}

func (c *CAM) setBit(n uint, on bool) {
	if on {
		*c |= 1 << n
	} else {
		*c &^= 1 << n
	}
}

func (c CAM) ControlleeEnabled() bool       { return c.bit(camControlleeEnable) }
func (c CAM) ControlleeIDFormat() IDFormat  { return IDFormat(c >> camControlleeFormat & 1) }
func (c CAM) ControllerEnabled() bool       { return c.bit(camControllerEnable) }
func (c CAM) ControllerIDFormat() IDFormat  { return IDFormat(c >> camControllerFormat & 1) }

func (c CAM) PartialPacketPermitted() bool     { return c.bit(camPartialPermitted) }
func (c *CAM) SetPartialPacketPermitted(v bool) { c.setBit(camPartialPermitted, v) }

func (c CAM) WarningsPermitted() bool      { return c.bit(camWarningsPermitted) }
func (c *CAM) SetWarningsPermitted(v bool) { c.setBit(camWarningsPermitted, v) }

func (c CAM) ErrorsPermitted() bool      { return c.bit(camErrorsPermitted) }
func (c *CAM) SetErrorsPermitted(v bool) { c.setBit(camErrorsPermitted, v) }

func (c CAM) ActionMode() ActionMode { return ActionMode(c >> camActionShift & 0x3) }
func (c *CAM) SetActionMode(m ActionMode) {
	*c = *c&^(0x3<<camActionShift) | CAM(m&0x3)<<camActionShift
}

func (c CAM) NackOnly() bool      { return c.bit(camNackOnly) }
func (c *CAM) SetNackOnly(v bool) { c.setBit(camNackOnly, v) }

// Validation, Execution and State are ack-request bits on a control
// packet and the ack-type discriminator on an acknowledge packet.
func (c CAM) Validation() bool      { return c.bit(camValidation) }
func (c *CAM) SetValidation(v bool) { c.setBit(camValidation, v) }

func (c CAM) Execution() bool      { return c.bit(camExecution) }
func (c *CAM) SetExecution(v bool) { c.setBit(camExecution, v) }

func (c CAM) State() bool      { return c.bit(camState) }
func (c *CAM) SetState(v bool) { c.setBit(camState, v) }

// WarningsIncluded and ErrorsIncluded gate the WIF/EIF cascades of a
// V/X acknowledge payload.
func (c CAM) WarningsIncluded() bool      { return c.bit(camWarningsIncluded) }
func (c *CAM) SetWarningsIncluded(v bool) { c.setBit(camWarningsIncluded, v) }

func (c CAM) ErrorsIncluded() bool      { return c.bit(camErrorsIncluded) }
func (c *CAM) SetErrorsIncluded(v bool) { c.setBit(camErrorsIncluded, v) }

func (c CAM) TimingControl() TimingControl { return TimingControl(c >> camTimingShift & 0x3) }
func (c *CAM) SetTimingControl(t TimingControl) {
	*c = *c&^(0x3<<camTimingShift) | CAM(t&0x3)<<camTimingShift
}

// CommandPayload is the typed sub-payload of a command packet: Control,
// Cancellation, Ack (validation/execution) or QueryAck.
type CommandPayload interface {
	sizeWords() int
	encode(w *writer) error
	named() map[string]any
}

// Control carries the set-points of a control packet as a full CIF
// cascade, sharing the context field set.
type Control struct {
	Context
}

// QueryAck answers a query-state request with a context-shaped cascade
// of current values.
type QueryAck struct {
	Context
}

// Cancellation names fields of a previously issued control to cancel.
// Only indicator words travel on the wire; there are no data fields.
type Cancellation struct {
	f cifFields
}

// Cancel flags a field for cancellation.
func (c *Cancellation) Cancel(f Field) {
	c.f.markPresent(f)
}

func (c *Cancellation) Uncancel(f Field) {
	d := &fieldDefs[f]
	c.f.wordPtr(d.cif).setBit(d.bit, false)
	c.f.syncEnables()
}

func (c *Cancellation) Cancelled(f Field) bool {
	return c.f.fieldPresent(f)
}

func (c *Cancellation) Cif0() uint32 {
	c.f.syncEnables()
	return uint32(c.f.cif0)
}

func (c *Cancellation) sizeWords() int {
	return c.f.indicatorWordCount()
}

func (c *Cancellation) encode(w *writer) error {
	c.f.encodeIndicators(w)
	return nil
}

func (c *Cancellation) named() map[string]any {
	c.f.syncEnables()
	m := map[string]any{"cif0": uint32(c.f.cif0)}
	var cancelled []string
	for _, f := range Fields() {
		if c.f.fieldPresent(f) {
			cancelled = append(cancelled, f.Name())
		}
	}
	m["fields"] = cancelled
	return m
}

// Command is the body of a command packet: CAM word, message id,
// optional controllee/controller identifiers whose width follows the CAM
// format bits, and the typed sub-payload.
type Command struct {
	cam            CAM
	messageID      uint32
	controlleeID   *uint32
	controlleeUUID *UUID
	controllerID   *uint32
	controllerUUID *UUID
	payload        CommandPayload
}

func (c *Command) CAM() CAM {
	return c.cam
}

// SetCAM replaces the free CAM bits. The identifier enable and format
// bits are preserved; they change only through the identifier setters.
func (c *Command) SetCAM(m CAM) {
	c.cam = c.cam&camIdentityMask | m&^camIdentityMask
}

func (c *Command) MessageID() uint32 {
	return c.messageID
}

func (c *Command) SetMessageID(id uint32) {
	c.messageID = id
}

func (c *Command) ControlleeID() (uint32, bool) { return getU32(c.controlleeID) }

// SetControlleeID installs a 32-bit controllee identifier and drives the
// CAM enable and format bits.
func (c *Command) SetControlleeID(id uint32) error {
	if c.controlleeUUID != nil {
		return fmt.Errorf("%w: controllee uuid already set", ErrInvalidState)
	}
	c.controlleeID = &id
	c.cam.setBit(camControlleeEnable, true)
	c.cam.setBit(camControlleeFormat, false)
	return nil
}

func (c *Command) ClearControlleeID() {
	c.controlleeID = nil
	if c.controlleeUUID == nil {
		c.cam.setBit(camControlleeEnable, false)
		c.cam.setBit(camControlleeFormat, false)
	}
}

func (c *Command) ControlleeUUID() (UUID, bool) {
	if c.controlleeUUID == nil {
		return UUID{}, false
	}
	return *c.controlleeUUID, true
}

func (c *Command) SetControlleeUUID(u UUID) error {
	if c.controlleeID != nil {
		return fmt.Errorf("%w: controllee id already set", ErrInvalidState)
	}
	c.controlleeUUID = &u
	c.cam.setBit(camControlleeEnable, true)
	c.cam.setBit(camControlleeFormat, true)
	return nil
}

func (c *Command) ClearControlleeUUID() {
	c.controlleeUUID = nil
	if c.controlleeID == nil {
		c.cam.setBit(camControlleeEnable, false)
	}
	c.cam.setBit(camControlleeFormat, false)
}

func (c *Command) ControllerID() (uint32, bool) { return getU32(c.controllerID) }

func (c *Command) SetControllerID(id uint32) error {
	if c.controllerUUID != nil {
		return fmt.Errorf("%w: controller uuid already set", ErrInvalidState)
	}
	c.controllerID = &id
	c.cam.setBit(camControllerEnable, true)
	c.cam.setBit(camControllerFormat, false)
	return nil
}

func (c *Command) ClearControllerID() {
	c.controllerID = nil
	if c.controllerUUID == nil {
		c.cam.setBit(camControllerEnable, false)
		c.cam.setBit(camControllerFormat, false)
	}
}

func (c *Command) ControllerUUID() (UUID, bool) {
	if c.controllerUUID == nil {
		return UUID{}, false
	}
	return *c.controllerUUID, true
}

func (c *Command) SetControllerUUID(u UUID) error {
	if c.controllerID != nil {
		return fmt.Errorf("%w: controller id already set", ErrInvalidState)
	}
	c.controllerUUID = &u
	c.cam.setBit(camControllerEnable, true)
	c.cam.setBit(camControllerFormat, true)
	return nil
}

func (c *Command) ClearControllerUUID() {
	c.controllerUUID = nil
	if c.controllerID == nil {
		c.cam.setBit(camControllerEnable, false)
	}
	c.cam.setBit(camControllerFormat, false)
}

// Payload returns the typed sub-payload.
func (c *Command) Payload() CommandPayload {
	return c.payload
}

func (c *Command) Control() (*Control, error) {
	if p, ok := c.payload.(*Control); ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w: not a control payload", ErrInvalidState)
}

func (c *Command) Cancellation() (*Cancellation, error) {
	if p, ok := c.payload.(*Cancellation); ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w: not a cancellation payload", ErrInvalidState)
}

func (c *Command) ValidationAck() (*Ack, error) {
	if p, ok := c.payload.(*Ack); ok && !p.execution {
		return p, nil
	}
	return nil, fmt.Errorf("%w: not a validation ack payload", ErrInvalidState)
}

func (c *Command) ExecAck() (*Ack, error) {
	if p, ok := c.payload.(*Ack); ok && p.execution {
		return p, nil
	}
	return nil, fmt.Errorf("%w: not an execution ack payload", ErrInvalidState)
}

func (c *Command) QueryAck() (*QueryAck, error) {
	if p, ok := c.payload.(*QueryAck); ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w: not a query ack payload", ErrInvalidState)
}

func decodeCommand(hdr Header, r *reader) (*Command, error) {
	camWord, err := r.u32()
	if err != nil {
		return nil, err
	}
	c := &Command{cam: CAM(camWord)}
	if c.messageID, err = r.u32(); err != nil {
		return nil, err
	}
	if c.cam.ControlleeEnabled() {
		if c.cam.ControlleeIDFormat() == IDFormat32 {
			v, err := r.u32()
			if err != nil {
				return nil, err
			}
			c.controlleeID = &v
		} else {
			u, err := decodeUUID(r)
			if err != nil {
				return nil, err
			}
			c.controlleeUUID = &u
		}
	}
	if c.cam.ControllerEnabled() {
		if c.cam.ControllerIDFormat() == IDFormat32 {
			v, err := r.u32()
			if err != nil {
				return nil, err
			}
			c.controllerID = &v
		} else {
			u, err := decodeUUID(r)
			if err != nil {
				return nil, err
			}
			c.controllerUUID = &u
		}
	}

	switch {
	case hdr.AckPacket():
		selected := 0
		for _, on := range []bool{c.cam.Validation(), c.cam.Execution(), c.cam.State()} {
			if on {
				selected++
			}
		}
		if selected != 1 {
			return nil, fmt.Errorf("%w: ack CAM selects %d of validation/execution/state", ErrInvalidState, selected)
		}
		if c.cam.State() {
			qa := &QueryAck{}
			if err := qa.decode(r); err != nil {
				return nil, err
			}
			c.payload = qa
		} else {
			a := &Ack{execution: c.cam.Execution()}
			if err := a.decode(c.cam, r); err != nil {
				return nil, err
			}
			c.payload = a
		}
	case hdr.CancellationPacket():
		cc := &Cancellation{}
		if err := cc.f.decodeIndicators(r); err != nil {
			return nil, err
		}
		c.payload = cc
	default:
		ctl := &Control{}
		if err := ctl.decode(r); err != nil {
			return nil, err
		}
		c.payload = ctl
	}
	return c, nil
}

func (c *Command) encode(w *writer) error {
	if a, ok := c.payload.(*Ack); ok {
		c.cam.SetWarningsIncluded(a.warnings != nil)
		c.cam.SetErrorsIncluded(a.errors != nil)
	}
	w.u32(uint32(c.cam))
	w.u32(c.messageID)
	if c.cam.ControlleeEnabled() {
		switch {
		case c.controlleeID != nil:
			w.u32(*c.controlleeID)
		case c.controlleeUUID != nil:
			c.controlleeUUID.encode(w)
		default:
			return fmt.Errorf("%w: controllee enabled without identifier", ErrInvalidState)
		}
	}
	if c.cam.ControllerEnabled() {
		switch {
		case c.controllerID != nil:
			w.u32(*c.controllerID)
		case c.controllerUUID != nil:
			c.controllerUUID.encode(w)
		default:
			return fmt.Errorf("%w: controller enabled without identifier", ErrInvalidState)
		}
	}
	return c.payload.encode(w)
}

func (c *Command) sizeWords() int {
	n := 2
	if c.controlleeID != nil {
		n++
	} else if c.controlleeUUID != nil {
		n += 4
	}
	if c.controllerID != nil {
		n++
	} else if c.controllerUUID != nil {
		n += 4
	}
	return n + c.payload.sizeWords()
}

func (c *Command) named() map[string]any {
	m := map[string]any{
		"cam":         uint32(c.cam),
		"message_id":  c.messageID,
		"action_mode": c.cam.ActionMode().String(),
	}
	if c.controlleeID != nil {
		m["controllee_id"] = *c.controlleeID
	}
	if c.controlleeUUID != nil {
		m["controllee_uuid"] = c.controlleeUUID.String()
	}
	if c.controllerID != nil {
		m["controller_id"] = *c.controllerID
	}
	if c.controllerUUID != nil {
		m["controller_uuid"] = c.controllerUUID.String()
	}
	switch p := c.payload.(type) {
	case *Control:
		m["control"] = p.named()
	case *Cancellation:
		m["cancellation"] = p.named()
	case *QueryAck:
		m["query_ack"] = p.named()
	case *Ack:
		if p.execution {
			m["exec_ack"] = p.named()
		} else {
			m["validation_ack"] = p.named()
		}
	}
	return m
}

func (c *Command) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Command: CAM 0x%08X, message ID 0x%X\n", uint32(c.cam), c.messageID)
	if id, ok := c.ControlleeID(); ok {
		fmt.Fprintf(&sb, "  Controllee ID: 0x%X\n", id)
	}
	if u, ok := c.ControlleeUUID(); ok {
		fmt.Fprintf(&sb, "  Controllee UUID: %s\n", u)
	}
	if id, ok := c.ControllerID(); ok {
		fmt.Fprintf(&sb, "  Controller ID: 0x%X\n", id)
	}
	if u, ok := c.ControllerUUID(); ok {
		fmt.Fprintf(&sb, "  Controller UUID: %s\n", u)
	}
	switch p := c.payload.(type) {
	case *Control:
		sb.WriteString("Control set-points:\n")
		p.f.render(&sb)
	case *Cancellation:
		fmt.Fprintf(&sb, "Cancellation: CIF0 0x%08X\n", p.Cif0())
	case *QueryAck:
		sb.WriteString("Query-state ack:\n")
		p.f.render(&sb)
	case *Ack:
		sb.WriteString(p.String())
	}
	return sb.String()
}
