package vita49

import (
	"fmt"
	"strings"
)

func (c *cifFields) word(i int) CIF {
	switch i {
	case 0:
		return c.cif0
	case 1:
		return c.cif1
	case 2:
		return c.cif2
	default:
		return c.cif3
	}
}

func (c *cifFields) wordPtr(i int) *CIF {
	switch i {
	case 0:
		return &c.cif0
	case 1:
		return &c.cif1
	case 2:
		return &c.cif2
	default:
		return &c.cif3
	}
}

// syncEnables re-derives the CIF0 cascade enable bits from the dependent
// indicator words.
func (c *cifFields) syncEnables() {
	c.cif0.setBit(cif0Cif1Enable, c.cif1 != 0)
	c.cif0.setBit(cif0Cif2Enable, c.cif2 != 0)
	c.cif0.setBit(cif0Cif3Enable, c.cif3 != 0)
	c.cif0.setBit(cif0Cif7Enable, c.cif7 != 0)
}

func (c *cifFields) markPresent(f Field) {
	d := &fieldDefs[f]
	c.wordPtr(d.cif).setBit(d.bit, true)
	c.syncEnables()
}

func (c *cifFields) clearField(f Field) {
	d := &fieldDefs[f]
	d.clear(c)
	c.wordPtr(d.cif).setBit(d.bit, false)
	delete(c.attrs, f)
	c.syncEnables()
}

func (c *cifFields) fieldPresent(f Field) bool {
	if f < 0 || f >= numFields {
		return false
	}
	d := &fieldDefs[f]
	return c.word(d.cif).bit(d.bit)
}

// checkSupported rejects indicator bits this codec has no layout for.
// Parsing past an unknown field would misinterpret everything after it.
func (c *cifFields) checkSupported() error {
	for i := 0; i < 4; i++ {
		unknown := uint32(c.word(i)) &^ cifKnownMask[i]
		if unknown == 0 {
			continue
		}
		for b := uint(31); ; b-- {
			if unknown&(1<<b) != 0 {
				return fmt.Errorf("%w: cif%d bit %d", ErrUnsupportedField, i, b)
			}
			if b == 0 {
				break
			}
		}
	}
	return nil
}

// decodeIndicators reads CIF0 and any cascaded indicator words.
func (c *cifFields) decodeIndicators(r *reader) error {
	w, err := r.u32()
	if err != nil {
		return err
	}
	c.cif0 = CIF(w)
	if c.cif0.bit(cif0Cif1Enable) {
		if w, err = r.u32(); err != nil {
			return err
		}
		c.cif1 = CIF(w)
	}
	if c.cif0.bit(cif0Cif2Enable) {
		if w, err = r.u32(); err != nil {
			return err
		}
		c.cif2 = CIF(w)
	}
	if c.cif0.bit(cif0Cif3Enable) {
		if w, err = r.u32(); err != nil {
			return err
		}
		c.cif3 = CIF(w)
	}
	if c.cif0.bit(cif0Cif7Enable) {
		if w, err = r.u32(); err != nil {
			return err
		}
		c.cif7 = CIF(w)
	}
	return c.checkSupported()
}

// decode reads the indicator cascade and every enabled data field in
// canonical order.
func (c *cifFields) decode(r *reader) error {
	if err := c.decodeIndicators(r); err != nil {
		return err
	}
	replicas, current := cif7Layout(c.cif7)
	for i := range fieldDefs {
		d := &fieldDefs[i]
		if !c.word(d.cif).bit(d.bit) {
			continue
		}
		if current {
			if err := d.read(c, r); err != nil {
				return fmt.Errorf("%s: %w", d.name, err)
			}
		}
		if replicas > 0 {
			if d.words == 0 {
				return fmt.Errorf("%w: cif7 attributes on variable-length field %s", ErrUnsupportedField, d.name)
			}
			ws, err := r.words(replicas * d.words)
			if err != nil {
				return fmt.Errorf("%s attributes: %w", d.name, err)
			}
			if c.attrs == nil {
				c.attrs = make(map[Field][]uint32)
			}
			c.attrs[d.field] = ws
		}
	}
	return nil
}

func (c *cifFields) encodeIndicators(w *writer) {
	c.syncEnables()
	w.u32(uint32(c.cif0))
	if c.cif1 != 0 {
		w.u32(uint32(c.cif1))
	}
	if c.cif2 != 0 {
		w.u32(uint32(c.cif2))
	}
	if c.cif3 != 0 {
		w.u32(uint32(c.cif3))
	}
	if c.cif7 != 0 {
		w.u32(uint32(c.cif7))
	}
}

func (c *cifFields) encode(w *writer) error {
	c.encodeIndicators(w)
	replicas, current := cif7Layout(c.cif7)
	for i := range fieldDefs {
		d := &fieldDefs[i]
		if !c.word(d.cif).bit(d.bit) {
			continue
		}
		if current {
			if !d.present(c) {
				return fmt.Errorf("%w: %s indicated but absent", ErrInvalidState, d.name)
			}
			d.write(c, w)
		}
		if replicas > 0 {
			if d.words == 0 {
				return fmt.Errorf("%w: cif7 attributes on variable-length field %s", ErrUnsupportedField, d.name)
			}
			ws := c.attrs[d.field]
			if len(ws) != replicas*d.words {
				return fmt.Errorf("%w: %s has %d attribute words, cif7 requires %d",
					ErrInvalidState, d.name, len(ws), replicas*d.words)
			}
			w.words(ws)
		}
	}
	return nil
}

func (c *cifFields) indicatorWordCount() int {
	c.syncEnables()
	n := 1
	for _, cw := range []CIF{c.cif1, c.cif2, c.cif3, c.cif7} {
		if cw != 0 {
			n++
		}
	}
	return n
}

func (c *cifFields) sizeWords() int {
	n := c.indicatorWordCount()
	replicas, current := cif7Layout(c.cif7)
	for i := range fieldDefs {
		d := &fieldDefs[i]
		if !c.word(d.cif).bit(d.bit) {
			continue
		}
		fw := d.words
		if fw == 0 && d.present(c) {
			fw = d.size(c)
		}
		if current {
			n += fw
		}
		if replicas > 0 {
			n += replicas * d.words
		}
	}
	return n
}

// clone deep-copies the store by running it through the wire form.
func (c *cifFields) clone() (cifFields, error) {
	var w writer
	if err := c.encode(&w); err != nil {
		return cifFields{}, err
	}
	var out cifFields
	if err := out.decode(&reader{buf: w.buf}); err != nil {
		return cifFields{}, err
	}
	return out, nil
}

func (c *cifFields) attributes(f Field) []uint32 {
	return c.attrs[f]
}

// setAttributes installs raw CIF7 replica words for a present field. The
// word count must match the CIF7 bitmap times the field width.
func (c *cifFields) setAttributes(f Field, ws []uint32) error {
	d := &fieldDefs[f]
	if d.words == 0 {
		return fmt.Errorf("%w: cif7 attributes on variable-length field %s", ErrUnsupportedField, d.name)
	}
	if !c.fieldPresent(f) {
		return fmt.Errorf("%w: %s not present", ErrInvalidState, d.name)
	}
	replicas, _ := cif7Layout(c.cif7)
	if len(ws) != replicas*d.words {
		return fmt.Errorf("%w: %s needs %d attribute words, got %d", ErrInvalidState, d.name, replicas*d.words, len(ws))
	}
	if c.attrs == nil {
		c.attrs = make(map[Field][]uint32)
	}
	c.attrs[f] = ws
	return nil
}

func (c *cifFields) named() map[string]any {
	c.syncEnables()
	m := map[string]any{"cif0": uint32(c.cif0)}
	if c.cif1 != 0 {
		m["cif1"] = uint32(c.cif1)
	}
	if c.cif2 != 0 {
		m["cif2"] = uint32(c.cif2)
	}
	if c.cif3 != 0 {
		m["cif3"] = uint32(c.cif3)
	}
	if c.cif7 != 0 {
		m["cif7"] = uint32(c.cif7)
	}
	if c.cif0.bit(cif0ChangeIndicator) {
		m["context_field_changed"] = true
	}
	for i := range fieldDefs {
		d := &fieldDefs[i]
		if c.word(d.cif).bit(d.bit) && d.present(c) {
			m[d.name] = d.value(c)
		}
	}
	return m
}

func (c *cifFields) render(sb *strings.Builder) {
	fmt.Fprintf(sb, "  CIF0: 0x%08X\n", uint32(c.cif0))
	if c.cif1 != 0 {
		fmt.Fprintf(sb, "  CIF1: 0x%08X\n", uint32(c.cif1))
	}
	if c.cif2 != 0 {
		fmt.Fprintf(sb, "  CIF2: 0x%08X\n", uint32(c.cif2))
	}
	if c.cif3 != 0 {
		fmt.Fprintf(sb, "  CIF3: 0x%08X\n", uint32(c.cif3))
	}
	if c.cif7 != 0 {
		fmt.Fprintf(sb, "  CIF7: 0x%08X\n", uint32(c.cif7))
	}
	fmt.Fprintf(sb, "  Context field change indicator: %t\n", c.cif0.bit(cif0ChangeIndicator))
	for i := range fieldDefs {
		d := &fieldDefs[i]
		set := c.word(d.cif).bit(d.bit)
		if set && d.present(c) {
			fmt.Fprintf(sb, "  %s: %v\n", d.name, d.value(c))
		} else {
			fmt.Fprintf(sb, "  %s: %t\n", d.name, set)
		}
	}
}
