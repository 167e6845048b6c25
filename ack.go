package vita49

import (
	"fmt"
	"sort"
	"strings"
)

// AckResponse is the per-field status word of a validation or execution
// acknowledge. Zero means the field was accepted as-is.
type AckResponse uint32

const (
	AckFieldNotExecuted          AckResponse = 1 << 31
	AckDeviceFailure             AckResponse = 1 << 30
	AckErroneousField            AckResponse = 1 << 29
	AckParamOutOfRange           AckResponse = 1 << 28
	AckParamUnsupportedPrecision AckResponse = 1 << 27
	AckFieldValueInvalid         AckResponse = 1 << 26
	AckTimestampProblem          AckResponse = 1 << 25
	AckHazardousPowerLevels      AckResponse = 1 << 24
	AckDistortion                AckResponse = 1 << 23
	AckInBandPowerCompliance     AckResponse = 1 << 22
	AckOutOfBandPowerCompliance  AckResponse = 1 << 21
	AckCositeInterference        AckResponse = 1 << 20
	AckRegionalInterference      AckResponse = 1 << 19
)

// Ack is the shared payload of validation and execution acknowledge
// packets: an optional warning cascade (WIF) and an optional error
// cascade (EIF), each carrying one status word per flagged field. The
// indicator words are derived from the status maps at encode time; the
// CAM warnings/errors-included flags are driven by the owning Command.
type Ack struct {
	execution bool
	warnings  map[Field]AckResponse
	errors    map[Field]AckResponse
}

// Execution reports whether this is an execution (true) or validation
// (false) acknowledge.
func (a *Ack) Execution() bool {
	return a.execution
}

// SetWarning records a warning status for a field. A zero response marks
// the field as acknowledged without complaint, which keeps the field's
// bit in the echoed WIF bitmap.
func (a *Ack) SetWarning(f Field, resp AckResponse) {
	if a.warnings == nil {
		a.warnings = make(map[Field]AckResponse)
	}
	a.warnings[f] = resp
}

func (a *Ack) Warning(f Field) (AckResponse, bool) {
	r, ok := a.warnings[f]
	return r, ok
}

func (a *Ack) ClearWarning(f Field) {
	delete(a.warnings, f)
	if len(a.warnings) == 0 {
		a.warnings = nil
	}
}

func (a *Ack) SetError(f Field, resp AckResponse) {
	if a.errors == nil {
		a.errors = make(map[Field]AckResponse)
	}
	a.errors[f] = resp
}

func (a *Ack) Error(f Field) (AckResponse, bool) {
	r, ok := a.errors[f]
	return r, ok
}

func (a *Ack) ClearError(f Field) {
	delete(a.errors, f)
	if len(a.errors) == 0 {
		a.errors = nil
	}
}

// WarningFields returns the flagged warning fields in canonical order.
func (a *Ack) WarningFields() []Field {
	return sortedFields(a.warnings)
}

// ErrorFields returns the flagged error fields in canonical order.
func (a *Ack) ErrorFields() []Field {
	return sortedFields(a.errors)
}

func sortedFields(m map[Field]AckResponse) []Field {
	out := make([]Field, 0, len(m))
	for f := range m {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Wif0 returns the derived warning indicator word.
func (a *Ack) Wif0() uint32 {
	ind := ackIndicators(a.warnings)
	return uint32(ind.cif0)
}

// Eif0 returns the derived error indicator word.
func (a *Ack) Eif0() uint32 {
	ind := ackIndicators(a.errors)
	return uint32(ind.cif0)
}

func ackIndicators(m map[Field]AckResponse) cifFields {
	var ind cifFields
	for f := range m {
		d := &fieldDefs[f]
		ind.wordPtr(d.cif).setBit(d.bit, true)
	}
	ind.syncEnables()
	return ind
}

func (a *Ack) decode(cam CAM, r *reader) error {
	var wi, ei cifFields
	if cam.WarningsIncluded() {
		if err := wi.decodeIndicators(r); err != nil {
			return err
		}
		if wi.cif7 != 0 {
			return fmt.Errorf("%w: cif7 attributes in ack cascade", ErrUnsupportedField)
		}
	}
	if cam.ErrorsIncluded() {
		if err := ei.decodeIndicators(r); err != nil {
			return err
		}
		if ei.cif7 != 0 {
			return fmt.Errorf("%w: cif7 attributes in ack cascade", ErrUnsupportedField)
		}
	}
	if cam.WarningsIncluded() {
		a.warnings = make(map[Field]AckResponse)
		if err := readAckStatuses(&wi, r, a.warnings); err != nil {
			return err
		}
	}
	if cam.ErrorsIncluded() {
		a.errors = make(map[Field]AckResponse)
		if err := readAckStatuses(&ei, r, a.errors); err != nil {
			return err
		}
	}
	return nil
}

func readAckStatuses(ind *cifFields, r *reader, into map[Field]AckResponse) error {
	for i := range fieldDefs {
		d := &fieldDefs[i]
		if !ind.word(d.cif).bit(d.bit) {
			continue
		}
		w, err := r.u32()
		if err != nil {
			return fmt.Errorf("%s status: %w", d.name, err)
		}
		into[d.field] = AckResponse(w)
	}
	return nil
}

func (a *Ack) encode(w *writer) error {
	var wi, ei cifFields
	if a.warnings != nil {
		wi = ackIndicators(a.warnings)
		wi.encodeIndicators(w)
	}
	if a.errors != nil {
		ei = ackIndicators(a.errors)
		ei.encodeIndicators(w)
	}
	if a.warnings != nil {
		writeAckStatuses(&wi, w, a.warnings)
	}
	if a.errors != nil {
		writeAckStatuses(&ei, w, a.errors)
	}
	return nil
}

func writeAckStatuses(ind *cifFields, w *writer, from map[Field]AckResponse) {
	for i := range fieldDefs {
		d := &fieldDefs[i]
		if ind.word(d.cif).bit(d.bit) {
			w.u32(uint32(from[d.field]))
		}
	}
}

func (a *Ack) sizeWords() int {
	n := 0
	if a.warnings != nil {
		ind := ackIndicators(a.warnings)
		n += ind.indicatorWordCount() + len(a.warnings)
	}
	if a.errors != nil {
		ind := ackIndicators(a.errors)
		n += ind.indicatorWordCount() + len(a.errors)
	}
	return n
}

func (a *Ack) named() map[string]any {
	m := map[string]any{}
	if a.warnings != nil {
		ws := map[string]any{}
		for f, resp := range a.warnings {
			ws[f.Name()] = uint32(resp)
		}
		m["warnings"] = ws
	}
	if a.errors != nil {
		es := map[string]any{}
		for f, resp := range a.errors {
			es[f.Name()] = uint32(resp)
		}
		m["errors"] = es
	}
	return m
}

func (a *Ack) String() string {
	var sb strings.Builder
	if a.execution {
		sb.WriteString("Execution ack:\n")
	} else {
		sb.WriteString("Validation ack:\n")
	}
	for _, f := range a.WarningFields() {
		fmt.Fprintf(&sb, "  warning %s: 0x%08X\n", f.Name(), uint32(a.warnings[f]))
	}
	for _, f := range a.ErrorFields() {
		fmt.Fprintf(&sb, "  error %s: 0x%08X\n", f.Name(), uint32(a.errors[f]))
	}
	return sb.String()
}
