package vita49

import "math/bits"

// CIF is a 32-bit context indicator word. Each set bit names an optional
// field that follows the indicator words, in bit-descending order.
type CIF uint32

func (c CIF) bit(n uint) bool {
	return c&(1<<n) != 0
}

func (c *CIF) setBit(n uint, on bool) {
	if on {
		*c |= 1 << n
	} else {
		*c &^= 1 << n
	}
}

// CIF0 carries a handful of control bits alongside its data-field bits.
const (
	cif0ChangeIndicator = 31
	cif0Cif7Enable      = 7
	cif0Cif3Enable      = 3
	cif0Cif2Enable      = 2
	cif0Cif1Enable      = 1
)

// CIF7 attribute bits. Bit 31 selects the current value itself; every
// other set bit appends one same-shaped replica per enabled field.
const (
	Cif7CurrentValue     uint = 31
	Cif7Mean             uint = 30
	Cif7Median           uint = 29
	Cif7StandardDeviation uint = 28
	Cif7Max              uint = 27
	Cif7Min              uint = 26
	Cif7Precision        uint = 25
	Cif7Accuracy         uint = 24
	Cif7FirstDerivative  uint = 23
	Cif7SecondDerivative uint = 22
	Cif7ThirdDerivative  uint = 21
	Cif7Probability      uint = 20
	Cif7Belief           uint = 19
)

// cif7Layout returns the number of attribute replicas per enabled field
// and whether the current value itself is carried. An absent CIF7 word
// (zero) means plain fields: current value only.
func cif7Layout(c CIF) (replicas int, current bool) {
	if c == 0 {
		return 0, true
	}
	current = c.bit(Cif7CurrentValue)
	replicas = bits.OnesCount32(uint32(c))
	if current {
		replicas--
	}
	return replicas, current
}
