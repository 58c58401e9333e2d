package report

// NumKeySlots is the number of keycode slots in a boot keyboard report.
const NumKeySlots = 6

// Size is the size of a keyboard report in bytes.
const Size = 8

// KeyErrorRollOver is the usage filling every slot of a phantom report
// when more keys are held than the report can carry.
const KeyErrorRollOver = 0x01

// Report is an 8-byte boot keyboard input report.
type Report struct {
	Modifiers uint8               // Modifier key bitmask
	Reserved  uint8               // Reserved (always 0)
	Keys      [NumKeySlots]uint8 // Keycode slots, press order
}

// Blank is the all-released report used for keep-alive refreshes.
var Blank = Report{}

// MarshalTo writes the report to buf.
// Returns the number of bytes written (8), or 0 if buf is too small.
func (r *Report) MarshalTo(buf []byte) int {
	if len(buf) < Size {
		return 0
	}
	buf[0] = r.Modifiers
	buf[1] = r.Reserved
	copy(buf[2:Size], r.Keys[:])
	return Size
}

// Clear resets the report to all keys released.
func (r *Report) Clear() {
	*r = Report{}
}

// Equal reports whether two reports have identical content.
func (r *Report) Equal(other *Report) bool {
	return *r == *other
}

// IsPhantom reports whether this is a rollover-overflow phantom report.
func (r *Report) IsPhantom() bool {
	for _, k := range r.Keys {
		if k != KeyErrorRollOver {
			return false
		}
	}
	return true
}
