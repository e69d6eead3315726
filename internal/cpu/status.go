package cpu

import "strings"

type Flag uint8

const (
	FlagC Flag = 1 << iota // Carry
	FlagZ                  // Zero
	FlagI                  // Interrupt Disable
	FlagD                  // Decimal Mode
	FlagB                  // Break Command
	FlagU                  // Unused, always reads as 1
	FlagV                  // Overflow
	FlagN                  // Negative
)

// Status is the processor status register (P).
type Status uint8

func (s *Status) Set(f Flag) {
	*s |= Status(f)
}

func (s *Status) Clear(f Flag) {
	*s &= ^Status(f)
}

func (s Status) Test(f Flag) bool {
	return s&Status(f) != 0
}

// Assign sets f when v is true and clears it otherwise.
func (s *Status) Assign(f Flag, v bool) {
	if v {
		s.Set(f)
		return
	}
	s.Clear(f)
}

// UpdateZN sets Z iff value is zero and N iff bit 7 of value is set.
// No other flag is touched.
func (s *Status) UpdateZN(value uint8) {
	s.Assign(FlagZ, value == 0)
	s.Assign(FlagN, value&0x80 != 0)
}

// String renders the flags high bit first, uppercase when set: "NV-BDIZC".
func (s Status) String() string {
	const names = "NVUBDIZC"
	var sb strings.Builder
	for i := 0; i < 8; i++ {
		bit := Flag(0x80 >> i)
		switch {
		case bit == FlagU:
			sb.WriteByte('-')
		case s.Test(bit):
			sb.WriteByte(names[i])
		default:
			sb.WriteByte(names[i] + ('a' - 'A'))
		}
	}
	return sb.String()
}

// AddWithCarry is two's-complement addition of a, b and the carry.
// Overflow is set when both operands have the same sign and the result's sign differs.
func AddWithCarry(a, b uint8, carry bool) (result uint8, carryOut, overflow bool) {
	r16 := uint16(a) + uint16(b)
	if carry {
		r16++
	}
	result = uint8(r16)
	carryOut = r16 > 0xff
	overflow = isSameSign(a, b) && !isSameSign(a, result)
	return result, carryOut, overflow
}

func isSameSign(a, b uint8) bool {
	return (a^b)&0x80 == 0
}

func isDiffPage(a, b uint16) bool {
	return a&0xff00 != b&0xff00
}
