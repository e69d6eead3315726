package bus

import (
	"errors"
	"fmt"
)

const (
	// Detailed Memory Map (as the CPU sees it on a real console):
	//
	// $0000-$00FF: Zero page
	//   Fast one-byte addressing and the home of the indirect pointers.
	//
	// $0100-$01FF: Stack
	//   Fixed page addressed by the 8-bit stack pointer.
	//
	// $0200-$07FF: Internal RAM
	//
	// $0800-$1FFF: Mirrors of $0000-$07FF
	//
	// $2000-$3FFF: PPU registers and mirrors
	//
	// $4000-$401F: APU and I/O registers
	//
	// $4020-$FFFF: Cartridge space (PRG-ROM at $8000-$FFFF)
	//
	// $FFFA-$FFFB: NMI vector
	// $FFFC-$FFFD: Reset vector
	// $FFFE-$FFFF: IRQ/BRK vector
	//
	// The bus here is flat: every address is backed by RAM unless a device
	// has been attached over it.
	ramSizeBytes = 0x10000
)

var ErrImageTooLarge = errors.New("image does not fit into the address space")

// ReadWriter is a device that can sit on the bus.
type ReadWriter interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, data uint8)
}

type window struct {
	first uint16
	last  uint16
	dev   ReadWriter
}

type Bus struct {
	ram     [ramSizeBytes]uint8
	windows []window
}

func New() *Bus {
	return &Bus{}
}

// Attach maps dev over [first, last]. Reads and writes inside the window go to
// the device instead of RAM. The most recent attachment wins on overlap.
func (b *Bus) Attach(first, last uint16, dev ReadWriter) {
	b.windows = append(b.windows, window{first: first, last: last, dev: dev})
}

// Detach removes every window that maps dev. RAM under it becomes visible again.
func (b *Bus) Detach(dev ReadWriter) {
	kept := b.windows[:0]
	for _, w := range b.windows {
		if w.dev != dev {
			kept = append(kept, w)
		}
	}
	b.windows = kept
}

func (b *Bus) device(addr uint16) ReadWriter {
	for i := len(b.windows) - 1; i >= 0; i-- {
		w := b.windows[i]
		if addr >= w.first && addr <= w.last {
			return w.dev
		}
	}
	return nil
}

func (b *Bus) Read8(addr uint16) uint8 {
	if len(b.windows) > 0 {
		if dev := b.device(addr); dev != nil {
			return dev.Read8(addr)
		}
	}
	return b.ram[addr]
}

func (b *Bus) Write8(addr uint16, data uint8) {
	if len(b.windows) > 0 {
		if dev := b.device(addr); dev != nil {
			dev.Write8(addr, data)
			return
		}
	}
	b.ram[addr] = data
}

// Read16 reads a little-endian word. The high byte address wraps from $FFFF to $0000.
func (b *Bus) Read16(addr uint16) uint16 {
	lo := uint16(b.Read8(addr))
	hi := uint16(b.Read8(addr + 1))
	return lo | hi<<8
}

func (b *Bus) Write16(addr uint16, data uint16) {
	b.Write8(addr, uint8(data&0xff))
	b.Write8(addr+1, uint8(data>>8))
}

// Load copies image verbatim to RAM starting at base.
func (b *Bus) Load(base uint16, image []byte) error {
	if int(base)+len(image) > ramSizeBytes {
		return fmt.Errorf("%d bytes at $%04X: %w", len(image), base, ErrImageTooLarge)
	}
	copy(b.ram[base:], image)
	return nil
}

// Reset zeroes RAM. Attached devices stay attached.
func (b *Bus) Reset() {
	b.ram = [ramSizeBytes]uint8{}
}
