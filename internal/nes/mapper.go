package nes

import (
	"errors"
	"fmt"

	"github.com/nevisdale/nestic/internal/bus"
)

var ErrUnsupportedMapper = errors.New("unsupported mapper")

const (
	cartFirstAddr = uint16(0x8000)
	cartLastAddr  = uint16(0xffff)
)

// Mapper translates CPU addresses in cartridge space to PRG offsets.
type Mapper interface {
	bus.ReadWriter
}

func NewMapper(cart *Cart) (Mapper, error) {
	switch cart.mapperID {
	case 0:
		return &Mapper0{cart}, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnsupportedMapper, cart.mapperID)
}

// Place attaches the cartridge program to $8000-$FFFF of b and returns the
// mapper serving it, so the caller can detach it later.
func Place(b *bus.Bus, cart *Cart) (Mapper, error) {
	m, err := NewMapper(cart)
	if err != nil {
		return nil, err
	}
	b.Attach(cartFirstAddr, cartLastAddr, m)
	return m, nil
}

// Mapper0 is NROM: 16KB of PRG is mirrored at $8000 and $C000, 32KB fills
// the whole window.
type Mapper0 struct {
	cart *Cart
}

func (m Mapper0) mapAddr(addr uint16) uint16 {
	if m.cart.prgBanks > 1 {
		return addr & 0x7fff
	}
	return addr & 0x3fff
}

func (m Mapper0) Read8(addr uint16) uint8 {
	return m.cart.prgMem[m.mapAddr(addr)]
}

// Write8 drops the write. NROM has no registers and PRG is ROM.
func (m *Mapper0) Write8(uint16, uint8) {}
