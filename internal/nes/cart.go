package nes

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	inesMagic        = 0x1a53454e
	prgBankSizeBytes = 0x4000
	chrBankSizeBytes = 0x2000
	trainerSizeBytes = 512
)

var (
	ErrInvalidHeader = errors.New("invalid iNES header")
	ErrTruncated     = errors.New("truncated rom")
	ErrNoProgram     = errors.New("rom has no PRG banks")
)

type Mirroring uint8

const (
	MirrorHorizontal Mirroring = iota
	MirrorVertical
)

func (m Mirroring) String() string {
	if m == MirrorVertical {
		return "vertical"
	}
	return "horizontal"
}

type Cart struct {
	prgMem []uint8
	chrMem []uint8

	prgBanks uint8
	chrBanks uint8
	mapperID uint8
	mirror   Mirroring
}

type inesHeader struct {
	Magic      uint32
	PrgRomSize uint8
	ChrRomSize uint8
	Flags6     uint8
	Flags7     uint8
	Flags8     uint8
	Flags9     uint8
	Flags10    uint8
	_          [5]uint8 // unused
}

// NewCartFromFile reads a .nes file.
// Supported NES format: iNES
func NewCartFromFile(path string) (*Cart, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't open the file: %w", err)
	}
	defer file.Close()

	return ReadCart(file)
}

// ReadCart parses an iNES image from r.
func ReadCart(r io.Reader) (*Cart, error) {
	var header inesHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("couldn't read the header: %w", ErrTruncated)
		}
		return nil, fmt.Errorf("couldn't read the header: %w", err)
	}
	if header.Magic != inesMagic {
		return nil, ErrInvalidHeader
	}
	if header.PrgRomSize == 0 {
		return nil, ErrNoProgram
	}
	// the second bit of flags6 is the trainer flag
	if header.Flags6&0x4 != 0 {
		if _, err := io.CopyN(io.Discard, r, trainerSizeBytes); err != nil {
			return nil, fmt.Errorf("couldn't skip the trainer: %w", readErr(err))
		}
	}

	// flag6 and flag7 contain part of the mapper ID in 4 high bits
	// flag6: lower 4 bits of mapper ID
	// flag7: upper 4 bits of mapper ID
	mapperID := (header.Flags7 & 0xf0) | (header.Flags6 >> 4)

	cart := &Cart{
		prgMem:   make([]uint8, int(header.PrgRomSize)*prgBankSizeBytes),
		chrMem:   make([]uint8, int(header.ChrRomSize)*chrBankSizeBytes),
		prgBanks: header.PrgRomSize,
		chrBanks: header.ChrRomSize,
		mapperID: mapperID,
		mirror:   Mirroring(header.Flags6 & 0x1),
	}

	if _, err := io.ReadFull(r, cart.prgMem); err != nil {
		return nil, fmt.Errorf("couldn't read PRG ROM: %w", readErr(err))
	}
	if _, err := io.ReadFull(r, cart.chrMem); err != nil {
		return nil, fmt.Errorf("couldn't read CHR ROM: %w", readErr(err))
	}

	return cart, nil
}

func readErr(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}
	return err
}

func (c *Cart) PRG() []uint8 {
	return c.prgMem
}

func (c *Cart) CHR() []uint8 {
	return c.chrMem
}

func (c *Cart) MapperID() uint8 {
	return c.mapperID
}

func (c *Cart) Mirroring() Mirroring {
	return c.mirror
}

func (c *Cart) String() string {
	return fmt.Sprintf("mapper %d, PRG %dx16KB, CHR %dx8KB, %s mirroring",
		c.mapperID, c.prgBanks, c.chrBanks, c.mirror)
}
