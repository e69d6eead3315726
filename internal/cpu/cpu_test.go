package cpu

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/nevisdale/nestic/internal/bus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const programStart = uint16(0x8000)

type memMock struct {
	mock.Mock
}

func (m *memMock) Read8(addr uint16) uint8 {
	args := m.Called(addr)
	return args.Get(0).(uint8)
}

func (m *memMock) Write8(addr uint16, data uint8) {
	m.Called(addr, data)
}

// newTestCPU loads program at $8000, points the reset vector at it and resets.
func newTestCPU(t *testing.T, program []uint8, opts ...Option) (*CPU, *bus.Bus) {
	t.Helper()

	b := bus.New()
	require.NoError(t, b.Load(programStart, program))
	b.Write16(vectorReset, programStart)

	c := NewCPU(b, opts...)
	c.Reset()
	return c, b
}

func setRegs(c *CPU, fn func(r *Registers)) {
	r := c.Registers()
	fn(&r)
	c.SetRegisters(r)
}

func TestCPU_Reset(t *testing.T) {
	t.Run("vector", func(t *testing.T) {
		b := bus.New()
		b.Write16(0xfffc, 0x8123)

		c := NewCPU(b)
		assert.Equal(t, Halted, c.State(), "a new CPU waits for reset")

		c.Reset()

		assert.Equal(t, Registers{A: 0, X: 0, Y: 0, SP: 0xfd, PC: 0x8123, P: 0x24}, c.Registers())
		assert.Equal(t, uint64(7), c.Cycles())
		assert.Equal(t, uint64(0), c.Steps())
		assert.Equal(t, Running, c.State())
		assert.Equal(t, HaltNone, c.Reason())
	})

	t.Run("override", func(t *testing.T) {
		c := NewCPU(bus.New(), WithResetPC(0xc000))
		c.Reset()
		assert.Equal(t, uint16(0xc000), c.Registers().PC)
	})

	t.Run("resumes a halted cpu", func(t *testing.T) {
		c, _ := newTestCPU(t, []uint8{0x00})
		require.NoError(t, c.Step())
		require.Equal(t, Halted, c.State())

		c.Reset()
		assert.Equal(t, Running, c.State())
		assert.Equal(t, programStart, c.Registers().PC)
	})
}

func TestCPU_Run_LoadThenBreak(t *testing.T) {
	c, _ := newTestCPU(t, []uint8{0xa9, 0x05, 0x00})

	res, err := c.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, uint8(0x05), c.Registers().A)
	assert.Equal(t, Halted, res.State)
	assert.Equal(t, HaltBreak, res.Reason)
	assert.Equal(t, uint64(2), res.Steps)
	assert.Equal(t, uint64(7+2+7), res.Cycles)
}

func Test_ADC(t *testing.T) {
	type testArgs struct {
		initA     uint8
		operand   uint8
		initP     Status
		expectedA uint8
		expectedP Status
	}

	testDo := func(t *testing.T, in testArgs) {
		c, _ := newTestCPU(t, []uint8{0x69, in.operand})
		setRegs(c, func(r *Registers) {
			r.A = in.initA
			r.P = in.initP
		})

		require.NoError(t, c.Step())

		assert.Equal(t, in.expectedA, c.Registers().A, "A register")
		assert.Equal(t, in.expectedP, c.Registers().P, "P register")
		assert.Equal(t, uint64(7+2), c.Cycles(), "Cycles")
	}

	t.Run("zero result, no carry", func(t *testing.T) {
		testDo(t, testArgs{initA: 0, operand: 0, expectedA: 0, expectedP: Status(FlagZ)})
	})
	t.Run("simple addition, no carry", func(t *testing.T) {
		testDo(t, testArgs{initA: 0x10, operand: 0x20, expectedA: 0x30})
	})
	t.Run("overflow with carry set", func(t *testing.T) {
		testDo(t, testArgs{initA: 0xff, operand: 0x01, expectedA: 0, expectedP: Status(FlagZ | FlagC)})
	})
	t.Run("negative result with overflow", func(t *testing.T) {
		testDo(t, testArgs{initA: 0x7f, operand: 0x01, expectedA: 0x80, expectedP: Status(FlagN | FlagV)})
	})
	t.Run("simple addition with overflow, result is negative", func(t *testing.T) {
		testDo(t, testArgs{initA: 0x50, operand: 0x50, expectedA: 0xa0, expectedP: Status(FlagN | FlagV)})
	})
	t.Run("addition with carry in, result is negative", func(t *testing.T) {
		testDo(t, testArgs{initA: 0x50, operand: 0x50, initP: Status(FlagC), expectedA: 0xa1, expectedP: Status(FlagN | FlagV)})
	})
	t.Run("overflow with carry in, result is positive", func(t *testing.T) {
		testDo(t, testArgs{initA: 0xff, operand: 0x01, initP: Status(FlagC), expectedA: 0x01, expectedP: Status(FlagC)})
	})
	t.Run("addition with carry in, zero result", func(t *testing.T) {
		testDo(t, testArgs{initA: 0xff, operand: 0x00, initP: Status(FlagC), expectedA: 0, expectedP: Status(FlagZ | FlagC)})
	})
	t.Run("decimal flag is ignored", func(t *testing.T) {
		testDo(t, testArgs{initA: 0x09, operand: 0x01, initP: Status(FlagD), expectedA: 0x0a, expectedP: Status(FlagD)})
	})
}

func Test_SBC(t *testing.T) {
	tests := []struct {
		name      string
		initA     uint8
		operand   uint8
		initP     Status
		expectedA uint8
		expectedP Status
	}{
		{name: "no borrow", initA: 0x10, operand: 0x01, initP: Status(FlagC), expectedA: 0x0f, expectedP: Status(FlagC)},
		{name: "borrow in", initA: 0x10, operand: 0x01, initP: 0, expectedA: 0x0e, expectedP: Status(FlagC)},
		{name: "zero", initA: 0x42, operand: 0x42, initP: Status(FlagC), expectedA: 0, expectedP: Status(FlagZ | FlagC)},
		{name: "borrow out", initA: 0x00, operand: 0x01, initP: Status(FlagC), expectedA: 0xff, expectedP: Status(FlagN)},
		{name: "signed overflow", initA: 0x80, operand: 0x01, initP: Status(FlagC), expectedA: 0x7f, expectedP: Status(FlagC | FlagV)},
	}
	for _, tt := range tests {
		// $E9 and the undocumented $EB behave the same
		for _, opcode := range []uint8{0xe9, 0xeb} {
			t.Run(fmt.Sprintf("%s/$%02X", tt.name, opcode), func(t *testing.T) {
				c, _ := newTestCPU(t, []uint8{opcode, tt.operand})
				setRegs(c, func(r *Registers) {
					r.A = tt.initA
					r.P = tt.initP
				})

				require.NoError(t, c.Step())

				assert.Equal(t, tt.expectedA, c.Registers().A, "A register")
				assert.Equal(t, tt.expectedP, c.Registers().P, "P register")
			})
		}
	}
}

func Test_ASL(t *testing.T) {
	t.Run("ACC with carry", func(t *testing.T) {
		c, _ := newTestCPU(t, []uint8{0x0a})
		setRegs(c, func(r *Registers) { r.A, r.P = 0x83, 0 })

		require.NoError(t, c.Step())

		assert.Equal(t, uint8(0x06), c.Registers().A, "A register")
		assert.Equal(t, Status(FlagC), c.Registers().P, "P register")
	})

	t.Run("ACC with negative", func(t *testing.T) {
		c, _ := newTestCPU(t, []uint8{0x0a})
		setRegs(c, func(r *Registers) { r.A, r.P = 0x41, 0 })

		require.NoError(t, c.Step())

		assert.Equal(t, uint8(0x82), c.Registers().A, "A register")
		assert.Equal(t, Status(FlagN), c.Registers().P, "P register")
	})

	t.Run("ZP simple", func(t *testing.T) {
		mem := new(memMock)
		mem.On("Read8", uint16(0x0200)).Return(uint8(0x06))
		mem.On("Read8", uint16(0x0201)).Return(uint8(0xff))
		mem.On("Read8", uint16(0x00ff)).Return(uint8(0x12))
		mem.On("Write8", uint16(0x00ff), uint8(0x24)).Return()

		c := NewCPU(mem, WithResetPC(0x0200))
		c.Reset()
		setRegs(c, func(r *Registers) { r.P = 0 })

		require.NoError(t, c.Step())

		assert.Equal(t, Status(0), c.Registers().P, "P register")
		assert.Equal(t, uint16(0x0202), c.Registers().PC)
		assert.Equal(t, uint64(7+5), c.Cycles())
		mem.AssertExpectations(t)
	})
}

func Test_STA_Absolute(t *testing.T) {
	mem := new(memMock)
	mem.On("Read8", uint16(0x0200)).Return(uint8(0x8d))
	mem.On("Read8", uint16(0x0201)).Return(uint8(0x34))
	mem.On("Read8", uint16(0x0202)).Return(uint8(0x12))
	mem.On("Write8", uint16(0x1234), uint8(0x42)).Return()

	c := NewCPU(mem, WithResetPC(0x0200))
	c.Reset()
	setRegs(c, func(r *Registers) { r.A = 0x42 })

	require.NoError(t, c.Step())

	assert.Equal(t, uint16(0x0203), c.Registers().PC)
	assert.Equal(t, uint64(7+4), c.Cycles())
	mem.AssertExpectations(t)
	mem.AssertNotCalled(t, "Read8", uint16(0x1234))
}

func Test_PageCrossCycles(t *testing.T) {
	tests := []struct {
		name    string
		program []uint8
		x, y    uint8
		cycles  uint64
	}{
		{name: "LDA abs,X same page", program: []uint8{0xbd, 0x00, 0x20}, x: 0x01, cycles: 4},
		{name: "LDA abs,X crossed", program: []uint8{0xbd, 0xff, 0x20}, x: 0x01, cycles: 5},
		{name: "LDA abs,Y crossed", program: []uint8{0xb9, 0xff, 0x20}, y: 0x01, cycles: 5},
		{name: "STA abs,X never pays", program: []uint8{0x9d, 0xff, 0x20}, x: 0x01, cycles: 5},
		{name: "ASL abs,X never pays", program: []uint8{0x1e, 0xff, 0x20}, x: 0x01, cycles: 7},
		{name: "NOP abs,X crossed", program: []uint8{0x1c, 0xff, 0x20}, x: 0x01, cycles: 5},
		{name: "LAX (zp),Y crossed", program: []uint8{0xb3, 0x10}, y: 0x01, cycles: 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, b := newTestCPU(t, tt.program)
			b.Write16(0x0010, 0x20ff)
			setRegs(c, func(r *Registers) { r.X, r.Y = tt.x, tt.y })

			require.NoError(t, c.Step())

			assert.Equal(t, 7+tt.cycles, c.Cycles())
		})
	}
}

func Test_Branch(t *testing.T) {
	t.Run("not taken", func(t *testing.T) {
		c, _ := newTestCPU(t, []uint8{0xd0, 0x10})
		setRegs(c, func(r *Registers) { r.P.Set(FlagZ) })

		require.NoError(t, c.Step())

		assert.Equal(t, programStart+2, c.Registers().PC)
		assert.Equal(t, uint64(7+2), c.Cycles())
	})

	t.Run("taken, same page", func(t *testing.T) {
		c, _ := newTestCPU(t, []uint8{0xd0, 0x10})

		require.NoError(t, c.Step())

		assert.Equal(t, uint16(0x8012), c.Registers().PC)
		assert.Equal(t, uint64(7+3), c.Cycles())
	})

	t.Run("taken, backwards", func(t *testing.T) {
		c, _ := newTestCPU(t, []uint8{0xd0, 0xfe})

		require.NoError(t, c.Step())

		assert.Equal(t, programStart, c.Registers().PC, "branch to itself")
		assert.Equal(t, uint64(7+3), c.Cycles())
	})

	t.Run("taken, page crossed", func(t *testing.T) {
		b := bus.New()
		require.NoError(t, b.Load(0x80f0, []uint8{0xd0, 0x10}))
		c := NewCPU(b, WithResetPC(0x80f0))
		c.Reset()

		require.NoError(t, c.Step())

		assert.Equal(t, uint16(0x8102), c.Registers().PC)
		assert.Equal(t, uint64(7+4), c.Cycles())
	})

	t.Run("every condition", func(t *testing.T) {
		tests := []struct {
			opcode uint8
			flag   Flag
			set    bool
		}{
			{0x10, FlagN, false}, {0x30, FlagN, true},
			{0x50, FlagV, false}, {0x70, FlagV, true},
			{0x90, FlagC, false}, {0xb0, FlagC, true},
			{0xd0, FlagZ, false}, {0xf0, FlagZ, true},
		}
		for _, tt := range tests {
			c, _ := newTestCPU(t, []uint8{tt.opcode, 0x04})
			setRegs(c, func(r *Registers) { r.P.Assign(tt.flag, tt.set) })

			require.NoError(t, c.Step())

			assert.Equal(t, uint16(0x8006), c.Registers().PC, "opcode $%02X", tt.opcode)
		}
	})
}

func Test_JMP(t *testing.T) {
	t.Run("absolute", func(t *testing.T) {
		c, _ := newTestCPU(t, []uint8{0x4c, 0x34, 0x12})

		require.NoError(t, c.Step())

		assert.Equal(t, uint16(0x1234), c.Registers().PC)
		assert.Equal(t, uint64(7+3), c.Cycles())
	})

	t.Run("indirect page bug", func(t *testing.T) {
		c, b := newTestCPU(t, []uint8{0x6c, 0xff, 0x10})
		b.Write8(0x10ff, 0x34)
		b.Write8(0x1000, 0x12)
		b.Write8(0x1100, 0x99)

		require.NoError(t, c.Step())

		assert.Equal(t, uint16(0x1234), c.Registers().PC)
		assert.Equal(t, uint64(7+5), c.Cycles())
	})
}

func Test_ZeroPageWrap(t *testing.T) {
	t.Run("zp,X", func(t *testing.T) {
		c, b := newTestCPU(t, []uint8{0xb5, 0xff})
		b.Write8(0x0001, 0x77)
		b.Write8(0x0101, 0x11)
		setRegs(c, func(r *Registers) { r.X = 0x02 })

		require.NoError(t, c.Step())

		assert.Equal(t, uint8(0x77), c.Registers().A)
	})

	t.Run("(zp,X) pointer", func(t *testing.T) {
		c, b := newTestCPU(t, []uint8{0xa1, 0xff})
		b.Write8(0x00ff, 0x00)
		b.Write8(0x0000, 0x03)
		b.Write8(0x0300, 0x5a)
		setRegs(c, func(r *Registers) { r.X = 0x00 })

		require.NoError(t, c.Step())

		assert.Equal(t, uint8(0x5a), c.Registers().A)
	})

	t.Run("(zp),Y pointer", func(t *testing.T) {
		c, b := newTestCPU(t, []uint8{0xb1, 0xff})
		b.Write8(0x00ff, 0x00)
		b.Write8(0x0000, 0x04)
		b.Write8(0x0402, 0x6b)
		setRegs(c, func(r *Registers) { r.Y = 0x02 })

		require.NoError(t, c.Step())

		assert.Equal(t, uint8(0x6b), c.Registers().A)
	})
}

func Test_Stack(t *testing.T) {
	t.Run("push wraps", func(t *testing.T) {
		c, b := newTestCPU(t, []uint8{0x48})
		setRegs(c, func(r *Registers) { r.A, r.SP = 0x99, 0x00 })

		require.NoError(t, c.Step())

		assert.Equal(t, uint8(0x99), b.Read8(0x0100))
		assert.Equal(t, uint8(0xff), c.Registers().SP)
	})

	t.Run("pull wraps", func(t *testing.T) {
		c, b := newTestCPU(t, []uint8{0x68})
		b.Write8(0x0100, 0x80)
		setRegs(c, func(r *Registers) { r.SP = 0xff })

		require.NoError(t, c.Step())

		assert.Equal(t, uint8(0x80), c.Registers().A)
		assert.Equal(t, uint8(0x00), c.Registers().SP)
		assert.True(t, c.Registers().P.Test(FlagN))
		assert.Equal(t, uint64(7+4), c.Cycles())
	})

	t.Run("16-bit push and pull across the wrap", func(t *testing.T) {
		c, b := newTestCPU(t, []uint8{0xea})
		setRegs(c, func(r *Registers) { r.SP = 0x00 })

		c.stackPush16(0xbeef)

		assert.Equal(t, uint8(0xbe), b.Read8(0x0100), "high byte first")
		assert.Equal(t, uint8(0xef), b.Read8(0x01ff))
		assert.Equal(t, uint8(0xfe), c.Registers().SP)

		assert.Equal(t, uint16(0xbeef), c.stackPop16())
		assert.Equal(t, uint8(0x00), c.Registers().SP)
	})

	t.Run("JSR and RTS across the wrap", func(t *testing.T) {
		c, b := newTestCPU(t, []uint8{0x20, 0x00, 0x90})
		b.Write8(0x9000, 0x60)
		setRegs(c, func(r *Registers) { r.SP = 0x00 })

		require.NoError(t, c.Step())

		assert.Equal(t, uint8(0x80), b.Read8(0x0100))
		assert.Equal(t, uint8(0x02), b.Read8(0x01ff))
		assert.Equal(t, uint8(0xfe), c.Registers().SP)

		require.NoError(t, c.Step())

		assert.Equal(t, programStart+3, c.Registers().PC)
		assert.Equal(t, uint8(0x00), c.Registers().SP)
	})

	t.Run("PHP sets B and U in the pushed copy", func(t *testing.T) {
		c, b := newTestCPU(t, []uint8{0x08})
		setRegs(c, func(r *Registers) { r.P = Status(FlagC) })

		require.NoError(t, c.Step())

		assert.Equal(t, uint8(0x31), b.Read8(0x01fd))
		assert.Equal(t, Status(FlagC), c.Registers().P, "the register itself is unchanged")
	})

	t.Run("PLP drops B and forces U", func(t *testing.T) {
		c, b := newTestCPU(t, []uint8{0x28})
		b.Write8(0x01fe, 0xdf)
		setRegs(c, func(r *Registers) { r.SP = 0xfd })

		require.NoError(t, c.Step())

		assert.Equal(t, Status(0xef), c.Registers().P)
	})
}

func Test_JSR_RTS(t *testing.T) {
	tests := []struct {
		at     uint16
		target uint16
	}{
		{at: 0x8000, target: 0x9000},
		{at: 0x8000, target: 0x90ff},
		{at: 0x80fd, target: 0x9000},
		{at: 0x80fe, target: 0x90ff},
		{at: 0x80ff, target: 0x0100},
		{at: 0x80ff, target: 0x9000},
		{at: 0x80fe, target: 0x0100},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("$%04X to $%04X", tt.at, tt.target), func(t *testing.T) {
			b := bus.New()
			require.NoError(t, b.Load(tt.at, []uint8{0x20, uint8(tt.target), uint8(tt.target >> 8)}))
			b.Write8(tt.target, 0x60)
			c := NewCPU(b, WithResetPC(tt.at))
			c.Reset()

			require.NoError(t, c.Step())

			ret := tt.at + 2
			assert.Equal(t, tt.target, c.Registers().PC)
			assert.Equal(t, uint8(0xfb), c.Registers().SP)
			assert.Equal(t, uint8(ret>>8), b.Read8(0x01fd), "return address - 1, high byte")
			assert.Equal(t, uint8(ret), b.Read8(0x01fc), "return address - 1, low byte")

			require.NoError(t, c.Step())

			assert.Equal(t, tt.at+3, c.Registers().PC)
			assert.Equal(t, uint8(0xfd), c.Registers().SP)
			assert.Equal(t, uint64(7+6+6), c.Cycles())
		})
	}
}

func Test_BRK_RTI(t *testing.T) {
	c, b := newTestCPU(t, []uint8{0x00, 0xea}, WithHaltOnBreak(false))
	b.Write16(vectorIRQ, 0x9000)
	b.Write8(0x9000, 0x40)
	setRegs(c, func(r *Registers) { r.P = Status(FlagU | FlagC) })

	require.NoError(t, c.Step())

	assert.Equal(t, Running, c.State())
	assert.Equal(t, uint16(0x9000), c.Registers().PC)
	assert.True(t, c.Registers().P.Test(FlagI))
	assert.Equal(t, uint8(0x80), b.Read8(0x01fd))
	assert.Equal(t, uint8(0x02), b.Read8(0x01fc))
	assert.Equal(t, uint8(0x31), b.Read8(0x01fb), "pushed P has B and U set")

	require.NoError(t, c.Step())

	assert.Equal(t, uint16(0x8002), c.Registers().PC)
	assert.Equal(t, Status(FlagU|FlagC), c.Registers().P)
	assert.Equal(t, uint64(7+7+6), c.Cycles())
}

func Test_BIT(t *testing.T) {
	c, b := newTestCPU(t, []uint8{0x24, 0x10})
	b.Write8(0x0010, 0xc0)
	setRegs(c, func(r *Registers) { r.A, r.P = 0x01, 0 })

	require.NoError(t, c.Step())

	assert.Equal(t, Status(FlagZ|FlagV|FlagN), c.Registers().P)
	assert.Equal(t, uint8(0x01), c.Registers().A)
}

func Test_Compare(t *testing.T) {
	tests := []struct {
		name      string
		reg       uint8
		operand   uint8
		expectedP Status
	}{
		{name: "greater", reg: 0x10, operand: 0x01, expectedP: Status(FlagC)},
		{name: "equal", reg: 0x10, operand: 0x10, expectedP: Status(FlagC | FlagZ)},
		{name: "less", reg: 0x01, operand: 0x10, expectedP: Status(FlagN)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, opcode := range []uint8{0xc9, 0xe0, 0xc0} {
				c, _ := newTestCPU(t, []uint8{opcode, tt.operand})
				setRegs(c, func(r *Registers) { r.A, r.X, r.Y, r.P = tt.reg, tt.reg, tt.reg, 0 })

				require.NoError(t, c.Step())

				assert.Equal(t, tt.expectedP, c.Registers().P, "opcode $%02X", opcode)
			}
		})
	}
}

func Test_Undocumented(t *testing.T) {
	t.Run("LAX", func(t *testing.T) {
		c, b := newTestCPU(t, []uint8{0xa7, 0x10})
		b.Write8(0x0010, 0x80)

		require.NoError(t, c.Step())

		assert.Equal(t, uint8(0x80), c.Registers().A)
		assert.Equal(t, uint8(0x80), c.Registers().X)
		assert.True(t, c.Registers().P.Test(FlagN))
	})

	t.Run("SAX", func(t *testing.T) {
		c, b := newTestCPU(t, []uint8{0x87, 0x10})
		setRegs(c, func(r *Registers) { r.A, r.X = 0xf0, 0x3c })

		require.NoError(t, c.Step())

		assert.Equal(t, uint8(0x30), b.Read8(0x0010))
	})

	t.Run("DCP", func(t *testing.T) {
		c, b := newTestCPU(t, []uint8{0xc7, 0x10})
		b.Write8(0x0010, 0x43)
		setRegs(c, func(r *Registers) { r.A, r.P = 0x42, 0 })

		require.NoError(t, c.Step())

		assert.Equal(t, uint8(0x42), b.Read8(0x0010))
		assert.Equal(t, Status(FlagZ|FlagC), c.Registers().P)
	})

	t.Run("ISB", func(t *testing.T) {
		c, b := newTestCPU(t, []uint8{0xe7, 0x10})
		b.Write8(0x0010, 0x0f)
		setRegs(c, func(r *Registers) { r.A, r.P = 0x20, Status(FlagC) })

		require.NoError(t, c.Step())

		assert.Equal(t, uint8(0x10), b.Read8(0x0010))
		assert.Equal(t, uint8(0x10), c.Registers().A)
		assert.Equal(t, uint64(7+5), c.Cycles())
	})

	t.Run("SLO", func(t *testing.T) {
		c, b := newTestCPU(t, []uint8{0x07, 0x10})
		b.Write8(0x0010, 0x81)
		setRegs(c, func(r *Registers) { r.A, r.P = 0x01, 0 })

		require.NoError(t, c.Step())

		assert.Equal(t, uint8(0x02), b.Read8(0x0010))
		assert.Equal(t, uint8(0x03), c.Registers().A)
		assert.Equal(t, Status(FlagC), c.Registers().P)
	})

	t.Run("ANC copies N into C", func(t *testing.T) {
		c, _ := newTestCPU(t, []uint8{0x0b, 0x80})
		setRegs(c, func(r *Registers) { r.A, r.P = 0xff, 0 })

		require.NoError(t, c.Step())

		assert.Equal(t, Status(FlagN|FlagC), c.Registers().P)
	})

	t.Run("ARR", func(t *testing.T) {
		c, _ := newTestCPU(t, []uint8{0x6b, 0xff})
		setRegs(c, func(r *Registers) { r.A, r.P = 0xc0, Status(FlagC) })

		require.NoError(t, c.Step())

		// (C0 >> 1) | 80 = E0: bit 6 set, bit 5 set
		assert.Equal(t, uint8(0xe0), c.Registers().A)
		assert.Equal(t, Status(FlagN|FlagC), c.Registers().P)
	})

	t.Run("SBX", func(t *testing.T) {
		c, _ := newTestCPU(t, []uint8{0xcb, 0x02})
		setRegs(c, func(r *Registers) { r.A, r.X, r.P = 0x0f, 0x07, 0 })

		require.NoError(t, c.Step())

		assert.Equal(t, uint8(0x05), c.Registers().X)
		assert.Equal(t, Status(FlagC), c.Registers().P)
	})

	t.Run("ANE uses the magic constant", func(t *testing.T) {
		c, _ := newTestCPU(t, []uint8{0x8b, 0xff})
		setRegs(c, func(r *Registers) { r.A, r.X = 0x00, 0xff })

		require.NoError(t, c.Step())

		assert.Equal(t, uint8(0xee), c.Registers().A)
	})

	t.Run("SHX page cross", func(t *testing.T) {
		c, b := newTestCPU(t, []uint8{0x9e, 0xff, 0x02})
		setRegs(c, func(r *Registers) { r.X, r.Y = 0x01, 0x01 })

		require.NoError(t, c.Step())

		// X & (02 + 1) = 01, which also becomes the high byte
		assert.Equal(t, uint8(0x01), b.Read8(0x0100))
		assert.Equal(t, uint8(0x00), b.Read8(0x0300))
	})
}

func TestCPU_Jam(t *testing.T) {
	c, _ := newTestCPU(t, []uint8{0xea, 0x02})

	res, err := c.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Halted, res.State)
	assert.Equal(t, HaltJam, res.Reason)
	assert.Equal(t, programStart+1, res.PC, "PC stays on the JAM byte")
	assert.ErrorIs(t, c.Step(), ErrHalted)
}

func TestCPU_Unimplemented(t *testing.T) {
	c, _ := newTestCPU(t, []uint8{0xa7, 0x10}, WithTable(NewTable(DocumentedOnly())))

	err := c.Step()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnimplementedOpcode)
	var opErr *UnimplementedOpcodeError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, uint8(0xa7), opErr.Opcode)
	assert.Equal(t, programStart, opErr.PC)

	assert.Equal(t, Halted, c.State())
	assert.Equal(t, HaltUnimplemented, c.Reason())
	assert.Equal(t, programStart, c.Registers().PC)
	assert.Equal(t, uint64(7), c.Cycles())
	assert.ErrorIs(t, c.Step(), ErrHalted)
}

func TestCPU_StepN(t *testing.T) {
	c, _ := newTestCPU(t, []uint8{0xea, 0xea, 0xea, 0x00, 0xea})

	n, err := c.StepN(10)

	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, HaltBreak, c.Reason())
}

func TestCPU_Run_Cancel(t *testing.T) {
	t.Run("before start", func(t *testing.T) {
		c, _ := newTestCPU(t, []uint8{0x4c, 0x00, 0x80})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		res, err := c.Run(ctx)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, Running, res.State)
		assert.Equal(t, uint64(0), res.Steps)
	})

	t.Run("between instructions", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		traced := 0
		c, _ := newTestCPU(t, []uint8{0x4c, 0x00, 0x80}, WithTracer(func(Trace) {
			traced++
			if traced == 100 {
				cancel()
			}
		}))

		res, err := c.Run(ctx)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, uint64(100), res.Steps)
		assert.Equal(t, Running, c.State(), "a cancelled run can be resumed")
	})
}

func TestCPU_Halt(t *testing.T) {
	c, _ := newTestCPU(t, []uint8{0xea})

	c.Halt()

	assert.Equal(t, HaltStopped, c.Reason())
	assert.ErrorIs(t, c.Step(), ErrHalted)
}

func TestCPU_Interrupts(t *testing.T) {
	t.Run("IRQ is masked by I", func(t *testing.T) {
		c, _ := newTestCPU(t, []uint8{0xea})

		c.IRQ()

		assert.Equal(t, programStart, c.Registers().PC)
		assert.Equal(t, uint64(7), c.Cycles())
	})

	t.Run("IRQ", func(t *testing.T) {
		c, b := newTestCPU(t, []uint8{0xea})
		b.Write16(vectorIRQ, 0x9000)
		setRegs(c, func(r *Registers) { r.P = Status(FlagU) })

		c.IRQ()

		assert.Equal(t, uint16(0x9000), c.Registers().PC)
		assert.Equal(t, uint8(0x20), b.Read8(0x01fb), "pushed P has B clear")
		assert.True(t, c.Registers().P.Test(FlagI))
		assert.Equal(t, uint64(7+7), c.Cycles())
	})

	t.Run("NMI ignores I", func(t *testing.T) {
		c, b := newTestCPU(t, []uint8{0xea})
		b.Write16(vectorNMI, 0xa000)

		c.NMI()

		assert.Equal(t, uint16(0xa000), c.Registers().PC)
		assert.Equal(t, uint8(0x80), b.Read8(0x01fd))
		assert.Equal(t, uint8(0x00), b.Read8(0x01fc))
	})
}
