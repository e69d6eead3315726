package cpu

import "fmt"

const opBRK = 0x00

type handler func(c *CPU, mode AddrMode)

// Descriptor is the decoded form of one opcode byte.
type Descriptor struct {
	Code      uint8
	Name      string
	Mode      AddrMode
	Bytes     uint8 // opcode plus operand bytes
	Cycles    uint8 // base cost, before page crossing and taken branches
	PageCycle bool  // one more cycle when the indexed operand crosses a page
	Official  bool  // part of the documented instruction set

	exec handler
}

// Implemented reports whether the engine can execute the opcode.
func (d Descriptor) Implemented() bool {
	return d.exec != nil
}

func (d Descriptor) String() string {
	if d.Official {
		return fmt.Sprintf("$%02X %s {%s}", d.Code, d.Name, d.Mode)
	}
	return fmt.Sprintf("$%02X *%s {%s}", d.Code, d.Name, d.Mode)
}

// Table maps every byte value to a descriptor. It is read-only once built.
type Table struct {
	descs [0x100]Descriptor
}

type TableOption func(*Table)

// DocumentedOnly strips the handlers of every undocumented opcode. Executing
// one of them stops the engine with an UnimplementedOpcodeError.
func DocumentedOnly() TableOption {
	return func(t *Table) {
		for i, d := range t.descs {
			if !d.Official {
				t.descs[i].exec = nil
			}
		}
	}
}

var defaultTable = NewTable()

func NewTable(opts ...TableOption) *Table {
	t := &Table{}
	t.init()
	for i := range t.descs {
		t.descs[i].Code = uint8(i)
		t.descs[i].Bytes = t.descs[i].Mode.size()
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Table) Lookup(code uint8) Descriptor {
	return t.descs[code]
}

// Lookup returns the descriptor for code from the full table.
func Lookup(code uint8) Descriptor {
	return defaultTable.Lookup(code)
}

func (t *Table) init() {
	t.descs[0x00] = Descriptor{Name: "BRK", Mode: AddrModeIMP, Cycles: 7, Official: true, exec: (*CPU).brk}
	t.descs[0x01] = Descriptor{Name: "ORA", Mode: AddrModeINDX, Cycles: 6, Official: true, exec: (*CPU).ora}
	t.descs[0x02] = Descriptor{Name: "JAM", Mode: AddrModeIMP, Cycles: 0, exec: (*CPU).jam}
	t.descs[0x03] = Descriptor{Name: "SLO", Mode: AddrModeINDX, Cycles: 8, exec: (*CPU).slo}
	t.descs[0x04] = Descriptor{Name: "NOP", Mode: AddrModeZP, Cycles: 3, exec: (*CPU).nop}
	t.descs[0x05] = Descriptor{Name: "ORA", Mode: AddrModeZP, Cycles: 3, Official: true, exec: (*CPU).ora}
	t.descs[0x06] = Descriptor{Name: "ASL", Mode: AddrModeZP, Cycles: 5, Official: true, exec: (*CPU).asl}
	t.descs[0x07] = Descriptor{Name: "SLO", Mode: AddrModeZP, Cycles: 5, exec: (*CPU).slo}
	t.descs[0x08] = Descriptor{Name: "PHP", Mode: AddrModeIMP, Cycles: 3, Official: true, exec: (*CPU).php}
	t.descs[0x09] = Descriptor{Name: "ORA", Mode: AddrModeIMM, Cycles: 2, Official: true, exec: (*CPU).ora}
	t.descs[0x0a] = Descriptor{Name: "ASL", Mode: AddrModeACC, Cycles: 2, Official: true, exec: (*CPU).asl}
	t.descs[0x0b] = Descriptor{Name: "ANC", Mode: AddrModeIMM, Cycles: 2, exec: (*CPU).anc}
	t.descs[0x0c] = Descriptor{Name: "NOP", Mode: AddrModeABS, Cycles: 4, exec: (*CPU).nop}
	t.descs[0x0d] = Descriptor{Name: "ORA", Mode: AddrModeABS, Cycles: 4, Official: true, exec: (*CPU).ora}
	t.descs[0x0e] = Descriptor{Name: "ASL", Mode: AddrModeABS, Cycles: 6, Official: true, exec: (*CPU).asl}
	t.descs[0x0f] = Descriptor{Name: "SLO", Mode: AddrModeABS, Cycles: 6, exec: (*CPU).slo}
	t.descs[0x10] = Descriptor{Name: "BPL", Mode: AddrModeREL, Cycles: 2, Official: true, exec: (*CPU).bpl}
	t.descs[0x11] = Descriptor{Name: "ORA", Mode: AddrModeINDY, Cycles: 5, PageCycle: true, Official: true, exec: (*CPU).ora}
	t.descs[0x12] = Descriptor{Name: "JAM", Mode: AddrModeIMP, Cycles: 0, exec: (*CPU).jam}
	t.descs[0x13] = Descriptor{Name: "SLO", Mode: AddrModeINDY, Cycles: 8, exec: (*CPU).slo}
	t.descs[0x14] = Descriptor{Name: "NOP", Mode: AddrModeZPX, Cycles: 4, exec: (*CPU).nop}
	t.descs[0x15] = Descriptor{Name: "ORA", Mode: AddrModeZPX, Cycles: 4, Official: true, exec: (*CPU).ora}
	t.descs[0x16] = Descriptor{Name: "ASL", Mode: AddrModeZPX, Cycles: 6, Official: true, exec: (*CPU).asl}
	t.descs[0x17] = Descriptor{Name: "SLO", Mode: AddrModeZPX, Cycles: 6, exec: (*CPU).slo}
	t.descs[0x18] = Descriptor{Name: "CLC", Mode: AddrModeIMP, Cycles: 2, Official: true, exec: (*CPU).clc}
	t.descs[0x19] = Descriptor{Name: "ORA", Mode: AddrModeABSY, Cycles: 4, PageCycle: true, Official: true, exec: (*CPU).ora}
	t.descs[0x1a] = Descriptor{Name: "NOP", Mode: AddrModeIMP, Cycles: 2, exec: (*CPU).nop}
	t.descs[0x1b] = Descriptor{Name: "SLO", Mode: AddrModeABSY, Cycles: 7, exec: (*CPU).slo}
	t.descs[0x1c] = Descriptor{Name: "NOP", Mode: AddrModeABSX, Cycles: 4, PageCycle: true, exec: (*CPU).nop}
	t.descs[0x1d] = Descriptor{Name: "ORA", Mode: AddrModeABSX, Cycles: 4, PageCycle: true, Official: true, exec: (*CPU).ora}
	t.descs[0x1e] = Descriptor{Name: "ASL", Mode: AddrModeABSX, Cycles: 7, Official: true, exec: (*CPU).asl}
	t.descs[0x1f] = Descriptor{Name: "SLO", Mode: AddrModeABSX, Cycles: 7, exec: (*CPU).slo}
	t.descs[0x20] = Descriptor{Name: "JSR", Mode: AddrModeABS, Cycles: 6, Official: true, exec: (*CPU).jsr}
	t.descs[0x21] = Descriptor{Name: "AND", Mode: AddrModeINDX, Cycles: 6, Official: true, exec: (*CPU).and}
	t.descs[0x22] = Descriptor{Name: "JAM", Mode: AddrModeIMP, Cycles: 0, exec: (*CPU).jam}
	t.descs[0x23] = Descriptor{Name: "RLA", Mode: AddrModeINDX, Cycles: 8, exec: (*CPU).rla}
	t.descs[0x24] = Descriptor{Name: "BIT", Mode: AddrModeZP, Cycles: 3, Official: true, exec: (*CPU).bit}
	t.descs[0x25] = Descriptor{Name: "AND", Mode: AddrModeZP, Cycles: 3, Official: true, exec: (*CPU).and}
	t.descs[0x26] = Descriptor{Name: "ROL", Mode: AddrModeZP, Cycles: 5, Official: true, exec: (*CPU).rol}
	t.descs[0x27] = Descriptor{Name: "RLA", Mode: AddrModeZP, Cycles: 5, exec: (*CPU).rla}
	t.descs[0x28] = Descriptor{Name: "PLP", Mode: AddrModeIMP, Cycles: 4, Official: true, exec: (*CPU).plp}
	t.descs[0x29] = Descriptor{Name: "AND", Mode: AddrModeIMM, Cycles: 2, Official: true, exec: (*CPU).and}
	t.descs[0x2a] = Descriptor{Name: "ROL", Mode: AddrModeACC, Cycles: 2, Official: true, exec: (*CPU).rol}
	t.descs[0x2b] = Descriptor{Name: "ANC", Mode: AddrModeIMM, Cycles: 2, exec: (*CPU).anc}
	t.descs[0x2c] = Descriptor{Name: "BIT", Mode: AddrModeABS, Cycles: 4, Official: true, exec: (*CPU).bit}
	t.descs[0x2d] = Descriptor{Name: "AND", Mode: AddrModeABS, Cycles: 4, Official: true, exec: (*CPU).and}
	t.descs[0x2e] = Descriptor{Name: "ROL", Mode: AddrModeABS, Cycles: 6, Official: true, exec: (*CPU).rol}
	t.descs[0x2f] = Descriptor{Name: "RLA", Mode: AddrModeABS, Cycles: 6, exec: (*CPU).rla}
	t.descs[0x30] = Descriptor{Name: "BMI", Mode: AddrModeREL, Cycles: 2, Official: true, exec: (*CPU).bmi}
	t.descs[0x31] = Descriptor{Name: "AND", Mode: AddrModeINDY, Cycles: 5, PageCycle: true, Official: true, exec: (*CPU).and}
	t.descs[0x32] = Descriptor{Name: "JAM", Mode: AddrModeIMP, Cycles: 0, exec: (*CPU).jam}
	t.descs[0x33] = Descriptor{Name: "RLA", Mode: AddrModeINDY, Cycles: 8, exec: (*CPU).rla}
	t.descs[0x34] = Descriptor{Name: "NOP", Mode: AddrModeZPX, Cycles: 4, exec: (*CPU).nop}
	t.descs[0x35] = Descriptor{Name: "AND", Mode: AddrModeZPX, Cycles: 4, Official: true, exec: (*CPU).and}
	t.descs[0x36] = Descriptor{Name: "ROL", Mode: AddrModeZPX, Cycles: 6, Official: true, exec: (*CPU).rol}
	t.descs[0x37] = Descriptor{Name: "RLA", Mode: AddrModeZPX, Cycles: 6, exec: (*CPU).rla}
	t.descs[0x38] = Descriptor{Name: "SEC", Mode: AddrModeIMP, Cycles: 2, Official: true, exec: (*CPU).sec}
	t.descs[0x39] = Descriptor{Name: "AND", Mode: AddrModeABSY, Cycles: 4, PageCycle: true, Official: true, exec: (*CPU).and}
	t.descs[0x3a] = Descriptor{Name: "NOP", Mode: AddrModeIMP, Cycles: 2, exec: (*CPU).nop}
	t.descs[0x3b] = Descriptor{Name: "RLA", Mode: AddrModeABSY, Cycles: 7, exec: (*CPU).rla}
	t.descs[0x3c] = Descriptor{Name: "NOP", Mode: AddrModeABSX, Cycles: 4, PageCycle: true, exec: (*CPU).nop}
	t.descs[0x3d] = Descriptor{Name: "AND", Mode: AddrModeABSX, Cycles: 4, PageCycle: true, Official: true, exec: (*CPU).and}
	t.descs[0x3e] = Descriptor{Name: "ROL", Mode: AddrModeABSX, Cycles: 7, Official: true, exec: (*CPU).rol}
	t.descs[0x3f] = Descriptor{Name: "RLA", Mode: AddrModeABSX, Cycles: 7, exec: (*CPU).rla}
	t.descs[0x40] = Descriptor{Name: "RTI", Mode: AddrModeIMP, Cycles: 6, Official: true, exec: (*CPU).rti}
	t.descs[0x41] = Descriptor{Name: "EOR", Mode: AddrModeINDX, Cycles: 6, Official: true, exec: (*CPU).eor}
	t.descs[0x42] = Descriptor{Name: "JAM", Mode: AddrModeIMP, Cycles: 0, exec: (*CPU).jam}
	t.descs[0x43] = Descriptor{Name: "SRE", Mode: AddrModeINDX, Cycles: 8, exec: (*CPU).sre}
	t.descs[0x44] = Descriptor{Name: "NOP", Mode: AddrModeZP, Cycles: 3, exec: (*CPU).nop}
	t.descs[0x45] = Descriptor{Name: "EOR", Mode: AddrModeZP, Cycles: 3, Official: true, exec: (*CPU).eor}
	t.descs[0x46] = Descriptor{Name: "LSR", Mode: AddrModeZP, Cycles: 5, Official: true, exec: (*CPU).lsr}
	t.descs[0x47] = Descriptor{Name: "SRE", Mode: AddrModeZP, Cycles: 5, exec: (*CPU).sre}
	t.descs[0x48] = Descriptor{Name: "PHA", Mode: AddrModeIMP, Cycles: 3, Official: true, exec: (*CPU).pha}
	t.descs[0x49] = Descriptor{Name: "EOR", Mode: AddrModeIMM, Cycles: 2, Official: true, exec: (*CPU).eor}
	t.descs[0x4a] = Descriptor{Name: "LSR", Mode: AddrModeACC, Cycles: 2, Official: true, exec: (*CPU).lsr}
	t.descs[0x4b] = Descriptor{Name: "ALR", Mode: AddrModeIMM, Cycles: 2, exec: (*CPU).alr}
	t.descs[0x4c] = Descriptor{Name: "JMP", Mode: AddrModeABS, Cycles: 3, Official: true, exec: (*CPU).jmp}
	t.descs[0x4d] = Descriptor{Name: "EOR", Mode: AddrModeABS, Cycles: 4, Official: true, exec: (*CPU).eor}
	t.descs[0x4e] = Descriptor{Name: "LSR", Mode: AddrModeABS, Cycles: 6, Official: true, exec: (*CPU).lsr}
	t.descs[0x4f] = Descriptor{Name: "SRE", Mode: AddrModeABS, Cycles: 6, exec: (*CPU).sre}
	t.descs[0x50] = Descriptor{Name: "BVC", Mode: AddrModeREL, Cycles: 2, Official: true, exec: (*CPU).bvc}
	t.descs[0x51] = Descriptor{Name: "EOR", Mode: AddrModeINDY, Cycles: 5, PageCycle: true, Official: true, exec: (*CPU).eor}
	t.descs[0x52] = Descriptor{Name: "JAM", Mode: AddrModeIMP, Cycles: 0, exec: (*CPU).jam}
	t.descs[0x53] = Descriptor{Name: "SRE", Mode: AddrModeINDY, Cycles: 8, exec: (*CPU).sre}
	t.descs[0x54] = Descriptor{Name: "NOP", Mode: AddrModeZPX, Cycles: 4, exec: (*CPU).nop}
	t.descs[0x55] = Descriptor{Name: "EOR", Mode: AddrModeZPX, Cycles: 4, Official: true, exec: (*CPU).eor}
	t.descs[0x56] = Descriptor{Name: "LSR", Mode: AddrModeZPX, Cycles: 6, Official: true, exec: (*CPU).lsr}
	t.descs[0x57] = Descriptor{Name: "SRE", Mode: AddrModeZPX, Cycles: 6, exec: (*CPU).sre}
	t.descs[0x58] = Descriptor{Name: "CLI", Mode: AddrModeIMP, Cycles: 2, Official: true, exec: (*CPU).cli}
	t.descs[0x59] = Descriptor{Name: "EOR", Mode: AddrModeABSY, Cycles: 4, PageCycle: true, Official: true, exec: (*CPU).eor}
	t.descs[0x5a] = Descriptor{Name: "NOP", Mode: AddrModeIMP, Cycles: 2, exec: (*CPU).nop}
	t.descs[0x5b] = Descriptor{Name: "SRE", Mode: AddrModeABSY, Cycles: 7, exec: (*CPU).sre}
	t.descs[0x5c] = Descriptor{Name: "NOP", Mode: AddrModeABSX, Cycles: 4, PageCycle: true, exec: (*CPU).nop}
	t.descs[0x5d] = Descriptor{Name: "EOR", Mode: AddrModeABSX, Cycles: 4, PageCycle: true, Official: true, exec: (*CPU).eor}
	t.descs[0x5e] = Descriptor{Name: "LSR", Mode: AddrModeABSX, Cycles: 7, Official: true, exec: (*CPU).lsr}
	t.descs[0x5f] = Descriptor{Name: "SRE", Mode: AddrModeABSX, Cycles: 7, exec: (*CPU).sre}
	t.descs[0x60] = Descriptor{Name: "RTS", Mode: AddrModeIMP, Cycles: 6, Official: true, exec: (*CPU).rts}
	t.descs[0x61] = Descriptor{Name: "ADC", Mode: AddrModeINDX, Cycles: 6, Official: true, exec: (*CPU).adc}
	t.descs[0x62] = Descriptor{Name: "JAM", Mode: AddrModeIMP, Cycles: 0, exec: (*CPU).jam}
	t.descs[0x63] = Descriptor{Name: "RRA", Mode: AddrModeINDX, Cycles: 8, exec: (*CPU).rra}
	t.descs[0x64] = Descriptor{Name: "NOP", Mode: AddrModeZP, Cycles: 3, exec: (*CPU).nop}
	t.descs[0x65] = Descriptor{Name: "ADC", Mode: AddrModeZP, Cycles: 3, Official: true, exec: (*CPU).adc}
	t.descs[0x66] = Descriptor{Name: "ROR", Mode: AddrModeZP, Cycles: 5, Official: true, exec: (*CPU).ror}
	t.descs[0x67] = Descriptor{Name: "RRA", Mode: AddrModeZP, Cycles: 5, exec: (*CPU).rra}
	t.descs[0x68] = Descriptor{Name: "PLA", Mode: AddrModeIMP, Cycles: 4, Official: true, exec: (*CPU).pla}
	t.descs[0x69] = Descriptor{Name: "ADC", Mode: AddrModeIMM, Cycles: 2, Official: true, exec: (*CPU).adc}
	t.descs[0x6a] = Descriptor{Name: "ROR", Mode: AddrModeACC, Cycles: 2, Official: true, exec: (*CPU).ror}
	t.descs[0x6b] = Descriptor{Name: "ARR", Mode: AddrModeIMM, Cycles: 2, exec: (*CPU).arr}
	t.descs[0x6c] = Descriptor{Name: "JMP", Mode: AddrModeIND, Cycles: 5, Official: true, exec: (*CPU).jmp}
	t.descs[0x6d] = Descriptor{Name: "ADC", Mode: AddrModeABS, Cycles: 4, Official: true, exec: (*CPU).adc}
	t.descs[0x6e] = Descriptor{Name: "ROR", Mode: AddrModeABS, Cycles: 6, Official: true, exec: (*CPU).ror}
	t.descs[0x6f] = Descriptor{Name: "RRA", Mode: AddrModeABS, Cycles: 6, exec: (*CPU).rra}
	t.descs[0x70] = Descriptor{Name: "BVS", Mode: AddrModeREL, Cycles: 2, Official: true, exec: (*CPU).bvs}
	t.descs[0x71] = Descriptor{Name: "ADC", Mode: AddrModeINDY, Cycles: 5, PageCycle: true, Official: true, exec: (*CPU).adc}
	t.descs[0x72] = Descriptor{Name: "JAM", Mode: AddrModeIMP, Cycles: 0, exec: (*CPU).jam}
	t.descs[0x73] = Descriptor{Name: "RRA", Mode: AddrModeINDY, Cycles: 8, exec: (*CPU).rra}
	t.descs[0x74] = Descriptor{Name: "NOP", Mode: AddrModeZPX, Cycles: 4, exec: (*CPU).nop}
	t.descs[0x75] = Descriptor{Name: "ADC", Mode: AddrModeZPX, Cycles: 4, Official: true, exec: (*CPU).adc}
	t.descs[0x76] = Descriptor{Name: "ROR", Mode: AddrModeZPX, Cycles: 6, Official: true, exec: (*CPU).ror}
	t.descs[0x77] = Descriptor{Name: "RRA", Mode: AddrModeZPX, Cycles: 6, exec: (*CPU).rra}
	t.descs[0x78] = Descriptor{Name: "SEI", Mode: AddrModeIMP, Cycles: 2, Official: true, exec: (*CPU).sei}
	t.descs[0x79] = Descriptor{Name: "ADC", Mode: AddrModeABSY, Cycles: 4, PageCycle: true, Official: true, exec: (*CPU).adc}
	t.descs[0x7a] = Descriptor{Name: "NOP", Mode: AddrModeIMP, Cycles: 2, exec: (*CPU).nop}
	t.descs[0x7b] = Descriptor{Name: "RRA", Mode: AddrModeABSY, Cycles: 7, exec: (*CPU).rra}
	t.descs[0x7c] = Descriptor{Name: "NOP", Mode: AddrModeABSX, Cycles: 4, PageCycle: true, exec: (*CPU).nop}
	t.descs[0x7d] = Descriptor{Name: "ADC", Mode: AddrModeABSX, Cycles: 4, PageCycle: true, Official: true, exec: (*CPU).adc}
	t.descs[0x7e] = Descriptor{Name: "ROR", Mode: AddrModeABSX, Cycles: 7, Official: true, exec: (*CPU).ror}
	t.descs[0x7f] = Descriptor{Name: "RRA", Mode: AddrModeABSX, Cycles: 7, exec: (*CPU).rra}
	t.descs[0x80] = Descriptor{Name: "NOP", Mode: AddrModeIMM, Cycles: 2, exec: (*CPU).nop}
	t.descs[0x81] = Descriptor{Name: "STA", Mode: AddrModeINDX, Cycles: 6, Official: true, exec: (*CPU).sta}
	t.descs[0x82] = Descriptor{Name: "NOP", Mode: AddrModeIMM, Cycles: 2, exec: (*CPU).nop}
	t.descs[0x83] = Descriptor{Name: "SAX", Mode: AddrModeINDX, Cycles: 6, exec: (*CPU).sax}
	t.descs[0x84] = Descriptor{Name: "STY", Mode: AddrModeZP, Cycles: 3, Official: true, exec: (*CPU).sty}
	t.descs[0x85] = Descriptor{Name: "STA", Mode: AddrModeZP, Cycles: 3, Official: true, exec: (*CPU).sta}
	t.descs[0x86] = Descriptor{Name: "STX", Mode: AddrModeZP, Cycles: 3, Official: true, exec: (*CPU).stx}
	t.descs[0x87] = Descriptor{Name: "SAX", Mode: AddrModeZP, Cycles: 3, exec: (*CPU).sax}
	t.descs[0x88] = Descriptor{Name: "DEY", Mode: AddrModeIMP, Cycles: 2, Official: true, exec: (*CPU).dey}
	t.descs[0x89] = Descriptor{Name: "NOP", Mode: AddrModeIMM, Cycles: 2, exec: (*CPU).nop}
	t.descs[0x8a] = Descriptor{Name: "TXA", Mode: AddrModeIMP, Cycles: 2, Official: true, exec: (*CPU).txa}
	t.descs[0x8b] = Descriptor{Name: "ANE", Mode: AddrModeIMM, Cycles: 2, exec: (*CPU).ane}
	t.descs[0x8c] = Descriptor{Name: "STY", Mode: AddrModeABS, Cycles: 4, Official: true, exec: (*CPU).sty}
	t.descs[0x8d] = Descriptor{Name: "STA", Mode: AddrModeABS, Cycles: 4, Official: true, exec: (*CPU).sta}
	t.descs[0x8e] = Descriptor{Name: "STX", Mode: AddrModeABS, Cycles: 4, Official: true, exec: (*CPU).stx}
	t.descs[0x8f] = Descriptor{Name: "SAX", Mode: AddrModeABS, Cycles: 4, exec: (*CPU).sax}
	t.descs[0x90] = Descriptor{Name: "BCC", Mode: AddrModeREL, Cycles: 2, Official: true, exec: (*CPU).bcc}
	t.descs[0x91] = Descriptor{Name: "STA", Mode: AddrModeINDY, Cycles: 6, Official: true, exec: (*CPU).sta}
	t.descs[0x92] = Descriptor{Name: "JAM", Mode: AddrModeIMP, Cycles: 0, exec: (*CPU).jam}
	t.descs[0x93] = Descriptor{Name: "SHA", Mode: AddrModeINDY, Cycles: 6, exec: (*CPU).sha}
	t.descs[0x94] = Descriptor{Name: "STY", Mode: AddrModeZPX, Cycles: 4, Official: true, exec: (*CPU).sty}
	t.descs[0x95] = Descriptor{Name: "STA", Mode: AddrModeZPX, Cycles: 4, Official: true, exec: (*CPU).sta}
	t.descs[0x96] = Descriptor{Name: "STX", Mode: AddrModeZPY, Cycles: 4, Official: true, exec: (*CPU).stx}
	t.descs[0x97] = Descriptor{Name: "SAX", Mode: AddrModeZPY, Cycles: 4, exec: (*CPU).sax}
	t.descs[0x98] = Descriptor{Name: "TYA", Mode: AddrModeIMP, Cycles: 2, Official: true, exec: (*CPU).tya}
	t.descs[0x99] = Descriptor{Name: "STA", Mode: AddrModeABSY, Cycles: 5, Official: true, exec: (*CPU).sta}
	t.descs[0x9a] = Descriptor{Name: "TXS", Mode: AddrModeIMP, Cycles: 2, Official: true, exec: (*CPU).txs}
	t.descs[0x9b] = Descriptor{Name: "TAS", Mode: AddrModeABSY, Cycles: 5, exec: (*CPU).tas}
	t.descs[0x9c] = Descriptor{Name: "SHY", Mode: AddrModeABSX, Cycles: 5, exec: (*CPU).shy}
	t.descs[0x9d] = Descriptor{Name: "STA", Mode: AddrModeABSX, Cycles: 5, Official: true, exec: (*CPU).sta}
	t.descs[0x9e] = Descriptor{Name: "SHX", Mode: AddrModeABSY, Cycles: 5, exec: (*CPU).shx}
	t.descs[0x9f] = Descriptor{Name: "SHA", Mode: AddrModeABSY, Cycles: 5, exec: (*CPU).sha}
	t.descs[0xa0] = Descriptor{Name: "LDY", Mode: AddrModeIMM, Cycles: 2, Official: true, exec: (*CPU).ldy}
	t.descs[0xa1] = Descriptor{Name: "LDA", Mode: AddrModeINDX, Cycles: 6, Official: true, exec: (*CPU).lda}
	t.descs[0xa2] = Descriptor{Name: "LDX", Mode: AddrModeIMM, Cycles: 2, Official: true, exec: (*CPU).ldx}
	t.descs[0xa3] = Descriptor{Name: "LAX", Mode: AddrModeINDX, Cycles: 6, exec: (*CPU).lax}
	t.descs[0xa4] = Descriptor{Name: "LDY", Mode: AddrModeZP, Cycles: 3, Official: true, exec: (*CPU).ldy}
	t.descs[0xa5] = Descriptor{Name: "LDA", Mode: AddrModeZP, Cycles: 3, Official: true, exec: (*CPU).lda}
	t.descs[0xa6] = Descriptor{Name: "LDX", Mode: AddrModeZP, Cycles: 3, Official: true, exec: (*CPU).ldx}
	t.descs[0xa7] = Descriptor{Name: "LAX", Mode: AddrModeZP, Cycles: 3, exec: (*CPU).lax}
	t.descs[0xa8] = Descriptor{Name: "TAY", Mode: AddrModeIMP, Cycles: 2, Official: true, exec: (*CPU).tay}
	t.descs[0xa9] = Descriptor{Name: "LDA", Mode: AddrModeIMM, Cycles: 2, Official: true, exec: (*CPU).lda}
	t.descs[0xaa] = Descriptor{Name: "TAX", Mode: AddrModeIMP, Cycles: 2, Official: true, exec: (*CPU).tax}
	t.descs[0xab] = Descriptor{Name: "LXA", Mode: AddrModeIMM, Cycles: 2, exec: (*CPU).lxa}
	t.descs[0xac] = Descriptor{Name: "LDY", Mode: AddrModeABS, Cycles: 4, Official: true, exec: (*CPU).ldy}
	t.descs[0xad] = Descriptor{Name: "LDA", Mode: AddrModeABS, Cycles: 4, Official: true, exec: (*CPU).lda}
	t.descs[0xae] = Descriptor{Name: "LDX", Mode: AddrModeABS, Cycles: 4, Official: true, exec: (*CPU).ldx}
	t.descs[0xaf] = Descriptor{Name: "LAX", Mode: AddrModeABS, Cycles: 4, exec: (*CPU).lax}
	t.descs[0xb0] = Descriptor{Name: "BCS", Mode: AddrModeREL, Cycles: 2, Official: true, exec: (*CPU).bcs}
	t.descs[0xb1] = Descriptor{Name: "LDA", Mode: AddrModeINDY, Cycles: 5, PageCycle: true, Official: true, exec: (*CPU).lda}
	t.descs[0xb2] = Descriptor{Name: "JAM", Mode: AddrModeIMP, Cycles: 0, exec: (*CPU).jam}
	t.descs[0xb3] = Descriptor{Name: "LAX", Mode: AddrModeINDY, Cycles: 5, PageCycle: true, exec: (*CPU).lax}
	t.descs[0xb4] = Descriptor{Name: "LDY", Mode: AddrModeZPX, Cycles: 4, Official: true, exec: (*CPU).ldy}
	t.descs[0xb5] = Descriptor{Name: "LDA", Mode: AddrModeZPX, Cycles: 4, Official: true, exec: (*CPU).lda}
	t.descs[0xb6] = Descriptor{Name: "LDX", Mode: AddrModeZPY, Cycles: 4, Official: true, exec: (*CPU).ldx}
	t.descs[0xb7] = Descriptor{Name: "LAX", Mode: AddrModeZPY, Cycles: 4, exec: (*CPU).lax}
	t.descs[0xb8] = Descriptor{Name: "CLV", Mode: AddrModeIMP, Cycles: 2, Official: true, exec: (*CPU).clv}
	t.descs[0xb9] = Descriptor{Name: "LDA", Mode: AddrModeABSY, Cycles: 4, PageCycle: true, Official: true, exec: (*CPU).lda}
	t.descs[0xba] = Descriptor{Name: "TSX", Mode: AddrModeIMP, Cycles: 2, Official: true, exec: (*CPU).tsx}
	t.descs[0xbb] = Descriptor{Name: "LAS", Mode: AddrModeABSY, Cycles: 4, PageCycle: true, exec: (*CPU).las}
	t.descs[0xbc] = Descriptor{Name: "LDY", Mode: AddrModeABSX, Cycles: 4, PageCycle: true, Official: true, exec: (*CPU).ldy}
	t.descs[0xbd] = Descriptor{Name: "LDA", Mode: AddrModeABSX, Cycles: 4, PageCycle: true, Official: true, exec: (*CPU).lda}
	t.descs[0xbe] = Descriptor{Name: "LDX", Mode: AddrModeABSY, Cycles: 4, PageCycle: true, Official: true, exec: (*CPU).ldx}
	t.descs[0xbf] = Descriptor{Name: "LAX", Mode: AddrModeABSY, Cycles: 4, PageCycle: true, exec: (*CPU).lax}
	t.descs[0xc0] = Descriptor{Name: "CPY", Mode: AddrModeIMM, Cycles: 2, Official: true, exec: (*CPU).cpy}
	t.descs[0xc1] = Descriptor{Name: "CMP", Mode: AddrModeINDX, Cycles: 6, Official: true, exec: (*CPU).cmp}
	t.descs[0xc2] = Descriptor{Name: "NOP", Mode: AddrModeIMM, Cycles: 2, exec: (*CPU).nop}
	t.descs[0xc3] = Descriptor{Name: "DCP", Mode: AddrModeINDX, Cycles: 8, exec: (*CPU).dcp}
	t.descs[0xc4] = Descriptor{Name: "CPY", Mode: AddrModeZP, Cycles: 3, Official: true, exec: (*CPU).cpy}
	t.descs[0xc5] = Descriptor{Name: "CMP", Mode: AddrModeZP, Cycles: 3, Official: true, exec: (*CPU).cmp}
	t.descs[0xc6] = Descriptor{Name: "DEC", Mode: AddrModeZP, Cycles: 5, Official: true, exec: (*CPU).dec}
	t.descs[0xc7] = Descriptor{Name: "DCP", Mode: AddrModeZP, Cycles: 5, exec: (*CPU).dcp}
	t.descs[0xc8] = Descriptor{Name: "INY", Mode: AddrModeIMP, Cycles: 2, Official: true, exec: (*CPU).iny}
	t.descs[0xc9] = Descriptor{Name: "CMP", Mode: AddrModeIMM, Cycles: 2, Official: true, exec: (*CPU).cmp}
	t.descs[0xca] = Descriptor{Name: "DEX", Mode: AddrModeIMP, Cycles: 2, Official: true, exec: (*CPU).dex}
	t.descs[0xcb] = Descriptor{Name: "SBX", Mode: AddrModeIMM, Cycles: 2, exec: (*CPU).sbx}
	t.descs[0xcc] = Descriptor{Name: "CPY", Mode: AddrModeABS, Cycles: 4, Official: true, exec: (*CPU).cpy}
	t.descs[0xcd] = Descriptor{Name: "CMP", Mode: AddrModeABS, Cycles: 4, Official: true, exec: (*CPU).cmp}
	t.descs[0xce] = Descriptor{Name: "DEC", Mode: AddrModeABS, Cycles: 6, Official: true, exec: (*CPU).dec}
	t.descs[0xcf] = Descriptor{Name: "DCP", Mode: AddrModeABS, Cycles: 6, exec: (*CPU).dcp}
	t.descs[0xd0] = Descriptor{Name: "BNE", Mode: AddrModeREL, Cycles: 2, Official: true, exec: (*CPU).bne}
	t.descs[0xd1] = Descriptor{Name: "CMP", Mode: AddrModeINDY, Cycles: 5, PageCycle: true, Official: true, exec: (*CPU).cmp}
	t.descs[0xd2] = Descriptor{Name: "JAM", Mode: AddrModeIMP, Cycles: 0, exec: (*CPU).jam}
	t.descs[0xd3] = Descriptor{Name: "DCP", Mode: AddrModeINDY, Cycles: 8, exec: (*CPU).dcp}
	t.descs[0xd4] = Descriptor{Name: "NOP", Mode: AddrModeZPX, Cycles: 4, exec: (*CPU).nop}
	t.descs[0xd5] = Descriptor{Name: "CMP", Mode: AddrModeZPX, Cycles: 4, Official: true, exec: (*CPU).cmp}
	t.descs[0xd6] = Descriptor{Name: "DEC", Mode: AddrModeZPX, Cycles: 6, Official: true, exec: (*CPU).dec}
	t.descs[0xd7] = Descriptor{Name: "DCP", Mode: AddrModeZPX, Cycles: 6, exec: (*CPU).dcp}
	t.descs[0xd8] = Descriptor{Name: "CLD", Mode: AddrModeIMP, Cycles: 2, Official: true, exec: (*CPU).cld}
	t.descs[0xd9] = Descriptor{Name: "CMP", Mode: AddrModeABSY, Cycles: 4, PageCycle: true, Official: true, exec: (*CPU).cmp}
	t.descs[0xda] = Descriptor{Name: "NOP", Mode: AddrModeIMP, Cycles: 2, exec: (*CPU).nop}
	t.descs[0xdb] = Descriptor{Name: "DCP", Mode: AddrModeABSY, Cycles: 7, exec: (*CPU).dcp}
	t.descs[0xdc] = Descriptor{Name: "NOP", Mode: AddrModeABSX, Cycles: 4, PageCycle: true, exec: (*CPU).nop}
	t.descs[0xdd] = Descriptor{Name: "CMP", Mode: AddrModeABSX, Cycles: 4, PageCycle: true, Official: true, exec: (*CPU).cmp}
	t.descs[0xde] = Descriptor{Name: "DEC", Mode: AddrModeABSX, Cycles: 7, Official: true, exec: (*CPU).dec}
	t.descs[0xdf] = Descriptor{Name: "DCP", Mode: AddrModeABSX, Cycles: 7, exec: (*CPU).dcp}
	t.descs[0xe0] = Descriptor{Name: "CPX", Mode: AddrModeIMM, Cycles: 2, Official: true, exec: (*CPU).cpx}
	t.descs[0xe1] = Descriptor{Name: "SBC", Mode: AddrModeINDX, Cycles: 6, Official: true, exec: (*CPU).sbc}
	t.descs[0xe2] = Descriptor{Name: "NOP", Mode: AddrModeIMM, Cycles: 2, exec: (*CPU).nop}
	t.descs[0xe3] = Descriptor{Name: "ISB", Mode: AddrModeINDX, Cycles: 8, exec: (*CPU).isc}
	t.descs[0xe4] = Descriptor{Name: "CPX", Mode: AddrModeZP, Cycles: 3, Official: true, exec: (*CPU).cpx}
	t.descs[0xe5] = Descriptor{Name: "SBC", Mode: AddrModeZP, Cycles: 3, Official: true, exec: (*CPU).sbc}
	t.descs[0xe6] = Descriptor{Name: "INC", Mode: AddrModeZP, Cycles: 5, Official: true, exec: (*CPU).inc}
	t.descs[0xe7] = Descriptor{Name: "ISB", Mode: AddrModeZP, Cycles: 5, exec: (*CPU).isc}
	t.descs[0xe8] = Descriptor{Name: "INX", Mode: AddrModeIMP, Cycles: 2, Official: true, exec: (*CPU).inx}
	t.descs[0xe9] = Descriptor{Name: "SBC", Mode: AddrModeIMM, Cycles: 2, Official: true, exec: (*CPU).sbc}
	t.descs[0xea] = Descriptor{Name: "NOP", Mode: AddrModeIMP, Cycles: 2, Official: true, exec: (*CPU).nop}
	t.descs[0xeb] = Descriptor{Name: "SBC", Mode: AddrModeIMM, Cycles: 2, exec: (*CPU).sbc}
	t.descs[0xec] = Descriptor{Name: "CPX", Mode: AddrModeABS, Cycles: 4, Official: true, exec: (*CPU).cpx}
	t.descs[0xed] = Descriptor{Name: "SBC", Mode: AddrModeABS, Cycles: 4, Official: true, exec: (*CPU).sbc}
	t.descs[0xee] = Descriptor{Name: "INC", Mode: AddrModeABS, Cycles: 6, Official: true, exec: (*CPU).inc}
	t.descs[0xef] = Descriptor{Name: "ISB", Mode: AddrModeABS, Cycles: 6, exec: (*CPU).isc}
	t.descs[0xf0] = Descriptor{Name: "BEQ", Mode: AddrModeREL, Cycles: 2, Official: true, exec: (*CPU).beq}
	t.descs[0xf1] = Descriptor{Name: "SBC", Mode: AddrModeINDY, Cycles: 5, PageCycle: true, Official: true, exec: (*CPU).sbc}
	t.descs[0xf2] = Descriptor{Name: "JAM", Mode: AddrModeIMP, Cycles: 0, exec: (*CPU).jam}
	t.descs[0xf3] = Descriptor{Name: "ISB", Mode: AddrModeINDY, Cycles: 8, exec: (*CPU).isc}
	t.descs[0xf4] = Descriptor{Name: "NOP", Mode: AddrModeZPX, Cycles: 4, exec: (*CPU).nop}
	t.descs[0xf5] = Descriptor{Name: "SBC", Mode: AddrModeZPX, Cycles: 4, Official: true, exec: (*CPU).sbc}
	t.descs[0xf6] = Descriptor{Name: "INC", Mode: AddrModeZPX, Cycles: 6, Official: true, exec: (*CPU).inc}
	t.descs[0xf7] = Descriptor{Name: "ISB", Mode: AddrModeZPX, Cycles: 6, exec: (*CPU).isc}
	t.descs[0xf8] = Descriptor{Name: "SED", Mode: AddrModeIMP, Cycles: 2, Official: true, exec: (*CPU).sed}
	t.descs[0xf9] = Descriptor{Name: "SBC", Mode: AddrModeABSY, Cycles: 4, PageCycle: true, Official: true, exec: (*CPU).sbc}
	t.descs[0xfa] = Descriptor{Name: "NOP", Mode: AddrModeIMP, Cycles: 2, exec: (*CPU).nop}
	t.descs[0xfb] = Descriptor{Name: "ISB", Mode: AddrModeABSY, Cycles: 7, exec: (*CPU).isc}
	t.descs[0xfc] = Descriptor{Name: "NOP", Mode: AddrModeABSX, Cycles: 4, PageCycle: true, exec: (*CPU).nop}
	t.descs[0xfd] = Descriptor{Name: "SBC", Mode: AddrModeABSX, Cycles: 4, PageCycle: true, Official: true, exec: (*CPU).sbc}
	t.descs[0xfe] = Descriptor{Name: "INC", Mode: AddrModeABSX, Cycles: 7, Official: true, exec: (*CPU).inc}
	t.descs[0xff] = Descriptor{Name: "ISB", Mode: AddrModeABSX, Cycles: 7, exec: (*CPU).isc}
}
