package nes

import "github.com/golang/glog"

// CPU emulates the Ricoh 2A03's 6502 core, including the unofficial opcodes
// that the iNES corpus depends on for cycle-accurate timing.
// References:
//   https://en.wikipedia.org/wiki/MOS_Technology_6502
//   http://www.6502.org/tutorials/6502opcodes.html
//   http://www.oxyron.net/html/opcodes02.html (unofficial opcodes)
//   http://hp.vector.co.jp/authors/VA042397/nes/6502.html (In Japanese)

const CPUFrequency = 1789773

type addressingMode int

const (
	implied addressingMode = iota
	accumulator
	immediate
	zeropage
	zeropageX
	zeropageY
	relative
	absolute
	absoluteX
	absoluteY
	indirect
	indirectX
	indirectY
)

// interruptKind distinguishes the two hardware interrupt lines from the
// software BRK instruction; all three share the same push/vector sequence
// but differ in how they are raised and acknowledged.
type interruptKind int

const (
	interruptNone interruptKind = iota
	interruptNMI
	interruptIRQ
)

type status struct {
	C bool // carry
	Z bool // zero
	I bool // IRQ disable
	D bool // decimal - unused on NES, still toggled by SED/CLD
	B bool // break - only meaningful in a pushed copy, never in live state
	R bool // reserved - unused, always 1
	V bool // overflow
	N bool // negative
}

// encode encodes the status to a byte.
func (s *status) encode() byte {
	var res byte
	if s.C {
		res |= 1 << 0
	}
	if s.Z {
		res |= 1 << 1
	}
	if s.I {
		res |= 1 << 2
	}
	if s.D {
		res |= 1 << 3
	}
	if s.B {
		res |= 1 << 4
	}
	if s.R {
		res |= 1 << 5
	}
	if s.V {
		res |= 1 << 6
	}
	if s.N {
		res |= 1 << 7
	}
	return res
}

// decodeFrom decodes a byte to the status. R and B are not restored from
// the decoded byte by callers that implement PLP/RTI semantics; see
// (*CPU).plp and (*CPU).rti, which force R=1 and B=0 after calling this.
func (s *status) decodeFrom(data byte) {
	s.C = (data>>0)&1 == 1
	s.Z = (data>>1)&1 == 1
	s.I = (data>>2)&1 == 1
	s.D = (data>>3)&1 == 1
	s.B = (data>>4)&1 == 1
	s.R = (data>>5)&1 == 1
	s.V = (data>>6)&1 == 1
	s.N = (data>>7)&1 == 1
}

type CPU struct {
	P  *status // Processor status flag bits
	A  byte    // Accumulator register
	X  byte    // Index register
	Y  byte    // Index register
	PC uint16  // Program counter
	S  byte    // Stack pointer

	Cycles uint64 // total elapsed CPU cycles, read by the PPU for DMA parity
	Stall  uint64 // cycles left to stall, consumed by OAM DMA

	bus          *CPUBus
	instructions [256]instruction

	pendingInterrupt interruptKind
	irqLine          bool // level-triggered; no mapper/APU source raises it yet
	branchExtra      int  // set by a taken branch, consumed by Step
}

type instruction struct {
	mnemonic      string
	mode          addressingMode
	execute       func(addressingMode, uint16)
	size          uint16
	cycles        int
	pageCrossAdds bool // whether crossing a page while fetching the operand adds a cycle
}

// NewCPU creates a new NES CPU.
func NewCPU(bus *CPUBus) *CPU {
	c := &CPU{
		P: &status{R: true},
		bus: bus,
	}
	c.instructions = c.createInstructions()
	c.Reset()
	return c
}

// Reset loads PC from the reset vector and puts the CPU in its post-reset
// state: interrupts disabled, stack pointer decremented by 3 without any
// bus writes (the real 6502 dummy-pushes on reset).
func (c *CPU) Reset() {
	c.PC = c.bus.read16(0xFFFC)
	c.S = 0xFD
	c.P.decodeFrom(0x24)
	c.Cycles = 0
	c.Stall = 0
}

// ResetTo forces PC to a fixed address, bypassing the reset vector. Used by
// trace-replay tests (e.g. nestest) that start execution at a known address.
func (c *CPU) ResetTo(pc uint16) {
	c.Reset()
	c.PC = pc
}

// TriggerNMI latches a non-maskable interrupt, serviced on the next Step.
// NMI always wins a race against a pending IRQ.
func (c *CPU) TriggerNMI() {
	c.pendingInterrupt = interruptNMI
}

// SetIRQLine raises or lowers the level-triggered IRQ line.
func (c *CPU) SetIRQLine(asserted bool) {
	c.irqLine = asserted
}

// write is for wrapping c.bus.write, because $4014 (OAMDMA) needs CPU-side
// cycle parity to compute its stall, which the bus cannot see.
func (c *CPU) write(address uint16, data byte) {
	if address == 0x4014 {
		var oamData [256]byte
		offset := uint16(data) << 8
		for i := 0; i < 256; i++ {
			oamData[i] = c.bus.read(offset + uint16(i))
		}
		c.bus.writeOAMDMA(oamData)
		c.Stall += 513 + (c.Cycles & 1)
		return
	}
	c.bus.write(address, data)
}

func (c *CPU) setN(x byte) {
	c.P.N = x&0x80 != 0
}

func (c *CPU) setZ(x byte) {
	c.P.Z = x == 0
}

func (c *CPU) setNZ(x byte) {
	c.setN(x)
	c.setZ(x)
}

// push pushes data to stack. "With the 6502, the stack is always on page
// one ($100-$1FF) and works top down."
func (c *CPU) push(x byte) {
	c.bus.write(0x100|uint16(c.S), x)
	c.S--
}

func (c *CPU) push16(x uint16) {
	c.push(byte(x >> 8))
	c.push(byte(x))
}

// pop pops data from stack.
func (c *CPU) pop() byte {
	c.S++
	return c.bus.read(0x100 | uint16(c.S))
}

func (c *CPU) pop16() uint16 {
	l := uint16(c.pop())
	h := uint16(c.pop())
	return h<<8 | l
}

// pushStatus pushes P with B set. Hardware pushes B=1 for BRK/PHP and B=0
// for NMI/IRQ; this emulator pushes B=1 for all of them (PHP, BRK, NMI and
// IRQ all go through here).
func (c *CPU) pushStatus() {
	c.push(c.P.encode() | 0x10)
}

func (c *CPU) serviceInterrupt(vector uint16) {
	c.push16(c.PC)
	c.pushStatus()
	c.P.I = true
	c.PC = c.bus.read16(vector)
}

func (c *CPU) branch(taken bool, target uint16) {
	if !taken {
		return
	}
	c.branchExtra++
	if c.PC&0xFF00 != target&0xFF00 {
		c.branchExtra++
	}
	c.PC = target
}

func (c *CPU) readZeroPage16(zp byte) uint16 {
	l := uint16(c.bus.read(uint16(zp)))
	h := uint16(c.bus.read(uint16(byte(zp + 1))))
	return h<<8 | l
}

// addressFor computes the effective address for every addressing mode, and
// whether fetching it crossed a page boundary. c.PC still points at the
// opcode byte when this runs.
func (c *CPU) addressFor(mode addressingMode) (uint16, bool) {
	switch mode {
	case implied, accumulator:
		return 0, false
	case immediate:
		return c.PC + 1, false
	case zeropage:
		return uint16(c.bus.read(c.PC + 1)), false
	case zeropageX:
		return uint16(c.bus.read(c.PC+1) + c.X), false
	case zeropageY:
		return uint16(c.bus.read(c.PC+1) + c.Y), false
	case relative:
		offset := c.bus.read(c.PC + 1)
		base := c.PC + 2
		var target uint16
		if offset < 0x80 {
			target = base + uint16(offset)
		} else {
			target = base + uint16(offset) - 0x100
		}
		return target, base&0xFF00 != target&0xFF00
	case absolute:
		return c.bus.read16(c.PC + 1), false
	case absoluteX:
		base := c.bus.read16(c.PC + 1)
		address := base + uint16(c.X)
		return address, base&0xFF00 != address&0xFF00
	case absoluteY:
		base := c.bus.read16(c.PC + 1)
		address := base + uint16(c.Y)
		return address, base&0xFF00 != address&0xFF00
	case indirect:
		ptr := c.bus.read16(c.PC + 1)
		if ptr&0xFF == 0xFF {
			// Hardware bug: the high byte is fetched from the start of the
			// same page instead of crossing into the next one.
			l := uint16(c.bus.read(ptr))
			h := uint16(c.bus.read(ptr & 0xFF00))
			return h<<8 | l, false
		}
		return c.bus.read16(ptr), false
	case indirectX:
		zp := c.bus.read(c.PC+1) + c.X
		return c.readZeroPage16(zp), false
	case indirectY:
		zp := c.bus.read(c.PC + 1)
		base := c.readZeroPage16(zp)
		address := base + uint16(c.Y)
		return address, base&0xFF00 != address&0xFF00
	default:
		return 0, false
	}
}

// Step executes one instruction, one stall cycle, or one interrupt
// sequence, and returns the number of CPU cycles consumed.
func (c *CPU) Step() (int, error) {
	if c.Stall > 0 {
		c.Stall--
		c.Cycles++
		return 1, nil
	}
	if c.pendingInterrupt == interruptNMI {
		c.pendingInterrupt = interruptNone
		c.serviceInterrupt(0xFFFA)
		c.Cycles += 7
		return 7, nil
	}
	if c.irqLine && !c.P.I {
		c.serviceInterrupt(0xFFFE)
		c.Cycles += 7
		return 7, nil
	}
	opcode := c.bus.read(c.PC)
	instr := c.instructions[opcode]
	address, crossed := c.addressFor(instr.mode)
	c.PC += instr.size
	c.branchExtra = 0
	instr.execute(instr.mode, address)
	cycles := instr.cycles
	if crossed && instr.pageCrossAdds {
		cycles++
	}
	cycles += c.branchExtra
	c.Cycles += uint64(cycles)
	return cycles, nil
}

// --- official opcodes ---

func (c *CPU) adc(mode addressingMode, address uint16) {
	c.addWithCarry(c.bus.read(address))
}

func (c *CPU) addWithCarry(value byte) {
	a := c.A
	carry := uint16(0)
	if c.P.C {
		carry = 1
	}
	sum := uint16(a) + uint16(value) + carry
	result := byte(sum)
	c.P.C = sum > 0xFF
	c.P.V = (a^value)&0x80 == 0 && (a^result)&0x80 != 0
	c.A = result
	c.setNZ(c.A)
}

func (c *CPU) and(mode addressingMode, address uint16) {
	c.A &= c.bus.read(address)
	c.setNZ(c.A)
}

func (c *CPU) asl(mode addressingMode, address uint16) {
	if mode == accumulator {
		c.P.C = c.A>>7&1 == 1
		c.A <<= 1
		c.setNZ(c.A)
		return
	}
	x := c.bus.read(address)
	c.P.C = x>>7&1 == 1
	x <<= 1
	c.write(address, x)
	c.setNZ(x)
}

func (c *CPU) bcc(mode addressingMode, address uint16) { c.branch(!c.P.C, address) }
func (c *CPU) bcs(mode addressingMode, address uint16) { c.branch(c.P.C, address) }
func (c *CPU) beq(mode addressingMode, address uint16) { c.branch(c.P.Z, address) }

func (c *CPU) bit(mode addressingMode, address uint16) {
	x := c.bus.read(address)
	c.P.Z = c.A&x == 0
	c.P.V = x>>6&1 == 1
	c.P.N = x>>7&1 == 1
}

func (c *CPU) bmi(mode addressingMode, address uint16) { c.branch(c.P.N, address) }
func (c *CPU) bne(mode addressingMode, address uint16) { c.branch(!c.P.Z, address) }
func (c *CPU) bpl(mode addressingMode, address uint16) { c.branch(!c.P.N, address) }

func (c *CPU) brk(mode addressingMode, address uint16) {
	c.serviceInterrupt(0xFFFE)
}

func (c *CPU) bvc(mode addressingMode, address uint16) { c.branch(!c.P.V, address) }
func (c *CPU) bvs(mode addressingMode, address uint16) { c.branch(c.P.V, address) }

func (c *CPU) clc(mode addressingMode, address uint16) { c.P.C = false }
func (c *CPU) cld(mode addressingMode, address uint16) { c.P.D = false }
func (c *CPU) cli(mode addressingMode, address uint16) { c.P.I = false }
func (c *CPU) clv(mode addressingMode, address uint16) { c.P.V = false }

func (c *CPU) compare(register, value byte) {
	result := register - value
	c.P.C = register >= value
	c.setNZ(result)
}

func (c *CPU) cmp(mode addressingMode, address uint16) { c.compare(c.A, c.bus.read(address)) }
func (c *CPU) cpx(mode addressingMode, address uint16) { c.compare(c.X, c.bus.read(address)) }
func (c *CPU) cpy(mode addressingMode, address uint16) { c.compare(c.Y, c.bus.read(address)) }

func (c *CPU) dec(mode addressingMode, address uint16) {
	x := c.bus.read(address) - 1
	c.write(address, x)
	c.setNZ(x)
}

func (c *CPU) dex(mode addressingMode, address uint16) { c.X--; c.setNZ(c.X) }
func (c *CPU) dey(mode addressingMode, address uint16) { c.Y--; c.setNZ(c.Y) }

func (c *CPU) eor(mode addressingMode, address uint16) {
	c.A ^= c.bus.read(address)
	c.setNZ(c.A)
}

func (c *CPU) inc(mode addressingMode, address uint16) {
	x := c.bus.read(address) + 1
	c.write(address, x)
	c.setNZ(x)
}

func (c *CPU) inx(mode addressingMode, address uint16) { c.X++; c.setNZ(c.X) }
func (c *CPU) iny(mode addressingMode, address uint16) { c.Y++; c.setNZ(c.Y) }

func (c *CPU) jmp(mode addressingMode, address uint16) { c.PC = address }

func (c *CPU) jsr(mode addressingMode, address uint16) {
	c.push16(c.PC - 1)
	c.PC = address
}

func (c *CPU) lda(mode addressingMode, address uint16) { c.A = c.bus.read(address); c.setNZ(c.A) }
func (c *CPU) ldx(mode addressingMode, address uint16) { c.X = c.bus.read(address); c.setNZ(c.X) }
func (c *CPU) ldy(mode addressingMode, address uint16) { c.Y = c.bus.read(address); c.setNZ(c.Y) }

func (c *CPU) lsr(mode addressingMode, address uint16) {
	if mode == accumulator {
		c.P.C = c.A&1 == 1
		c.A >>= 1
		c.setNZ(c.A)
		return
	}
	x := c.bus.read(address)
	c.P.C = x&1 == 1
	x >>= 1
	c.write(address, x)
	c.setNZ(x)
}

func (c *CPU) nop(mode addressingMode, address uint16) {
	if mode != implied && mode != accumulator {
		c.bus.read(address) // dummy read, for bus-timing fidelity
	}
}

func (c *CPU) ora(mode addressingMode, address uint16) {
	c.A |= c.bus.read(address)
	c.setNZ(c.A)
}

func (c *CPU) pha(mode addressingMode, address uint16) { c.push(c.A) }
func (c *CPU) php(mode addressingMode, address uint16) { c.pushStatus() }

func (c *CPU) pla(mode addressingMode, address uint16) {
	c.A = c.pop()
	c.setNZ(c.A)
}

func (c *CPU) plp(mode addressingMode, address uint16) {
	c.P.decodeFrom(c.pop())
	c.P.R = true
	c.P.B = false
}

func (c *CPU) rol(mode addressingMode, address uint16) {
	carry := byte(0)
	if c.P.C {
		carry = 1
	}
	if mode == accumulator {
		c.P.C = c.A>>7&1 == 1
		c.A = c.A<<1 | carry
		c.setNZ(c.A)
		return
	}
	x := c.bus.read(address)
	c.P.C = x>>7&1 == 1
	x = x<<1 | carry
	c.write(address, x)
	c.setNZ(x)
}

func (c *CPU) ror(mode addressingMode, address uint16) {
	carry := byte(0)
	if c.P.C {
		carry = 1
	}
	if mode == accumulator {
		c.P.C = c.A&1 == 1
		c.A = c.A>>1 | carry<<7
		c.setNZ(c.A)
		return
	}
	x := c.bus.read(address)
	c.P.C = x&1 == 1
	x = x>>1 | carry<<7
	c.write(address, x)
	c.setNZ(x)
}

func (c *CPU) rti(mode addressingMode, address uint16) {
	c.P.decodeFrom(c.pop())
	c.P.R = true
	c.P.B = false
	c.PC = c.pop16()
}

func (c *CPU) rts(mode addressingMode, address uint16) { c.PC = c.pop16() + 1 }

func (c *CPU) sbc(mode addressingMode, address uint16) {
	c.addWithCarry(^c.bus.read(address))
}

func (c *CPU) sec(mode addressingMode, address uint16) { c.P.C = true }
func (c *CPU) sed(mode addressingMode, address uint16) { c.P.D = true }
func (c *CPU) sei(mode addressingMode, address uint16) { c.P.I = true }

func (c *CPU) sta(mode addressingMode, address uint16) { c.write(address, c.A) }
func (c *CPU) stx(mode addressingMode, address uint16) { c.write(address, c.X) }
func (c *CPU) sty(mode addressingMode, address uint16) { c.write(address, c.Y) }

func (c *CPU) tax(mode addressingMode, address uint16) { c.X = c.A; c.setNZ(c.X) }
func (c *CPU) tay(mode addressingMode, address uint16) { c.Y = c.A; c.setNZ(c.Y) }
func (c *CPU) tsx(mode addressingMode, address uint16) { c.X = c.S; c.setNZ(c.X) }
func (c *CPU) txa(mode addressingMode, address uint16) { c.A = c.X; c.setNZ(c.A) }
func (c *CPU) txs(mode addressingMode, address uint16) { c.S = c.X }
func (c *CPU) tya(mode addressingMode, address uint16) { c.A = c.Y; c.setNZ(c.A) }

// --- unofficial opcodes actually exercised by the corpus ---

func (c *CPU) lax(mode addressingMode, address uint16) {
	value := c.bus.read(address)
	c.A = value
	c.X = value
	c.setNZ(value)
}

func (c *CPU) sax(mode addressingMode, address uint16) {
	c.write(address, c.A&c.X)
}

func (c *CPU) dcp(mode addressingMode, address uint16) {
	x := c.bus.read(address) - 1
	c.write(address, x)
	c.compare(c.A, x)
}

func (c *CPU) isc(mode addressingMode, address uint16) {
	x := c.bus.read(address) + 1
	c.write(address, x)
	c.addWithCarry(^x)
}

func (c *CPU) slo(mode addressingMode, address uint16) {
	x := c.bus.read(address)
	c.P.C = x>>7&1 == 1
	x <<= 1
	c.write(address, x)
	c.A |= x
	c.setNZ(c.A)
}

func (c *CPU) sre(mode addressingMode, address uint16) {
	x := c.bus.read(address)
	c.P.C = x&1 == 1
	x >>= 1
	c.write(address, x)
	c.A ^= x
	c.setNZ(c.A)
}

func (c *CPU) rla(mode addressingMode, address uint16) {
	carry := byte(0)
	if c.P.C {
		carry = 1
	}
	x := c.bus.read(address)
	c.P.C = x>>7&1 == 1
	x = x<<1 | carry
	c.write(address, x)
	c.A &= x
	c.setNZ(c.A)
}

func (c *CPU) rra(mode addressingMode, address uint16) {
	carry := byte(0)
	if c.P.C {
		carry = 1
	}
	x := c.bus.read(address)
	c.P.C = x&1 == 1
	x = x>>1 | carry<<7
	c.write(address, x)
	c.addWithCarry(x)
}

// --- unofficial opcodes stubbed per the documented allowance; these are
// unstable or unreliable even on real hardware, so a best-effort tabled
// behavior (rather than a faithful one) is sufficient. ---

func (c *CPU) anc(mode addressingMode, address uint16) {
	c.A &= c.bus.read(address)
	c.setNZ(c.A)
	c.P.C = c.P.N
}

func (c *CPU) alr(mode addressingMode, address uint16) {
	c.A &= c.bus.read(address)
	c.P.C = c.A&1 == 1
	c.A >>= 1
	c.setNZ(c.A)
}

func (c *CPU) arr(mode addressingMode, address uint16) {
	c.A &= c.bus.read(address)
	carry := byte(0)
	if c.P.C {
		carry = 1
	}
	c.A = c.A>>1 | carry<<7
	c.setNZ(c.A)
	c.P.C = c.A>>6&1 == 1
	c.P.V = (c.A>>6&1)^(c.A>>5&1) == 1
}

func (c *CPU) axs(mode addressingMode, address uint16) {
	value := c.bus.read(address)
	x := c.A & c.X
	c.P.C = x >= value
	c.X = x - value
	c.setNZ(c.X)
}

func (c *CPU) las(mode addressingMode, address uint16) {
	value := c.bus.read(address) & c.S
	c.A = value
	c.X = value
	c.S = value
	c.setNZ(value)
}

// kil is JAM/KIL: on real silicon it locks the bus permanently. Emulators
// that must keep stepping (this one included, per its opcode-table-never-
// fails contract) treat it as an inert, full-cost NOP instead.
func (c *CPU) kil(mode addressingMode, address uint16) {
	glog.V(1).Infof("cpu: executed KIL/JAM at 0x%04x, treating as a NOP", c.PC)
}

// unstable is the catch-all for the write-combination opcodes (XAA, AHX,
// TAS, SHX, SHY) whose result depends on analog bus decay that varies by
// chip revision; no two real consoles agree, so they are stubbed as NOPs.
func (c *CPU) unstable(mode addressingMode, address uint16) {
	glog.V(1).Infof("cpu: executed unstable opcode at 0x%04x, treating as a NOP", c.PC)
}

func (c *CPU) createInstructions() [256]instruction {
	return [256]instruction{
		0x00: {"BRK", implied, c.brk, 2, 7, false},
		0x01: {"ORA", indirectX, c.ora, 2, 6, false},
		0x02: {"KIL", implied, c.kil, 1, 2, false},
		0x03: {"SLO", indirectX, c.slo, 2, 8, false},
		0x04: {"NOP", zeropage, c.nop, 2, 3, false},
		0x05: {"ORA", zeropage, c.ora, 2, 3, false},
		0x06: {"ASL", zeropage, c.asl, 2, 5, false},
		0x07: {"SLO", zeropage, c.slo, 2, 5, false},
		0x08: {"PHP", implied, c.php, 1, 3, false},
		0x09: {"ORA", immediate, c.ora, 2, 2, false},
		0x0A: {"ASL", accumulator, c.asl, 1, 2, false},
		0x0B: {"ANC", immediate, c.anc, 2, 2, false},
		0x0C: {"NOP", absolute, c.nop, 3, 4, false},
		0x0D: {"ORA", absolute, c.ora, 3, 4, false},
		0x0E: {"ASL", absolute, c.asl, 3, 6, false},
		0x0F: {"SLO", absolute, c.slo, 3, 6, false},

		0x10: {"BPL", relative, c.bpl, 2, 2, false},
		0x11: {"ORA", indirectY, c.ora, 2, 5, true},
		0x12: {"KIL", implied, c.kil, 1, 2, false},
		0x13: {"SLO", indirectY, c.slo, 2, 8, false},
		0x14: {"NOP", zeropageX, c.nop, 2, 4, false},
		0x15: {"ORA", zeropageX, c.ora, 2, 4, false},
		0x16: {"ASL", zeropageX, c.asl, 2, 6, false},
		0x17: {"SLO", zeropageX, c.slo, 2, 6, false},
		0x18: {"CLC", implied, c.clc, 1, 2, false},
		0x19: {"ORA", absoluteY, c.ora, 3, 4, true},
		0x1A: {"NOP", implied, c.nop, 1, 2, false},
		0x1B: {"SLO", absoluteY, c.slo, 3, 7, false},
		0x1C: {"NOP", absoluteX, c.nop, 3, 4, true},
		0x1D: {"ORA", absoluteX, c.ora, 3, 4, true},
		0x1E: {"ASL", absoluteX, c.asl, 3, 7, false},
		0x1F: {"SLO", absoluteX, c.slo, 3, 7, false},

		0x20: {"JSR", absolute, c.jsr, 3, 6, false},
		0x21: {"AND", indirectX, c.and, 2, 6, false},
		0x22: {"KIL", implied, c.kil, 1, 2, false},
		0x23: {"RLA", indirectX, c.rla, 2, 8, false},
		0x24: {"BIT", zeropage, c.bit, 2, 3, false},
		0x25: {"AND", zeropage, c.and, 2, 3, false},
		0x26: {"ROL", zeropage, c.rol, 2, 5, false},
		0x27: {"RLA", zeropage, c.rla, 2, 5, false},
		0x28: {"PLP", implied, c.plp, 1, 4, false},
		0x29: {"AND", immediate, c.and, 2, 2, false},
		0x2A: {"ROL", accumulator, c.rol, 1, 2, false},
		0x2B: {"ANC", immediate, c.anc, 2, 2, false},
		0x2C: {"BIT", absolute, c.bit, 3, 4, false},
		0x2D: {"AND", absolute, c.and, 3, 4, false},
		0x2E: {"ROL", absolute, c.rol, 3, 6, false},
		0x2F: {"RLA", absolute, c.rla, 3, 6, false},

		0x30: {"BMI", relative, c.bmi, 2, 2, false},
		0x31: {"AND", indirectY, c.and, 2, 5, true},
		0x32: {"KIL", implied, c.kil, 1, 2, false},
		0x33: {"RLA", indirectY, c.rla, 2, 8, false},
		0x34: {"NOP", zeropageX, c.nop, 2, 4, false},
		0x35: {"AND", zeropageX, c.and, 2, 4, false},
		0x36: {"ROL", zeropageX, c.rol, 2, 6, false},
		0x37: {"RLA", zeropageX, c.rla, 2, 6, false},
		0x38: {"SEC", implied, c.sec, 1, 2, false},
		0x39: {"AND", absoluteY, c.and, 3, 4, true},
		0x3A: {"NOP", implied, c.nop, 1, 2, false},
		0x3B: {"RLA", absoluteY, c.rla, 3, 7, false},
		0x3C: {"NOP", absoluteX, c.nop, 3, 4, true},
		0x3D: {"AND", absoluteX, c.and, 3, 4, true},
		0x3E: {"ROL", absoluteX, c.rol, 3, 7, false},
		0x3F: {"RLA", absoluteX, c.rla, 3, 7, false},

		0x40: {"RTI", implied, c.rti, 1, 6, false},
		0x41: {"EOR", indirectX, c.eor, 2, 6, false},
		0x42: {"KIL", implied, c.kil, 1, 2, false},
		0x43: {"SRE", indirectX, c.sre, 2, 8, false},
		0x44: {"NOP", zeropage, c.nop, 2, 3, false},
		0x45: {"EOR", zeropage, c.eor, 2, 3, false},
		0x46: {"LSR", zeropage, c.lsr, 2, 5, false},
		0x47: {"SRE", zeropage, c.sre, 2, 5, false},
		0x48: {"PHA", implied, c.pha, 1, 3, false},
		0x49: {"EOR", immediate, c.eor, 2, 2, false},
		0x4A: {"LSR", accumulator, c.lsr, 1, 2, false},
		0x4B: {"ALR", immediate, c.alr, 2, 2, false},
		0x4C: {"JMP", absolute, c.jmp, 3, 3, false},
		0x4D: {"EOR", absolute, c.eor, 3, 4, false},
		0x4E: {"LSR", absolute, c.lsr, 3, 6, false},
		0x4F: {"SRE", absolute, c.sre, 3, 6, false},

		0x50: {"BVC", relative, c.bvc, 2, 2, false},
		0x51: {"EOR", indirectY, c.eor, 2, 5, true},
		0x52: {"KIL", implied, c.kil, 1, 2, false},
		0x53: {"SRE", indirectY, c.sre, 2, 8, false},
		0x54: {"NOP", zeropageX, c.nop, 2, 4, false},
		0x55: {"EOR", zeropageX, c.eor, 2, 4, false},
		0x56: {"LSR", zeropageX, c.lsr, 2, 6, false},
		0x57: {"SRE", zeropageX, c.sre, 2, 6, false},
		0x58: {"CLI", implied, c.cli, 1, 2, false},
		0x59: {"EOR", absoluteY, c.eor, 3, 4, true},
		0x5A: {"NOP", implied, c.nop, 1, 2, false},
		0x5B: {"SRE", absoluteY, c.sre, 3, 7, false},
		0x5C: {"NOP", absoluteX, c.nop, 3, 4, true},
		0x5D: {"EOR", absoluteX, c.eor, 3, 4, true},
		0x5E: {"LSR", absoluteX, c.lsr, 3, 7, false},
		0x5F: {"SRE", absoluteX, c.sre, 3, 7, false},

		0x60: {"RTS", implied, c.rts, 1, 6, false},
		0x61: {"ADC", indirectX, c.adc, 2, 6, false},
		0x62: {"KIL", implied, c.kil, 1, 2, false},
		0x63: {"RRA", indirectX, c.rra, 2, 8, false},
		0x64: {"NOP", zeropage, c.nop, 2, 3, false},
		0x65: {"ADC", zeropage, c.adc, 2, 3, false},
		0x66: {"ROR", zeropage, c.ror, 2, 5, false},
		0x67: {"RRA", zeropage, c.rra, 2, 5, false},
		0x68: {"PLA", implied, c.pla, 1, 4, false},
		0x69: {"ADC", immediate, c.adc, 2, 2, false},
		0x6A: {"ROR", accumulator, c.ror, 1, 2, false},
		0x6B: {"ARR", immediate, c.arr, 2, 2, false},
		0x6C: {"JMP", indirect, c.jmp, 3, 5, false},
		0x6D: {"ADC", absolute, c.adc, 3, 4, false},
		0x6E: {"ROR", absolute, c.ror, 3, 6, false},
		0x6F: {"RRA", absolute, c.rra, 3, 6, false},

		0x70: {"BVS", relative, c.bvs, 2, 2, false},
		0x71: {"ADC", indirectY, c.adc, 2, 5, true},
		0x72: {"KIL", implied, c.kil, 1, 2, false},
		0x73: {"RRA", indirectY, c.rra, 2, 8, false},
		0x74: {"NOP", zeropageX, c.nop, 2, 4, false},
		0x75: {"ADC", zeropageX, c.adc, 2, 4, false},
		0x76: {"ROR", zeropageX, c.ror, 2, 6, false},
		0x77: {"RRA", zeropageX, c.rra, 2, 6, false},
		0x78: {"SEI", implied, c.sei, 1, 2, false},
		0x79: {"ADC", absoluteY, c.adc, 3, 4, true},
		0x7A: {"NOP", implied, c.nop, 1, 2, false},
		0x7B: {"RRA", absoluteY, c.rra, 3, 7, false},
		0x7C: {"NOP", absoluteX, c.nop, 3, 4, true},
		0x7D: {"ADC", absoluteX, c.adc, 3, 4, true},
		0x7E: {"ROR", absoluteX, c.ror, 3, 7, false},
		0x7F: {"RRA", absoluteX, c.rra, 3, 7, false},

		0x80: {"NOP", immediate, c.nop, 2, 2, false},
		0x81: {"STA", indirectX, c.sta, 2, 6, false},
		0x82: {"NOP", immediate, c.nop, 2, 2, false},
		0x83: {"SAX", indirectX, c.sax, 2, 6, false},
		0x84: {"STY", zeropage, c.sty, 2, 3, false},
		0x85: {"STA", zeropage, c.sta, 2, 3, false},
		0x86: {"STX", zeropage, c.stx, 2, 3, false},
		0x87: {"SAX", zeropage, c.sax, 2, 3, false},
		0x88: {"DEY", implied, c.dey, 1, 2, false},
		0x89: {"NOP", immediate, c.nop, 2, 2, false},
		0x8A: {"TXA", implied, c.txa, 1, 2, false},
		0x8B: {"XAA", immediate, c.unstable, 2, 2, false},
		0x8C: {"STY", absolute, c.sty, 3, 4, false},
		0x8D: {"STA", absolute, c.sta, 3, 4, false},
		0x8E: {"STX", absolute, c.stx, 3, 4, false},
		0x8F: {"SAX", absolute, c.sax, 3, 4, false},

		0x90: {"BCC", relative, c.bcc, 2, 2, false},
		0x91: {"STA", indirectY, c.sta, 2, 6, false},
		0x92: {"KIL", implied, c.kil, 1, 2, false},
		0x93: {"AHX", indirectY, c.unstable, 2, 6, false},
		0x94: {"STY", zeropageX, c.sty, 2, 4, false},
		0x95: {"STA", zeropageX, c.sta, 2, 4, false},
		0x96: {"STX", zeropageY, c.stx, 2, 4, false},
		0x97: {"SAX", zeropageY, c.sax, 2, 4, false},
		0x98: {"TYA", implied, c.tya, 1, 2, false},
		0x99: {"STA", absoluteY, c.sta, 3, 5, false},
		0x9A: {"TXS", implied, c.txs, 1, 2, false},
		0x9B: {"TAS", absoluteY, c.unstable, 3, 5, false},
		0x9C: {"SHY", absoluteX, c.unstable, 3, 5, false},
		0x9D: {"STA", absoluteX, c.sta, 3, 5, false},
		0x9E: {"SHX", absoluteY, c.unstable, 3, 5, false},
		0x9F: {"AHX", absoluteY, c.unstable, 3, 5, false},

		0xA0: {"LDY", immediate, c.ldy, 2, 2, false},
		0xA1: {"LDA", indirectX, c.lda, 2, 6, false},
		0xA2: {"LDX", immediate, c.ldx, 2, 2, false},
		0xA3: {"LAX", indirectX, c.lax, 2, 6, false},
		0xA4: {"LDY", zeropage, c.ldy, 2, 3, false},
		0xA5: {"LDA", zeropage, c.lda, 2, 3, false},
		0xA6: {"LDX", zeropage, c.ldx, 2, 3, false},
		0xA7: {"LAX", zeropage, c.lax, 2, 3, false},
		0xA8: {"TAY", implied, c.tay, 1, 2, false},
		0xA9: {"LDA", immediate, c.lda, 2, 2, false},
		0xAA: {"TAX", implied, c.tax, 1, 2, false},
		0xAB: {"LAX", immediate, c.lax, 2, 2, false},
		0xAC: {"LDY", absolute, c.ldy, 3, 4, false},
		0xAD: {"LDA", absolute, c.lda, 3, 4, false},
		0xAE: {"LDX", absolute, c.ldx, 3, 4, false},
		0xAF: {"LAX", absolute, c.lax, 3, 4, false},

		0xB0: {"BCS", relative, c.bcs, 2, 2, false},
		0xB1: {"LDA", indirectY, c.lda, 2, 5, true},
		0xB2: {"KIL", implied, c.kil, 1, 2, false},
		0xB3: {"LAX", indirectY, c.lax, 2, 5, true},
		0xB4: {"LDY", zeropageX, c.ldy, 2, 4, false},
		0xB5: {"LDA", zeropageX, c.lda, 2, 4, false},
		0xB6: {"LDX", zeropageY, c.ldx, 2, 4, false},
		0xB7: {"LAX", zeropageY, c.lax, 2, 4, false},
		0xB8: {"CLV", implied, c.clv, 1, 2, false},
		0xB9: {"LDA", absoluteY, c.lda, 3, 4, true},
		0xBA: {"TSX", implied, c.tsx, 1, 2, false},
		0xBB: {"LAS", absoluteY, c.las, 3, 4, true},
		0xBC: {"LDY", absoluteX, c.ldy, 3, 4, true},
		0xBD: {"LDA", absoluteX, c.lda, 3, 4, true},
		0xBE: {"LDX", absoluteY, c.ldx, 3, 4, true},
		0xBF: {"LAX", absoluteY, c.lax, 3, 4, true},

		0xC0: {"CPY", immediate, c.cpy, 2, 2, false},
		0xC1: {"CMP", indirectX, c.cmp, 2, 6, false},
		0xC2: {"NOP", immediate, c.nop, 2, 2, false},
		0xC3: {"DCP", indirectX, c.dcp, 2, 8, false},
		0xC4: {"CPY", zeropage, c.cpy, 2, 3, false},
		0xC5: {"CMP", zeropage, c.cmp, 2, 3, false},
		0xC6: {"DEC", zeropage, c.dec, 2, 5, false},
		0xC7: {"DCP", zeropage, c.dcp, 2, 5, false},
		0xC8: {"INY", implied, c.iny, 1, 2, false},
		0xC9: {"CMP", immediate, c.cmp, 2, 2, false},
		0xCA: {"DEX", implied, c.dex, 1, 2, false},
		0xCB: {"AXS", immediate, c.axs, 2, 2, false},
		0xCC: {"CPY", absolute, c.cpy, 3, 4, false},
		0xCD: {"CMP", absolute, c.cmp, 3, 4, false},
		0xCE: {"DEC", absolute, c.dec, 3, 6, false},
		0xCF: {"DCP", absolute, c.dcp, 3, 6, false},

		0xD0: {"BNE", relative, c.bne, 2, 2, false},
		0xD1: {"CMP", indirectY, c.cmp, 2, 5, true},
		0xD2: {"KIL", implied, c.kil, 1, 2, false},
		0xD3: {"DCP", indirectY, c.dcp, 2, 8, false},
		0xD4: {"NOP", zeropageX, c.nop, 2, 4, false},
		0xD5: {"CMP", zeropageX, c.cmp, 2, 4, false},
		0xD6: {"DEC", zeropageX, c.dec, 2, 6, false},
		0xD7: {"DCP", zeropageX, c.dcp, 2, 6, false},
		0xD8: {"CLD", implied, c.cld, 1, 2, false},
		0xD9: {"CMP", absoluteY, c.cmp, 3, 4, true},
		0xDA: {"NOP", implied, c.nop, 1, 2, false},
		0xDB: {"DCP", absoluteY, c.dcp, 3, 7, false},
		0xDC: {"NOP", absoluteX, c.nop, 3, 4, true},
		0xDD: {"CMP", absoluteX, c.cmp, 3, 4, true},
		0xDE: {"DEC", absoluteX, c.dec, 3, 7, false},
		0xDF: {"DCP", absoluteX, c.dcp, 3, 7, false},

		0xE0: {"CPX", immediate, c.cpx, 2, 2, false},
		0xE1: {"SBC", indirectX, c.sbc, 2, 6, false},
		0xE2: {"NOP", immediate, c.nop, 2, 2, false},
		0xE3: {"ISC", indirectX, c.isc, 2, 8, false},
		0xE4: {"CPX", zeropage, c.cpx, 2, 3, false},
		0xE5: {"SBC", zeropage, c.sbc, 2, 3, false},
		0xE6: {"INC", zeropage, c.inc, 2, 5, false},
		0xE7: {"ISC", zeropage, c.isc, 2, 5, false},
		0xE8: {"INX", implied, c.inx, 1, 2, false},
		0xE9: {"SBC", immediate, c.sbc, 2, 2, false},
		0xEA: {"NOP", implied, c.nop, 1, 2, false},
		0xEB: {"SBC", immediate, c.sbc, 2, 2, false},
		0xEC: {"CPX", absolute, c.cpx, 3, 4, false},
		0xED: {"SBC", absolute, c.sbc, 3, 4, false},
		0xEE: {"INC", absolute, c.inc, 3, 6, false},
		0xEF: {"ISC", absolute, c.isc, 3, 6, false},

		0xF0: {"BEQ", relative, c.beq, 2, 2, false},
		0xF1: {"SBC", indirectY, c.sbc, 2, 5, true},
		0xF2: {"KIL", implied, c.kil, 1, 2, false},
		0xF3: {"ISC", indirectY, c.isc, 2, 8, false},
		0xF4: {"NOP", zeropageX, c.nop, 2, 4, false},
		0xF5: {"SBC", zeropageX, c.sbc, 2, 4, false},
		0xF6: {"INC", zeropageX, c.inc, 2, 6, false},
		0xF7: {"ISC", zeropageX, c.isc, 2, 6, false},
		0xF8: {"SED", implied, c.sed, 1, 2, false},
		0xF9: {"SBC", absoluteY, c.sbc, 3, 4, true},
		0xFA: {"NOP", implied, c.nop, 1, 2, false},
		0xFB: {"ISC", absoluteY, c.isc, 3, 7, false},
		0xFC: {"NOP", absoluteX, c.nop, 3, 4, true},
		0xFD: {"SBC", absoluteX, c.sbc, 3, 4, true},
		0xFE: {"INC", absoluteX, c.inc, 3, 7, false},
		0xFF: {"ISC", absoluteX, c.isc, 3, 7, false},
	}
}
