// This file is part of Ultra64.
//
// Ultra64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Ultra64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Ultra64.  If not, see <https://www.gnu.org/licenses/>.

package instructions

// Kind identifies an instruction. More than one definition can share a Kind
// if they have the same effect.
type Kind int

// List of valid Kind values. The order of this list is not significant.
const (
	NoKind Kind = iota

	// aliases
	NOP
	MOVE
	B
	BEQZ
	BNEZ
	BAL

	// shifts
	SLL
	SRL
	SRA
	SLLV
	SRLV
	SRAV
	DSLL
	DSRL
	DSRA
	DSLL32
	DSRL32
	DSRA32
	DSLLV
	DSRLV
	DSRAV

	// register jumps and exceptions
	JR
	JALR
	SYSCALL
	BREAK
	SYNC

	// HI/LO
	MFHI
	MTHI
	MFLO
	MTLO
	MULT
	MULTU
	DIV
	DIVU
	DMULT
	DMULTU
	DDIV
	DDIVU

	// register arithmetic and logic
	ADD
	ADDU
	SUB
	SUBU
	AND
	OR
	XOR
	NOR
	SLT
	SLTU
	DADD
	DADDU
	DSUB
	DSUBU

	// REGIMM branches
	BLTZ
	BGEZ
	BLTZL
	BGEZL
	BLTZAL
	BGEZAL
	BLTZALL
	BGEZALL

	// jumps and branches
	J
	JAL
	BEQ
	BNE
	BLEZ
	BGTZ
	BEQL
	BNEL
	BLEZL
	BGTZL

	// immediate arithmetic and logic
	ADDI
	ADDIU
	SLTI
	SLTIU
	ANDI
	ORI
	XORI
	LUI
	DADDI
	DADDIU

	// loads
	LB
	LBU
	LH
	LHU
	LW
	LWU
	LWL
	LWR
	LD
	LL

	// stores
	SB
	SH
	SW
	SWL
	SWR
	SD
	SC

	CACHE

	// coprocessor 0
	MFC0
	MTC0
	DMFC0
	DMTC0
	TLBR
	TLBWI
	TLBWR
	TLBP
	ERET

	// coprocessor 1 control
	CFC1
	CTC1

	// NumKinds is the number of Kind values, including NoKind
	NumKinds
)

func (k Kind) String() string {
	if k > NoKind && k < NumKinds {
		if d := byKind[k]; d != nil {
			return d.Mnemonic
		}
	}
	return "unknown"
}
