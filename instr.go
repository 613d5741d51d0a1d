package main

import (
	"fmt"
	"strings"
)

// Op identifies one of the six instruction variants that the translator
// emits; the eight source commands collapse into these.
type Op uint8

const (
	opInvalid Op = iota

	OpMove   // <  >   shift the data pointer by Arg
	OpAdd    // +  -   add Arg to the current cell, wrapping at 8 bits
	OpOut    // .      write the current cell
	OpIn     // ,      read one byte into the current cell
	OpJumpZ  // [      jump to Arg if the current cell is zero
	OpJumpNZ // ]      jump to Arg if the current cell is not zero

	opMax
)

var opNames = [opMax]string{
	"invalid",
	"move",
	"add",
	"out",
	"in",
	"jz",
	"jnz",
}

func (op Op) String() string {
	if op < opMax {
		return opNames[op]
	}
	return fmt.Sprintf("Op(%d)", uint8(op))
}

// Instr is a single translated instruction. Arg is a signed delta for OpMove
// and OpAdd, an absolute Program address for the jumps, and unused otherwise.
type Instr struct {
	Op  Op
	Arg int
}

// Move, Add, Out, In, JumpZ and JumpNZ construct instructions.
func Move(d int) Instr        { return Instr{OpMove, d} }
func Add(d int) Instr         { return Instr{OpAdd, d} }
func Out() Instr              { return Instr{Op: OpOut} }
func In() Instr               { return Instr{Op: OpIn} }
func JumpZ(target int) Instr  { return Instr{OpJumpZ, target} }
func JumpNZ(target int) Instr { return Instr{OpJumpNZ, target} }

func (in Instr) String() string {
	switch in.Op {
	case OpMove, OpAdd:
		return fmt.Sprintf("%v %+d", in.Op, in.Arg)
	case OpJumpZ, OpJumpNZ:
		return fmt.Sprintf("%v @%d", in.Op, in.Arg)
	default:
		return in.Op.String()
	}
}

// Program is an immutable sequence of instructions produced by Build; jump
// targets are addresses into it, and len(Program) is a valid target meaning
// "halt".
type Program []Instr

func (prog Program) String() string {
	var sb strings.Builder
	width := len(fmt.Sprint(len(prog)))
	for addr, in := range prog {
		fmt.Fprintf(&sb, "@%-*d %v\n", width, addr, in)
	}
	return sb.String()
}
