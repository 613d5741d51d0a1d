package main

import (
	"fmt"

	"github.com/jcorbin/bfvm/internal/panicerr"
)

// TapeSize is the fixed number of byte cells on the VM's tape.
const TapeSize = 30000

// VM executes a translated Program against a fixed tape of TapeSize cells and
// a single data pointer. A VM is not safe for concurrent use; each Run starts
// from a zeroed tape, with the data pointer and program cursor at 0.
type VM struct {
	ioCore

	prog Program
	pc   int // program cursor, an address into prog

	// The tape is owned by the VM and only ever addressed through ptr, which
	// every Move instruction bounds checks before it changes.
	tape [TapeSize]byte
	ptr  int

	steps uint64
}

// RuntimeError is implemented by the errors that abort a Run: a
// *DataOverflowError or an *IOError.
type RuntimeError interface {
	error
	runtimeError()
}

// DataOverflowError reports an attempt to move the data pointer off the tape.
// Index is the attempted position, e.g. -1 or TapeSize.
type DataOverflowError struct {
	Index int
}

func (err *DataOverflowError) Error() string {
	return fmt.Sprintf("data overflow, idx = %v", err.Index)
}

func (*DataOverflowError) runtimeError() {}

// Run executes the program until the cursor runs off its end, or until the
// first fault. A fault stops the run at the faulting instruction; output
// written before it has already reached the writer.
func (vm *VM) Run() error {
	return panicerr.Recover("VM", vm.run)
}

func (vm *VM) run() error {
	vm.reset()
	for vm.pc < len(vm.prog) {
		if err := vm.step(); err != nil {
			vm.logf("#", "fault @%v after %v steps: %v", vm.pc, vm.steps, err)
			return err
		}
	}
	vm.logf("#", "halt after %v steps", vm.steps)
	return nil
}

func (vm *VM) reset() {
	vm.tape = [TapeSize]byte{}
	vm.ptr = 0
	vm.pc = 0
	vm.steps = 0
}

func (vm *VM) step() (err error) {
	in := vm.prog[vm.pc]
	vm.steps++
	if vm.logfn != nil {
		vm.logf(">", "@%v %v ptr:%v cell:%v", vm.pc, in, vm.ptr, vm.tape[vm.ptr])
	}
	switch in.Op {
	case OpMove:
		err = vm.move(in.Arg)
	case OpAdd:
		vm.add(in.Arg)
	case OpOut:
		err = vm.output()
	case OpIn:
		err = vm.input()
	case OpJumpZ:
		vm.jumpZ(in.Arg)
	case OpJumpNZ:
		vm.jumpNZ(in.Arg)
	default:
		panic(fmt.Sprintf("invalid instruction %v @%v", in, vm.pc))
	}
	if err == nil {
		vm.pc++
	}
	return err
}

//// Pointer

// Symbol   Name   Function
//   < >    move   shift the data pointer by a folded delta; only the final
//                 position is checked, so a run like <<<<< reports the net
//                 index it would land on
func (vm *VM) move(d int) error {
	ptr := vm.ptr + d
	if ptr < 0 || ptr >= TapeSize {
		return &DataOverflowError{Index: ptr}
	}
	vm.ptr = ptr
	return nil
}

//// Arithmetic

// Symbol   Name   Function
//   + -    add    add a folded delta to the current cell, modulo 256
func (vm *VM) add(d int) {
	vm.tape[vm.ptr] = byte(int(vm.tape[vm.ptr]) + d)
}

//// Input/Output

// Symbol   Name   Function
//    .     out    write the current cell as one byte, flushed through; a
//                 failed write faults this instruction
func (vm *VM) output() error { return vm.writeByte(vm.tape[vm.ptr]) }

// Symbol   Name   Function
//    ,     in     read exactly one byte into the current cell; end of input
//                 is a fault, leaving the cell unchanged
func (vm *VM) input() error {
	b, err := vm.readByte()
	if err == nil {
		vm.tape[vm.ptr] = b
	}
	return err
}

//// Control

// Jump targets were resolved by Build: a jz targets the address just past its
// matching jnz, and a jnz the address just past its matching jz. The cursor is
// set one short of the target, since step always advances it.

// Symbol   Name   Function
//    [     jz     jump forward past the loop if the current cell is zero
func (vm *VM) jumpZ(target int) {
	if vm.tape[vm.ptr] == 0 {
		vm.pc = target - 1
	}
}

// Symbol   Name   Function
//    ]     jnz    jump back into the loop body if the current cell is not zero
func (vm *VM) jumpNZ(target int) {
	if vm.tape[vm.ptr] != 0 {
		vm.pc = target - 1
	}
}
