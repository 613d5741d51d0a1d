package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/jcorbin/bfvm/internal/byteio"
)

type vmDumper struct {
	vm  *VM
	out io.Writer

	// cells limits the tape dump; zero means up to the last non-zero cell
	// or the data pointer, whichever is further.
	cells int
}

func (dump vmDumper) dump() {
	fmt.Fprintf(dump.out, "# VM Dump\n")
	fmt.Fprintf(dump.out, "  pc: %v\n", dump.vm.pc)
	fmt.Fprintf(dump.out, "  ptr: %v\n", dump.vm.ptr)
	fmt.Fprintf(dump.out, "  steps: %v\n", dump.vm.steps)
	dump.dumpProgram()
	dump.dumpTape()
}

func (dump vmDumper) dumpProgram() {
	fmt.Fprintf(dump.out, "# Program (%v instructions)\n", len(dump.vm.prog))
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Addr", "Op", "Arg", ""})
	for addr, in := range dump.vm.prog {
		arg := ""
		switch in.Op {
		case OpMove, OpAdd:
			arg = fmt.Sprintf("%+d", in.Arg)
		case OpJumpZ, OpJumpNZ:
			arg = fmt.Sprintf("@%d", in.Arg)
		}
		var mark string
		if addr == dump.vm.pc {
			mark = "<- pc"
		}
		tw.AppendRow(table.Row{addr, in.Op, arg, mark})
	}
	fmt.Fprintln(dump.out, tw.Render())
}

func (dump vmDumper) dumpTape() {
	n := dump.cells
	if n <= 0 {
		n = dump.vm.ptr + 1
		for i := TapeSize - 1; i >= n; i-- {
			if dump.vm.tape[i] != 0 {
				n = i + 1
				break
			}
		}
	}
	if n > TapeSize {
		n = TapeSize
	}

	fmt.Fprintf(dump.out, "# Tape (%v of %v cells)\n", n, TapeSize)
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Cell", "Value", "Byte", ""})
	for i, val := range dump.vm.tape[:n] {
		name := byteio.Name(val)
		if caret := byteio.CaretForm(val); caret != "" {
			name += " " + caret
		}
		var mark string
		if i == dump.vm.ptr {
			mark = "<- ptr"
		}
		tw.AppendRow(table.Row{i, val, name, mark})
	}
	fmt.Fprintln(dump.out, tw.Render())
}
