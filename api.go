package main

import "io"

// New creates a VM to run prog; by default it reads from an empty input and
// discards its output.
func New(prog Program, opts ...VMOption) *VM {
	vm := VM{prog: prog}
	defaultOptions.apply(&vm)
	VMOptions(opts...).apply(&vm)
	return &vm
}

// Execute runs prog once against the given input and output streams.
func Execute(prog Program, in io.Reader, out io.Writer) error {
	return New(prog, WithInput(in), WithOutput(out)).Run()
}

// Interpret builds source and, if it translates, executes it. The returned
// error is either a *BuildError or a RuntimeError.
func Interpret(source string, in io.Reader, out io.Writer) error {
	prog, err := Build(source)
	if err != nil {
		return err
	}
	return Execute(prog, in, out)
}

// Program returns the program that the VM runs.
func (vm *VM) Program() Program { return vm.prog }

// Pointer returns the data pointer as left by the last Run.
func (vm *VM) Pointer() int { return vm.ptr }

// Cell returns the value of tape cell i as left by the last Run.
func (vm *VM) Cell(i int) byte { return vm.tape[i] }

// Steps returns how many instructions the last Run executed.
func (vm *VM) Steps() uint64 { return vm.steps }

func WithInput(r io.Reader) VMOption  { return withInput(r) }
func WithOutput(w io.Writer) VMOption { return withOutput(w) }
func WithTee(w io.Writer) VMOption    { return withTee(w) }

func WithLogf(logfn func(mess string, args ...interface{})) VMOption { return withLogfn(logfn) }
