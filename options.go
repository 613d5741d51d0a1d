package main

import (
	"bytes"
	"io"

	"github.com/jcorbin/bfvm/internal/byteio"
	"github.com/jcorbin/bfvm/internal/flushio"
)

// VMOption configures a VM at construction.
type VMOption interface{ apply(vm *VM) }

// VMOptions combines any number of options into one, applied in order; nil
// options are ignored.
func VMOptions(opts ...VMOption) VMOption {
	var res vmOptions
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case vmOptions:
			res = append(res, impl...)
		default:
			res = append(res, impl)
		}
	}
	if len(res) == 1 {
		return res[0]
	}
	return res
}

type vmOptions []VMOption

func (opts vmOptions) apply(vm *VM) {
	for _, opt := range opts {
		opt.apply(vm)
	}
}

var defaultOptions = VMOptions(
	withInput(bytes.NewReader(nil)),
	withOutput(io.Discard),
)

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(vm *VM) {
	vm.logfn = logfn
}

type inputOption struct{ io.Reader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }

func withInput(r io.Reader) inputOption   { return inputOption{r} }
func withOutput(w io.Writer) outputOption { return outputOption{w} }
func withTee(w io.Writer) teeOption       { return teeOption{w} }

func (i inputOption) apply(vm *VM) {
	vm.ioCore.in = byteio.NewReader(i.Reader)
}

// Output is flushed after every byte written, so a replaced writer never has
// anything pending.
func (o outputOption) apply(vm *VM) {
	vm.ioCore.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(vm *VM) {
	vm.ioCore.out = flushio.WriteFlushers(vm.ioCore.out, flushio.NewWriteFlusher(o.Writer))
}
