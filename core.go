package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/bfvm/internal/flushio"
)

// ioCore holds the VM's byte streams. Every output byte is flushed through
// before its instruction completes, so a failed write faults that step and no
// output is ever pending when the VM blocks on a read.
type ioCore struct {
	logging
	in  io.ByteReader
	out flushio.WriteFlusher
}

func (ioc *ioCore) writeByte(b byte) error {
	err := flushio.WriteByte(ioc.out, b)
	if err == nil {
		err = ioc.out.Flush()
	}
	if err != nil {
		return &IOError{Op: "write", Err: err}
	}
	return nil
}

func (ioc *ioCore) readByte() (byte, error) {
	b, err := ioc.in.ReadByte()
	if err != nil {
		return 0, &IOError{Op: "read", Err: err}
	}
	return b, nil
}

// IOError wraps a failure of the VM's input or output stream, including
// reaching the end of input.
type IOError struct {
	Op  string
	Err error
}

func (err *IOError) Error() string { return fmt.Sprintf("io err: %v", err.Err) }
func (err *IOError) Unwrap() error { return err.Err }
func (*IOError) runtimeError()     {}

type logging struct {
	logfn func(mess string, args ...interface{})

	markWidth int
}

func (log *logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 && mark != "" {
		mark = strings.Repeat(mark[:1], n) + mark
	} else if n < 0 {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
