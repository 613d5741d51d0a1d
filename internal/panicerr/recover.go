package panicerr

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// Recover runs f in a new goroutine, converting any panic or runtime.Goexit
// into a non-nil *Error return; otherwise f's own error is returned.
func Recover(name string, f func() error) error {
	errch := make(chan error, 1)
	go func() {
		defer close(errch)
		defer recoverExit(name, errch)
		defer recoverPanic(name, errch)
		errch <- f()
	}()
	return <-errch
}

func recoverExit(name string, errch chan<- error) {
	select {
	case errch <- &Error{Name: name, Exited: true}:
	default:
		// the happy path, or recoverPanic, already sent
	}
}

func recoverPanic(name string, errch chan<- error) {
	if e := recover(); e != nil {
		select {
		case errch <- &Error{Name: name, Value: e, Stack: debug.Stack()}:
		default:
		}
	}
}

// Error is an abnormal goroutine termination recovered by Recover: either a
// panic, carrying its value and stack, or a runtime.Goexit call.
type Error struct {
	Name   string
	Value  interface{}
	Stack  []byte
	Exited bool
}

func (pe *Error) Error() string {
	return fmt.Sprint(pe)
}

// Format supports %+v to include the panic stack.
func (pe *Error) Format(f fmt.State, c rune) {
	switch {
	case pe.Exited && pe.Name == "":
		fmt.Fprint(f, "runtime.Goexit called")
	case pe.Exited:
		fmt.Fprintf(f, "%v called runtime.Goexit", pe.Name)
	case pe.Name == "":
		fmt.Fprintf(f, "paniced: %v", pe.Value)
	default:
		fmt.Fprintf(f, "%v paniced: %v", pe.Name, pe.Value)
	}
	if c == 'v' && f.Flag('+') && len(pe.Stack) > 0 {
		fmt.Fprintf(f, "\nPanic stack: %s", pe.Stack)
	}
}

// Unwrap returns the panic value if it was an error.
func (pe *Error) Unwrap() error {
	err, _ := pe.Value.(error)
	return err
}

// IsPanic returns true if err indicates a recovered goroutine panic.
func IsPanic(err error) bool {
	var pe *Error
	return errors.As(err, &pe) && !pe.Exited
}

// PanicStack returns a non-empty stacktrace string if err is a recovered
// goroutine panic.
func PanicStack(err error) string {
	var pe *Error
	if errors.As(err, &pe) {
		return string(pe.Stack)
	}
	return ""
}
