package main

import "fmt"

// BuildErrorKind distinguishes the two ways that bracket nesting may fail.
type BuildErrorKind int

const (
	// BracketNotMatch is a ']' with no open '[' before it.
	BracketNotMatch BuildErrorKind = iota + 1

	// BracketNotClosed is a '[' still open at end of input.
	BracketNotClosed
)

func (kind BuildErrorKind) String() string {
	switch kind {
	case BracketNotMatch:
		return "unmatched ]"
	case BracketNotClosed:
		return "unclosed ["
	default:
		return fmt.Sprintf("BuildErrorKind(%d)", int(kind))
	}
}

// BuildError reports malformed bracket nesting at a 1-based source position.
// Name optionally identifies the source, e.g. a file path.
type BuildError struct {
	Name string
	Line int
	Col  int
	Kind BuildErrorKind
}

func (err *BuildError) Error() string {
	if err.Name != "" {
		return fmt.Sprintf("%v:%v:%v: %v", err.Name, err.Line, err.Col, err.Kind)
	}
	return fmt.Sprintf("%v:%v: %v", err.Line, err.Col, err.Kind)
}

// BuildOption customizes translation.
type BuildOption interface{ applyBuild(b *builder) }

type buildOptionFunc func(b *builder)

func (f buildOptionFunc) applyBuild(b *builder) { f(b) }

// Unfolded disables run folding: every move and add command becomes its own
// single step instruction, so pointer faults are reported per step.
func Unfolded() BuildOption {
	return buildOptionFunc(func(b *builder) { b.noFold = true })
}

// Named sets the source name reported by any BuildError.
func Named(name string) BuildOption {
	return buildOptionFunc(func(b *builder) { b.name = name })
}

// Build translates source text into a Program in a single forward pass,
// folding runs of moves and adds, and resolving every bracket pair into
// absolute jump targets.
func Build(source string, opts ...BuildOption) (Program, error) {
	var b builder
	for _, opt := range opts {
		if opt != nil {
			opt.applyBuild(&b)
		}
	}
	return b.build(source)
}

type builder struct {
	name   string
	noFold bool

	line, col int
	prog      Program
	open      []openBracket
}

// openBracket records a '[' whose JumpZ placeholder is waiting for a target.
type openBracket struct {
	line, col int
	addr      int
}

func (b *builder) build(src string) (Program, error) {
	b.line, b.col = 1, 1
	b.prog = make(Program, 0, len(src)/2)

	for i := 0; i < len(src); i++ {
		switch c := src[i]; c {
		case '<', '>':
			d := moveDelta(c)
			for !b.noFold && i+1 < len(src) && isMove(src[i+1]) {
				i++
				b.col++
				d += moveDelta(src[i])
			}
			if d != 0 {
				b.emit(Move(d))
			}

		case '+', '-':
			d := addDelta(c)
			for !b.noFold && i+1 < len(src) && isAdd(src[i+1]) {
				i++
				b.col++
				d += addDelta(src[i])
			}
			if d != 0 {
				b.emit(Add(d))
			}

		case '.':
			b.emit(Out())

		case ',':
			b.emit(In())

		case '[':
			b.open = append(b.open, openBracket{b.line, b.col, len(b.prog)})
			b.emit(JumpZ(0))

		case ']':
			top := len(b.open) - 1
			if top < 0 {
				return nil, b.errorAt(b.line, b.col, BracketNotMatch)
			}
			ob := b.open[top]
			b.open = b.open[:top]
			b.emit(JumpNZ(ob.addr + 1))
			b.prog[ob.addr].Arg = len(b.prog)

		case '\n':
			b.line++
			b.col = 0
		}
		b.col++
	}

	if len(b.open) > 0 {
		ob := b.open[0]
		return nil, b.errorAt(ob.line, ob.col, BracketNotClosed)
	}
	return b.prog, nil
}

func (b *builder) emit(in Instr) { b.prog = append(b.prog, in) }

func (b *builder) errorAt(line, col int, kind BuildErrorKind) error {
	return &BuildError{Name: b.name, Line: line, Col: col, Kind: kind}
}

func isMove(c byte) bool { return c == '<' || c == '>' }
func isAdd(c byte) bool  { return c == '+' || c == '-' }

func moveDelta(c byte) int {
	if c == '<' {
		return -1
	}
	return 1
}

func addDelta(c byte) int {
	if c == '-' {
		return -1
	}
	return 1
}
