package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	for _, tc := range []struct {
		name   string
		source string
		opts   []BuildOption
		prog   Program
	}{
		{name: "empty", source: "", prog: Program{}},
		{name: "comments only", source: "no commands here\n", prog: Program{}},
		{
			name:   "every command",
			source: "<+>-.,[]",
			prog: Program{
				Move(-1), Add(1), Move(1), Add(-1),
				Out(), In(),
				JumpZ(8), JumpNZ(7),
			},
		},
		{
			name:   "folds runs",
			source: "+++>>--<",
			prog:   Program{Add(3), Move(2), Add(-2), Move(-1)},
		},
		{
			name:   "folds mixed runs",
			source: "+-++>><>",
			prog:   Program{Add(2), Move(2)},
		},
		{
			name:   "alternating runs",
			source: "<><<>><+-++--+<>+-",
			prog:   Program{Move(-1), Add(1)},
		},
		{
			name:   "net zero runs vanish",
			source: "+-.<>.",
			prog:   Program{Out(), Out()},
		},
		{
			name:   "comments split runs",
			source: "++ ++\n>x>",
			prog:   Program{Add(2), Add(2), Move(1), Move(1)},
		},
		{
			name:   "io is never folded",
			source: ",,..",
			prog:   Program{In(), In(), Out(), Out()},
		},
		{
			name:   "unfolded",
			source: "+++>><",
			opts:   []BuildOption{Unfolded()},
			prog:   Program{Add(1), Add(1), Add(1), Move(1), Move(1), Move(-1)},
		},
		{
			name:   "unfolded keeps excursions",
			source: "+-",
			opts:   []BuildOption{Unfolded()},
			prog:   Program{Add(1), Add(-1)},
		},
		{
			name:   "nested loops",
			source: "+[>[-]<-]",
			prog: Program{
				Add(1),
				JumpZ(9),
				Move(1),
				JumpZ(6), Add(-1), JumpNZ(4),
				Move(-1), Add(-1),
				JumpNZ(2),
			},
		},
		{
			name:   "sibling loops",
			source: "[][.]",
			prog:   Program{JumpZ(2), JumpNZ(1), JumpZ(5), Out(), JumpNZ(3)},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			prog, err := Build(tc.source, tc.opts...)
			require.NoError(t, err, "unexpected build error")
			assert.Equal(t, tc.prog, prog, "expected program")
		})
	}
}

func TestBuild_errors(t *testing.T) {
	for _, tc := range []struct {
		name   string
		source string
		opts   []BuildOption
		want   BuildError
		mess   string
	}{
		{
			name:   "unmatched close",
			source: "+\n[]]",
			want:   BuildError{Line: 2, Col: 3, Kind: BracketNotMatch},
			mess:   "2:3: unmatched ]",
		},
		{
			name:   "unmatched close after nesting",
			source: "[[\n]]]+++",
			want:   BuildError{Line: 2, Col: 3, Kind: BracketNotMatch},
			mess:   "2:3: unmatched ]",
		},
		{
			name:   "unclosed after nesting",
			source: "[[[\n]]++",
			want:   BuildError{Line: 1, Col: 1, Kind: BracketNotClosed},
			mess:   "1:1: unclosed [",
		},
		{
			name:   "unmatched close first",
			source: "]",
			want:   BuildError{Line: 1, Col: 1, Kind: BracketNotMatch},
			mess:   "1:1: unmatched ]",
		},
		{
			name:   "unclosed",
			source: "[[]",
			want:   BuildError{Line: 1, Col: 1, Kind: BracketNotClosed},
			mess:   "1:1: unclosed [",
		},
		{
			name:   "unclosed reports outermost",
			source: "+[[]\n  [",
			want:   BuildError{Line: 1, Col: 2, Kind: BracketNotClosed},
			mess:   "1:2: unclosed [",
		},
		{
			name:   "folded bytes count as columns",
			source: "+++>>]",
			want:   BuildError{Line: 1, Col: 6, Kind: BracketNotMatch},
			mess:   "1:6: unmatched ]",
		},
		{
			name:   "unfolded columns match",
			source: "+++>>]",
			opts:   []BuildOption{Unfolded()},
			want:   BuildError{Line: 1, Col: 6, Kind: BracketNotMatch},
			mess:   "1:6: unmatched ]",
		},
		{
			name:   "comments count as columns",
			source: "loop]",
			want:   BuildError{Line: 1, Col: 5, Kind: BracketNotMatch},
			mess:   "1:5: unmatched ]",
		},
		{
			name:   "lines reset columns",
			source: "[\n\n>>>]]",
			want:   BuildError{Line: 3, Col: 5, Kind: BracketNotMatch},
			mess:   "3:5: unmatched ]",
		},
		{
			name:   "named",
			source: "[",
			opts:   []BuildOption{Named("loop.bf")},
			want:   BuildError{Name: "loop.bf", Line: 1, Col: 1, Kind: BracketNotClosed},
			mess:   "loop.bf:1:1: unclosed [",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			prog, err := Build(tc.source, tc.opts...)
			assert.Nil(t, prog, "expected no program")
			require.EqualError(t, err, tc.mess)
			var buildErr *BuildError
			require.True(t, errors.As(err, &buildErr), "expected a *BuildError")
			assert.Equal(t, tc.want, *buildErr)
		})
	}
}

func TestBuild_jumpTargets(t *testing.T) {
	for _, source := range []string{
		"[]",
		"+[>[-]<-]",
		"[[[][]]][.]",
		sampleSource,
		helloWorldSource,
		",[>++++[<-------->-]<.,]",
	} {
		for _, opts := range [][]BuildOption{nil, {Unfolded()}} {
			prog, err := Build(source, opts...)
			require.NoError(t, err)
			var jumps int
			for addr, in := range prog {
				switch in.Op {
				case OpJumpZ:
					jumps++
					require.True(t, addr < in.Arg && in.Arg <= len(prog),
						"jz @%v target %v out of range", addr, in.Arg)
					back := prog[in.Arg-1]
					assert.Equal(t, JumpNZ(addr+1), back, "jz @%v should pair with the jnz before its target", addr)
				case OpJumpNZ:
					jumps++
					require.True(t, 0 < in.Arg && in.Arg <= addr,
						"jnz @%v target %v out of range", addr, in.Arg)
					fwd := prog[in.Arg-1]
					assert.Equal(t, JumpZ(addr+1), fwd, "jnz @%v should pair with the jz before its target", addr)
				}
			}
			assert.Equal(t,
				strings.Count(source, "[")+strings.Count(source, "]"), jumps,
				"expected one jump per bracket")
		}
	}
}

func TestProgram_String(t *testing.T) {
	prog, err := Build("+[-].")
	require.NoError(t, err)
	assert.Equal(t, lines(
		"@0 add +1",
		"@1 jz @4",
		"@2 add -1",
		"@3 jnz @2",
		"@4 out",
	), prog.String())

	prog, err = Build(strings.Repeat(".", 10))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(prog.String(), "@0  out\n@1  out\n"), "expected padded addresses")

	assert.Equal(t, "move -3", Move(-3).String())
	assert.Equal(t, "in", In().String())
	assert.Equal(t, "Op(9)", Op(9).String())
}
