/* Package main: bfvm -- a folding translator and tape machine

The language has eight commands, each a single byte; every other byte is a
comment:

	Command  Function
	   >     move the data pointer one cell right
	   <     move the data pointer one cell left
	   +     increment the current cell
	   -     decrement the current cell
	   .     output the current cell as a byte
	   ,     input one byte into the current cell
	   [     if the current cell is zero, jump past the matching ]
	   ]     if the current cell is not zero, jump back past the matching [

Programs run against a tape of 30,000 byte cells, all initially zero, and a data
pointer starting at the leftmost cell. Cells wrap modulo 256; moving the pointer
off either end of the tape is a fault, as is running out of input.

Section 1: Translation (see build.go)

Rather than interpret source bytes directly, re-scanning for brackets whenever a
loop is entered or skipped, Build makes one forward pass over the source:

- runs of adjacent < and > fold into a single move by their net delta, and runs
  of + and - into a single add; a run that nets to zero emits nothing
- . and , become out and in
- [ emits a jz placeholder and pushes its address on a stack; the matching ]
  pops it, emits a jnz targeting the address just after the jz, and patches
  the jz to target the address just after the jnz

So the program "<+>-.,[]" becomes:

	@0 move -1
	@1 add +1
	@2 move +1
	@3 add -1
	@4 out
	@5 in
	@6 jz @8
	@7 jnz @7

Bracket errors are reported with 1-based line and column: an unmatched ] at its
own position, and an unclosed [ at the position of the outermost one left open.

Section 2: Execution (see vm.go)

The VM steps through the program until its cursor runs off the end. Since moves
are folded, only the net destination of a run is bounds checked: from cell 2,
the run <<<<< faults reporting index -3, not -1 as five single steps would.
Translate with Unfolded() to get single step behavior.

Output is written through: each . command flushes its byte, and a failed
write faults that command, so nothing after it runs. Input is never read
ahead: exactly one byte is consumed per , command.

Section 3: Command (see main.go)

	bfvm [-list] [-trace] [-tape N] [-timeout D] [-input FILE] FILE
	bfvm -check FILE...

*/
package main
