package byteio

import "strconv"

// C0Ctls names the classic ASCII control bytes, indexed by value.
var C0Ctls = [32]string{
	"<NUL>", "<SOH>", "<STX>", "<ETX>", "<EOT>", "<ENQ>", "<ACK>", "<BEL>",
	"<BS>", "<HT>", "<NL>", "<VT>", "<NP>", "<CR>", "<SO>", "<SI>",
	"<DLE>", "<DC1>", "<DC2>", "<DC3>", "<DC4>", "<NAK>", "<SYN>", "<ETB>",
	"<CAN>", "<EM>", "<SUB>", "<ESC>", "<FS>", "<GS>", "<RS>", "<US>",
}

// C1Ctls names the ISO-8859 control bytes 0x80-0x9f, indexed by value-0x80.
var C1Ctls = [32]string{
	"<PAD>", "<HOP>", "<BPH>", "<NBH>", "<IND>", "<NEL>", "<SSA>", "<ESA>",
	"<HTS>", "<HTJ>", "<VTS>", "<PLD>", "<PLU>", "<RI>", "<SS2>", "<SS3>",
	"<DCS>", "<PU1>", "<PU2>", "<STS>", "<CCH>", "<MW>", "<SPA>", "<EPA>",
	"<SOS>", "<SGCI>", "<SCI>", "<CSI>", "<ST>", "<OSC>", "<PM>", "<APC>",
}

// Name returns a printable name for a byte value: control mnemonics like
// <NUL> and <ESC>, <SP> and <DEL>, quoted printable ASCII like 'H', and a hex
// escape for everything else.
func Name(b byte) string {
	switch {
	case b < 0x20:
		return C0Ctls[b]
	case b == 0x20:
		return "<SP>"
	case b == 0x7f:
		return "<DEL>"
	case b < 0x7f:
		return strconv.QuoteRune(rune(b))
	case b <= 0x9f:
		return C1Ctls[b-0x80]
	default:
		return `'\x` + strconv.FormatUint(uint64(b), 16) + `'`
	}
}

// CaretForm computes the ^-escaped printable form of a control byte, or "" if
// b is not a control.
func CaretForm(b byte) string {
	if b < 0x20 || b == 0x7f {
		return "^" + string(rune(b^0x40))
	} else if 0x80 <= b && b <= 0x9f {
		return "^[" + string(rune(b^0xc0))
	}
	return ""
}
