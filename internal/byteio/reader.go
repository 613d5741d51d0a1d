package byteio

import (
	"io"
	"strings"
)

// NewReader returns an io.ByteReader that consumes exactly one byte from r per
// ReadByte call. If r already implements io.ByteReader it is simply returned;
// otherwise no read-ahead buffering is done, so that bytes left unread stay in
// r for any later reader. A nil r reads as empty.
func NewReader(r io.Reader) io.ByteReader {
	if r == nil {
		return strings.NewReader("")
	}
	if br, ok := r.(io.ByteReader); ok {
		return br
	}
	return &exactReader{r: r}
}

type exactReader struct {
	r   io.Reader
	buf [1]byte
}

// ReadByte reads exactly one byte; end of stream is io.EOF, never a silent
// zero byte.
func (er *exactReader) ReadByte() (byte, error) {
	if _, err := io.ReadFull(er.r, er.buf[:]); err != nil {
		return 0, err
	}
	return er.buf[0], nil
}
