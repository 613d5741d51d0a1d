package flushio

import "io"

// WriteFlushers tees writes into all of the given WriteFlusher-s, flushing all
// of them on Flush. Nil entries are skipped and nested tees are flattened.
func WriteFlushers(wfs ...WriteFlusher) WriteFlusher {
	switch all := appendWriteFlusher(nil, wfs...); len(all) {
	case 0:
		return nil
	case 1:
		return all[0]
	default:
		return all
	}
}

type writeFlushers []WriteFlusher

func (wfs writeFlushers) Write(p []byte) (n int, err error) {
	for _, wf := range wfs {
		n, err = wf.Write(p)
		if err != nil {
			return n, err
		}
		if n != len(p) {
			return n, io.ErrShortWrite
		}
	}
	return len(p), nil
}

// WriteByte writes b to every writer, stopping at the first failure.
func (wfs writeFlushers) WriteByte(b byte) error {
	for _, wf := range wfs {
		if err := WriteByte(wf, b); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes every writer, even after an earlier one fails, returning the
// first error.
func (wfs writeFlushers) Flush() (err error) {
	for _, wf := range wfs {
		if ferr := wf.Flush(); err == nil {
			err = ferr
		}
	}
	return err
}

func appendWriteFlusher(all writeFlushers, some ...WriteFlusher) writeFlushers {
	for _, one := range some {
		if many, ok := one.(writeFlushers); ok {
			all = append(all, many...)
		} else if one != nil {
			all = append(all, one)
		}
	}
	return all
}
