package hexcodec

import "io"

// Decoder decodes a hex stream.
type Decoder struct {
	r      io.Reader
	offset int  // Digits consumed so far
	buf    byte // Pending high nibble
	half   bool
	err    error
	in     []byte
}

// NewDecoder returns a Decoder reading hex digits from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r, in: make([]byte, 1024)}
}

// Read implements io.Reader. An odd digit count is reported as
// ErrInvalidLength once the underlying reader returns io.EOF.
func (d *Decoder) Read(p []byte) (int, error) {
	if d.err != nil {
		return 0, d.err
	}
	n := 0
	for n == 0 && len(p) > 0 {
		// Two digits per output byte, one fewer when a nibble is pending.
		want := len(p) * 2
		if d.half {
			want--
		}
		if want > len(d.in) {
			want = len(d.in)
		}
		m, rerr := d.r.Read(d.in[:want])
		for _, c := range d.in[:m] {
			v, ok := nibble(c)
			if !ok {
				d.err = &InvalidCharacterError{Char: c, Index: d.offset}
				return n, d.err
			}
			d.offset++
			if !d.half {
				d.buf = v << 4
				d.half = true
				continue
			}
			p[n] = d.buf | v
			n++
			d.half = false
		}
		if rerr == io.EOF {
			if d.half {
				d.err = ErrInvalidLength
			} else {
				d.err = io.EOF
			}
			if n > 0 {
				return n, nil
			}
			return 0, d.err
		}
		if rerr != nil {
			d.err = rerr
			return n, rerr
		}
	}
	return n, nil
}
