package wc

import (
	"io"
	"unicode"
	"unicode/utf8"
)

// Results holds the counters for one input.
type Results struct {
	Lines int64
	Words int64
	Chars int64
	Bytes int64
}

// Add adds the counters of o to r.
func (r *Results) Add(o Results) {
	r.Lines += o.Lines
	r.Words += o.Words
	r.Chars += o.Chars
	r.Bytes += o.Bytes
}

const (
	Lines = 1 << iota // count lines
	Words             // count words
	Bytes             // count bytes
	Chars             // count chars
)

// Counter counts lines, words, characters and bytes of a stream. The zero
// value is ready to use. A Counter is not safe for concurrent use; its
// buffer is reused across calls to Count.
type Counter struct {
	buf [1 << 17]byte
}

func NewCounter() *Counter {
	return &Counter{}
}

// Count reads r until io.EOF. Input is decoded as UTF-8; every maximal
// invalid subpart counts as one character, like U+FFFD would.
func (c *Counter) Count(r io.Reader) (res Results, err error) {
	var (
		carry  int
		inword bool
	)
	for {
		n, err := r.Read(c.buf[carry:])
		res.Bytes += int64(n)
		if err != nil && err != io.EOF {
			return res, err
		}
		atEOF := err == io.EOF

		p := c.buf[:carry+n]
		bp := 0
		for bp < len(p) {
			// Hold back a sequence cut by the end of the buffer.
			if !atEOF && !utf8.FullRune(p[bp:]) {
				break
			}
			ch, size := utf8.DecodeRune(p[bp:])
			if ch == utf8.RuneError && size == 1 {
				size = invalidLen(p[bp:])
			}
			res.Chars++
			switch {
			case ch == '\n':
				res.Lines++
				inword = false
			case unicode.IsSpace(ch):
				inword = false
			case !inword:
				res.Words++
				inword = true
			}
			bp += size
		}
		if atEOF {
			return res, nil
		}
		carry = copy(c.buf[:], p[bp:])
	}
}

// invalidLen returns the length of the maximal invalid subpart at the
// start of p, which must not begin with a valid encoding.
func invalidLen(p []byte) int {
	lo, hi := byte(0x80), byte(0xBF)
	var n int
	switch b := p[0]; {
	case b >= 0xC2 && b <= 0xDF:
		n = 2
	case b == 0xE0:
		n, lo = 3, 0xA0
	case b == 0xED:
		n, hi = 3, 0x9F
	case b >= 0xE1 && b <= 0xEF:
		n = 3
	case b == 0xF0:
		n, lo = 4, 0x90
	case b == 0xF4:
		n, hi = 4, 0x8F
	case b >= 0xF1 && b <= 0xF3:
		n = 4
	default:
		return 1
	}
	i := 1
	if i < len(p) && p[i] >= lo && p[i] <= hi {
		i++
		for i < n && i < len(p) && p[i] >= 0x80 && p[i] <= 0xBF {
			i++
		}
	}
	return i
}
