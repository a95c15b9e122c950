package wc

import (
	"fmt"
	"io"
)

// Report writes one row per record and, when there is more than one, a
// total row. opts selects the columns.
func (s *Session) Report(w io.Writer, opts uint8) {
	for _, r := range s.Records {
		writeCounts(w, opts, r.Results, r.Name)
	}
	if len(s.Records) > 1 {
		writeCounts(w, opts, s.Total, "total")
	}
}

func writeCounts(w io.Writer, opts uint8, r Results, fname string) {
	const fmtInt = "%8d "
	if opts&Lines != 0 {
		fmt.Fprintf(w, fmtInt, r.Lines)
	}
	if opts&Words != 0 {
		fmt.Fprintf(w, fmtInt, r.Words)
	}
	if opts&Bytes != 0 {
		fmt.Fprintf(w, fmtInt, r.Bytes)
	}
	if opts&Chars != 0 {
		fmt.Fprintf(w, fmtInt, r.Chars)
	}
	fmt.Fprintf(w, "%s\n", fname)
}
