// Package wc implements ccwc, which prints newline, word, byte and
// character counts for each file named on the command line.
package wc

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/ccwc/ccwc"
	"github.com/ccwc/ccwc/wc/internal/sys"
)

func init() {
	ccwc.Register("ccwc", run)
}

var errNotRegular = errors.New("not a regular file")

// open is replaced in tests to make reads fail.
var open = os.Open

func run(ctx ccwc.Context, args ...string) error {
	c := newCommand()

	options, files := parseArgs(args)
	for _, opt := range options {
		if err := c.setOption(opt); err != nil {
			fmt.Fprintln(ctx.Stderr, err)
			return err
		}
	}
	opts := c.display()
	ctx.Log.Debug().
		Strs("options", options).
		Int("files", len(files)).
		Msg("parsed arguments")

	out := bufio.NewWriter(ctx.Stdout)
	defer out.Flush()

	var (
		s   Session
		ctr = NewCounter()
	)
	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		res, err := countFile(ctr, name)
		switch {
		case err == nil:
			// OK
		case errors.Is(err, errNotRegular):
			ctx.Log.Debug().Str("file", name).Msg("skipping")
			fmt.Fprintf(out, "ccwc: %s: open: No such file or directory\n", name)
			continue
		default:
			out.Flush()
			fmt.Fprintf(ctx.Stderr, "ccwc: %v\n", err)
			return err
		}

		ctx.Log.Debug().
			Str("file", name).
			Int64("lines", res.Lines).
			Int64("words", res.Words).
			Int64("bytes", res.Bytes).
			Int64("chars", res.Chars).
			Msg("counted")
		s.Add(name, res)
	}

	s.Report(out, opts)
	return out.Flush()
}

func countFile(ctr *Counter, name string) (Results, error) {
	info, err := os.Stat(name)
	if err != nil || !info.Mode().IsRegular() {
		return Results{}, errNotRegular
	}

	file, err := open(name)
	if err != nil {
		return Results{}, err
	}
	defer file.Close()

	// The hint is advisory; counting works the same without it.
	_ = sys.Fadvise(int(file.Fd()))
	return ctr.Count(file)
}
