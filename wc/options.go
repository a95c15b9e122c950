package wc

import (
	"fmt"
	"strings"
	"unicode/utf8"

	flag "github.com/spf13/pflag"
)

const usage = "usage: ccwc [-clmw] [file ...]"

func newCommand() *cmd {
	var c cmd
	c.f.Init("ccwc", flag.ContinueOnError)
	c.f.BoolVarP(&c.lines, "lines", "l", false, "print the newline counts")
	c.f.BoolVarP(&c.words, "words", "w", false, "print the word counts")
	c.f.BoolVarP(&c.chars, "chars", "m", false, "print the character counts")
	c.f.BoolVarP(&c.bytes, "bytes", "c", false, "print the byte counts")
	return &c
}

type cmd struct {
	f                          flag.FlagSet
	lines, words, chars, bytes bool
}

// UsageError reports an option letter ccwc does not know.
type UsageError struct {
	Option rune
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("ccwc: illegal option -- %c\n%s", e.Option, usage)
}

// parseArgs splits args into option tokens and file names. Option scanning
// stops at the first argument that does not start with a dash; everything
// from there on is a file name.
func parseArgs(args []string) (options, files []string) {
	for i, arg := range args {
		if !strings.HasPrefix(arg, "-") {
			return options, args[i:]
		}
		options = append(options, arg)
	}
	return options, nil
}

// setOption sets the flag of every letter in the bundled option token opt.
// A lone "-" sets nothing.
func (c *cmd) setOption(opt string) error {
	for _, ch := range opt[1:] {
		var fl *flag.Flag
		// ShorthandLookup panics on names longer than one byte.
		if ch < utf8.RuneSelf {
			fl = c.f.ShorthandLookup(string(ch))
		}
		if fl == nil {
			return &UsageError{Option: ch}
		}
		if err := c.f.Set(fl.Name, "true"); err != nil {
			return err
		}
	}
	return nil
}

// display returns the columns to print. With no letter given it is the
// traditional lines, words and bytes.
func (c *cmd) display() uint8 {
	var opts uint8
	if c.lines {
		opts |= Lines
	}
	if c.words {
		opts |= Words
	}
	if c.bytes {
		opts |= Bytes
	}
	if c.chars {
		opts |= Chars
	}
	if opts == 0 {
		opts = Lines | Words | Bytes
	}
	return opts
}
