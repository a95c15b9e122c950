// Package ccwc holds the command registry shared by the ccwc binary and
// the packages that implement its commands.
package ccwc

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/rs/zerolog"
)

var cmdsMu sync.Mutex
var cmds = make(map[string]Runnable)

// ErrUnknownCommand is returned by Run when no command was registered under
// the requested name.
var ErrUnknownCommand = errors.New("unknown command")

// Register makes r available under name. It panics if name is taken.
func Register(name string, r Runnable) {
	cmdsMu.Lock()
	defer cmdsMu.Unlock()
	if _, ok := cmds[name]; ok {
		panic("Register called with identical name: " + name)
	}
	cmds[name] = r
}

type Runnable func(ctx Context, args ...string) error

// Context is what a command sees of the outside world.
type Context struct {
	context.Context
	Stdout io.Writer
	Stderr io.Writer
	Log    zerolog.Logger
}

func Run(ctx Context, name string, args ...string) error {
	cmdsMu.Lock()
	fn := cmds[name]
	cmdsMu.Unlock()
	if fn == nil {
		return ErrUnknownCommand
	}
	if ctx.Context == nil {
		ctx.Context = context.Background()
	}
	return fn(ctx, args...)
}
