package ccwc

import (
	"errors"
	"testing"
)

func TestRun(t *testing.T) {
	var got []string
	Register("echo-args", func(ctx Context, args ...string) error {
		if ctx.Context == nil {
			t.Error("Run passed a nil context.Context")
		}
		got = args
		return nil
	})

	if err := Run(Context{}, "echo-args", "a", "b"); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("args == %q, want [a b]", got)
	}
}

func TestRunUnknown(t *testing.T) {
	if err := Run(Context{}, "no-such-command"); !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("Run == %v, want %v", err, ErrUnknownCommand)
	}
}

func TestRegisterTwice(t *testing.T) {
	noop := func(Context, ...string) error { return nil }
	Register("twice", noop)
	defer func() {
		if recover() == nil {
			t.Fatal("second Register did not panic")
		}
	}()
	Register("twice", noop)
}
