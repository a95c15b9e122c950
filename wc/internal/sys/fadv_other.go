//go:build !linux

package sys

func Fadvise(fd int) error { return nil }
