//go:build unix

package main

import (
	"os"

	"golang.org/x/sys/unix"
)

func redirectStderr(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	// Duplicate the file descriptor onto stderr so panics and all prints
	// (including from other goroutines) end up in the file. Stdout is left
	// alone: it is the frame stream.
	return unix.Dup2(int(f.Fd()), int(os.Stderr.Fd()))
}
