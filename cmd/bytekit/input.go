package main

import (
	"errors"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

var errNoInput = errors.New("no input: pass an argument or pipe data on stdin")

// stdinReader returns in, refusing an interactive terminal so commands do
// not block waiting for typed input.
func stdinReader(in io.Reader) (io.Reader, error) {
	if f, ok := in.(*os.File); ok {
		if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
			return nil, errNoInput
		}
	}
	return in, nil
}
