package logging

import (
	"bytes"
	"io"
)

// PrefixWriter stamps a fixed prefix onto every line written through it.
// Bytes after the last newline are held back until the line is finished.
type PrefixWriter struct {
	prefix  []byte
	dst     io.Writer
	pending []byte
}

// NewPrefixWriter returns a PrefixWriter that forwards to w.
func NewPrefixWriter(prefix string, w io.Writer) *PrefixWriter {
	return &PrefixWriter{prefix: []byte(prefix), dst: w}
}

func (pw *PrefixWriter) Write(p []byte) (int, error) {
	pw.pending = append(pw.pending, p...)
	for {
		end := bytes.IndexByte(pw.pending, '\n')
		if end < 0 {
			break
		}
		line := make([]byte, 0, len(pw.prefix)+end+1)
		line = append(line, pw.prefix...)
		line = append(line, pw.pending[:end+1]...)
		if _, err := pw.dst.Write(line); err != nil {
			return 0, err
		}
		pw.pending = pw.pending[end+1:]
	}
	return len(p), nil
}
