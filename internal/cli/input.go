package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
)

// ErrInputCanceled is returned when a read is abandoned because its context ended.
var ErrInputCanceled = errors.New("input canceled")

type scannedLine struct {
	err  error
	text string
}

// LineReader reads answers line by line from an input stream without blocking
// past the caller's context. A single goroutine scans the stream, so a line
// typed after a canceled read is delivered to the next ReadLine rather than lost.
type LineReader struct {
	src   io.Reader
	lines chan scannedLine
	start sync.Once
}

// NewLineReader wraps src. Scanning starts with the first ReadLine.
func NewLineReader(src io.Reader) *LineReader {
	if src == nil {
		panic("input cannot be nil")
	}
	return &LineReader{
		src:   src,
		lines: make(chan scannedLine),
	}
}

// ReadLine returns the next line with surrounding blanks trimmed. It returns
// io.EOF once the stream is exhausted and ErrInputCanceled when ctx ends first.
func (r *LineReader) ReadLine(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ErrInputCanceled
	}
	r.start.Do(func() { go r.scan() })

	select {
	case <-ctx.Done():
		return "", ErrInputCanceled
	case line, ok := <-r.lines:
		if !ok {
			return "", io.EOF
		}
		if line.err != nil {
			return "", line.err
		}
		return strings.TrimSpace(line.text), nil
	}
}

func (r *LineReader) scan() {
	defer close(r.lines)

	sc := bufio.NewScanner(r.src)
	for sc.Scan() {
		r.lines <- scannedLine{text: sc.Text()}
	}
	if err := sc.Err(); err != nil {
		r.lines <- scannedLine{err: err}
	}
}
