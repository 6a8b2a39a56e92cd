// Package source reads raw ADC captures.
package source

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/Vijay06092004/digital-signal-processing/dsp/core"
)

// DefaultCapacity bounds a capture when no capacity is configured.
const DefaultCapacity = 100000

const ctxCheckInterval = 4096

// File reads whitespace-separated decimal integers from a text file.
// Reading stops at Capacity samples or at the first token that is not a
// 32-bit integer.
type File struct {
	Path     string
	Capacity int
}

// NewFile returns a File source. A capacity below one selects
// DefaultCapacity.
func NewFile(path string, capacity int) *File {
	if capacity < 1 {
		capacity = DefaultCapacity
	}

	return &File{Path: path, Capacity: capacity}
}

// Samples opens the file and parses it.
func (f *File) Samples(ctx context.Context) ([]int32, error) {
	fh, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("source: open %s: %w", f.Path, errors.Join(core.ErrSourceUnavailable, err))
	}
	defer fh.Close()

	out, err := Read(ctx, fh, f.Capacity)
	if err != nil {
		return nil, fmt.Errorf("source: read %s: %w", f.Path, err)
	}

	return out, nil
}

// Read parses up to capacity integers from r.
func Read(ctx context.Context, r io.Reader, capacity int) ([]int32, error) {
	if capacity < 1 {
		capacity = DefaultCapacity
	}

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var out []int32

	for len(out) < capacity && sc.Scan() {
		if len(out)%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		v, err := strconv.ParseInt(sc.Text(), 10, 32)
		if err != nil {
			break
		}

		out = append(out, int32(v))
	}

	if err := sc.Err(); err != nil {
		return nil, errors.Join(core.ErrSourceUnavailable, err)
	}

	return out, nil
}

// Slice serves a fixed capture from memory.
type Slice []int32

// Samples returns a copy of the capture.
func (s Slice) Samples(ctx context.Context) ([]int32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]int32, len(s))
	copy(out, s)

	return out, nil
}
