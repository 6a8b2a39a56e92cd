// Package sink persists filtered sequences.
package sink

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"sync"

	"github.com/Vijay06092004/digital-signal-processing/dsp/core"
)

// Dir writes each sequence to its own file under Root. By default a file is
// name.txt with one value per line; with CSV set it is name.csv and starts
// with a header line holding the name.
type Dir struct {
	Root string
	CSV  bool
}

// NewDir returns a Dir sink, creating root when needed.
func NewDir(root string, csv bool) (*Dir, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("sink: create %s: %w", root, err)
	}

	return &Dir{Root: root, CSV: csv}, nil
}

// Path returns the file a sequence called name is written to.
func (d *Dir) Path(name string) string {
	ext := ".txt"
	if d.CSV {
		ext = ".csv"
	}

	return filepath.Join(d.Root, name+ext)
}

// Persist writes seq with ten decimal places per value. The file is written
// under a temporary name and renamed into place.
func (d *Dir) Persist(ctx context.Context, name string, seq []float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := d.Path(name)

	tmp, err := os.CreateTemp(d.Root, "."+name+"-*")
	if err != nil {
		return fmt.Errorf("sink: %s: %w", name, err)
	}

	if err := write(tmp, name, seq, d.CSV); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())

		return fmt.Errorf("sink: %s: %w", name, err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())

		return fmt.Errorf("sink: %s: %w", name, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())

		return fmt.Errorf("sink: %s: %w", name, err)
	}

	return nil
}

func write(f *os.File, name string, seq []float64, header bool) error {
	w := bufio.NewWriter(f)

	if header {
		if _, err := w.WriteString(name + "\n"); err != nil {
			return err
		}
	}

	buf := make([]byte, 0, 32)
	for _, v := range seq {
		buf = strconv.AppendFloat(buf[:0], v, 'f', 10, 64)
		buf = append(buf, '\n')

		if _, err := w.Write(buf); err != nil {
			return err
		}
	}

	return w.Flush()
}

// Memory keeps persisted sequences in memory. It is safe for concurrent use.
type Memory struct {
	mu   sync.Mutex
	seqs map[string][]float64
}

// NewMemory returns an empty Memory sink. The zero Memory is also ready
// to use.
func NewMemory() *Memory {
	return &Memory{seqs: make(map[string][]float64)}
}

// Persist stores a copy of seq under name, replacing any earlier one.
func (m *Memory) Persist(ctx context.Context, name string, seq []float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.seqs == nil {
		m.seqs = make(map[string][]float64)
	}

	m.seqs[name] = core.Clone(seq)

	return nil
}

// Get returns the sequence stored under name.
func (m *Memory) Get(name string) ([]float64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	seq, ok := m.seqs[name]

	return seq, ok
}

// Names returns the stored names in sorted order.
func (m *Memory) Names() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	names := make([]string, 0, len(m.seqs))
	for name := range m.seqs {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}
