package ide

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	// DummyName is the name identifier for the Dummy IDE.
	DummyName = "dummy"
)

// Dummy represents a dummy IDE implementation for testing.
type Dummy struct {
	out io.Writer
}

// NewDummy creates a new Dummy IDE printing to stdout.
func NewDummy() *Dummy {
	return NewDummyWithWriter(os.Stdout)
}

// NewDummyWithWriter creates a new Dummy IDE printing to out.
func NewDummyWithWriter(out io.Writer) *Dummy {
	return &Dummy{out: out}
}

// Name returns the name of the IDE.
func (d *Dummy) Name() string {
	return DummyName
}

// IsInstalled always returns true for the dummy IDE.
func (d *Dummy) IsInstalled() bool {
	return true
}

// OpenWorkspace prints the absolute path instead of launching an editor.
func (d *Dummy) OpenWorkspace(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	_, err = fmt.Fprintln(d.out, "DUMMY_IDE_PATH:", absPath)
	return err
}
