// Package fs provides JSON output of crawl results to streams and files.
package fs

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/langex"
)

// Ensure writers implement langex.PersonWriter at compile time.
var (
	_ langex.PersonWriter = (*Writer)(nil)
	_ langex.PersonWriter = (*FileWriter)(nil)
)

// Writer writes persons as a single JSON array followed by a newline.
type Writer struct {
	w io.Writer
}

// NewWriter creates a new Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WritePersons encodes persons as one JSON array. A nil slice encodes as [].
func (w *Writer) WritePersons(persons []*langex.Person) error {
	if persons == nil {
		persons = []*langex.Person{}
	}
	enc := json.NewEncoder(w.w)
	enc.SetEscapeHTML(false)
	return enc.Encode(persons)
}

// FileWriter writes the JSON array to a file with atomic replace semantics.
// Output is written to path.tmp and renamed over path once complete.
type FileWriter struct {
	path string
}

// NewFileWriter creates a new FileWriter targeting path.
func NewFileWriter(path string) *FileWriter {
	return &FileWriter{path: path}
}

func (w *FileWriter) tempPath() string {
	return w.path + ".tmp"
}

// WritePersons writes persons to the target file.
func (w *FileWriter) WritePersons(persons []*langex.Person) error {
	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return err
	}

	f, err := os.Create(w.tempPath())
	if err != nil {
		return err
	}
	if err := NewWriter(f).WritePersons(persons); err != nil {
		f.Close()
		os.Remove(w.tempPath())
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(w.tempPath())
		return err
	}

	return os.Rename(w.tempPath(), w.path)
}
