package mock

import (
	"context"

	"github.com/fwojciec/langex"
)

// Compile-time interface verification.
var (
	_ langex.PersonStore  = (*PersonStore)(nil)
	_ langex.PersonWriter = (*PersonWriter)(nil)
)

// PersonStore is a mock implementation of langex.PersonStore.
type PersonStore struct {
	SaveRunFn func(ctx context.Context, run *langex.Run, persons []*langex.Person) error
}

func (s *PersonStore) SaveRun(ctx context.Context, run *langex.Run, persons []*langex.Person) error {
	return s.SaveRunFn(ctx, run, persons)
}

// PersonWriter is a mock implementation of langex.PersonWriter.
type PersonWriter struct {
	WritePersonsFn func(persons []*langex.Person) error
}

func (w *PersonWriter) WritePersons(persons []*langex.Person) error {
	return w.WritePersonsFn(persons)
}
