// Package jsonfile keeps both collections in a single JSON document,
// laid out as {"incomes": [...], "expenses": [...]}.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/HoangNobi25/thuchi/internal/domain/ledger"
	"github.com/HoangNobi25/thuchi/internal/model"

	"github.com/spf13/afero"
	"golang.org/x/exp/slog"
)

type document struct {
	Incomes  []model.Entry `json:"incomes"`
	Expenses []model.Entry `json:"expenses"`
}

func (d *document) collection(kind model.Kind) *[]model.Entry {
	if kind == model.KindIncome {
		return &d.Incomes
	}
	return &d.Expenses
}

type Store struct {
	fs   afero.Fs
	path string
	log  *slog.Logger
	now  func() time.Time

	// mu serialises read-modify-write cycles within the process.
	mu sync.Mutex
}

// New opens the document at path, creating an empty one if it does not exist.
func New(fs afero.Fs, path string, log *slog.Logger) (*Store, error) {
	s := &Store{
		fs:   fs,
		path: path,
		log:  log.With("component", "json_store"),
		now:  time.Now,
	}

	_, err := fs.Stat(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		if err := s.write(&document{}); err != nil {
			return nil, fmt.Errorf("init %s: %w", path, err)
		}
		s.log.Info("created empty data file", "path", path)
	case err != nil:
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	// fail fast on a corrupt document
	if _, err := s.read(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) List(ctx context.Context, kind model.Kind) ([]model.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := s.read()
	if err != nil {
		return nil, err
	}

	entries := *doc.collection(kind)
	out := make([]model.Record, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Record(kind))
	}
	return out, nil
}

func (s *Store) Insert(ctx context.Context, kind model.Kind, rec model.Record) (model.Record, error) {
	var created model.Record
	err := s.modify(ctx, func(doc *document) error {
		coll := doc.collection(kind)

		var last int64
		for _, e := range *coll {
			last = max(last, e.ID)
		}
		created = rec
		created.ID = ledger.NextID(s.now(), last)
		*coll = append(*coll, created.Entry(kind))
		return nil
	})
	return created, err
}

func (s *Store) Update(
	ctx context.Context,
	kind model.Kind,
	id int64,
	fn func(model.Record) (model.Record, error),
) (model.Record, error) {
	var updated model.Record
	err := s.modify(ctx, func(doc *document) error {
		coll := *doc.collection(kind)
		i := indexOf(coll, id)
		if i < 0 {
			return ledger.ErrNotFound
		}

		rec, err := fn(coll[i].Record(kind))
		if err != nil {
			return err
		}
		rec.ID = id
		coll[i] = rec.Entry(kind)
		updated = rec
		return nil
	})
	return updated, err
}

func (s *Store) Delete(ctx context.Context, kind model.Kind, id int64) error {
	return s.modify(ctx, func(doc *document) error {
		coll := doc.collection(kind)
		i := indexOf(*coll, id)
		if i < 0 {
			return ledger.ErrNotFound
		}
		*coll = append((*coll)[:i], (*coll)[i+1:]...)
		return nil
	})
}

func (s *Store) Close() error {
	return nil
}

func indexOf(entries []model.Entry, id int64) int {
	for i, e := range entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// modify runs fn on a freshly read document and writes it back if fn succeeds.
func (s *Store) modify(ctx context.Context, fn func(*document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	doc, err := s.read()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.write(doc)
}

func (s *Store) read() (*document, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return &doc, nil
}

// write replaces the document atomically: temp file in the same directory, then rename.
func (s *Store) write(doc *document) error {
	if doc.Incomes == nil {
		doc.Incomes = []model.Entry{}
	}
	if doc.Expenses == nil {
		doc.Expenses = []model.Entry{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	tmp, err := afero.TempFile(s.fs, dir, "."+filepath.Base(s.path)+"-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = s.fs.Remove(tmp.Name())
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = s.fs.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := s.fs.Rename(tmp.Name(), s.path); err != nil {
		_ = s.fs.Remove(tmp.Name())
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}
