package records

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/aptidude/aptidude/internal/logging"
)

// Store binds a Repository to a logger used to report corrupt values.
type Store struct {
	repo Repository
	log  logging.Logger
}

func NewStore(repo Repository, log logging.Logger) *Store {
	if log == nil {
		log = logging.Nop()
	}
	return &Store{repo: repo, log: log.With("component", "records")}
}

// Load reads f. Absent or undecodable values yield f.Default.
func Load[T any](ctx context.Context, s *Store, f Field[T]) (T, error) {
	raw, err := s.repo.Get(ctx, f.Key)
	if err != nil {
		return f.Default, err
	}
	if raw == nil {
		return f.Default, nil
	}

	v, err := f.Decode(raw)
	if err != nil {
		s.log.Warn(ctx, "corrupt record, using default", "key", f.Key, "error", err)
		return f.Default, nil
	}
	return v, nil
}

// Save encodes v and writes it under f.Key.
func Save[T any](ctx context.Context, s *Store, f Field[T], v T) error {
	b, err := f.Encode(v)
	if err != nil {
		return fmt.Errorf("encode record[%s]: %w", f.Key, err)
	}
	return s.repo.Set(ctx, f.Key, b)
}

// Remove deletes key. Removing an absent key is not an error.
func (s *Store) Remove(ctx context.Context, key string) error {
	return s.repo.Delete(ctx, key)
}

// RemoveAll deletes every key the application owns.
func (s *Store) RemoveAll(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return err
	}
	s.log.Info(ctx, "all records removed")
	return nil
}

// Keys lists stored keys starting with prefix, sorted.
func (s *Store) Keys(ctx context.Context, prefix string) ([]string, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(all))
	for k := range all {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys, nil
}
