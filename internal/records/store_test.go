package records

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/aptidude/aptidude/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func newStore(t *testing.T) (*Store, *MemoryRepository, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	repo := NewMemoryRepository()
	return NewStore(repo, log), repo, &buf
}

func TestLoad_MissingKeyReturnsDefault(t *testing.T) {
	s, _, buf := newStore(t)

	v, err := Load(context.Background(), s, Bool("notifications-enabled", true))
	require.NoError(t, err)
	assert.True(t, v)
	assert.Empty(t, buf.String(), "absence is not corruption")
}

func TestLoad_CorruptValueFallsBackAndWarns(t *testing.T) {
	s, repo, buf := newStore(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "sound-enabled", []byte("yes")))

	v, err := Load(ctx, s, Bool("sound-enabled", true))
	require.NoError(t, err)
	assert.True(t, v)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "key=sound-enabled")
}

func TestBoolField(t *testing.T) {
	f := Bool("offline-mode", false)

	for _, tc := range []struct {
		raw     string
		want    bool
		corrupt bool
	}{
		{raw: "true", want: true},
		{raw: "false", want: false},
		{raw: "TRUE", corrupt: true},
		{raw: "1", corrupt: true},
		{raw: "", corrupt: true},
	} {
		got, err := f.Decode([]byte(tc.raw))
		if tc.corrupt {
			require.ErrorIs(t, err, ErrCorrupt, tc.raw)
			continue
		}
		require.NoError(t, err, tc.raw)
		assert.Equal(t, tc.want, got, tc.raw)
	}

	b, err := f.Encode(true)
	require.NoError(t, err)
	assert.Equal(t, "true", string(b))
}

func TestIntField_NormalizesBothWays(t *testing.T) {
	double := func(v int) int { return v * 2 }
	f := Int("n", 1, double)

	b, err := f.Encode(3)
	require.NoError(t, err)
	assert.Equal(t, "6", string(b))

	v, err := f.Decode([]byte("4"))
	require.NoError(t, err)
	assert.Equal(t, 8, v)

	_, err = f.Decode([]byte("4.5"))
	require.ErrorIs(t, err, ErrCorrupt)
}

func TestTextField_RejectsWhatParseRejects(t *testing.T) {
	parse := func(s string) (string, error) {
		if s == "" {
			return "", errors.New("empty")
		}
		return s, nil
	}
	f := Text("t", "def", func(s string) string { return s }, parse)

	_, err := f.Decode([]byte(""))
	require.ErrorIs(t, err, ErrCorrupt)

	v, err := f.Decode([]byte("GRE"))
	require.NoError(t, err)
	assert.Equal(t, "GRE", v)
}

func TestSaveLoad_JSONRoundTrip(t *testing.T) {
	s, repo, _ := newStore(t)
	ctx := context.Background()
	f := JSON("point", point{})

	require.NoError(t, Save(ctx, s, f, point{X: 1, Y: 2}))
	assert.JSONEq(t, `{"x":1,"y":2}`, repo.Snapshot()["point"])

	got, err := Load(ctx, s, f)
	require.NoError(t, err)
	assert.Equal(t, point{X: 1, Y: 2}, got)

	require.NoError(t, repo.Set(ctx, "point", []byte("{not json")))
	got, err = Load(ctx, s, f)
	require.NoError(t, err)
	assert.Equal(t, point{}, got)
}

func TestKeys_FiltersAndSorts(t *testing.T) {
	s, repo, _ := newStore(t)
	ctx := context.Background()

	for _, k := range []string{"progress:b", "daily-goal", "progress:a", "progress:c"} {
		require.NoError(t, repo.Set(ctx, k, []byte("x")))
	}

	keys, err := s.Keys(ctx, "progress:")
	require.NoError(t, err)
	assert.Equal(t, []string{"progress:a", "progress:b", "progress:c"}, keys)
}

func TestRemoveAndRemoveAll(t *testing.T) {
	s, repo, _ := newStore(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "a", []byte("1")))
	require.NoError(t, repo.Set(ctx, "b", []byte("2")))

	require.NoError(t, s.Remove(ctx, "a"))
	assert.Equal(t, map[string]string{"b": "2"}, repo.Snapshot())

	require.NoError(t, s.RemoveAll(ctx))
	assert.Empty(t, repo.Snapshot())
}

type failingRepo struct{ MemoryRepository }

func (f *failingRepo) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("disk gone")
}

func TestLoad_StorageErrorPropagates(t *testing.T) {
	s := NewStore(&failingRepo{}, nil)

	v, err := Load(context.Background(), s, Int("daily-goal", 10, nil))
	require.Error(t, err)
	assert.Equal(t, 10, v)
}
