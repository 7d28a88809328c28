package repository

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portfolio/backend/internal/model"
)

func newTestRepo(t *testing.T) *FileSubmissionRepository {
	t.Helper()
	return NewFileSubmissionRepository(filepath.Join(t.TempDir(), "messages.json"))
}

func readFile(t *testing.T, path string) []model.Submission {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var subs []model.Submission
	require.NoError(t, json.Unmarshal(raw, &subs))
	return subs
}

func sample(name string) model.Submission {
	return model.Submission{
		Name:    name,
		Email:   name + "@example.com",
		Message: "hello from " + name,
		Time:    "3/14/2026, 9:05:12 PM",
	}
}

func TestFileSubmissionRepository_List_CreatesMissingFile(t *testing.T) {
	repo := newTestRepo(t)

	subs, outcome, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, OutcomeIntact, outcome)
	assert.NotNil(t, subs)
	assert.Empty(t, subs)

	raw, err := os.ReadFile(repo.Path())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestFileSubmissionRepository_Append_GrowsByOne(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for i, name := range []string{"alice", "bob", "carol"} {
		outcome, err := repo.Append(ctx, sample(name))
		require.NoError(t, err)
		assert.Equal(t, OutcomeIntact, outcome)

		stored := readFile(t, repo.Path())
		require.Len(t, stored, i+1)
		assert.Equal(t, sample(name), stored[i])
	}
}

func TestFileSubmissionRepository_List_InsertionOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	want := []model.Submission{sample("alice"), sample("bob"), sample("carol")}
	for _, s := range want {
		_, err := repo.Append(ctx, s)
		require.NoError(t, err)
	}

	got, _, err := repo.List(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("List mismatch (-want +got):\n%s", diff)
	}
}

func TestFileSubmissionRepository_Append_PrettyPrints(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Append(context.Background(), sample("alice"))
	require.NoError(t, err)

	raw, err := os.ReadFile(repo.Path())
	require.NoError(t, err)
	want, err := json.MarshalIndent([]model.Submission{sample("alice")}, "", "  ")
	require.NoError(t, err)
	assert.Equal(t, string(want), string(raw))
}

func TestFileSubmissionRepository_CorruptContent(t *testing.T) {
	cases := map[string]string{
		"invalid json":    "{not json",
		"object":          `{"name":"x"}`,
		"null":            "null",
		"truncated array": `[{"name":"a","email":"b","message":"c","time":"d"}`,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			repo := newTestRepo(t)
			require.NoError(t, os.WriteFile(repo.Path(), []byte(content), 0o644))

			subs, outcome, err := repo.List(context.Background())
			require.NoError(t, err)
			assert.Equal(t, OutcomeReset, outcome)
			assert.Empty(t, subs)

			outcome, err = repo.Append(context.Background(), sample("alice"))
			require.NoError(t, err)
			assert.Equal(t, OutcomeReset, outcome)

			stored := readFile(t, repo.Path())
			require.Len(t, stored, 1)
			assert.Equal(t, sample("alice"), stored[0])
		})
	}
}

func TestFileSubmissionRepository_KeepsUnrecognisedElements(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	content := `[
  {"name":"a","email":"a@example.com","message":"m","time":1700000000,"extra":"keep"},
  1
]`
	require.NoError(t, os.WriteFile(repo.Path(), []byte(content), 0o644))

	subs, outcome, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, OutcomeIntact, outcome)
	want := []model.Submission{{Name: "a", Email: "a@example.com", Message: "m", Time: "1700000000"}}
	if diff := cmp.Diff(want, subs); diff != "" {
		t.Errorf("List mismatch (-want +got):\n%s", diff)
	}

	outcome, err = repo.Append(ctx, sample("carol"))
	require.NoError(t, err)
	assert.Equal(t, OutcomeIntact, outcome)

	raw, err := os.ReadFile(repo.Path())
	require.NoError(t, err)
	var elems []json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &elems))
	require.Len(t, elems, 3)

	var first map[string]any
	require.NoError(t, json.Unmarshal(elems[0], &first))
	assert.Equal(t, "keep", first["extra"])
	assert.Equal(t, float64(1700000000), first["time"])
	assert.JSONEq(t, "1", string(elems[1]))

	var last model.Submission
	require.NoError(t, json.Unmarshal(elems[2], &last))
	assert.Equal(t, sample("carol"), last)
}

func TestFileSubmissionRepository_ScalarArrayIsKept(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, os.WriteFile(repo.Path(), []byte("[1, 2, 3]"), 0o644))

	subs, outcome, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, OutcomeIntact, outcome)
	assert.NotNil(t, subs)
	assert.Empty(t, subs)

	_, err = repo.Append(ctx, sample("alice"))
	require.NoError(t, err)

	raw, err := os.ReadFile(repo.Path())
	require.NoError(t, err)
	var elems []json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &elems))
	require.Len(t, elems, 4)
	assert.JSONEq(t, "3", string(elems[2]))

	subs, _, err = repo.List(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff([]model.Submission{sample("alice")}, subs); diff != "" {
		t.Errorf("List mismatch (-want +got):\n%s", diff)
	}
}

func TestFileSubmissionRepository_EmptyFileIsEmptyArray(t *testing.T) {
	repo := newTestRepo(t)
	require.NoError(t, os.WriteFile(repo.Path(), nil, 0o644))

	subs, outcome, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, OutcomeIntact, outcome)
	assert.Empty(t, subs)
}

func TestFileSubmissionRepository_ReadFailure(t *testing.T) {
	// A directory at the file path makes ReadFile fail.
	dir := t.TempDir()
	path := filepath.Join(dir, "messages.json")
	require.NoError(t, os.Mkdir(path, 0o755))
	repo := NewFileSubmissionRepository(path)

	_, _, err := repo.List(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStoreIO))

	_, err = repo.Append(context.Background(), sample("alice"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStoreIO))
}

func TestFileSubmissionRepository_MissingDirectory(t *testing.T) {
	repo := NewFileSubmissionRepository(filepath.Join(t.TempDir(), "nope", "messages.json"))

	_, err := repo.Append(context.Background(), sample("alice"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStoreIO))

	err = repo.Ping(context.Background())
	assert.True(t, errors.Is(err, ErrStoreIO))
}

func TestFileSubmissionRepository_Ping(t *testing.T) {
	repo := newTestRepo(t)
	assert.NoError(t, repo.Ping(context.Background()))
}

// Two appends that both read before either writes leave only the later write
// on disk. The store makes no attempt to prevent this.
func TestFileSubmissionRepository_InterleavedAppendsCanLoseUpdate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.json")
	first := NewFileSubmissionRepository(path)
	second := NewFileSubmissionRepository(path)
	ctx := context.Background()

	first.afterRead = func() {
		_, err := second.Append(ctx, sample("bob"))
		require.NoError(t, err)
	}

	_, err := first.Append(ctx, sample("alice"))
	require.NoError(t, err)

	stored := readFile(t, path)
	require.Len(t, stored, 1, "one of the two submissions is expected to be lost")
	assert.Equal(t, sample("alice"), stored[0])
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "intact", OutcomeIntact.String())
	assert.Equal(t, "corrupted-reset", OutcomeReset.String())
	assert.Equal(t, "unknown", Outcome(42).String())
}
