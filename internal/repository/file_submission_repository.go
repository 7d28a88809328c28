package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/portfolio/backend/internal/model"
)

// FileSubmissionRepository stores submissions as a pretty-printed JSON array
// in a single file. Every Append reads the whole file and rewrites it; there is
// no lock, so concurrent appends can lose updates.
type FileSubmissionRepository struct {
	path string

	// afterRead runs between the read and the write of Append. Tests use it to
	// force an interleaving.
	afterRead func()
}

// NewFileSubmissionRepository creates a FileSubmissionRepository for path.
// The file is created lazily on first use.
func NewFileSubmissionRepository(path string) *FileSubmissionRepository {
	return &FileSubmissionRepository{path: path}
}

// Ensure FileSubmissionRepository implements SubmissionRepository at compile time.
var _ SubmissionRepository = (*FileSubmissionRepository)(nil)

// Path returns the location of the submissions file.
func (r *FileSubmissionRepository) Path() string {
	return r.path
}

// Ping reports whether the directory holding the file is usable.
func (r *FileSubmissionRepository) Ping(_ context.Context) error {
	dir := filepath.Dir(r.path)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w: stat %s: %w", ErrStoreIO, dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrStoreIO, dir)
	}
	return nil
}

// List returns all stored submissions. Unparseable content yields an empty
// slice and OutcomeReset. Array elements that are not objects are skipped.
func (r *FileSubmissionRepository) List(_ context.Context) ([]model.Submission, Outcome, error) {
	elems, outcome, err := r.load()
	if err != nil {
		return nil, outcome, err
	}

	subs := make([]model.Submission, 0, len(elems))
	for _, elem := range elems {
		sub, ok := decodeSubmission(elem)
		if !ok {
			slog.Warn("skipping stored entry that is not an object", "path", r.path)
			continue
		}
		subs = append(subs, sub)
	}
	return subs, outcome, nil
}

// Append reads the file, appends sub and rewrites the whole file. Existing
// elements are written back as they were read, including unknown fields.
func (r *FileSubmissionRepository) Append(_ context.Context, sub model.Submission) (Outcome, error) {
	elems, outcome, err := r.load()
	if err != nil {
		return outcome, err
	}
	if r.afterRead != nil {
		r.afterRead()
	}

	encoded, err := json.Marshal(sub)
	if err != nil {
		return outcome, fmt.Errorf("%w: encode: %w", ErrStoreIO, err)
	}
	elems = append(elems, encoded)
	data, err := json.MarshalIndent(elems, "", "  ")
	if err != nil {
		return outcome, fmt.Errorf("%w: encode: %w", ErrStoreIO, err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return outcome, fmt.Errorf("%w: write %s: %w", ErrStoreIO, r.path, err)
	}
	return outcome, nil
}

// ensureFile creates the file holding an empty array when it does not exist.
func (r *FileSubmissionRepository) ensureFile() error {
	_, err := os.Stat(r.path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: stat %s: %w", ErrStoreIO, r.path, err)
	}

	slog.Info("messages file not found, creating a new one", "path", r.path)
	if err := os.WriteFile(r.path, []byte("[]"), 0o644); err != nil {
		return fmt.Errorf("%w: create %s: %w", ErrStoreIO, r.path, err)
	}
	return nil
}

func (r *FileSubmissionRepository) load() ([]json.RawMessage, Outcome, error) {
	if err := r.ensureFile(); err != nil {
		return nil, OutcomeIntact, err
	}

	raw, err := os.ReadFile(r.path)
	if err != nil {
		return nil, OutcomeIntact, fmt.Errorf("%w: read %s: %w", ErrStoreIO, r.path, err)
	}

	elems, ok := decodeArray(raw)
	if !ok {
		slog.Warn("messages file is not a JSON array, resetting", "path", r.path)
		return []json.RawMessage{}, OutcomeReset, nil
	}
	return elems, OutcomeIntact, nil
}

// decodeArray splits raw into its array elements. An empty file counts as an
// empty array; invalid JSON, "null", objects and scalars are rejected. The
// elements themselves are not inspected.
func decodeArray(raw []byte) ([]json.RawMessage, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return []json.RawMessage{}, true
	}
	if trimmed[0] != '[' {
		return nil, false
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(trimmed, &elems); err != nil {
		return nil, false
	}
	if elems == nil {
		elems = []json.RawMessage{}
	}
	return elems, true
}

// decodeSubmission reads the four known fields of an object element. String
// values are taken as-is; any other JSON value is kept as its literal text so
// hand-edited entries (e.g. a numeric time) still show up.
func decodeSubmission(elem json.RawMessage) (model.Submission, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(elem, &fields); err != nil || fields == nil {
		return model.Submission{}, false
	}
	return model.Submission{
		Name:    fieldText(fields, "name"),
		Email:   fieldText(fields, "email"),
		Message: fieldText(fields, "message"),
		Time:    fieldText(fields, "time"),
	}, true
}

func fieldText(fields map[string]json.RawMessage, key string) string {
	v, ok := fields[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}
	if string(v) == "null" {
		return ""
	}
	return string(v)
}
