package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"libretto/internal/model"
)

// Kind distinguishes the document types the catalog indexes.
type Kind string

const (
	KindBase        Kind = "base"
	KindOverlay     Kind = "overlay"
	KindInterchange Kind = "interchange"
)

// Record is one catalog row.
type Record struct {
	ID       int64
	Path     string
	Kind     Kind
	Title    string
	Composer string
	Language string
	Numbers  int
	Tracks   int
	Segments int
	Created  time.Time
	Updated  time.Time
}

// ErrNotFound indicates no record exists for the given path.
var ErrNotFound = errors.New("document not found in catalog")

// RecordForBase builds a catalog record from a base libretto.
func RecordForBase(path string, base *model.BaseLibretto) Record {
	segments := 0
	for _, n := range base.Numbers {
		segments += len(n.Segments)
	}
	return Record{
		Path:     path,
		Kind:     KindBase,
		Title:    base.Opera.Title,
		Composer: base.Opera.Composer,
		Language: base.Opera.Language,
		Numbers:  len(base.Numbers),
		Segments: segments,
	}
}

// RecordForOverlay builds a catalog record from a timing overlay.
func RecordForOverlay(path string, overlay *model.TimingOverlay) Record {
	return Record{
		Path:     path,
		Kind:     KindOverlay,
		Title:    overlay.Recording.AlbumTitle,
		Tracks:   len(overlay.TrackTimings),
		Segments: len(overlay.SegmentIDs()),
	}
}

// RecordForInterchange builds a catalog record from a merged document.
func RecordForInterchange(path string, doc *model.InterchangeLibretto) Record {
	segments := 0
	for _, t := range doc.Tracks {
		segments += len(t.Segments)
	}
	return Record{
		Path:     path,
		Kind:     KindInterchange,
		Title:    doc.Opera.Title,
		Composer: doc.Opera.Composer,
		Language: doc.Opera.Language,
		Tracks:   len(doc.Tracks),
		Segments: segments,
	}
}

// Upsert inserts a record or refreshes the existing row for its path.
func (s *Store) Upsert(ctx context.Context, rec Record) error {
	now := time.Now().UTC().Format(time.RFC3339)
	return s.execWithRetry(ctx, `
		INSERT INTO documents (path, kind, title, composer, language, numbers, tracks, segments, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			kind = excluded.kind,
			title = excluded.title,
			composer = excluded.composer,
			language = excluded.language,
			numbers = excluded.numbers,
			tracks = excluded.tracks,
			segments = excluded.segments,
			updated_at = excluded.updated_at`,
		rec.Path, string(rec.Kind), rec.Title, rec.Composer, rec.Language,
		rec.Numbers, rec.Tracks, rec.Segments, now, now)
}

// Get returns the record for a library-relative path.
func (s *Store) Get(ctx context.Context, path string) (Record, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx, selectColumns+" WHERE path = ?", path)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return rec, err
}

// List returns catalog records, optionally filtered by kind, ordered
// by title then path.
func (s *Store) List(ctx context.Context, kind Kind) ([]Record, error) {
	ctx = ensureContext(ctx)

	query := selectColumns
	var args []any
	if kind != "" {
		query += " WHERE kind = ?"
		args = append(args, string(kind))
	}
	query += " ORDER BY title, path"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Delete removes the record for a path. Deleting a path not in the
// catalog is not an error.
func (s *Store) Delete(ctx context.Context, path string) error {
	return s.execWithRetry(ctx, "DELETE FROM documents WHERE path = ?", path)
}

const selectColumns = `SELECT id, path, kind, title, composer, language, numbers, tracks, segments, created_at, updated_at FROM documents`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var (
		rec              Record
		kind             string
		created, updated string
	)
	err := row.Scan(&rec.ID, &rec.Path, &kind, &rec.Title, &rec.Composer,
		&rec.Language, &rec.Numbers, &rec.Tracks, &rec.Segments, &created, &updated)
	if err != nil {
		return Record{}, err
	}
	rec.Kind = Kind(kind)
	if t, err := time.Parse(time.RFC3339, created); err == nil {
		rec.Created = t
	}
	if t, err := time.Parse(time.RFC3339, updated); err == nil {
		rec.Updated = t
	}
	return rec, nil
}
