package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/charforge/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/charforge/internal/core/domain"
	"github.com/custodia-labs/charforge/internal/core/ports/driven"
)

// Store is a SQLite-based storage that hands out the store interfaces
// it backs through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.charforge/data/characters.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".charforge", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "characters.db")

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// CharacterStore returns a CharacterStore interface backed by this store.
func (s *Store) CharacterStore() driven.CharacterStore {
	return &characterStore{store: s}
}

// migrate runs all pending up migrations and records each applied version.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_characters.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Character Store ====================

// characterStore implements driven.CharacterStore.
type characterStore struct {
	store *Store
}

var _ driven.CharacterStore = (*characterStore)(nil)

// Save stores or updates a character.
func (s *characterStore) Save(ctx context.Context, character domain.Character) error {
	if character.CreatedAt.IsZero() {
		character.CreatedAt = time.Now().UTC()
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO characters (id, name, age, kind, eye_color, hair_color, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			age = excluded.age,
			kind = excluded.kind,
			eye_color = excluded.eye_color,
			hair_color = excluded.hair_color
	`, character.ID, character.Name, character.Age, string(character.Kind),
		character.EyeColor, character.HairColor, character.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("saving character: %w", err)
	}
	return nil
}

// Get retrieves a character by ID.
func (s *characterStore) Get(ctx context.Context, id string) (*domain.Character, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, name, age, kind, eye_color, hair_color, created_at
		FROM characters WHERE id = ?
	`, id)

	character, err := scanCharacter(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning character: %w", err)
	}
	return character, nil
}

// Delete removes a character.
func (s *characterStore) Delete(ctx context.Context, id string) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM characters WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting character: %w", err)
	}
	return nil
}

// List returns all stored characters, newest first.
func (s *characterStore) List(ctx context.Context) ([]domain.Character, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, name, age, kind, eye_color, hair_color, created_at
		FROM characters
		ORDER BY created_at DESC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying characters: %w", err)
	}
	defer rows.Close()

	var characters []domain.Character //nolint:prealloc // size unknown from query
	for rows.Next() {
		character, err := scanCharacter(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning character: %w", err)
		}
		characters = append(characters, *character)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating characters: %w", err)
	}
	return characters, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCharacter(row rowScanner) (*domain.Character, error) {
	var character domain.Character
	var kind string
	var createdAt sql.NullTime
	if err := row.Scan(&character.ID, &character.Name, &character.Age, &kind,
		&character.EyeColor, &character.HairColor, &createdAt); err != nil {
		return nil, err
	}
	character.Kind = domain.Kind(kind)
	if createdAt.Valid {
		character.CreatedAt = createdAt.Time.UTC()
	}
	return &character, nil
}
