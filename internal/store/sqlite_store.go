// Package store provides SQLite-backed persistence for tagging resources:
// custom lexicon entries, lemma overrides and the entity gazetteer. Uses
// ncruces/go-sqlite3/driver which provides a database/sql interface.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// SQLiteStore is the SQLite-backed data store. Thread-safe.
type SQLiteStore struct {
	mu sync.RWMutex
	db *sql.DB
}

const schema = `
-- Custom lexicon entries layered over the bundled data.
-- Tags are an ordered JSON array; the first is the default reading.
CREATE TABLE IF NOT EXISTS lexicon (
    word TEXT PRIMARY KEY,
    tags TEXT NOT NULL
);

-- Lemma overrides keyed on the (normal form, POS tag) pair.
CREATE TABLE IF NOT EXISTS lemmas (
    normal TEXT NOT NULL,
    pos TEXT NOT NULL,
    lemma TEXT NOT NULL,
    PRIMARY KEY (normal, pos)
);

-- Gazetteer entities for pre-tagging annotation.
CREATE TABLE IF NOT EXISTS entities (
    id TEXT PRIMARY KEY,
    label TEXT NOT NULL,
    aliases TEXT,
    entity_type TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_entities_type ON entities(entity_type);
CREATE INDEX IF NOT EXISTS idx_entities_label ON entities(label);
`

// NewSQLiteStore creates a new in-memory SQLite store.
func NewSQLiteStore() (*SQLiteStore, error) {
	return NewSQLiteStoreWithDSN(":memory:")
}

// NewSQLiteStoreWithDSN creates a store with a specific data source name.
// Use ":memory:" for in-memory or a file path for persistent storage.
func NewSQLiteStoreWithDSN(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// =============================================================================
// Lexicon
// =============================================================================

// UpsertLexicon inserts or replaces the candidate list of every word in
// entries.
func (s *SQLiteStore) UpsertLexicon(entries map[string][]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for word, tags := range entries {
		tagsJSON, err := json.Marshal(tags)
		if err != nil {
			return fmt.Errorf("failed to marshal tags for %q: %w", word, err)
		}
		_, err = s.db.Exec(`
			INSERT INTO lexicon (word, tags) VALUES (?, ?)
			ON CONFLICT(word) DO UPDATE SET tags = excluded.tags
		`, word, string(tagsJSON))
		if err != nil {
			return err
		}
	}
	return nil
}

// LoadLexicon returns every persisted lexicon entry.
func (s *SQLiteStore) LoadLexicon() (map[string][]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`SELECT word, tags FROM lexicon`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make(map[string][]string)
	for rows.Next() {
		var word, tagsJSON string
		if err := rows.Scan(&word, &tagsJSON); err != nil {
			return nil, err
		}
		var tags []string
		if err := json.Unmarshal([]byte(tagsJSON), &tags); err != nil {
			return nil, fmt.Errorf("corrupt tags for %q: %w", word, err)
		}
		entries[word] = tags
	}
	return entries, rows.Err()
}

// =============================================================================
// Lemmas
// =============================================================================

// UpsertLemma inserts or replaces one lemma override.
func (s *SQLiteStore) UpsertLemma(entry LemmaEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO lemmas (normal, pos, lemma) VALUES (?, ?, ?)
		ON CONFLICT(normal, pos) DO UPDATE SET lemma = excluded.lemma
	`, entry.Normal, entry.Pos, entry.Lemma)
	return err
}

// LoadLemmas returns every persisted lemma override.
func (s *SQLiteStore) LoadLemmas() ([]LemmaEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`SELECT normal, pos, lemma FROM lemmas ORDER BY normal, pos`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []LemmaEntry
	for rows.Next() {
		var e LemmaEntry
		if err := rows.Scan(&e.Normal, &e.Pos, &e.Lemma); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// =============================================================================
// Entities
// =============================================================================

// UpsertEntity inserts or updates a gazetteer entity.
func (s *SQLiteStore) UpsertEntity(entity *Entity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	aliasesJSON, err := json.Marshal(entity.Aliases)
	if err != nil {
		return fmt.Errorf("failed to marshal aliases: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO entities (id, label, aliases, entity_type, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			label = excluded.label,
			aliases = excluded.aliases,
			entity_type = excluded.entity_type,
			updated_at = excluded.updated_at
	`, entity.ID, entity.Label, string(aliasesJSON), entity.Type,
		entity.CreatedAt, entity.UpdatedAt)
	return err
}

// GetEntity retrieves an entity by ID. Returns nil when absent.
func (s *SQLiteStore) GetEntity(id string) (*Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var entity Entity
	var aliasesJSON string
	err := s.db.QueryRow(`
		SELECT id, label, aliases, entity_type, created_at, updated_at
		FROM entities WHERE id = ?
	`, id).Scan(&entity.ID, &entity.Label, &aliasesJSON, &entity.Type,
		&entity.CreatedAt, &entity.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if aliasesJSON != "" {
		if err := json.Unmarshal([]byte(aliasesJSON), &entity.Aliases); err != nil {
			entity.Aliases = []string{}
		}
	}
	return &entity, nil
}

// DeleteEntity removes an entity by ID.
func (s *SQLiteStore) DeleteEntity(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("DELETE FROM entities WHERE id = ?", id)
	return err
}

// ListEntities returns all entities, optionally filtered by type.
func (s *SQLiteStore) ListEntities(entityType string) ([]*Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rows *sql.Rows
	var err error
	if entityType != "" {
		rows, err = s.db.Query(`
			SELECT id, label, aliases, entity_type, created_at, updated_at
			FROM entities WHERE entity_type = ? ORDER BY label
		`, entityType)
	} else {
		rows, err = s.db.Query(`
			SELECT id, label, aliases, entity_type, created_at, updated_at
			FROM entities ORDER BY label
		`)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entities []*Entity
	for rows.Next() {
		var entity Entity
		var aliasesJSON string
		if err := rows.Scan(&entity.ID, &entity.Label, &aliasesJSON, &entity.Type,
			&entity.CreatedAt, &entity.UpdatedAt); err != nil {
			return nil, err
		}
		if aliasesJSON != "" {
			if err := json.Unmarshal([]byte(aliasesJSON), &entity.Aliases); err != nil {
				entity.Aliases = []string{}
			}
		}
		entities = append(entities, &entity)
	}
	return entities, rows.Err()
}

// CountEntities returns the total number of entities.
func (s *SQLiteStore) CountEntities() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM entities").Scan(&count)
	return count, err
}

// =============================================================================
// Export / Import
// =============================================================================

type exportData struct {
	Lexicon  []LexiconEntry `json:"lexicon"`
	Lemmas   []LemmaEntry   `json:"lemmas"`
	Entities []*Entity      `json:"entities"`
}

// Export serializes all tables to JSON bytes.
func (s *SQLiteStore) Export() ([]byte, error) {
	lexicon, err := s.LoadLexicon()
	if err != nil {
		return nil, fmt.Errorf("export lexicon: %w", err)
	}
	lemmas, err := s.LoadLemmas()
	if err != nil {
		return nil, fmt.Errorf("export lemmas: %w", err)
	}
	entities, err := s.ListEntities("")
	if err != nil {
		return nil, fmt.Errorf("export entities: %w", err)
	}

	var data exportData
	for word, tags := range lexicon {
		data.Lexicon = append(data.Lexicon, LexiconEntry{Word: word, Tags: tags})
	}
	data.Lemmas = lemmas
	data.Entities = entities
	return json.Marshal(data)
}

// Import restores the store from an exported JSON byte slice. Clears all
// existing rows first.
func (s *SQLiteStore) Import(raw []byte) error {
	if len(raw) == 0 {
		return nil
	}

	var data exportData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("import unmarshal: %w", err)
	}

	s.mu.Lock()
	for _, table := range []string{"lexicon", "lemmas", "entities"} {
		if _, err := s.db.Exec("DELETE FROM " + table); err != nil {
			s.mu.Unlock()
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	s.mu.Unlock()

	lexicon := make(map[string][]string, len(data.Lexicon))
	for _, e := range data.Lexicon {
		lexicon[e.Word] = e.Tags
	}
	if err := s.UpsertLexicon(lexicon); err != nil {
		return fmt.Errorf("import lexicon: %w", err)
	}
	for _, e := range data.Lemmas {
		if err := s.UpsertLemma(e); err != nil {
			return fmt.Errorf("import lemma %s/%s: %w", e.Normal, e.Pos, err)
		}
	}
	for _, e := range data.Entities {
		if err := s.UpsertEntity(e); err != nil {
			return fmt.Errorf("import entity %s: %w", e.ID, err)
		}
	}
	return nil
}

// Compile-time interface check
var _ Storer = (*SQLiteStore)(nil)
