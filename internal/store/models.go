package store

// LexiconEntry is one persisted word with its ordered POS candidates.
type LexiconEntry struct {
	Word string   `json:"word"`
	Tags []string `json:"tags"`
}

// LemmaEntry is one persisted (normal, pos) -> lemma mapping.
type LemmaEntry struct {
	Normal string `json:"normal"`
	Pos    string `json:"pos"`
	Lemma  string `json:"lemma"`
}

// Entity is one persisted gazetteer entry.
type Entity struct {
	ID        string   `json:"id"`
	Label     string   `json:"label"`
	Aliases   []string `json:"aliases"`
	Type      string   `json:"type"`
	CreatedAt int64    `json:"createdAt"`
	UpdatedAt int64    `json:"updatedAt"`
}

// Storer is the persistence surface the CLI works against.
type Storer interface {
	UpsertLexicon(entries map[string][]string) error
	LoadLexicon() (map[string][]string, error)
	UpsertLemma(entry LemmaEntry) error
	LoadLemmas() ([]LemmaEntry, error)
	UpsertEntity(entity *Entity) error
	GetEntity(id string) (*Entity, error)
	DeleteEntity(id string) error
	ListEntities(entityType string) ([]*Entity, error)
	Export() ([]byte, error)
	Import(data []byte) error
	Close() error
}
