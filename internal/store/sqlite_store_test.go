package store

import (
	"reflect"
	"testing"
	"time"
)

func TestLexiconRoundTrip(t *testing.T) {
	s, err := NewSQLiteStore()
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer s.Close()

	entries := map[string][]string{
		"sing": {"VB", "VBP"},
		"song": {"NN"},
	}
	if err := s.UpsertLexicon(entries); err != nil {
		t.Fatalf("UpsertLexicon failed: %v", err)
	}

	loaded, err := s.LoadLexicon()
	if err != nil {
		t.Fatalf("LoadLexicon failed: %v", err)
	}
	if !reflect.DeepEqual(loaded, entries) {
		t.Errorf("loaded %v, want %v", loaded, entries)
	}

	// Replacing a word's candidate list is wholesale.
	if err := s.UpsertLexicon(map[string][]string{"sing": {"NN"}}); err != nil {
		t.Fatalf("UpsertLexicon failed: %v", err)
	}
	loaded, err = s.LoadLexicon()
	if err != nil {
		t.Fatalf("LoadLexicon failed: %v", err)
	}
	if !reflect.DeepEqual(loaded["sing"], []string{"NN"}) {
		t.Errorf("sing = %v, want [NN]", loaded["sing"])
	}
}

func TestLemmaRoundTrip(t *testing.T) {
	s, err := NewSQLiteStore()
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer s.Close()

	if err := s.UpsertLemma(LemmaEntry{Normal: "corpora", Pos: "NNS", Lemma: "corpus"}); err != nil {
		t.Fatalf("UpsertLemma failed: %v", err)
	}
	if err := s.UpsertLemma(LemmaEntry{Normal: "corpora", Pos: "NNS", Lemma: "corpus"}); err != nil {
		t.Fatalf("Re-upsert failed: %v", err)
	}

	lemmas, err := s.LoadLemmas()
	if err != nil {
		t.Fatalf("LoadLemmas failed: %v", err)
	}
	if len(lemmas) != 1 || lemmas[0].Lemma != "corpus" {
		t.Errorf("lemmas = %v, want single corpora/NNS -> corpus", lemmas)
	}
}

func TestEntityCRUD(t *testing.T) {
	s, err := NewSQLiteStore()
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer s.Close()

	now := time.Now().Unix()
	entity := &Entity{
		ID:        "e1",
		Label:     "New Delhi",
		Aliases:   []string{"Delhi"},
		Type:      "location",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.UpsertEntity(entity); err != nil {
		t.Fatalf("UpsertEntity failed: %v", err)
	}

	got, err := s.GetEntity("e1")
	if err != nil {
		t.Fatalf("GetEntity failed: %v", err)
	}
	if got == nil || got.Label != "New Delhi" || !reflect.DeepEqual(got.Aliases, []string{"Delhi"}) {
		t.Errorf("GetEntity = %+v", got)
	}

	list, err := s.ListEntities("location")
	if err != nil {
		t.Fatalf("ListEntities failed: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("ListEntities(location) = %d entities, want 1", len(list))
	}
	list, err = s.ListEntities("person")
	if err != nil {
		t.Fatalf("ListEntities failed: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("ListEntities(person) = %d entities, want 0", len(list))
	}

	if err := s.DeleteEntity("e1"); err != nil {
		t.Fatalf("DeleteEntity failed: %v", err)
	}
	got, err = s.GetEntity("e1")
	if err != nil {
		t.Fatalf("GetEntity after delete failed: %v", err)
	}
	if got != nil {
		t.Errorf("entity survived delete: %+v", got)
	}
}

func TestExportImport(t *testing.T) {
	s, err := NewSQLiteStore()
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer s.Close()

	if err := s.UpsertLexicon(map[string][]string{"sing": {"VB", "VBP"}}); err != nil {
		t.Fatalf("UpsertLexicon failed: %v", err)
	}
	if err := s.UpsertLemma(LemmaEntry{Normal: "sang", Pos: "VBD", Lemma: "sing"}); err != nil {
		t.Fatalf("UpsertLemma failed: %v", err)
	}
	now := time.Now().Unix()
	if err := s.UpsertEntity(&Entity{ID: "e1", Label: "Denmark", Type: "location", CreatedAt: now, UpdatedAt: now}); err != nil {
		t.Fatalf("UpsertEntity failed: %v", err)
	}

	data, err := s.Export()
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Exported data is empty")
	}

	// A fresh store restores the same state.
	s2, err := NewSQLiteStore()
	if err != nil {
		t.Fatalf("Failed to create second store: %v", err)
	}
	defer s2.Close()
	if err := s2.Import(data); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	lexicon, err := s2.LoadLexicon()
	if err != nil {
		t.Fatalf("LoadLexicon failed: %v", err)
	}
	if !reflect.DeepEqual(lexicon["sing"], []string{"VB", "VBP"}) {
		t.Errorf("sing = %v after import", lexicon["sing"])
	}
	lemmas, err := s2.LoadLemmas()
	if err != nil {
		t.Fatalf("LoadLemmas failed: %v", err)
	}
	if len(lemmas) != 1 || lemmas[0].Normal != "sang" {
		t.Errorf("lemmas = %v after import", lemmas)
	}
	count, err := s2.CountEntities()
	if err != nil {
		t.Fatalf("CountEntities failed: %v", err)
	}
	if count != 1 {
		t.Errorf("CountEntities = %d, want 1", count)
	}
}
