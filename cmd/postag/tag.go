package main

import (
	"bufio"
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kittclouds/postag/internal/store"
	"github.com/kittclouds/postag/pkg/ner"
	"github.com/kittclouds/postag/pkg/tagger"
)

func newTagCmd() *cobra.Command {
	var raw, noNormal, noLemma bool

	cmd := &cobra.Command{
		Use:   "tag [text]",
		Short: "Tag a sentence from arguments, or one sentence per line from stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, annotator, err := loadResources()
			if err != nil {
				return err
			}
			engine.DefineConfig(tagger.Options{
				Normal: tagger.Bool(!noNormal),
				Lemma:  tagger.Bool(!noLemma),
			})

			var lines []string
			if len(args) > 0 {
				lines = []string{strings.Join(args, " ")}
			} else {
				scanner := bufio.NewScanner(cmd.InOrStdin())
				for scanner.Scan() {
					lines = append(lines, scanner.Text())
				}
				if err := scanner.Err(); err != nil {
					return err
				}
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, line := range lines {
				if strings.TrimSpace(line) == "" {
					continue
				}
				var tokens []tagger.Token
				switch {
				case raw:
					tokens = engine.TagRawTokens(strings.Fields(line))
				case annotator != nil:
					tokens = engine.Tag(annotator.AnnotateSentence(line))
				default:
					tokens = engine.TagSentence(line)
				}
				if err := enc.Encode(tokens); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "treat input as pre-split tokens")
	cmd.Flags().BoolVar(&noNormal, "no-normal", false, "omit normal forms from the output")
	cmd.Flags().BoolVar(&noLemma, "no-lemma", false, "omit lemmas from the output")
	return cmd
}

// loadResources builds the engine, layering database overrides over the
// bundled data when --db is set. The annotator is nil unless the database
// holds entities.
func loadResources() (*tagger.Engine, *ner.Annotator, error) {
	engine := tagger.New()
	if dbPath == "" {
		return engine, nil, nil
	}

	s, err := store.NewSQLiteStoreWithDSN(dbPath)
	if err != nil {
		return nil, nil, err
	}
	defer s.Close()

	lexicon, err := s.LoadLexicon()
	if err != nil {
		return nil, nil, err
	}
	if len(lexicon) > 0 {
		if err := engine.UpdateLexicon(lexicon); err != nil {
			return nil, nil, err
		}
	}

	lemmas, err := s.LoadLemmas()
	if err != nil {
		return nil, nil, err
	}
	for _, l := range lemmas {
		engine.UpdateLemma(l.Normal, l.Pos, l.Lemma)
	}

	entities, err := s.ListEntities("")
	if err != nil {
		return nil, nil, err
	}
	if len(entities) == 0 {
		return engine, nil, nil
	}
	entries := make([]ner.Entry, len(entities))
	for i, e := range entities {
		entries[i] = ner.Entry{Label: e.Label, Aliases: e.Aliases, Type: e.Type}
	}
	annotator, err := ner.New(entries)
	if err != nil {
		return nil, nil, err
	}
	return engine, annotator, nil
}
