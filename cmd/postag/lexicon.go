package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kittclouds/postag/internal/store"
	"github.com/kittclouds/postag/pkg/tagger"
)

// lexiconFile is the YAML layout for lexicon imports:
//
//	lexicon:
//	  sing: [VB, VBP]
//	lemmas:
//	  - normal: sang
//	    pos: VBD
//	    lemma: sing
type lexiconFile struct {
	Lexicon map[string][]string `yaml:"lexicon"`
	Lemmas  []store.LemmaEntry  `yaml:"lemmas"`
}

func newLexiconCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lexicon",
		Short: "Manage custom lexicon entries and lemma overrides",
	}
	cmd.AddCommand(newLexiconImportCmd())
	return cmd
}

func newLexiconImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Load lexicon entries and lemma overrides from a YAML file into the database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireDB(); err != nil {
				return err
			}

			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var file lexiconFile
			if err := yaml.Unmarshal(raw, &file); err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}

			// Run the entries through the engine's validation before
			// anything touches the database.
			if len(file.Lexicon) > 0 {
				if err := tagger.New().UpdateLexicon(file.Lexicon); err != nil {
					return err
				}
			}

			s, err := store.NewSQLiteStoreWithDSN(dbPath)
			if err != nil {
				return err
			}
			defer s.Close()

			if len(file.Lexicon) > 0 {
				if err := s.UpsertLexicon(file.Lexicon); err != nil {
					return err
				}
			}
			for _, l := range file.Lemmas {
				if l.Normal == "" || l.Pos == "" || l.Lemma == "" {
					return fmt.Errorf("incomplete lemma entry %+v", l)
				}
				if err := s.UpsertLemma(l); err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "imported %d lexicon entries, %d lemmas\n",
				len(file.Lexicon), len(file.Lemmas))
			return nil
		},
	}
}
