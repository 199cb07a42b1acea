// Command postag tags English text with Penn Treebank part-of-speech tags
// and lemmas. A SQLite database given with --db layers custom lexicon
// entries, lemma overrides and a gazetteer of entities over the bundled
// data.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

func main() {
	root := &cobra.Command{
		Use:           "postag",
		Short:         "Deterministic English part-of-speech tagger and lemmatizer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dbPath, "db", "",
		"SQLite database with custom lexicon, lemma and entity data")

	root.AddCommand(
		newTagCmd(),
		newLexiconCmd(),
		newEntityCmd(),
		newExportCmd(),
		newImportCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func requireDB() error {
	if dbPath == "" {
		return fmt.Errorf("this command needs a database, pass --db")
	}
	return nil
}
