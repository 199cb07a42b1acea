package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kittclouds/postag/internal/store"
)

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write the database contents as JSON to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireDB(); err != nil {
				return err
			}
			s, err := store.NewSQLiteStoreWithDSN(dbPath)
			if err != nil {
				return err
			}
			defer s.Close()

			data, err := s.Export()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(append(data, '\n'))
			return err
		},
	}
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [file.json]",
		Short: "Replace the database contents from a JSON export",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireDB(); err != nil {
				return err
			}

			var raw []byte
			var err error
			if len(args) == 1 {
				raw, err = os.ReadFile(args[0])
			} else {
				raw, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}

			s, err := store.NewSQLiteStoreWithDSN(dbPath)
			if err != nil {
				return err
			}
			defer s.Close()
			if err := s.Import(raw); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "import complete")
			return nil
		},
	}
}
