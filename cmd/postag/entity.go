package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kittclouds/postag/internal/store"
	"github.com/kittclouds/postag/pkg/normalize"
)

func newEntityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entity",
		Short: "Manage the gazetteer used for entity annotation",
	}
	cmd.AddCommand(newEntityAddCmd(), newEntityListCmd(), newEntityRemoveCmd())
	return cmd
}

func newEntityAddCmd() *cobra.Command {
	var id, entityType string
	var aliases []string

	cmd := &cobra.Command{
		Use:   "add <label>",
		Short: "Add or update a gazetteer entity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireDB(); err != nil {
				return err
			}
			label := args[0]
			if id == "" {
				id = normalize.Fold(label)
			}

			s, err := store.NewSQLiteStoreWithDSN(dbPath)
			if err != nil {
				return err
			}
			defer s.Close()

			now := time.Now().Unix()
			entity := &store.Entity{
				ID:        id,
				Label:     label,
				Aliases:   aliases,
				Type:      entityType,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if existing, err := s.GetEntity(id); err != nil {
				return err
			} else if existing != nil {
				entity.CreatedAt = existing.CreatedAt
			}
			if err := s.UpsertEntity(entity); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "stored entity %s\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "entity id (defaults to the folded label)")
	cmd.Flags().StringVar(&entityType, "type", "misc", "entity type stamped on matching tokens")
	cmd.Flags().StringArrayVar(&aliases, "alias", nil, "alias surface form (repeatable)")
	return cmd
}

func newEntityListCmd() *cobra.Command {
	var entityType string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List gazetteer entities as JSON",
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

			entities, err := s.ListEntities(entityType)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(entities)
		},
	}

	cmd.Flags().StringVar(&entityType, "type", "", "only list entities of this type")
	return cmd
}

func newEntityRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a gazetteer entity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireDB(); err != nil {
				return err
			}
			s, err := store.NewSQLiteStoreWithDSN(dbPath)
			if err != nil {
				return err
			}
			defer s.Close()
			return s.DeleteEntity(args[0])
		},
	}
}
