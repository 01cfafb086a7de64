package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/genobed/genobed/pkg/genome"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <assembly>",
	Short: "Remove an assembly's cache",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Work on the storage directly so a half-downloaded cache can
		// be deleted without loading it first.
		storage, err := genome.NewStorage(viper.GetString("cache-dir") + "/" + args[0])
		if err != nil {
			return err
		}
		if err := storage.RemoveAll(""); err != nil {
			return fmt.Errorf("deleting cache for %s: %w", args[0], err)
		}
		fmt.Printf("Deleted cache for %s\n", args[0])
		return nil
	},
}
