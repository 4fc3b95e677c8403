package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"innkeeper/internal/record"
	"innkeeper/internal/tenant"
)

// InitCmd applies the record store schema migrations.
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the record store schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}

			if err := record.NewMigrator(store.DB()).Up(); err != nil {
				return fmt.Errorf("failed to migrate record store: %w", err)
			}

			types := make([]string, 0, len(tenant.RecordTypeRegistry))
			for name := range tenant.RecordTypeRegistry {
				types = append(types, name)
			}
			sort.Strings(types)

			fmt.Println("Record store initialized")
			for _, name := range types {
				fmt.Printf("  registered record type: %s\n", name)
			}
			return nil
		},
	}
}
