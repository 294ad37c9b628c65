package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"userposts-api/internal/config"
	"userposts-api/internal/model"
)

func MigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the users and posts tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()

			db, err := getDB(cfg)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}

			if err := db.AutoMigrate(&model.User{}, &model.Post{}); err != nil {
				return fmt.Errorf("failed to migrate schema: %w", err)
			}

			fmt.Println("Schema migrated successfully")
			return nil
		},
	}
}
