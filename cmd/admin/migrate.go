package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"geometa/internal/db"
)

var resetTables bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		gormDB, err := db.NewMySQL(cfg.MySQLDSN)
		if err != nil {
			return err
		}
		if err := db.Migrate(gormDB, resetTables || cfg.ResetDB); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Database initialized successfully.")
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&resetTables, "reset", false, "drop existing tables first")
}
