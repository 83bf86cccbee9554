package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"geometa/internal/service"
)

var createAdminCmd = &cobra.Command{
	Use:   "create-admin USERNAME EMAIL PASSWORD",
	Short: "Create an admin user and print its API key",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		gormDB, err := openDB()
		if err != nil {
			return err
		}
		_, key, err := newServices(gormDB).users.RegisterAdmin(cmd.Context(), service.Registration{
			Username:  args[0],
			Email:     args[1],
			Password:  args[2],
			FirstName: "Admin",
			LastName:  "User",
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Admin created. API key: %s\n", key)
		return nil
	},
}
