package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"geometa/internal/service"
)

var populateCmd = &cobra.Command{
	Use:   "populate",
	Short: "Load sample users, insights and feedback",
	RunE: func(cmd *cobra.Command, args []string) error {
		gormDB, err := openDB()
		if err != nil {
			return err
		}
		return populate(cmd.Context(), cmd, newServices(gormDB))
	},
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func populate(ctx context.Context, cmd *cobra.Command, svc services) error {
	admin, adminKey, err := svc.users.RegisterAdmin(ctx, service.Registration{
		Username:  "admin_test",
		Email:     "admin@example.com",
		Password:  "adminpass",
		FirstName: "Admin",
		LastName:  "User",
		Phone:     strPtr("1234567890"),
	})
	if err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	user, userKey, err := svc.users.Register(ctx, service.Registration{
		Username:  "user_test",
		Email:     "user@example.com",
		Password:  "userpass",
		FirstName: "Regular",
		LastName:  "User",
		Phone:     strPtr("9876543210"),
	})
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	if _, err := svc.insights.Create(ctx, user, service.InsightFields{
		Title:       "Coffee Shop",
		Description: strPtr("Great local coffee shop with free WiFi"),
		Longitude:   25.4667,
		Latitude:    65.0167,
		Category:    strPtr("Food & Drink"),
		Subcategory: strPtr("Cafe"),
		Address:     strPtr("123 Main St"),
	}); err != nil {
		return fmt.Errorf("create insight: %w", err)
	}

	park, err := svc.insights.Create(ctx, admin, service.InsightFields{
		Title:       "City Park",
		Description: strPtr("Beautiful park with walking trails"),
		Longitude:   25.4700,
		Latitude:    65.0200,
		Category:    strPtr("Recreation"),
		Subcategory: strPtr("Parks"),
		Address:     strPtr("456 Park Ave"),
	})
	if err != nil {
		return fmt.Errorf("create insight: %w", err)
	}

	if _, err := svc.feedbacks.Create(ctx, user, park, service.FeedbackFields{
		Rating:  intPtr(5),
		Comment: strPtr("This park is amazing! Perfect for picnics."),
	}); err != nil {
		return fmt.Errorf("create feedback: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Database populated with sample data.")
	fmt.Fprintf(cmd.OutOrStdout(), "Admin user: admin_test / adminpass, API key: %s\n", adminKey)
	fmt.Fprintf(cmd.OutOrStdout(), "Regular user: user_test / userpass, API key: %s\n", userKey)
	return nil
}
