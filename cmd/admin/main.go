// Command admin manages the GeoMeta database from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"geometa/internal/config"
	"geometa/internal/db"
	"geometa/internal/logging"
	"geometa/internal/repository"
	"geometa/internal/service"
)

var rootCmd = &cobra.Command{
	Use:   "geometa-admin",
	Short: "Administrative tasks for the GeoMeta API",
	Long: `Creates the schema, loads sample data and provisions admin users.

Connection settings come from the same environment variables (or .env
file) as the server.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		logging.Init(logging.Config{Level: cfg.LogLevel, Format: "console"})
	},
}

var cfg *config.Config

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(populateCmd)
	rootCmd.AddCommand(createAdminCmd)
}

func openDB() (*gorm.DB, error) {
	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(gormDB, false); err != nil {
		return nil, err
	}
	return gormDB, nil
}

type services struct {
	users     service.UserService
	insights  service.InsightService
	feedbacks service.FeedbackService
}

// newServices builds services without a cache; the server's cached
// representations expire on their TTL.
func newServices(gormDB *gorm.DB) services {
	userRepo := repository.NewUserRepository(gormDB)
	insightRepo := repository.NewInsightRepository(gormDB)
	feedbackRepo := repository.NewFeedbackRepository(gormDB)
	return services{
		users:     service.NewUserService(userRepo, insightRepo, feedbackRepo, nil, cfg.BcryptCost),
		insights:  service.NewInsightService(insightRepo, feedbackRepo, nil),
		feedbacks: service.NewFeedbackService(feedbackRepo, nil),
	}
}
