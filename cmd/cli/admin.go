package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/mauv0809/courtside/internal/auth"
	"github.com/mauv0809/courtside/internal/database"
	"github.com/spf13/cobra"
)

var (
	dbName       string
	userPassword string
	userRole     string
)

func init() {
	// Local commands read the same .env as the server.
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, reading from environment variables")
	}

	for _, cmd := range []*cobra.Command{migrateCmd, createUserCmd} {
		cmd.Flags().StringVar(&dbName, "db", os.Getenv("DB_NAME"), "SQLite database path (defaults to $DB_NAME); ignored when TURSO_PRIMARY_URL is set")
		rootCmd.AddCommand(cmd)
	}
	createUserCmd.Flags().StringVarP(&userPassword, "password", "p", "", "Password for the new account")
	createUserCmd.Flags().StringVar(&userRole, "role", string(auth.RoleViewer), "Role of the new account (admin or viewer)")
	createUserCmd.MarkFlagRequired("password")
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, dialect, err := database.Open(dbName, os.Getenv("TURSO_PRIMARY_URL"), os.Getenv("TURSO_AUTH_TOKEN"))
		if err != nil {
			return err
		}
		defer db.Close()

		version, err := database.Migrate(cmd.Context(), db, dialect)
		if err != nil {
			return err
		}
		fmt.Printf("Database is at version %d\n", version)
		return nil
	},
}

var createUserCmd = &cobra.Command{
	Use:   "create-user <username>",
	Short: "Create an API account directly in the database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, teardown, err := database.InitDB(dbName, os.Getenv("TURSO_PRIMARY_URL"), os.Getenv("TURSO_AUTH_TOKEN"))
		if err != nil {
			return err
		}
		defer teardown()

		u, err := auth.New(db).CreateUser(cmd.Context(), args[0], userPassword, auth.Role(userRole))
		if err != nil {
			return err
		}
		fmt.Printf("Created %s user %q (id %d)\n", u.Role, u.Username, u.ID)
		return nil
	},
}
