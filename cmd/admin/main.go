// Command admin manages user accounts directly against the database.
//
// Usage:
//
//	admin users create -username NAME -email EMAIL -password PASSWORD
//	admin users list [-limit N]
//	admin users update -current-email EMAIL -username NAME -email EMAIL -password PASSWORD
//	admin users delete -id ID
//
// Connection settings are read from the environment (STORAGE_DB_DATABASE_URI
// and the rest of the server's configuration variables).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/go-budget-keeper/internal/config"
	"github.com/MKhiriev/go-budget-keeper/internal/crypto"
	"github.com/MKhiriev/go-budget-keeper/internal/logger"
	"github.com/MKhiriev/go-budget-keeper/internal/service"
	"github.com/MKhiriev/go-budget-keeper/internal/store"
	"github.com/MKhiriev/go-budget-keeper/models"
)

func main() {
	if len(os.Args) < 3 || os.Args[1] != "users" {
		usage()
		os.Exit(2)
	}

	log := logger.NewLogger("go-budget-admin")
	cfg, err := config.GetEnvConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()
	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer func() { _ = db.Close() }()

	storages := store.NewStorages(db, log)
	auth := service.NewAuthService(storages.UserRepository, crypto.NewPasswordHasher(), cfg.Auth, log)

	switch os.Args[2] {
	case "create":
		err = createUser(ctx, auth, os.Args[3:])
	case "list":
		err = listUsers(ctx, storages.UserRepository, os.Args[3:])
	case "update":
		err = updateUser(ctx, auth, storages.UserRepository, os.Args[3:])
	case "delete":
		err = deleteUser(ctx, storages.UserRepository, os.Args[3:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func createUser(ctx context.Context, auth service.AuthService, args []string) error {
	fs := flag.NewFlagSet("users create", flag.ExitOnError)
	username := fs.String("username", "", "username of the new user")
	email := fs.String("email", "", "email of the new user")
	password := fs.String("password", "", "password for the new user")
	if err := fs.Parse(args); err != nil {
		return err
	}

	created, err := auth.RegisterUser(ctx, models.User{
		Username: *username,
		Email:    *email,
		Password: *password,
	})
	if err != nil {
		return fmt.Errorf("error creating user: %w", err)
	}

	fmt.Printf("User created successfully: id=%d username=%s email=%s\n", created.ID, created.Username, created.Email)
	return nil
}

func listUsers(ctx context.Context, users store.UserRepository, args []string) error {
	fs := flag.NewFlagSet("users list", flag.ExitOnError)
	limit := fs.Uint64("limit", 100, "maximum number of users to print")
	if err := fs.Parse(args); err != nil {
		return err
	}

	found, err := users.FindUsers(ctx, *limit)
	if err != nil {
		return fmt.Errorf("error fetching users: %w", err)
	}

	for _, user := range found {
		fmt.Printf("id=%d username=%s email=%s\n", user.ID, user.Username, user.Email)
	}
	return nil
}

func updateUser(ctx context.Context, auth service.AuthService, users store.UserRepository, args []string) error {
	fs := flag.NewFlagSet("users update", flag.ExitOnError)
	currentEmail := fs.String("current-email", "", "email of the user to update")
	username := fs.String("username", "", "new username")
	email := fs.String("email", "", "new email")
	password := fs.String("password", "", "new password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	existing, err := users.FindUserByEmail(ctx, *currentEmail)
	if err != nil {
		return fmt.Errorf("error finding user %q: %w", *currentEmail, err)
	}

	updated, err := auth.UpdateUser(ctx, models.User{
		ID:       existing.ID,
		Username: *username,
		Email:    *email,
		Password: *password,
	})
	if err != nil {
		return fmt.Errorf("error updating user: %w", err)
	}

	fmt.Printf("User updated successfully: id=%d username=%s email=%s\n", updated.ID, updated.Username, updated.Email)
	return nil
}

func deleteUser(ctx context.Context, users store.UserRepository, args []string) error {
	fs := flag.NewFlagSet("users delete", flag.ExitOnError)
	id := fs.Int64("id", 0, "id of the user to delete")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if _, err := users.DeleteUser(ctx, *id); err != nil {
		return fmt.Errorf("error deleting user %d: %w", *id, err)
	}

	fmt.Printf("User %d deleted successfully.\n", *id)
	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  admin users create -username NAME -email EMAIL -password PASSWORD")
	fmt.Fprintln(os.Stderr, "  admin users list [-limit N]")
	fmt.Fprintln(os.Stderr, "  admin users update -current-email EMAIL -username NAME -email EMAIL -password PASSWORD")
	fmt.Fprintln(os.Stderr, "  admin users delete -id ID")
}
