// cmd/addadmin/main.go
// Creates or updates an admin account in the database.
//
// Usage:
//
//	go run ./cmd/addadmin -email admin@frebo-media.com -password secret
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/frebomedia/freboapi/config"
	bundb "github.com/frebomedia/freboapi/db"
	"github.com/frebomedia/freboapi/models"
)

func main() {
	email := flag.String("email", "", "admin email (required)")
	password := flag.String("password", "", "plain-text password (required)")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("bcrypt:", err)
	}

	cfg := config.Load()
	db := bundb.Setup(cfg)
	defer db.Close()

	if err := bundb.CreateTables(context.Background(), db); err != nil {
		log.Fatal("create tables:", err)
	}

	user := &models.User{
		Email:    strings.ToLower(strings.TrimSpace(*email)),
		Password: string(hash),
	}

	_, err = db.NewInsert().Model(user).
		On("CONFLICT (email) DO UPDATE SET password = EXCLUDED.password").
		Exec(context.Background())
	if err != nil {
		log.Fatal("insert user:", err)
	}

	fmt.Printf("admin %q saved\n", user.Email)
}
