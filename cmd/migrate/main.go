// Command migrate applies goose SQL migrations from the migrations/
// directory.
//
// Flags:
//
//	--dir      migrations directory (default: migrations)
//	--command  up | down | status (default: up)
package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/kvolkov/gymtrack-backend/internal/config"
)

func main() {
	dirFlag := flag.String("dir", "migrations", "migrations directory")
	commandFlag := flag.String("command", "up", "up | down | status")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, os.DirFS(*dirFlag))
	if err != nil {
		log.Fatalf("goose provider: %v", err)
	}

	ctx := context.Background()
	switch *commandFlag {
	case "up":
		results, err := provider.Up(ctx)
		if err != nil {
			log.Fatalf("goose up: %v", err)
		}
		for _, r := range results {
			log.Printf("applied %s", r.Source.Path)
		}
	case "down":
		result, err := provider.Down(ctx)
		if err != nil {
			log.Fatalf("goose down: %v", err)
		}
		log.Printf("rolled back %s", result.Source.Path)
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			log.Fatalf("goose status: %v", err)
		}
		for _, s := range statuses {
			state := "pending"
			if !s.AppliedAt.IsZero() {
				state = "applied"
			}
			log.Printf("%-10s %s", state, s.Source.Path)
		}
	default:
		log.Fatalf("unknown command %q", *commandFlag)
	}
}
