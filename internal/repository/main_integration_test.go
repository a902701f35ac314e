//go:build integration

package repository

import (
	"context"
	"log"
	"os"
	"testing"

	"cashflow-api/internal/database"
	"cashflow-api/internal/testutil"
)

var testDB *database.DB

func TestMain(m *testing.M) {
	ctx := context.Background()

	pgContainer, err := testutil.NewPostgresContainer(ctx)
	if err != nil {
		log.Fatalf("start postgres: %v", err)
	}

	testDB, err = database.New(ctx, pgContainer.ConnectionString, 5, 1)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}

	if err := testDB.Migrate(); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	code := m.Run()

	testDB.Close()
	if err := pgContainer.Terminate(ctx); err != nil {
		log.Printf("terminate postgres: %v", err)
	}
	os.Exit(code)
}
