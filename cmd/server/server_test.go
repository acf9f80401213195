package main

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/rangecraft/fenceworks/internal/catalog"
)

func newTestServer(t *testing.T) *server {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`
		CREATE TABLE users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE TABLE customers (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE TABLE access_tokens (
			token TEXT PRIMARY KEY,
			customer_id TEXT NOT NULL REFERENCES customers(id),
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			expires_at DATETIME NOT NULL,
			last_used_at DATETIME
		);
		CREATE TABLE quotes (
			id TEXT PRIMARY KEY,
			customer_id TEXT REFERENCES customers(id),
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			title TEXT,
			notes TEXT,
			inputs_json TEXT NOT NULL,
			items_json TEXT NOT NULL,
			totals_json TEXT NOT NULL,
			labor_json TEXT
		);
	`)
	if err != nil {
		t.Fatalf("failed creating schema: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})

	return &server{
		auth:    newAuthService(db, "test-session-secret"),
		db:      db,
		catalog: catalog.Default(),
	}
}

func seedCustomer(t *testing.T, db *sql.DB, name, email string) string {
	t.Helper()

	id := uuid.NewString()
	_, err := db.Exec(`
		INSERT INTO customers (id, name, email, phone)
		VALUES (?, ?, ?, '')
	`, id, name, email)
	if err != nil {
		t.Fatalf("failed to seed customer: %v", err)
	}
	return id
}
