package main

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/rangecraft/fenceworks/internal/fence"
)

func TestListQuotesOrdersByDateDescAndReadsTotal(t *testing.T) {
	srv := newTestServer(t)

	seedQuote(t, srv.db, "2024-01-01 10:00:00", "First yard", "back run", `{"total": 100.50}`)
	seedQuote(t, srv.db, "2024-01-03 12:00:00", "Third yard", "corner lot", `{"total": 300.00}`)
	seedQuote(t, srv.db, "2024-01-02 11:00:00", "Second yard", "front run", `{"total": 200.25}`)

	quotes, err := srv.listQuotes("")
	if err != nil {
		t.Fatalf("listQuotes returned error: %v", err)
	}

	if len(quotes) != 3 {
		t.Fatalf("expected 3 quotes, got %d", len(quotes))
	}

	if quotes[0].Title != "Third yard" || quotes[1].Title != "Second yard" || quotes[2].Title != "First yard" {
		t.Fatalf("quotes are not sorted desc by created_at: %+v", quotes)
	}

	if quotes[0].Total != 300.00 || quotes[1].Total != 200.25 || quotes[2].Total != 100.50 {
		t.Fatalf("unexpected totals: %+v", quotes)
	}
}

func TestListQuotesFilterByTitleAndNotes(t *testing.T) {
	srv := newTestServer(t)

	seedQuote(t, srv.db, "2024-01-01 10:00:00", "Backyard privacy", "cedar pickets", `{"total": 80}`)
	seedQuote(t, srv.db, "2024-01-02 10:00:00", "Horse paddock", "repeat client", `{"total": 120}`)
	seedQuote(t, srv.db, "2024-01-03 10:00:00", "Pool enclosure", "privacy slats urgent", `{"total": 160}`)

	byTitle, err := srv.listQuotes("Paddock")
	if err != nil {
		t.Fatalf("listQuotes title filter returned error: %v", err)
	}
	if len(byTitle) != 1 || byTitle[0].Title != "Horse paddock" {
		t.Fatalf("expected 1 quote filtered by title, got %+v", byTitle)
	}

	byNotes, err := srv.listQuotes("privacy")
	if err != nil {
		t.Fatalf("listQuotes notes filter returned error: %v", err)
	}
	if len(byNotes) != 2 {
		t.Fatalf("expected 2 quotes filtered by notes/title, got %+v", byNotes)
	}
}

func TestSaveQuoteRoundTrip(t *testing.T) {
	srv := newTestServer(t)
	customerID := seedCustomer(t, srv.db, "Avery Holt", "avery@example.com")

	req := quoteCreateRequest{
		CustomerID: customerID,
		Title:      "Backyard privacy",
		Notes:      "100 ft, pine",
		Inputs:     fence.RawInputs{"totalLength": "100"},
		Estimate: fence.Estimate{
			Items:      []fence.LineItem{{Number: 1, Name: "Post", Quantity: 14, UnitCost: 11.40, TotalCost: 159.60}},
			GrandTotal: 1464.45,
		},
	}

	id, createdAt, err := srv.saveQuote(req)
	if err != nil {
		t.Fatalf("saveQuote: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("quote id is not a uuid: %q", id)
	}
	if createdAt == "" {
		t.Fatalf("createdAt not set")
	}

	quotes, err := srv.listQuotes("")
	if err != nil {
		t.Fatalf("listQuotes: %v", err)
	}
	if len(quotes) != 1 {
		t.Fatalf("expected 1 quote, got %d", len(quotes))
	}
	if quotes[0].ID != id || quotes[0].CustomerID != customerID {
		t.Fatalf("listed quote = %+v", quotes[0])
	}
	if quotes[0].Total != 1464.45 {
		t.Fatalf("listed total = %v, want 1464.45", quotes[0].Total)
	}
}

func TestHandleQuoteCreate(t *testing.T) {
	srv := newTestServer(t)

	body := `{
		"title": "Walk-in quote",
		"inputs": {"totalLength": "100"},
		"estimate": {
			"items": [{"number": 1, "name": "Post", "quantity": 14, "unitCost": 11.40, "totalCost": 159.60}],
			"grandTotal": 159.60
		}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/quotes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.handleQuoteCreate(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if _, err := uuid.Parse(resp["id"]); err != nil {
		t.Fatalf("response id is not a uuid: %q", resp["id"])
	}

	// customer_id stays NULL when the caller sends none.
	var customerID *string
	if err := srv.db.QueryRow(`SELECT customer_id FROM quotes WHERE id = ?`, resp["id"]).Scan(&customerID); err != nil {
		t.Fatalf("query saved quote: %v", err)
	}
	if customerID != nil {
		t.Fatalf("customer_id = %v, want NULL", *customerID)
	}
}

func TestHandleQuoteCreateRequiresEstimate(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/quotes", strings.NewReader(`{"title": "empty"}`))
	rec := httptest.NewRecorder()
	srv.handleQuoteCreate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func seedQuote(t *testing.T, db *sql.DB, createdAt, title, notes, totalsJSON string) {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO quotes (id, created_at, title, notes, inputs_json, items_json, totals_json)
		VALUES (?, ?, ?, ?, '{}', '[]', ?)
	`, uuid.NewString(), createdAt, title, notes, totalsJSON)
	if err != nil {
		t.Fatalf("failed to seed quote: %v", err)
	}
}
