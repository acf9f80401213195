package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rangecraft/fenceworks/internal/fence"
)

type quoteCreateRequest struct {
	CustomerID string                `json:"customerId"`
	Title      string                `json:"title"`
	Notes      string                `json:"notes"`
	Inputs     fence.RawInputs       `json:"inputs"`
	Estimate   fence.Estimate        `json:"estimate"`
	Labor      *fence.LaborBreakdown `json:"labor,omitempty"`
}

type quoteTotals struct {
	Total       float64 `json:"total"`
	TotalCost5  float64 `json:"totalCost5,omitempty"`
	TotalCost12 float64 `json:"totalCost12,omitempty"`
	TotalCost20 float64 `json:"totalCost20,omitempty"`
}

func (s *server) handleQuoteCreate(w http.ResponseWriter, r *http.Request) {
	var req quoteCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if len(req.Estimate.Items) == 0 {
		respondError(w, http.StatusBadRequest, "estimate is required")
		return
	}

	id, createdAt, err := s.saveQuote(req)
	if err != nil {
		// The estimate the caller holds is still good; saving is the only
		// thing that failed, and it is not retried here.
		respondError(w, http.StatusInternalServerError, "failed to save quote")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{
		"id":        id,
		"createdAt": createdAt,
	})
}

func (s *server) saveQuote(req quoteCreateRequest) (string, string, error) {
	inputsJSON, err := json.Marshal(req.Inputs)
	if err != nil {
		return "", "", fmt.Errorf("marshal quote inputs: %w", err)
	}
	itemsJSON, err := json.Marshal(req.Estimate.Items)
	if err != nil {
		return "", "", fmt.Errorf("marshal quote items: %w", err)
	}

	totals := quoteTotals{Total: req.Estimate.GrandTotal}
	if req.Labor != nil {
		totals.TotalCost5 = req.Labor.TotalCost5
		totals.TotalCost12 = req.Labor.TotalCost12
		totals.TotalCost20 = req.Labor.TotalCost20
	}
	totalsJSON, err := json.Marshal(totals)
	if err != nil {
		return "", "", fmt.Errorf("marshal quote totals: %w", err)
	}

	var laborJSON any
	if req.Labor != nil {
		encoded, err := json.Marshal(req.Labor)
		if err != nil {
			return "", "", fmt.Errorf("marshal quote labor: %w", err)
		}
		laborJSON = string(encoded)
	}

	var customerID any
	if req.CustomerID != "" {
		customerID = req.CustomerID
	}

	id := uuid.NewString()
	createdAt := time.Now().UTC().Format(time.RFC3339)
	_, err = s.db.Exec(`
		INSERT INTO quotes (id, customer_id, created_at, title, notes, inputs_json, items_json, totals_json, labor_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, customerID, createdAt, req.Title, req.Notes, string(inputsJSON), string(itemsJSON), string(totalsJSON), laborJSON)
	if err != nil {
		return "", "", fmt.Errorf("insert quote: %w", err)
	}

	return id, createdAt, nil
}

type quoteListItem struct {
	ID         string  `json:"id"`
	CustomerID string  `json:"customerId,omitempty"`
	CreatedAt  string  `json:"createdAt"`
	Title      string  `json:"title"`
	Total      float64 `json:"total"`
}

func (s *server) handleQuotesList(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	quotes, err := s.listQuotes(query)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load quotes")
		return
	}

	respondJSON(w, http.StatusOK, quotes)
}

func (s *server) listQuotes(query string) ([]quoteListItem, error) {
	search := "%" + query + "%"
	rows, err := s.db.Query(`
		SELECT
			id,
			COALESCE(customer_id, ''),
			created_at,
			COALESCE(title, ''),
			totals_json
		FROM quotes
		WHERE (? = '' OR COALESCE(title, '') LIKE ? OR COALESCE(notes, '') LIKE ?)
		ORDER BY datetime(created_at) DESC, id DESC
	`, query, search, search)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	quotes := make([]quoteListItem, 0)
	for rows.Next() {
		var item quoteListItem
		var totalsJSON string
		if err := rows.Scan(&item.ID, &item.CustomerID, &item.CreatedAt, &item.Title, &totalsJSON); err != nil {
			return nil, err
		}
		item.Total = extractTotalFromJSON(totalsJSON)
		quotes = append(quotes, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return quotes, nil
}

func extractTotalFromJSON(totalsJSON string) float64 {
	var values map[string]float64
	if err := json.Unmarshal([]byte(totalsJSON), &values); err != nil {
		return 0
	}

	for _, key := range []string{"total", "grand_total", "final_total"} {
		if total, ok := values[key]; ok {
			return total
		}
	}

	return 0
}
