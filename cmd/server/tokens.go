package main

import (
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

// tokenTTL is how long a customer access token stays valid after issue.
const tokenTTL = 7 * 24 * time.Hour

var (
	errTokenUnknown = errors.New("access token unknown")
	errTokenExpired = errors.New("access token expired")
)

type accessToken struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func (s *server) issueToken(customerID string) (accessToken, error) {
	token, err := generateToken()
	if err != nil {
		return accessToken{}, err
	}

	now := time.Now().UTC()
	expiresAt := now.Add(tokenTTL)
	_, err = s.db.Exec(`
		INSERT INTO access_tokens (token, customer_id, created_at, expires_at)
		VALUES (?, ?, ?, ?)
	`, token, customerID, now.Format(time.RFC3339), expiresAt.Format(time.RFC3339))
	if err != nil {
		return accessToken{}, fmt.Errorf("insert access token: %w", err)
	}

	return accessToken{Token: token, ExpiresAt: expiresAt}, nil
}

// customerForToken resolves a token to its customer. Unknown and expired
// tokens both leave the caller without a customer context; expired rows are
// kept so the distinction still shows in the database.
func (s *server) customerForToken(token string) (customer, time.Time, error) {
	var c customer
	var expiresRaw string
	err := s.db.QueryRow(`
		SELECT c.id, c.name, c.email, c.phone, t.expires_at
		FROM access_tokens t
		JOIN customers c ON c.id = t.customer_id
		WHERE t.token = ?
	`, token).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &expiresRaw)
	if errors.Is(err, sql.ErrNoRows) {
		return customer{}, time.Time{}, errTokenUnknown
	}
	if err != nil {
		return customer{}, time.Time{}, fmt.Errorf("query access token: %w", err)
	}

	expiresAt, err := time.Parse(time.RFC3339, expiresRaw)
	if err != nil {
		return customer{}, time.Time{}, fmt.Errorf("parse token expiry %q: %w", expiresRaw, err)
	}
	if time.Now().UTC().After(expiresAt) {
		return customer{}, time.Time{}, errTokenExpired
	}

	if _, err := s.db.Exec(`
		UPDATE access_tokens SET last_used_at = ? WHERE token = ?
	`, time.Now().UTC().Format(time.RFC3339), token); err != nil {
		return customer{}, time.Time{}, fmt.Errorf("touch access token: %w", err)
	}

	return c, expiresAt, nil
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return strings.TrimSpace(r.URL.Query().Get("token"))
}

type validateTokenResponse struct {
	Valid     bool       `json:"valid"`
	Customer  *customer  `json:"customer,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

func (s *server) handleValidateToken(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimSpace(r.URL.Query().Get("token"))
	if token == "" {
		respondError(w, http.StatusBadRequest, "token is required")
		return
	}

	c, expiresAt, err := s.customerForToken(token)
	if errors.Is(err, errTokenUnknown) || errors.Is(err, errTokenExpired) {
		respondJSON(w, http.StatusOK, validateTokenResponse{Valid: false})
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to validate token")
		return
	}

	respondJSON(w, http.StatusOK, validateTokenResponse{
		Valid:     true,
		Customer:  &c,
		ExpiresAt: &expiresAt,
	})
}

func (s *server) handleTokenIssue(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "id")

	var exists bool
	if err := s.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM customers WHERE id = ?)`, customerID).Scan(&exists); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}
	if !exists {
		respondError(w, http.StatusNotFound, "customer not found")
		return
	}

	token, err := s.issueToken(customerID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	respondJSON(w, http.StatusCreated, token)
}
