package main

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type customer struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	CreatedAt string `json:"createdAt"`
}

func (s *server) handleCustomerCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form")
		return
	}

	c := customer{
		ID:    uuid.NewString(),
		Name:  strings.TrimSpace(r.FormValue("name")),
		Email: strings.TrimSpace(r.FormValue("email")),
		Phone: strings.TrimSpace(r.FormValue("phone")),
	}
	if c.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	c.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(`
		INSERT INTO customers (id, name, email, phone, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, c.ID, c.Name, c.Email, c.Phone, c.CreatedAt)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create customer")
		return
	}

	respondJSON(w, http.StatusCreated, c)
}

func (s *server) handleCustomerGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	c, err := s.getCustomer(id)
	if errors.Is(err, sql.ErrNoRows) {
		respondError(w, http.StatusNotFound, "customer not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load customer")
		return
	}

	respondJSON(w, http.StatusOK, c)
}

func (s *server) handleCustomersList(w http.ResponseWriter, r *http.Request) {
	customers, err := s.listCustomers()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load customers")
		return
	}

	respondJSON(w, http.StatusOK, customers)
}

func (s *server) getCustomer(id string) (customer, error) {
	var c customer
	err := s.db.QueryRow(`
		SELECT id, name, email, phone, created_at
		FROM customers
		WHERE id = ?
	`, id).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt)
	if err != nil {
		return customer{}, err
	}
	return c, nil
}

func (s *server) listCustomers() ([]customer, error) {
	rows, err := s.db.Query(`
		SELECT id, name, email, phone, created_at
		FROM customers
		ORDER BY datetime(created_at) DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query customers: %w", err)
	}
	defer rows.Close()

	customers := make([]customer, 0)
	for rows.Next() {
		var c customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate customers: %w", err)
	}

	return customers, nil
}
