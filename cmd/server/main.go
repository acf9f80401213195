package main

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rangecraft/fenceworks/internal/catalog"
	"github.com/rangecraft/fenceworks/internal/config"
	"github.com/rangecraft/fenceworks/internal/db"
	"github.com/rangecraft/fenceworks/internal/migrations"
	"github.com/rangecraft/fenceworks/internal/seed"
)

type server struct {
	auth    *authService
	db      *sql.DB
	catalog *catalog.Catalog
}

func main() {
	cfg := config.Load()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer database.Close()

	if cfg.IsDev() {
		if err := migrations.Up(database, "migrations"); err != nil {
			log.Fatalf("failed to run database migrations: %v", err)
		}
		stats, err := seed.Run(database, seed.Config{
			AdminEmail:    cfg.AdminEmail,
			AdminPassword: cfg.AdminPassword,
		})
		if err != nil {
			log.Fatalf("failed to run startup seed: %v", err)
		}
		log.Printf("startup seed done: %d inserts", stats.Inserts)
	}

	auth := newAuthService(database, cfg.SessionSecret)
	if err := auth.ensureAdminUser(cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("failed to ensure admin user: %v", err)
	}

	srv := &server{auth: auth, db: database, catalog: catalog.Default()}

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, srv.routes()); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()

	r.Post("/api/login", s.handleLogin)
	r.Post("/api/logout", s.handleLogout)
	r.Get("/api/validate-token", s.handleValidateToken)

	// Estimation and quote saving accept either an admin session or a
	// customer access token.
	r.Group(func(r chi.Router) {
		r.Use(s.requireAccess)
		r.Post("/api/calculate", s.handleCalculate)
		r.Post("/api/labor", s.handleLabor)
		r.Post("/api/quotes", s.handleQuoteCreate)
	})

	// Customer management and the quote list are admin-only.
	r.Group(func(r chi.Router) {
		r.Use(s.requireSession)
		r.Get("/api/quotes", s.handleQuotesList)
		r.Post("/api/customers", s.handleCustomerCreate)
		r.Get("/api/customers", s.handleCustomersList)
		r.Get("/api/customers/{id}", s.handleCustomerGet)
		r.Post("/api/customers/{id}/tokens", s.handleTokenIssue)
	})

	return r
}

func (s *server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !isAuthenticated(r, s.auth) {
			respondError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *server) requireAccess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isAuthenticated(r, s.auth) {
			next.ServeHTTP(w, r)
			return
		}

		token := bearerToken(r)
		if token == "" {
			respondError(w, http.StatusUnauthorized, "access token required")
			return
		}
		if _, _, err := s.customerForToken(token); err != nil {
			respondError(w, http.StatusUnauthorized, "invalid or expired access token")
			return
		}

		next.ServeHTTP(w, r)
	})
}

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}
