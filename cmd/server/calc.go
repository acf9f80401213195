package main

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/rangecraft/fenceworks/internal/fence"
)

type calculateResponse struct {
	Items        []fence.LineItem `json:"items"`
	GrandTotal   float64          `json:"grandTotal"`
	CalculatedAt time.Time        `json:"calculatedAt"`
	Warnings     []string         `json:"warnings,omitempty"`
}

// handleCalculate accepts the calculator form fields, normalizes them, and
// returns the materials bill. Rows with zero quantity are dropped from the
// response; input coercions and catalog misses come back as warnings.
func (s *server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form")
		return
	}

	raw := make(fence.RawInputs, len(r.PostForm))
	for field, values := range r.PostForm {
		if len(values) > 0 {
			raw[field] = values[0]
		}
	}

	inputs, warnings := fence.Normalize(raw)
	estimate := fence.Calculate(inputs, s.catalog)

	allWarnings := append(warnings, estimate.Warnings...)
	for _, warning := range allWarnings {
		log.Printf("calculate: %s", warning)
	}

	respondJSON(w, http.StatusOK, calculateResponse{
		Items:        estimate.VisibleItems(),
		GrandTotal:   estimate.GrandTotal,
		CalculatedAt: estimate.CalculatedAt,
		Warnings:     allWarnings,
	})
}

type laborRequest struct {
	MaterialsTotal float64             `json:"materialsTotal"`
	Job            fence.JobAttributes `json:"job"`
}

func (s *server) handleLabor(w http.ResponseWriter, r *http.Request) {
	var req laborRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.MaterialsTotal < 0 {
		respondError(w, http.StatusBadRequest, "materialsTotal must be >= 0")
		return
	}

	respondJSON(w, http.StatusOK, fence.ComputeLabor(req.MaterialsTotal, req.Job))
}
