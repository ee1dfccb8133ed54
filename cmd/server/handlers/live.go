package handlers

import (
	"net/http"

	"github.com/hairizuanbinnoorazman/coffee-shop/health"
)

// LivenessHandler reports that the process is running. It registers no checks.
func LivenessHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, health.NewReport())
}
