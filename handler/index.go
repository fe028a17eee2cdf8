package handler

import (
	"encoding/json"
	"net/http"
)

// Handler answers the deployment root with a service banner.
func Handler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	response := map[string]interface{}{
		"status":  "ok",
		"message": "Storefront API",
		"path":    r.URL.Path,
		"docs":    "/swagger/index.html",
	}

	json.NewEncoder(w).Encode(response)
}
