package handlers

import (
	"encoding/json"
	"net/http"
)

func WriteResponse(w http.ResponseWriter, statusCode int, response interface{}) {

	w.Header().Set("Content-Type", "application/json")

	// Posts are fetched fresh on every request
	w.Header().Set("Cache-Control", "max-age=0")

	w.WriteHeader(statusCode)

	if response != nil {
		if err := json.NewEncoder(w).Encode(response); err != nil {
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
			return
		}
	}
}

// wantsJSON reports whether the client asked for the JSON rendition of a view.
func wantsJSON(r *http.Request) bool {
	if r.URL.Query().Get("format") == "json" {
		return true
	}
	return r.Header.Get("Accept") == "application/json"
}
