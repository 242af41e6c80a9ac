package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it with statusCode and a
// "Content-Type: application/json" header.
//
// If marshaling fails, it responds with 500 Internal Server Error and returns
// a wrapped error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// DecodeJSON decodes at most limit bytes of body into v. Fields v does not
// declare are ignored.
func DecodeJSON(body io.Reader, v any, limit int64) error {
	decoder := json.NewDecoder(io.LimitReader(body, limit))
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("error decoding JSON body: %w", err)
	}

	return nil
}
