// package response carries the JSON envelope every handler writes with
package response

import (
	"encoding/json"
	"net/http"
)

// ErrorMessage is the error envelope returned to API clients. The status
// code is repeated in the body so clients logging responses keep it.
type ErrorMessage struct {
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

// WriteError writes an error envelope with its status code
func WriteError(w http.ResponseWriter, err ErrorMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.StatusCode)
	_ = json.NewEncoder(w).Encode(err)
}

// WriteSuccess writes a 200 response with a JSON body
func WriteSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(data)
}
