package utils

import (
	"encoding/json"
	"net/http"
)

// WriteJSON writes payload as JSON with the given status code.
func WriteJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// ------------- Success responses -------------

// returns 200 OK with a {"message": ...} body
func ResponseMessage(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusOK, map[string]string{"message": message})
}

// returns 200 OK with an arbitrary payload
func ResponseOK(w http.ResponseWriter, payload any) {
	WriteJSON(w, http.StatusOK, payload)
}

// ------------- Error responses -------------

// ErrorBody is the error envelope returned by failing endpoints. Endpoints
// that report extra fields next to the error (e.g. bookedSeats on a seat
// conflict) write their payload with WriteJSON directly.
type ErrorBody struct {
	Error string `json:"error"`
}

func ResponseError(w http.ResponseWriter, code int, message string) {
	WriteJSON(w, code, ErrorBody{Error: message})
}

func ResponseBadRequest(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusBadRequest, message)
}

func ResponseUnauthorized(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusUnauthorized, message)
}

func ResponseForbidden(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusForbidden, message)
}

func ResponseNotFound(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusNotFound, message)
}

func ResponseInternalError(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusInternalServerError, message)
}
