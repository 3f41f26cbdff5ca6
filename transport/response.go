package transport

import (
	"encoding/json"
	"net/http"

	"github.com/rewardslab/rewards-backend/utils/errors"
)

type errorBody struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeSuccess(w http.ResponseWriter, payload any) {
	writeJSON(w, http.StatusOK, payload)
}

func writeError(w http.ResponseWriter, err error) {
	if ce, ok := err.(errors.CustomError); ok {
		writeJSON(w, ce.ErrorHTTPCode(), errorBody{Code: ce.ErrorCode(), Message: ce.Error()})
		return
	}
	writeJSON(w, http.StatusInternalServerError, errorBody{Message: "internal server error"})
}
