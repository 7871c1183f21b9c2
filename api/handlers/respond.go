package apihandlers

import (
	"encoding/json"
	"net/http"

	apistructs "github.com/mulligan-crew/golftrip/api/structs"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, apistructs.ErrorResponse{Error: msg})
}
