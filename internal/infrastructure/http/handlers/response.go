package handlers

import (
	"encoding/json"
	"net/http"
)

// MsgInternalError is the opaque 500 body; the real error is only logged.
const MsgInternalError = "Une erreur interne est survenue"

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeDetail sends the auth-flow envelope {"detail": message}.
func writeDetail(w http.ResponseWriter, code int, detail string) {
	writeJSON(w, code, map[string]string{"detail": detail})
}

// writeFieldErrors sends the validation envelope {"field": ["msg", ...]}.
func writeFieldErrors(w http.ResponseWriter, fields map[string][]string) {
	writeJSON(w, http.StatusBadRequest, fields)
}

func writeInternal(w http.ResponseWriter) {
	writeDetail(w, http.StatusInternalServerError, MsgInternalError)
}
