package server

import (
	"encoding/json"
	"net/http"
	"time"

	"surd/internal/ctxlog"
	"surd/internal/db"
	"surd/internal/surd"
)

const maxBodyBytes = 64 << 10

type encodeRequest struct {
	Message string `json:"message"`
}

type pairResponse struct {
	F1 string `json:"f1"`
	F2 int    `json:"f2"`
}

type decodeRequest struct {
	F1 string `json:"f1"`
	F2 int    `json:"f2"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type recordResponse struct {
	ID   string    `json:"id"`
	F1   string    `json:"f1"`
	F2   int       `json:"f2"`
	Time time.Time `json:"time"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log := ctxlog.Get(r.Context())
		log.Error("failed to write response", "error", err)
	}
}

func readJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
	if err != nil {
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return false
	}
	return true
}

func encodeHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req encodeRequest
		if !readJSON(w, r, &req) {
			return
		}

		f1, f2, err := surd.Encode(req.Message)
		if err != nil {
			writeJSON(w, r, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
			return
		}

		rec := db.Record{F1: f1.String(), F2: f2, Time: time.Now().UTC()}
		if err := db.Add(rec); err != nil {
			log := ctxlog.Get(r.Context())
			log.Error("failed to journal encode", "error", err)
		}

		writeJSON(w, r, http.StatusOK, pairResponse{F1: rec.F1, F2: rec.F2})
	})
}

func decodeHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req decodeRequest
		if !readJSON(w, r, &req) {
			return
		}

		f1, err := surd.ParseDecimal(req.F1)
		if err != nil {
			writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		message, err := surd.Decode(f1, req.F2)
		if err != nil {
			writeJSON(w, r, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
			return
		}

		writeJSON(w, r, http.StatusOK, messageResponse{Message: message})
	})
}

func recordsHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		records := []recordResponse{}
		for id, rec := range db.All() {
			records = append(records, recordResponse{
				ID:   id,
				F1:   rec.F1,
				F2:   rec.F2,
				Time: rec.Time,
			})
		}

		writeJSON(w, r, http.StatusOK, records)
	})
}

func notFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusNotFound, errorResponse{Error: "not found"})
	})
}
