// Package webapi exposes reflex prediction over HTTP.
package webapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/gcelano/ST2022/align"
	"github.com/gcelano/ST2022/cognate"
	"github.com/gcelano/ST2022/reflex"
)

// Server serves a fitted predictor and its cognate table.
type Server struct {
	table     *cognate.Table
	predictor *reflex.Predictor
}

// NewServer wraps a table and a fitted predictor.
func NewServer(table *cognate.Table, predictor *reflex.Predictor) *Server {
	return &Server{table: table, predictor: predictor}
}

// Router builds the HTTP handler, CORS included.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/api/languages", s.handleLanguages).Methods(http.MethodGet)
	r.HandleFunc("/api/cognates/{id}", s.handleCognate).Methods(http.MethodGet)
	r.HandleFunc("/api/cognates/{id}/{language}", s.handlePredictCell).Methods(http.MethodGet)
	r.HandleFunc("/api/predict", s.handlePredict).Methods(http.MethodPost)
	return cors.Default().Handler(r)
}

type errorResponse struct {
	Error string `json:"error"`
}

type languagesResponse struct {
	Languages []string `json:"languages"`
}

type cognateResponse struct {
	ID    string              `json:"id"`
	Forms map[string][]string `json:"forms"`
}

type predictRequest struct {
	Target string              `json:"target"`
	Forms  map[string][]string `json:"forms"`
}

type predictResponse struct {
	ID     string   `json:"id,omitempty"`
	Target string   `json:"target"`
	Form   []string `json:"form"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// predictStatus maps predictor errors onto HTTP status codes.
func predictStatus(err error) int {
	switch {
	case errors.Is(err, reflex.ErrUnknownCognate),
		errors.Is(err, reflex.ErrUnknownLanguage):
		return http.StatusNotFound
	case errors.Is(err, reflex.ErrNoDonorForms),
		errors.Is(err, reflex.ErrDimensionMismatch),
		errors.Is(err, align.ErrEmptySequence):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, languagesResponse{Languages: s.predictor.Languages()})
}

func (s *Server) handleCognate(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !s.table.Has(id) {
		writeError(w, http.StatusNotFound, "unknown cognate set")
		return
	}
	forms := make(map[string][]string)
	for _, lang := range s.table.Languages {
		if form, ok := s.table.Form(id, lang); ok {
			forms[lang] = form
		}
	}
	writeJSON(w, http.StatusOK, cognateResponse{ID: id, Forms: forms})
}

func (s *Server) handlePredictCell(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, language := vars["id"], vars["language"]
	form, err := s.predictor.Predict(id, language)
	if err != nil {
		writeError(w, predictStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, predictResponse{ID: id, Target: language, Form: form})
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	var req predictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request body: "+err.Error())
		return
	}
	if req.Target == "" {
		writeError(w, http.StatusBadRequest, "missing target language")
		return
	}
	languages := make([]string, 0, len(req.Forms))
	forms := make([][]string, 0, len(req.Forms))
	for _, lang := range s.predictor.Languages() {
		if form, ok := req.Forms[lang]; ok {
			languages = append(languages, lang)
			forms = append(forms, form)
		}
	}
	form, err := s.predictor.PredictForms(languages, forms, req.Target)
	if err != nil {
		writeError(w, predictStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, predictResponse{Target: req.Target, Form: form})
}
