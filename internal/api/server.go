package api

import (
	"Go2FlowDigest/internal/model"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
)

// Server exposes digest documents over HTTP.
type Server struct {
	store *Store
}

// NewServer creates a server backed by the given store.
func NewServer(store *Store) *Server {
	return &Server{store: store}
}

type listResponse struct {
	Digests []string `json:"digests"`
}

type flowResponse struct {
	Digest string            `json:"digest"`
	Flow   *model.FlowRecord `json:"flow"`
}

// Router builds the HTTP route table. The latest route must stay
// registered before the name route so "latest" is never read as a file
// name.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", s.handleHealth).Methods("GET")
	r.HandleFunc("/api/v1/digests", s.handleList).Methods("GET")
	r.HandleFunc("/api/v1/digests/latest", s.handleLatest).Methods("GET")
	r.HandleFunc("/api/v1/digests/{name}", s.handleGet).Methods("GET")
	r.HandleFunc("/api/v1/flows/{key}", s.handleFlow).Methods("GET")
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	names, err := s.store.List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, listResponse{Digests: names})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	doc, err := s.store.Load(mux.Vars(r)["name"])
	if errors.Is(err, ErrNotFound) {
		http.Error(w, "digest not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, doc)
}

func (s *Server) handleLatest(w http.ResponseWriter, r *http.Request) {
	_, doc, err := s.store.Latest()
	if errors.Is(err, ErrNotFound) {
		http.Error(w, "no digests available", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, doc)
}

// handleFlow looks a flow key up in the latest digest.
func (s *Server) handleFlow(w http.ResponseWriter, r *http.Request) {
	name, doc, err := s.store.Latest()
	if errors.Is(err, ErrNotFound) {
		http.Error(w, "no digests available", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	flow, ok := doc.Data[mux.Vars(r)["key"]]
	if !ok {
		http.Error(w, "flow not found", http.StatusNotFound)
		return
	}
	respondJSON(w, http.StatusOK, flowResponse{Digest: name, Flow: flow})
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}
