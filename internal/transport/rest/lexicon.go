package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/flont-backend/internal/domain"
	"github.com/heartmarshall/flont-backend/internal/service/lexicon"
)

// lexiconService defines the minimal interface needed by LexiconHandler.
type lexiconService interface {
	Lookup(ctx context.Context, label string) (*lexicon.LiteralView, error)
	Search(ctx context.Context, prefix string, limit int) ([]string, error)
	Query(ctx context.Context, filter domain.TripleFilter) ([]domain.ObjectProperty, error)
}

// LexiconHandler serves the lexicon REST endpoints.
type LexiconHandler struct {
	svc lexiconService
	log *slog.Logger
}

// NewLexiconHandler creates a LexiconHandler.
func NewLexiconHandler(svc lexiconService, logger *slog.Logger) *LexiconHandler {
	return &LexiconHandler{svc: svc, log: logger.With("handler", "lexicon")}
}

type searchResponse struct {
	Labels []string `json:"labels"`
}

type queryRequest struct {
	Node   string `json:"node"`
	Name   string `json:"name"`
	Target string `json:"target"`
	Limit  int    `json:"limit"`
}

type tripleResponse struct {
	Node   string `json:"node"`
	Name   string `json:"name"`
	Target string `json:"target"`
}

type queryResponse struct {
	Triples []tripleResponse `json:"triples"`
}

type relationResponse struct {
	Name   string `json:"name"`
	Target string `json:"target"`
}

type senseResponse struct {
	ID         string   `json:"id"`
	Definition string   `json:"definition"`
	Examples   []string `json:"examples,omitempty"`
	Precisions []string `json:"precisions,omitempty"`
	DependsOn  string   `json:"dependsOn,omitempty"`
}

type entryResponse struct {
	ID            string             `json:"id"`
	Class         string             `json:"class"`
	Pronunciation string             `json:"pronunciation,omitempty"`
	Genders       []string           `json:"genders,omitempty"`
	Numbers       []string           `json:"numbers,omitempty"`
	Relations     []relationResponse `json:"relations,omitempty"`
	Senses        []senseResponse    `json:"senses"`
}

type literalResponse struct {
	ID            string             `json:"id"`
	Label         string             `json:"label"`
	Pronunciation string             `json:"pronunciation,omitempty"`
	Etymology     string             `json:"etymology,omitempty"`
	Relations     []relationResponse `json:"relations,omitempty"`
	Entries       []entryResponse    `json:"entries"`
}

// Search handles GET /api/search?q=<prefix>&limit=<n>.
func (h *LexiconHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	labels, err := h.svc.Search(r.Context(), q, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{Labels: labels})
}

// Lookup handles GET /api/literals/{label}.
func (h *LexiconHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	label := r.PathValue("label")

	view, err := h.svc.Lookup(r.Context(), label)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toLiteralResponse(view))
}

// Query handles POST /api/query with a triple pattern body.
func (h *LexiconHandler) Query(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	triples, err := h.svc.Query(r.Context(), domain.TripleFilter{
		NodeID:   req.Node,
		Name:     req.Name,
		TargetID: req.Target,
		Limit:    req.Limit,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := queryResponse{Triples: make([]tripleResponse, 0, len(triples))}
	for _, t := range triples {
		resp.Triples = append(resp.Triples, tripleResponse{
			Node:   t.NodeID,
			Name:   t.Name,
			Target: t.TargetID,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

func toLiteralResponse(view *lexicon.LiteralView) literalResponse {
	resp := literalResponse{
		ID:            view.ID,
		Label:         view.Label,
		Pronunciation: view.Pronunciation,
		Etymology:     view.Etymology,
		Relations:     toRelationResponses(view.Relations),
		Entries:       make([]entryResponse, 0, len(view.Entries)),
	}

	for _, e := range view.Entries {
		entry := entryResponse{
			ID:            e.ID,
			Class:         e.Class,
			Pronunciation: e.Pronunciation,
			Genders:       e.Genders,
			Numbers:       e.Numbers,
			Relations:     toRelationResponses(e.Relations),
			Senses:        make([]senseResponse, 0, len(e.Senses)),
		}
		for _, s := range e.Senses {
			entry.Senses = append(entry.Senses, senseResponse{
				ID:         s.ID,
				Definition: s.Definition,
				Examples:   s.Examples,
				Precisions: s.Precisions,
				DependsOn:  s.DependsOn,
			})
		}
		resp.Entries = append(resp.Entries, entry)
	}

	return resp
}

func toRelationResponses(relations []lexicon.Relation) []relationResponse {
	if len(relations) == 0 {
		return nil
	}
	out := make([]relationResponse, 0, len(relations))
	for _, rel := range relations {
		out = append(out, relationResponse{Name: rel.Name, Target: rel.TargetID})
	}
	return out
}

func (h *LexiconHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrUnavailable):
		writeError(w, http.StatusServiceUnavailable, "service unavailable")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
