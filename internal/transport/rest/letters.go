package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/visaletter-backend/internal/domain"
	"github.com/heartmarshall/visaletter-backend/internal/service/letter"
)

// letterService defines the minimal interface needed by LetterHandler.
type letterService interface {
	Generate(ctx context.Context, input letter.GenerateInput) (*letter.GenerateResult, error)
	List(ctx context.Context, input letter.ListInput) (*letter.ListResult, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.GeneratedLetter, error)
	SetFavorite(ctx context.Context, id uuid.UUID, favorite bool) (*domain.GeneratedLetter, error)
	SetFeedback(ctx context.Context, id uuid.UUID, rating int) (*domain.GeneratedLetter, error)
}

// LetterHandler serves the letter REST endpoints.
type LetterHandler struct {
	svc letterService
	log *slog.Logger
}

// NewLetterHandler creates a LetterHandler.
func NewLetterHandler(svc letterService, logger *slog.Logger) *LetterHandler {
	return &LetterHandler{svc: svc, log: logger.With("handler", "letter")}
}

type generateRequest struct {
	ProfileID  uuid.UUID `json:"profileId"`
	Country    string    `json:"country"`
	LetterType string    `json:"letterType"`
}

type favoriteRequest struct {
	IsFavorite bool `json:"isFavorite"`
}

type feedbackRequest struct {
	Rating int `json:"rating"`
}

type letterResponse struct {
	ID               uuid.UUID  `json:"id"`
	ProfileID        *uuid.UUID `json:"profileId,omitempty"`
	Country          string     `json:"country"`
	LetterType       string     `json:"letterType"`
	Title            string     `json:"title"`
	Content          string     `json:"content"`
	ModelUsed        string     `json:"modelUsed"`
	GenerationTimeMs *int       `json:"generationTimeMs,omitempty"`
	WordCount        *int       `json:"wordCount,omitempty"`
	FeedbackRating   *int       `json:"feedbackRating,omitempty"`
	IsFavorite       bool       `json:"isFavorite"`
	CreatedAt        time.Time  `json:"createdAt"`
}

type quotaResponse struct {
	Allowed   bool `json:"allowed"`
	Remaining int  `json:"remaining"`
	Unlimited bool `json:"unlimited"`
}

type generateResponse struct {
	Letter   letterResponse `json:"letter"`
	Quota    quotaResponse  `json:"quota"`
	Replayed bool           `json:"replayed"`
}

type listResponse struct {
	Letters []letterResponse `json:"letters"`
	Total   int              `json:"total"`
}

// Generate handles POST /api/letters.
func (h *LetterHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.Generate(r.Context(), letter.GenerateInput{
		ProfileID:      req.ProfileID,
		Country:        domain.Country(req.Country),
		LetterType:     domain.LetterType(req.LetterType),
		IdempotencyKey: r.Header.Get("Idempotency-Key"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}
	writeJSON(w, status, generateResponse{
		Letter:   toLetterResponse(result.Letter),
		Quota:    toQuotaResponse(result.Quota),
		Replayed: result.Replayed,
	})
}

// List handles GET /api/letters.
func (h *LetterHandler) List(w http.ResponseWriter, r *http.Request) {
	input, err := parseListQuery(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := listResponse{Letters: make([]letterResponse, 0, len(result.Letters)), Total: result.Total}
	for i := range result.Letters {
		resp.Letters = append(resp.Letters, toLetterResponse(&result.Letters[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/letters/{id}.
func (h *LetterHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	l, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLetterResponse(l))
}

// SetFavorite handles PUT /api/letters/{id}/favorite.
func (h *LetterHandler) SetFavorite(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req favoriteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	l, err := h.svc.SetFavorite(r.Context(), id, req.IsFavorite)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLetterResponse(l))
}

// SetFeedback handles PUT /api/letters/{id}/feedback.
func (h *LetterHandler) SetFeedback(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req feedbackRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	l, err := h.svc.SetFeedback(r.Context(), id, req.Rating)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLetterResponse(l))
}

// pathID parses the {id} path value. A malformed id cannot name an owned
// letter, so it is reported as not found.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not found", "not_found")
		return uuid.Nil, false
	}
	return id, true
}

func parseListQuery(r *http.Request) (letter.ListInput, error) {
	q := r.URL.Query()
	var (
		input letter.ListInput
		errs  []domain.FieldError
	)

	if v := q.Get("country"); v != "" {
		c := domain.Country(v)
		input.Country = &c
	}
	if v := q.Get("letterType"); v != "" {
		lt := domain.LetterType(v)
		input.LetterType = &lt
	}
	if v := q.Get("favorite"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "favorite", Message: "must be a boolean"})
		}
		input.FavoritesOnly = b
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "limit", Message: "must be an integer"})
		}
		input.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "offset", Message: "must be an integer"})
		}
		input.Offset = n
	}

	if len(errs) > 0 {
		return input, domain.NewValidationErrors(errs)
	}
	return input, nil
}

func toLetterResponse(l *domain.GeneratedLetter) letterResponse {
	return letterResponse{
		ID:               l.ID,
		ProfileID:        l.ProfileID,
		Country:          string(l.Country),
		LetterType:       string(l.LetterType),
		Title:            l.Title,
		Content:          l.Content,
		ModelUsed:        l.ModelUsed,
		GenerationTimeMs: l.GenerationTime,
		WordCount:        l.WordCount,
		FeedbackRating:   l.FeedbackRating,
		IsFavorite:       l.IsFavorite,
		CreatedAt:        l.CreatedAt,
	}
}

func toQuotaResponse(q domain.Quota) quotaResponse {
	return quotaResponse{Allowed: q.Allowed, Remaining: q.Remaining, Unlimited: q.Unlimited}
}
