package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/visaletter-backend/internal/domain"
	"github.com/heartmarshall/visaletter-backend/internal/service/user"
)

type userService interface {
	GetMe(ctx context.Context) (*user.Me, error)
	SetTargetCountry(ctx context.Context, country *domain.Country) (*domain.User, error)
}

type onboardingService interface {
	Complete(ctx context.Context) (*domain.User, error)
}

// MeHandler serves the current user's account endpoints.
type MeHandler struct {
	users      userService
	onboarding onboardingService
	log        *slog.Logger
}

// NewMeHandler creates a MeHandler.
func NewMeHandler(users userService, onboarding onboardingService, logger *slog.Logger) *MeHandler {
	return &MeHandler{users: users, onboarding: onboarding, log: logger.With("handler", "me")}
}

type userResponse struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	Name             string    `json:"name"`
	FirstName        *string   `json:"firstName,omitempty"`
	LastName         *string   `json:"lastName,omitempty"`
	SubscriptionType string    `json:"subscriptionType"`
	LettersGenerated int       `json:"lettersGenerated"`
	LettersLimit     int       `json:"lettersLimit"`
	TargetCountry    *string   `json:"targetCountry,omitempty"`
	OnboardingStatus string    `json:"onboardingStatus"`
	OnboardingStep   int       `json:"onboardingStep"`
	CreatedAt        time.Time `json:"createdAt"`
}

type meResponse struct {
	User  userResponse  `json:"user"`
	Quota quotaResponse `json:"quota"`
}

type targetCountryRequest struct {
	Country *string `json:"country"`
}

// Get handles GET /api/me.
func (h *MeHandler) Get(w http.ResponseWriter, r *http.Request) {
	me, err := h.users.GetMe(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, meResponse{
		User:  toUserResponse(me.User),
		Quota: toQuotaResponse(me.Quota),
	})
}

// SetTargetCountry handles PUT /api/me/target-country. A null country clears it.
func (h *MeHandler) SetTargetCountry(w http.ResponseWriter, r *http.Request) {
	var req targetCountryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var country *domain.Country
	if req.Country != nil {
		c := domain.Country(*req.Country)
		country = &c
	}

	u, err := h.users.SetTargetCountry(r.Context(), country)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// CompleteOnboarding handles POST /api/onboarding/complete.
func (h *MeHandler) CompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	u, err := h.onboarding.Complete(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

func toUserResponse(u *domain.User) userResponse {
	resp := userResponse{
		ID:               u.ID,
		Email:            u.Email,
		Name:             u.DisplayName(),
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		SubscriptionType: string(u.SubscriptionType),
		LettersGenerated: u.LettersGenerated,
		LettersLimit:     u.LettersLimit,
		OnboardingStatus: string(u.OnboardingStatus),
		OnboardingStep:   u.OnboardingStep,
		CreatedAt:        u.CreatedAt,
	}
	if u.TargetCountry != nil {
		c := string(*u.TargetCountry)
		resp.TargetCountry = &c
	}
	return resp
}
