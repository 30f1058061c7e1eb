package domain

import (
	"time"
)

// OnboardingCompletedStep is the step recorded once onboarding is complete.
// Steps 1..7 belong to IN_PROGRESS.
const OnboardingCompletedStep = 8

// User is an application account keyed by the identity provider's stable subject.
type User struct {
	ID               string
	Email            string
	FirstName        *string
	LastName         *string
	SubscriptionType SubscriptionType
	LettersGenerated int
	LettersLimit     int
	TargetCountry    *Country
	OnboardingStatus OnboardingStatus
	OnboardingStep   int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewUser returns a first-login user on the free tier with the given limit.
func NewUser(id, email string, firstName, lastName *string, lettersLimit int, now time.Time) User {
	return User{
		ID:               id,
		Email:            email,
		FirstName:        firstName,
		LastName:         lastName,
		SubscriptionType: SubscriptionFree,
		LettersLimit:     lettersLimit,
		OnboardingStatus: OnboardingNotStarted,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// DisplayName returns "First Last" when known, falling back to the email.
func (u *User) DisplayName() string {
	var name string
	if u.FirstName != nil {
		name = *u.FirstName
	}
	if u.LastName != nil && *u.LastName != "" {
		if name != "" {
			name += " "
		}
		name += *u.LastName
	}
	if name == "" {
		return u.Email
	}
	return name
}

// IsOnboarded returns true once the onboarding flow has been completed.
func (u *User) IsOnboarded() bool {
	return u.OnboardingStatus == OnboardingCompleted
}
