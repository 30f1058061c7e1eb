package domain

// Country is a study destination a letter can be written for.
type Country string

const (
	CountryAustralia     Country = "AUSTRALIA"
	CountryCanada        Country = "CANADA"
	CountryUnitedKingdom Country = "UNITED_KINGDOM"
	CountryUnitedStates  Country = "UNITED_STATES"
	CountryNewZealand    Country = "NEW_ZEALAND"
)

// AllCountries lists every supported destination in display order.
var AllCountries = []Country{
	CountryAustralia, CountryCanada, CountryUnitedKingdom, CountryUnitedStates, CountryNewZealand,
}

func (c Country) String() string { return string(c) }

func (c Country) IsValid() bool {
	switch c {
	case CountryAustralia, CountryCanada, CountryUnitedKingdom, CountryUnitedStates, CountryNewZealand:
		return true
	}
	return false
}

// DisplayName returns the human-readable country name used in letter titles.
func (c Country) DisplayName() string {
	switch c {
	case CountryAustralia:
		return "Australia"
	case CountryCanada:
		return "Canada"
	case CountryUnitedKingdom:
		return "United Kingdom"
	case CountryUnitedStates:
		return "United States"
	case CountryNewZealand:
		return "New Zealand"
	}
	return string(c)
}

// LetterType is the kind of support letter being generated.
type LetterType string

const (
	LetterTypeExplanation LetterType = "explanation"
	LetterTypeStudyPlan   LetterType = "study_plan"
	LetterTypeFinancial   LetterType = "financial"
)

// AllLetterTypes lists every letter type in display order.
var AllLetterTypes = []LetterType{LetterTypeExplanation, LetterTypeStudyPlan, LetterTypeFinancial}

func (t LetterType) String() string { return string(t) }

func (t LetterType) IsValid() bool {
	switch t {
	case LetterTypeExplanation, LetterTypeStudyPlan, LetterTypeFinancial:
		return true
	}
	return false
}

// SubscriptionType is the account tier that determines the letters limit.
type SubscriptionType string

const (
	SubscriptionFree      SubscriptionType = "free"
	SubscriptionBasic     SubscriptionType = "basic"
	SubscriptionPremium   SubscriptionType = "premium"
	SubscriptionUnlimited SubscriptionType = "unlimited"
)

func (s SubscriptionType) String() string { return string(s) }

func (s SubscriptionType) IsValid() bool {
	switch s {
	case SubscriptionFree, SubscriptionBasic, SubscriptionPremium, SubscriptionUnlimited:
		return true
	}
	return false
}

// OnboardingStatus is the coarse state of the onboarding flow.
type OnboardingStatus string

const (
	OnboardingNotStarted OnboardingStatus = "NOT_STARTED"
	OnboardingInProgress OnboardingStatus = "IN_PROGRESS"
	OnboardingCompleted  OnboardingStatus = "COMPLETED"
)

func (s OnboardingStatus) String() string { return string(s) }

func (s OnboardingStatus) IsValid() bool {
	switch s {
	case OnboardingNotStarted, OnboardingInProgress, OnboardingCompleted:
		return true
	}
	return false
}
