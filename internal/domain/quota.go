package domain

// Quota is the derived generation entitlement of a user. It is never stored.
type Quota struct {
	Allowed   bool
	Remaining int
	Unlimited bool
}

// ComputeQuota derives the quota from the stored counter and limit.
// Remaining never goes below zero even if the counter overshot the limit
// (unlimited tiers keep counting).
func ComputeQuota(generated, limit int, unlimited bool) Quota {
	remaining := limit - generated
	if remaining < 0 {
		remaining = 0
	}
	return Quota{
		Allowed:   unlimited || generated < limit,
		Remaining: remaining,
		Unlimited: unlimited,
	}
}
