package services

const (
	PlanFree = "free"
	PlanPro  = "pro"

	// Free accounts are capped; pro accounts are not.
	FreeSiteLimit = 3
)

// SiteLimit returns the maximum number of sites for the account tier, or -1
// for unlimited.
func SiteLimit(isPro bool) int {
	if isPro {
		return -1
	}
	return FreeSiteLimit
}

func PlanName(isPro bool) string {
	if isPro {
		return PlanPro
	}
	return PlanFree
}
