package consts

const (
	MimePrefixImage = "image"
)

// Blog post lifecycle states.
const (
	BlogStatusDraft     = 0
	BlogStatusPublished = 1
	BlogStatusArchived  = 2
)

// Plan tiers. Tier names double as keys into the plan-limit table.
const (
	PlanFree       = "free"
	PlanPro        = "pro"
	PlanEnterprise = "enterprise"
)

// UnlimitedQuota marks a plan resource without a cap.
const UnlimitedQuota = int64(-1)

const DefaultAgentID = "fevzi"
