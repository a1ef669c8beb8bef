package statsapimodels

import "time"

type ProfileStats struct {
	Total            int64  `json:"total"`
	Pending          int64  `json:"pending"`
	Verified         int64  `json:"verified"`
	Rejected         int64  `json:"rejected"`
	Hold             int64  `json:"hold"`
	VerificationRate string `json:"verification_rate"` // verified/total, "12.50%"
}

type ApplicationStats struct {
	Total        int64  `json:"total"`
	Pending      int64  `json:"pending"`  // SUBMITTED
	Approved     int64  `json:"approved"` // PENDING_ADMIN and FORWARDED
	Rejected     int64  `json:"rejected"`
	Hold         int64  `json:"hold"`
	ApprovalRate string `json:"approval_rate"`
}

type Dashboard struct {
	Departments  []string         `json:"departments"` // empty for the whole campus
	Profiles     ProfileStats     `json:"profiles"`
	Applications ApplicationStats `json:"applications"`
	GeneratedAt  time.Time        `json:"generated_at"`
}
