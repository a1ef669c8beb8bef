package models

type RbacFunc func(userID string, role UserRole, path string) bool

type Module string

const (
	ProfileVerificationModule Module = "PROFILE_VERIFICATION"
	ApplicationReviewModule   Module = "APPLICATION_REVIEW"
	ApplicationAdminModule    Module = "APPLICATION_ADMIN"
	JobPostingModule          Module = "JOB_POSTING"
	StatisticsModule          Module = "STATISTICS"
	AccountModule             Module = "ACCOUNT"
)

type Permission string

const (
	CreatePermission Permission = "CREATE"
	EditPermission   Permission = "EDIT"
	ViewPermission   Permission = "VIEW"
	FlowPermission   Permission = "FLOW"
	ExportPermission Permission = "EXPORT"
)
