package rbac

import (
	"tpo-portal-backend/models"
)

var (
	CoordinatorRoleSet      = []models.UserRole{models.CoordinatorRole}
	AdminRoleSet            = []models.UserRole{models.AdminRole}
	RecruiterRoleSet        = []models.UserRole{models.RecruiterRole}
	AdminRecruiterRoleSet   = []models.UserRole{models.AdminRole, models.RecruiterRole}
	AdminCoordinatorRoleSet = []models.UserRole{models.AdminRole, models.CoordinatorRole}
	AllRoles                = []models.UserRole{models.StudentRole, models.RecruiterRole, models.CoordinatorRole, models.AdminRole}
)

type ruleSet struct {
	i   *impl
	err error
}

// add keeps the first registration error so the rule table reads as a flat list
func (r *ruleSet) add(module models.Module, permission models.Permission, roles []models.UserRole, swaggerPattern string) {
	if r.err != nil {
		return
	}
	r.err = r.i.RegisterRule(module, permission, roles, swaggerPattern, nil)
}

func (i *impl) initRules() error {
	r := &ruleSet{i: i}
	r.profileVerification()
	r.applicationReview()
	r.applicationAdmin()
	r.jobPosting()
	r.statistics()
	r.account()
	return r.err
}

func (r *ruleSet) profileVerification() {
	// VIEW
	r.add(models.ProfileVerificationModule, models.ViewPermission, CoordinatorRoleSet, "/api/v1/coordinator/profiles/list [post]")
	r.add(models.ProfileVerificationModule, models.ViewPermission, CoordinatorRoleSet, "/api/v1/coordinator/profiles/stats [get]")
	r.add(models.ProfileVerificationModule, models.ViewPermission, CoordinatorRoleSet, "/api/v1/coordinator/profiles/{id} [get]")
	// EXPORT
	r.add(models.ProfileVerificationModule, models.ExportPermission, CoordinatorRoleSet, "/api/v1/coordinator/profiles/export [post]")
	// FLOW
	r.add(models.ProfileVerificationModule, models.FlowPermission, CoordinatorRoleSet, "/api/v1/coordinator/profiles/batch_verify [put]")
	r.add(models.ProfileVerificationModule, models.FlowPermission, CoordinatorRoleSet, "/api/v1/coordinator/profiles/{id}/verify [put]")
	r.add(models.ProfileVerificationModule, models.FlowPermission, CoordinatorRoleSet, "/api/v1/coordinator/profiles/{id}/hold [put]")
	r.add(models.ProfileVerificationModule, models.FlowPermission, CoordinatorRoleSet, "/api/v1/coordinator/profiles/{id}/reject [put]")
}

func (r *ruleSet) applicationReview() {
	// VIEW
	r.add(models.ApplicationReviewModule, models.ViewPermission, CoordinatorRoleSet, "/api/v1/coordinator/applications/list [post]")
	r.add(models.ApplicationReviewModule, models.ViewPermission, CoordinatorRoleSet, "/api/v1/coordinator/applications/stats [get]")
	r.add(models.ApplicationReviewModule, models.ViewPermission, CoordinatorRoleSet, "/api/v1/coordinator/applications/{id} [get]")
	// EXPORT
	r.add(models.ApplicationReviewModule, models.ExportPermission, CoordinatorRoleSet, "/api/v1/coordinator/applications/export [post]")
	// FLOW
	r.add(models.ApplicationReviewModule, models.FlowPermission, CoordinatorRoleSet, "/api/v1/coordinator/applications/batch_approve [put]")
	r.add(models.ApplicationReviewModule, models.FlowPermission, CoordinatorRoleSet, "/api/v1/coordinator/applications/{id}/approve [put]")
	r.add(models.ApplicationReviewModule, models.FlowPermission, CoordinatorRoleSet, "/api/v1/coordinator/applications/{id}/hold [put]")
	r.add(models.ApplicationReviewModule, models.FlowPermission, CoordinatorRoleSet, "/api/v1/coordinator/applications/{id}/reject [put]")
}

func (r *ruleSet) applicationAdmin() {
	// VIEW
	r.add(models.ApplicationAdminModule, models.ViewPermission, AdminRoleSet, "/api/v1/admin/applications/list [post]")
	r.add(models.ApplicationAdminModule, models.ViewPermission, AdminRoleSet, "/api/v1/admin/applications/{id} [get]")
	// FLOW
	r.add(models.ApplicationAdminModule, models.FlowPermission, AdminRoleSet, "/api/v1/admin/applications/{id}/forward [put]")
	r.add(models.ApplicationAdminModule, models.FlowPermission, AdminRoleSet, "/api/v1/admin/applications/{id}/reject [put]")
	r.add(models.ApplicationAdminModule, models.FlowPermission, AdminRoleSet, "/api/v1/admin/applications/{id}/reopen [put]")
}

func (r *ruleSet) jobPosting() {
	// VIEW
	r.add(models.JobPostingModule, models.ViewPermission, AllRoles, "/api/v1/job_postings/list [post]")
	r.add(models.JobPostingModule, models.ViewPermission, AllRoles, "/api/v1/job_postings/{id} [get]")
	r.add(models.JobPostingModule, models.ViewPermission, AllRoles, "/api/v1/job_postings/{id}/history [get]")
	// CREATE/EDIT, own organization is checked by the workflow
	r.add(models.JobPostingModule, models.CreatePermission, RecruiterRoleSet, "/api/v1/job_postings [post]")
	r.add(models.JobPostingModule, models.EditPermission, RecruiterRoleSet, "/api/v1/job_postings/{id}/criteria [put]")
	r.add(models.JobPostingModule, models.EditPermission, AdminRecruiterRoleSet, "/api/v1/job_postings/{id}/close [put]")
	// FLOW
	r.add(models.JobPostingModule, models.FlowPermission, AdminRoleSet, "/api/v1/job_postings/{id}/approve [put]")
	r.add(models.JobPostingModule, models.FlowPermission, AdminRoleSet, "/api/v1/job_postings/{id}/reject [put]")
}

func (r *ruleSet) statistics() {
	r.add(models.StatisticsModule, models.ViewPermission, AdminCoordinatorRoleSet, "/api/v1/stats/dashboard [get]")
	r.add(models.StatisticsModule, models.ExportPermission, AdminCoordinatorRoleSet, "/api/v1/stats/report.pdf [get]")
}

func (r *ruleSet) account() {
	r.add(models.AccountModule, models.ViewPermission, AllRoles, "/api/v1/me/permissions [get]")
}
