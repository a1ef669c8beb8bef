package statistics

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"tpo-portal-backend/db"
	accessscope "tpo-portal-backend/lib/access-scope"
	applicationstore "tpo-portal-backend/lib/application-review/store"
	studentprofilestore "tpo-portal-backend/lib/student-profile/store"
	initchecker "tpo-portal-backend/lib/utils/init-checker"
	"tpo-portal-backend/models"
	statsapimodels "tpo-portal-backend/models/api/stats"
)

// Provider aggregates counts per call, nothing is cached.
// A nil departments slice means the whole campus.
type Provider interface {
	ProfileStats(departments []string) (statsapimodels.ProfileStats, error)
	ApplicationStats(departments []string) (statsapimodels.ApplicationStats, error)
	Dashboard(userID string, role models.UserRole) (statsapimodels.Dashboard, error)
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit(
		"scope", accessscope.Instance,
	)
	Instance = NewProvider(
		studentprofilestore.NewInstance(db.DB),
		applicationstore.NewInstance(db.DB),
		accessscope.Instance,
	)
}

func NewProvider(profileStore studentprofilestore.Provider, applicationStore applicationstore.Provider, scope accessscope.Provider) Provider {
	return impl{
		profileStore:     profileStore,
		applicationStore: applicationStore,
		scope:            scope,
	}
}

type impl struct {
	profileStore     studentprofilestore.Provider
	applicationStore applicationstore.Provider
	scope            accessscope.Provider
}

// FormatRate renders count/total as a two-decimal percentage, "0.00%" for an empty total
func FormatRate(count, total int64) string {
	if total == 0 {
		return "0.00%"
	}
	return fmt.Sprintf("%.2f%%", float64(count)/float64(total)*100)
}

func (i impl) ProfileStats(departments []string) (statsapimodels.ProfileStats, error) {
	result := statsapimodels.ProfileStats{}
	rows, err := i.profileStore.CountByStatus(departments)
	if err != nil {
		log.WithField("departments", departments).WithError(err).Error("failed to count student profiles")
		return result, errors.Wrap(err, "failed to count student profiles")
	}
	for _, row := range rows {
		result.Total += row.Count
		switch {
		case row.TpoDeptVerified:
			result.Verified += row.Count
		case row.ProfileStatus == models.ProfileStatusRejected:
			result.Rejected += row.Count
		case row.ProfileStatus == models.ProfileStatusHold:
			result.Hold += row.Count
		default:
			result.Pending += row.Count
		}
	}
	result.VerificationRate = FormatRate(result.Verified, result.Total)
	return result, nil
}

func (i impl) ApplicationStats(departments []string) (statsapimodels.ApplicationStats, error) {
	result := statsapimodels.ApplicationStats{}
	counts, err := i.applicationStore.CountByStatus(departments)
	if err != nil {
		log.WithField("departments", departments).WithError(err).Error("failed to count job applications")
		return result, errors.Wrap(err, "failed to count job applications")
	}
	for status, count := range counts {
		result.Total += count
		switch status {
		case models.ApplicationStatusSubmitted:
			result.Pending += count
		case models.ApplicationStatusPendingAdmin, models.ApplicationStatusForwarded:
			result.Approved += count
		case models.ApplicationStatusRejected:
			result.Rejected += count
		case models.ApplicationStatusHold:
			result.Hold += count
		}
	}
	result.ApprovalRate = FormatRate(result.Approved, result.Total)
	return result, nil
}

// Dashboard is campus-wide for administrators and department-scoped for coordinators
func (i impl) Dashboard(userID string, role models.UserRole) (statsapimodels.Dashboard, error) {
	var departments []string
	if !role.IsAdmin() {
		coordinator, err := i.scope.GetCoordinator(userID)
		if err != nil {
			return statsapimodels.Dashboard{}, err
		}
		departments = accessscope.AuthorizedDepartments(*coordinator)
	}
	profiles, err := i.ProfileStats(departments)
	if err != nil {
		return statsapimodels.Dashboard{}, err
	}
	applications, err := i.ApplicationStats(departments)
	if err != nil {
		return statsapimodels.Dashboard{}, err
	}
	result := statsapimodels.Dashboard{
		Departments:  departments,
		Profiles:     profiles,
		Applications: applications,
		GeneratedAt:  time.Now(),
	}
	if result.Departments == nil {
		result.Departments = []string{}
	}
	return result, nil
}
