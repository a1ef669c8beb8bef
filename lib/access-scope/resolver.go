package accessscope

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"tpo-portal-backend/db"
	coordinatorstore "tpo-portal-backend/lib/access-scope/store"
	apperrors "tpo-portal-backend/lib/utils/app-errors"
	dbmodels "tpo-portal-backend/models/db"
)

// AuthorizedDepartments returns {primary} ∪ assigned, primary first, without duplicates
func AuthorizedDepartments(c dbmodels.Coordinator) []string {
	result := make([]string, 0, len(c.AssignedDepartments)+1)
	seen := map[string]bool{}
	for _, department := range append([]string{c.PrimaryDepartment}, c.AssignedDepartments...) {
		if department == "" || seen[department] {
			continue
		}
		seen[department] = true
		result = append(result, department)
	}
	return result
}

func IsAuthorized(c dbmodels.Coordinator, department string) bool {
	for _, item := range AuthorizedDepartments(c) {
		if item == department {
			return true
		}
	}
	return false
}

func RequireProfileVerifier(c dbmodels.Coordinator) error {
	if !c.CanVerifyProfiles {
		return apperrors.PermissionDenied("coordinator is not allowed to verify profiles")
	}
	return nil
}

func RequireApplicationProcessor(c dbmodels.Coordinator) error {
	if !c.CanProcessApplications {
		return apperrors.PermissionDenied("coordinator is not allowed to process applications")
	}
	return nil
}

type Provider interface {
	GetCoordinator(userID string) (*dbmodels.Coordinator, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewProvider(coordinatorstore.NewInstance(db.DB))
}

func NewProvider(store coordinatorstore.Provider) Provider {
	return impl{
		store: store,
	}
}

type impl struct {
	store coordinatorstore.Provider
}

// GetCoordinator treats an inactive record as missing
func (i impl) GetCoordinator(userID string) (*dbmodels.Coordinator, error) {
	rec, err := i.store.GetByUserID(userID)
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("failed to load coordinator")
		return nil, errors.Wrap(err, "failed to load coordinator")
	}
	if rec == nil || !rec.IsActive {
		return nil, apperrors.NotFound("coordinator")
	}
	return rec, nil
}
