package jobposting

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"tpo-portal-backend/db"
	recruiterstore "tpo-portal-backend/lib/job-posting/recruiter-store"
	jobpostingstore "tpo-portal-backend/lib/job-posting/store"
	"tpo-portal-backend/lib/notification"
	revieweventstore "tpo-portal-backend/lib/review-event/store"
	apperrors "tpo-portal-backend/lib/utils/app-errors"
	initchecker "tpo-portal-backend/lib/utils/init-checker"
	"tpo-portal-backend/models"
	jobpostingapimodels "tpo-portal-backend/models/api/jobposting"
	dbmodels "tpo-portal-backend/models/db"
)

const (
	actionCreate         = "CREATE"
	actionUpdateCriteria = "UPDATE_CRITERIA"
	actionApprove        = "APPROVE"
	actionReject         = "REJECT"
	actionClose          = "CLOSE"
)

type Provider interface {
	Create(ctx context.Context, recruiterUserID string, data jobpostingapimodels.JobPostingData) (id string, err error)
	UpdateCriteria(ctx context.Context, recruiterUserID, id string, criteria jobpostingapimodels.CriteriaData) error
	Approve(ctx context.Context, adminUserID, id, notes string) error
	Reject(ctx context.Context, adminUserID, id, reason string) error
	Close(ctx context.Context, userID string, role models.UserRole, id string) error
	Get(ctx context.Context, userID string, role models.UserRole, id string) (jobpostingapimodels.JobPostingView, error)
	List(ctx context.Context, userID string, role models.UserRole, filter jobpostingapimodels.JobPostingFilter) ([]jobpostingapimodels.JobPostingView, int64, error)
	History(ctx context.Context, userID string, role models.UserRole, id string) ([]jobpostingapimodels.ReviewEventView, error)
}

var Instance Provider

type txStores struct {
	postings jobpostingstore.Provider
	events   revieweventstore.Provider
}

func NewHandler() {
	instance := impl{
		store:          jobpostingstore.NewInstance(db.DB),
		recruiterStore: recruiterstore.NewInstance(db.DB),
		eventStore:     revieweventstore.NewInstance(db.DB),
		notifier:       notification.Instance,
		inTx:           gormTx,
	}
	initchecker.CheckInit(
		"notifier", instance.notifier,
	)
	Instance = instance
}

func gormTx(fn func(stores txStores) error) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		return fn(txStores{
			postings: jobpostingstore.NewInstance(tx),
			events:   revieweventstore.NewInstance(tx),
		})
	})
}

type impl struct {
	store          jobpostingstore.Provider
	recruiterStore recruiterstore.Provider
	eventStore     revieweventstore.Provider
	notifier       notification.Provider
	inTx           func(fn func(stores txStores) error) error
}

func (i impl) getLogger(userID, jobPostingID string) *log.Entry {
	logger := log.WithField("user_id", userID)
	if jobPostingID != "" {
		logger = logger.WithField("job_posting_id", jobPostingID)
	}
	return logger
}

func (i impl) getRecruiter(userID string) (*dbmodels.Recruiter, error) {
	recruiter, err := i.recruiterStore.GetByUserID(userID)
	if err != nil {
		i.getLogger(userID, "").WithError(err).Error("failed to load recruiter")
		return nil, errors.Wrap(err, "failed to load recruiter")
	}
	if recruiter == nil {
		return nil, apperrors.NotFound("recruiter")
	}
	return recruiter, nil
}

func (i impl) getPosting(userID, id string) (*dbmodels.JobPosting, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		i.getLogger(userID, id).WithError(err).Error("failed to load job posting")
		return nil, errors.Wrap(err, "failed to load job posting")
	}
	if rec == nil {
		return nil, apperrors.NotFound("job posting")
	}
	return rec, nil
}

// getVisiblePosting hides other organizations' postings from recruiters and non-active ones from students
func (i impl) getVisiblePosting(userID string, role models.UserRole, id string) (*dbmodels.JobPosting, error) {
	rec, err := i.getPosting(userID, id)
	if err != nil {
		return nil, err
	}
	switch role {
	case models.RecruiterRole:
		recruiter, err := i.getRecruiter(userID)
		if err != nil {
			return nil, err
		}
		if recruiter.OrganizationID != rec.OrganizationID {
			return nil, apperrors.NotFound("job posting")
		}
	case models.StudentRole:
		if rec.Status != models.JobPostingStatusActive {
			return nil, apperrors.NotFound("job posting")
		}
	}
	return rec, nil
}

func (i impl) Create(ctx context.Context, recruiterUserID string, data jobpostingapimodels.JobPostingData) (string, error) {
	if err := data.Validate(); err != nil {
		return "", err
	}
	recruiter, err := i.getRecruiter(recruiterUserID)
	if err != nil {
		return "", err
	}
	rec := dbmodels.JobPosting{
		OrganizationID: recruiter.OrganizationID,
		Title:          strings.TrimSpace(data.Title),
		Description:    data.Description,
		Status:         models.JobPostingStatusPendingApproval,
		Criteria:       data.Criteria.ToDB(),
		CreatedBy:      recruiterUserID,
	}
	var id string
	err = i.inTx(func(stores txStores) error {
		id, err = stores.postings.Create(rec)
		if err != nil {
			return err
		}
		_, err = stores.events.Create(newEvent(id, actionCreate, "", rec.Status, recruiterUserID, ""))
		return err
	})
	if err != nil {
		i.getLogger(recruiterUserID, "").WithError(err).Error("failed to create job posting")
		return "", errors.Wrap(err, "failed to create job posting")
	}
	i.getLogger(recruiterUserID, id).Info("job posting submitted for approval")
	return id, nil
}

func (i impl) UpdateCriteria(ctx context.Context, recruiterUserID, id string, criteria jobpostingapimodels.CriteriaData) error {
	if err := criteria.Validate(); err != nil {
		return err
	}
	recruiter, err := i.getRecruiter(recruiterUserID)
	if err != nil {
		return err
	}
	rec, err := i.getPosting(recruiterUserID, id)
	if err != nil {
		return err
	}
	if rec.OrganizationID != recruiter.OrganizationID {
		return apperrors.PermissionDenied("job posting belongs to another organization")
	}
	if rec.Status.IsCriteriaLocked() {
		return apperrors.PreconditionFailedf("eligibility criteria cannot be changed while the posting is %s", rec.Status)
	}
	dbCriteria := criteria.ToDB()
	updMap := map[string]interface{}{
		"criteria_cgpa_min":                 dbCriteria.CgpaMin,
		"criteria_max_backlogs":             dbCriteria.MaxBacklogs,
		"criteria_allowed_branches":         dbCriteria.AllowedBranches,
		"criteria_allowed_graduation_years": dbCriteria.AllowedGraduationYears,
	}
	return i.transition(recruiterUserID, *rec, actionUpdateCriteria, rec.Status, updMap, "")
}

func (i impl) Approve(ctx context.Context, adminUserID, id, notes string) error {
	rec, err := i.getPosting(adminUserID, id)
	if err != nil {
		return err
	}
	if !rec.Status.IsAllowChange(models.JobPostingStatusActive) {
		return apperrors.PreconditionFailedf("job posting in status %s cannot be approved", rec.Status)
	}
	updMap := map[string]interface{}{
		"status":      models.JobPostingStatusActive,
		"reviewed_by": adminUserID,
		"reviewed_at": time.Now(),
	}
	if err = i.transition(adminUserID, *rec, actionApprove, models.JobPostingStatusActive, updMap, notes); err != nil {
		return err
	}
	i.notifyRecruiters(ctx, *rec, models.EventJobPostingApproved, map[string]string{"job_title": rec.Title})
	return nil
}

func (i impl) Reject(ctx context.Context, adminUserID, id, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return apperrors.Validation("reason is required to reject a job posting")
	}
	rec, err := i.getPosting(adminUserID, id)
	if err != nil {
		return err
	}
	if !rec.Status.IsAllowChange(models.JobPostingStatusRejected) {
		return apperrors.PreconditionFailedf("job posting in status %s cannot be rejected", rec.Status)
	}
	updMap := map[string]interface{}{
		"status":           models.JobPostingStatusRejected,
		"reviewed_by":      adminUserID,
		"reviewed_at":      time.Now(),
		"rejection_reason": reason,
	}
	if err = i.transition(adminUserID, *rec, actionReject, models.JobPostingStatusRejected, updMap, reason); err != nil {
		return err
	}
	i.notifyRecruiters(ctx, *rec, models.EventJobPostingRejected, map[string]string{"job_title": rec.Title, "reason": reason})
	return nil
}

// Close is allowed to administrators and to recruiters of the owning organization
func (i impl) Close(ctx context.Context, userID string, role models.UserRole, id string) error {
	rec, err := i.getPosting(userID, id)
	if err != nil {
		return err
	}
	if !role.IsAdmin() {
		recruiter, err := i.getRecruiter(userID)
		if err != nil {
			return err
		}
		if recruiter.OrganizationID != rec.OrganizationID {
			return apperrors.PermissionDenied("job posting belongs to another organization")
		}
	}
	if !rec.Status.IsAllowChange(models.JobPostingStatusClosed) {
		return apperrors.PreconditionFailedf("job posting in status %s cannot be closed", rec.Status)
	}
	updMap := map[string]interface{}{
		"status": models.JobPostingStatusClosed,
	}
	if err = i.transition(userID, *rec, actionClose, models.JobPostingStatusClosed, updMap, ""); err != nil {
		return err
	}
	i.notifyRecruiters(ctx, *rec, models.EventJobPostingClosed, map[string]string{"job_title": rec.Title})
	return nil
}

func (i impl) transition(userID string, rec dbmodels.JobPosting, action string, to models.JobPostingStatus, updMap map[string]interface{}, comment string) error {
	logger := i.getLogger(userID, rec.ID).WithField("action", action)
	err := i.inTx(func(stores txStores) error {
		if err := stores.postings.Update(rec.ID, updMap); err != nil {
			return err
		}
		_, err := stores.events.Create(newEvent(rec.ID, action, rec.Status, to, userID, comment))
		return err
	})
	if err != nil {
		logger.WithError(err).Error("failed to update job posting")
		return errors.Wrap(err, "failed to update job posting")
	}
	logger.Info("job posting updated")
	return nil
}

func (i impl) notifyRecruiters(ctx context.Context, rec dbmodels.JobPosting, event models.NotificationEvent, payload map[string]string) {
	recruiters, err := i.recruiterStore.ListByOrganization(rec.OrganizationID)
	if err != nil {
		i.getLogger("", rec.ID).WithError(err).Warn("failed to load recruiters for notification")
		return
	}
	for _, recruiter := range recruiters {
		i.notifier.Notify(ctx, event, recruiter.UserID, payload)
	}
}

func (i impl) Get(ctx context.Context, userID string, role models.UserRole, id string) (jobpostingapimodels.JobPostingView, error) {
	rec, err := i.getVisiblePosting(userID, role, id)
	if err != nil {
		return jobpostingapimodels.JobPostingView{}, err
	}
	return jobpostingapimodels.JobPostingConvert(*rec), nil
}

func (i impl) List(ctx context.Context, userID string, role models.UserRole, filter jobpostingapimodels.JobPostingFilter) ([]jobpostingapimodels.JobPostingView, int64, error) {
	if err := filter.Validate(); err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	storeFilter := jobpostingstore.Filter{
		Status:         filter.Status,
		OrganizationID: filter.OrganizationID,
		Search:         filter.Search,
		Page:           page,
		Limit:          limit,
	}
	switch role {
	case models.RecruiterRole:
		recruiter, err := i.getRecruiter(userID)
		if err != nil {
			return nil, 0, err
		}
		storeFilter.OrganizationID = recruiter.OrganizationID
	case models.StudentRole:
		storeFilter.Status = models.JobPostingStatusActive
	}
	logger := i.getLogger(userID, "")
	rowCount, err := i.store.ListCount(storeFilter)
	if err != nil {
		logger.WithError(err).Error("failed to count job postings")
		return nil, 0, err
	}
	list, err := i.store.List(storeFilter)
	if err != nil {
		logger.WithError(err).Error("failed to list job postings")
		return nil, 0, errors.Wrap(err, "failed to list job postings")
	}
	result := make([]jobpostingapimodels.JobPostingView, 0, len(list))
	for _, rec := range list {
		result = append(result, jobpostingapimodels.JobPostingConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) History(ctx context.Context, userID string, role models.UserRole, id string) ([]jobpostingapimodels.ReviewEventView, error) {
	rec, err := i.getVisiblePosting(userID, role, id)
	if err != nil {
		return nil, err
	}
	list, err := i.eventStore.List(dbmodels.ReviewEntityJobPosting, rec.ID)
	if err != nil {
		i.getLogger(userID, id).WithError(err).Error("failed to load job posting history")
		return nil, errors.Wrap(err, "failed to load job posting history")
	}
	result := make([]jobpostingapimodels.ReviewEventView, 0, len(list))
	for _, event := range list {
		result = append(result, jobpostingapimodels.ReviewEventConvert(event))
	}
	return result, nil
}

func newEvent(id, action string, from, to models.JobPostingStatus, actorID, comment string) dbmodels.ReviewEvent {
	return dbmodels.ReviewEvent{
		EntityType: dbmodels.ReviewEntityJobPosting,
		EntityID:   id,
		Action:     action,
		FromStatus: string(from),
		ToStatus:   string(to),
		ActorID:    actorID,
		Comment:    strings.TrimSpace(comment),
	}
}
