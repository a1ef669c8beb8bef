package applicationreview

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"tpo-portal-backend/db"
	accessscope "tpo-portal-backend/lib/access-scope"
	consentstore "tpo-portal-backend/lib/application-review/consent-store"
	applicationstore "tpo-portal-backend/lib/application-review/store"
	"tpo-portal-backend/lib/eligibility"
	filestorage "tpo-portal-backend/lib/file-storage"
	jobpostingstore "tpo-portal-backend/lib/job-posting/store"
	"tpo-portal-backend/lib/notification"
	revieweventstore "tpo-portal-backend/lib/review-event/store"
	"tpo-portal-backend/lib/statistics"
	recordsstore "tpo-portal-backend/lib/student-profile/records-store"
	studentprofilestore "tpo-portal-backend/lib/student-profile/store"
	apperrors "tpo-portal-backend/lib/utils/app-errors"
	initchecker "tpo-portal-backend/lib/utils/init-checker"
	"tpo-portal-backend/lib/utils/lock"
	"tpo-portal-backend/models"
	applicationapimodels "tpo-portal-backend/models/api/application"
	jobpostingapimodels "tpo-portal-backend/models/api/jobposting"
	profileapimodels "tpo-portal-backend/models/api/profile"
	statsapimodels "tpo-portal-backend/models/api/stats"
	dbmodels "tpo-portal-backend/models/db"
)

const (
	MaxBatchSize = 100

	batchLockWait = 5 * time.Second
)

const (
	actionDeptApprove = "DEPT_APPROVE"
	actionHold        = "HOLD"
	actionDeptReject  = "DEPT_REJECT"
	actionForward     = "FORWARD"
	actionAdminReject = "ADMIN_REJECT"
	actionReopen      = "REOPEN"
)

type Provider interface {
	// department gate
	ListQueue(ctx context.Context, userID string, filter applicationapimodels.ApplicationFilter) ([]applicationapimodels.ApplicationView, int64, error)
	ExportQueue(ctx context.Context, userID string, filter applicationapimodels.ApplicationFilter) ([]applicationapimodels.ApplicationView, error)
	GetDetail(ctx context.Context, userID string, role models.UserRole, applicationID string) (applicationapimodels.ApplicationDetailView, error)
	Approve(ctx context.Context, userID, applicationID, notes string) error
	Hold(ctx context.Context, userID, applicationID, issues string) error
	Reject(ctx context.Context, userID, applicationID, reason string) error
	BatchApprove(ctx context.Context, userID string, applicationIDs []string, notes string) (approved int, err error)
	Stats(ctx context.Context, userID string) (statsapimodels.ApplicationStats, error)
	// admin gate
	ListAdminQueue(ctx context.Context, filter applicationapimodels.ApplicationFilter) ([]applicationapimodels.ApplicationView, int64, error)
	Forward(ctx context.Context, adminUserID, applicationID, notes string) error
	AdminReject(ctx context.Context, adminUserID, applicationID, reason string) error
	ReopenRejected(ctx context.Context, adminUserID, applicationID, notes string) error
}

var Instance Provider

type txStores struct {
	applications applicationstore.Provider
	events       revieweventstore.Provider
}

func NewHandler() {
	instance := impl{
		scope:            accessscope.Instance,
		applicationStore: applicationstore.NewInstance(db.DB),
		profileStore:     studentprofilestore.NewInstance(db.DB),
		jobPostingStore:  jobpostingstore.NewInstance(db.DB),
		consentStore:     consentstore.NewInstance(db.DB),
		recordsStore:     recordsstore.NewInstance(db.DB),
		eventStore:       revieweventstore.NewInstance(db.DB),
		statistics:       statistics.Instance,
		notifier:         notification.Instance,
		fileStorage:      filestorage.Instance,
		inTx:             gormTx,
	}
	initchecker.CheckInit(
		"scope", instance.scope,
		"statistics", instance.statistics,
		"notifier", instance.notifier,
	)
	Instance = instance
}

func gormTx(fn func(stores txStores) error) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		return fn(txStores{
			applications: applicationstore.NewInstance(tx),
			events:       revieweventstore.NewInstance(tx),
		})
	})
}

type impl struct {
	scope            accessscope.Provider
	applicationStore applicationstore.Provider
	profileStore     studentprofilestore.Provider
	jobPostingStore  jobpostingstore.Provider
	consentStore     consentstore.Provider
	recordsStore     recordsstore.Provider
	eventStore       revieweventstore.Provider
	statistics       statistics.Provider
	notifier         notification.Provider
	fileStorage      filestorage.Provider
	inTx             func(fn func(stores txStores) error) error
}

// reviewTarget is an application with everything a transition needs
type reviewTarget struct {
	application dbmodels.JobApplication
	student     dbmodels.StudentProfile
	posting     dbmodels.JobPosting
}

func (i impl) getLogger(userID, applicationID string) *log.Entry {
	logger := log.WithField("user_id", userID)
	if applicationID != "" {
		logger = logger.WithField("application_id", applicationID)
	}
	return logger
}

func (i impl) getProcessor(userID string) (*dbmodels.Coordinator, error) {
	coordinator, err := i.scope.GetCoordinator(userID)
	if err != nil {
		return nil, err
	}
	if err = accessscope.RequireApplicationProcessor(*coordinator); err != nil {
		return nil, err
	}
	return coordinator, nil
}

// getTarget loads the application, its student and posting. A nil coordinator skips the scope check.
func (i impl) getTarget(userID string, coordinator *dbmodels.Coordinator, applicationID string) (*reviewTarget, error) {
	logger := i.getLogger(userID, applicationID)
	application, err := i.applicationStore.GetByID(applicationID)
	if err != nil {
		logger.WithError(err).Error("failed to load job application")
		return nil, errors.Wrap(err, "failed to load job application")
	}
	if application == nil {
		return nil, apperrors.NotFound("application")
	}
	student, err := i.profileStore.GetByID(application.StudentProfileID)
	if err != nil {
		logger.WithError(err).Error("failed to load student profile")
		return nil, errors.Wrap(err, "failed to load student profile")
	}
	if student == nil {
		return nil, apperrors.NotFound("student")
	}
	if coordinator != nil && !accessscope.IsAuthorized(*coordinator, student.Department) {
		return nil, apperrors.PermissionDeniedf("student department %s is outside of your scope", student.Department)
	}
	posting, err := i.jobPostingStore.GetByID(application.JobPostingID)
	if err != nil {
		logger.WithError(err).Error("failed to load job posting")
		return nil, errors.Wrap(err, "failed to load job posting")
	}
	if posting == nil {
		return nil, apperrors.NotFound("job posting")
	}
	application.JobPosting = posting
	return &reviewTarget{
		application: *application,
		student:     *student,
		posting:     *posting,
	}, nil
}

func (i impl) ListQueue(ctx context.Context, userID string, filter applicationapimodels.ApplicationFilter) ([]applicationapimodels.ApplicationView, int64, error) {
	coordinator, err := i.getProcessor(userID)
	if err != nil {
		return nil, 0, err
	}
	views, err := i.listApplications(userID, coordinator, filter, models.ApplicationStatusSubmitted)
	if err != nil {
		return nil, 0, err
	}
	return paginate(views, filter), int64(len(views)), nil
}

func (i impl) ExportQueue(ctx context.Context, userID string, filter applicationapimodels.ApplicationFilter) ([]applicationapimodels.ApplicationView, error) {
	coordinator, err := i.getProcessor(userID)
	if err != nil {
		return nil, err
	}
	return i.listApplications(userID, coordinator, filter, models.ApplicationStatusSubmitted)
}

func (i impl) ListAdminQueue(ctx context.Context, filter applicationapimodels.ApplicationFilter) ([]applicationapimodels.ApplicationView, int64, error) {
	views, err := i.listApplications("", nil, filter, models.ApplicationStatusPendingAdmin)
	if err != nil {
		return nil, 0, err
	}
	return paginate(views, filter), int64(len(views)), nil
}

// listApplications runs the coarse store query, then filters on the loaded students. Order stays FIFO.
// JobTitle relies on the store preloading JobPosting.
func (i impl) listApplications(userID string, coordinator *dbmodels.Coordinator, filter applicationapimodels.ApplicationFilter,
	defaultStatus models.ApplicationStatus) ([]applicationapimodels.ApplicationView, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	status := filter.Status
	if status == "" {
		status = defaultStatus
	}
	logger := i.getLogger(userID, "")
	list, err := i.applicationStore.List(applicationstore.Filter{
		Statuses:     []models.ApplicationStatus{status},
		JobPostingID: filter.JobPostingID,
		CreatedFrom:  filter.CreatedFrom,
		CreatedTo:    filter.CreatedTo,
	})
	if err != nil {
		logger.WithError(err).Error("failed to list job applications")
		return nil, errors.Wrap(err, "failed to list job applications")
	}
	studentIDs := make([]string, 0, len(list))
	for _, rec := range list {
		studentIDs = append(studentIDs, rec.StudentProfileID)
	}
	students, err := i.profileStore.GetByIDs(uniqueIDs(studentIDs))
	if err != nil {
		logger.WithError(err).Error("failed to load student profiles")
		return nil, errors.Wrap(err, "failed to load student profiles")
	}
	studentMap := make(map[string]dbmodels.StudentProfile, len(students))
	for _, student := range students {
		studentMap[student.ID] = student
	}
	result := make([]applicationapimodels.ApplicationView, 0, len(list))
	for _, rec := range list {
		student, ok := studentMap[rec.StudentProfileID]
		if !ok {
			continue
		}
		if coordinator != nil && !accessscope.IsAuthorized(*coordinator, student.Department) {
			continue
		}
		if filter.CgpaMin != nil && student.Cgpi < *filter.CgpaMin {
			continue
		}
		if filter.CgpaMax != nil && student.Cgpi > *filter.CgpaMax {
			continue
		}
		if !student.MatchSearch(filter.Search) {
			continue
		}
		result = append(result, applicationapimodels.ApplicationConvert(rec, &student))
	}
	return result, nil
}

func paginate(views []applicationapimodels.ApplicationView, filter applicationapimodels.ApplicationFilter) []applicationapimodels.ApplicationView {
	from, to := filter.Bounds(len(views))
	return views[from:to]
}

func (i impl) GetDetail(ctx context.Context, userID string, role models.UserRole, applicationID string) (applicationapimodels.ApplicationDetailView, error) {
	var coordinator *dbmodels.Coordinator
	if !role.IsAdmin() {
		var err error
		coordinator, err = i.getProcessor(userID)
		if err != nil {
			return applicationapimodels.ApplicationDetailView{}, err
		}
	}
	target, err := i.getTarget(userID, coordinator, applicationID)
	if err != nil {
		return applicationapimodels.ApplicationDetailView{}, err
	}
	logger := i.getLogger(userID, applicationID)
	marks, err := i.recordsStore.ListSemesterMarks(target.student.ID)
	if err != nil {
		logger.WithError(err).Error("failed to load semester marks")
		return applicationapimodels.ApplicationDetailView{}, errors.Wrap(err, "failed to load semester marks")
	}
	consent, err := i.consentStore.GetLatestGiven(target.student.ID, target.posting.ID)
	if err != nil {
		logger.WithError(err).Error("failed to load consent")
		return applicationapimodels.ApplicationDetailView{}, errors.Wrap(err, "failed to load consent")
	}
	events, err := i.eventStore.List(dbmodels.ReviewEntityApplication, target.application.ID)
	if err != nil {
		logger.WithError(err).Error("failed to load application history")
		return applicationapimodels.ApplicationDetailView{}, errors.Wrap(err, "failed to load application history")
	}
	posting := jobpostingapimodels.JobPostingConvert(target.posting)
	result := applicationapimodels.ApplicationDetailView{
		ApplicationView: applicationapimodels.ApplicationConvert(target.application, &target.student),
		JobPosting:      &posting,
		Profile:         profileapimodels.ProfileConvert(target.student),
		SemesterMarks:   profileapimodels.SemesterMarksConvert(marks),
		Consent:         applicationapimodels.ConsentConvert(consent),
		Eligibility:     eligibility.Evaluate(eligibility.AcademicOf(target.student), target.posting.Criteria),
		History:         make([]jobpostingapimodels.ReviewEventView, 0, len(events)),
	}
	for _, event := range events {
		result.History = append(result.History, jobpostingapimodels.ReviewEventConvert(event))
	}
	if target.application.ResumeID != nil {
		resume, err := i.recordsStore.GetResume(*target.application.ResumeID)
		if err != nil {
			logger.WithError(err).Error("failed to load resume")
			return applicationapimodels.ApplicationDetailView{}, errors.Wrap(err, "failed to load resume")
		}
		if resume != nil {
			view := profileapimodels.ResumeConvert(*resume)
			view.DownloadURL = i.fileLink(ctx, logger, resume.StorageKey, resume.FileName)
			result.Resume = &view
		}
	}
	return result, nil
}

func (i impl) fileLink(ctx context.Context, logger *log.Entry, storageKey, fileName string) string {
	if i.fileStorage == nil {
		return ""
	}
	link, err := i.fileStorage.GetFileLink(ctx, storageKey, fileName)
	if err != nil {
		logger.WithError(err).Warn("failed to sign resume link")
		return ""
	}
	return link
}

func (i impl) Approve(ctx context.Context, userID, applicationID, notes string) error {
	coordinator, err := i.getProcessor(userID)
	if err != nil {
		return err
	}
	target, err := i.getTarget(userID, coordinator, applicationID)
	if err != nil {
		return err
	}
	if err = checkApprovable(*target); err != nil {
		return err
	}
	updMap := deptReviewUpdMap(models.ApplicationStatusPendingAdmin, userID, time.Now(), notes)
	err = i.transition(userID, target.application, actionDeptApprove, models.ApplicationStatusPendingAdmin, updMap, notes)
	if err != nil {
		return err
	}
	i.notifyStudent(ctx, *target, models.EventApplicationApproved, nil)
	return nil
}

// checkApprovable is the department approval gate: verified profile, SUBMITTED, eligible
func checkApprovable(target reviewTarget) error {
	if !target.student.TpoDeptVerified {
		return apperrors.PreconditionFailed("profile must be verified")
	}
	if target.application.Status != models.ApplicationStatusSubmitted {
		return apperrors.PreconditionFailedf("application in status %s cannot be approved", target.application.Status)
	}
	return eligibility.Evaluate(eligibility.AcademicOf(target.student), target.posting.Criteria).Err()
}

func (i impl) Hold(ctx context.Context, userID, applicationID, issues string) error {
	issues = strings.TrimSpace(issues)
	if issues == "" {
		return apperrors.Validation("issues are required to put an application on hold")
	}
	coordinator, err := i.getProcessor(userID)
	if err != nil {
		return err
	}
	target, err := i.getTarget(userID, coordinator, applicationID)
	if err != nil {
		return err
	}
	if target.application.Status != models.ApplicationStatusSubmitted {
		return apperrors.PreconditionFailedf("application in status %s cannot be put on hold", target.application.Status)
	}
	updMap := deptReviewUpdMap(models.ApplicationStatusHold, userID, time.Now(), issues)
	if err = i.transition(userID, target.application, actionHold, models.ApplicationStatusHold, updMap, issues); err != nil {
		return err
	}
	i.notifyStudent(ctx, *target, models.EventApplicationHold, map[string]string{"issues": issues})
	return nil
}

func (i impl) Reject(ctx context.Context, userID, applicationID, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return apperrors.Validation("reason is required to reject an application")
	}
	coordinator, err := i.getProcessor(userID)
	if err != nil {
		return err
	}
	target, err := i.getTarget(userID, coordinator, applicationID)
	if err != nil {
		return err
	}
	status := target.application.Status
	if status != models.ApplicationStatusSubmitted && status != models.ApplicationStatusHold {
		return apperrors.PreconditionFailedf("application in status %s cannot be rejected by the department", status)
	}
	now := time.Now()
	updMap := deptReviewUpdMap(models.ApplicationStatusRejected, userID, now, "")
	delete(updMap, "dept_review_notes")
	addRejection(updMap, userID, now, reason)
	if err = i.transition(userID, target.application, actionDeptReject, models.ApplicationStatusRejected, updMap, reason); err != nil {
		return err
	}
	i.notifyStudent(ctx, *target, models.EventApplicationRejected, map[string]string{"reason": reason})
	return nil
}

func (i impl) BatchApprove(ctx context.Context, userID string, applicationIDs []string, notes string) (int, error) {
	if len(applicationIDs) == 0 {
		return 0, apperrors.Validation("application ids are required")
	}
	if len(applicationIDs) > MaxBatchSize {
		return 0, apperrors.Validationf("batch too large: %d ids, at most %d are allowed", len(applicationIDs), MaxBatchSize)
	}
	coordinator, err := i.getProcessor(userID)
	if err != nil {
		return 0, err
	}
	ids := uniqueIDs(applicationIDs)
	logger := i.getLogger(userID, "").WithField("batch_size", len(ids))

	var targets []reviewTarget
	locked, err := lock.WithDelay(ctx, lock.BatchKey("approve-applications", coordinator.ID), batchLockWait, func() error {
		targets, err = i.getBatchTargets(logger, ids)
		if err != nil {
			return err
		}
		if err = checkBatch(*coordinator, targets); err != nil {
			return err
		}
		now := time.Now()
		events := make([]dbmodels.ReviewEvent, 0, len(targets))
		for _, target := range targets {
			events = append(events, newEvent(target.application.ID, actionDeptApprove, target.application.Status,
				models.ApplicationStatusPendingAdmin, userID, notes))
		}
		return i.inTx(func(stores txStores) error {
			updMap := deptReviewUpdMap(models.ApplicationStatusPendingAdmin, userID, now, notes)
			if _, err := stores.applications.BulkUpdate(ids, updMap); err != nil {
				return err
			}
			return stores.events.CreateBatch(events)
		})
	})
	if err != nil {
		if apperrors.KindOf(err) == "" {
			logger.WithError(err).Error("batch approval failed")
		}
		return 0, err
	}
	if !locked {
		return 0, apperrors.PreconditionFailed("another batch approval of this coordinator is in progress")
	}
	logger.Info("applications approved in batch")
	for _, target := range targets {
		i.notifyStudent(ctx, target, models.EventApplicationApproved, nil)
	}
	return len(targets), nil
}

func (i impl) getBatchTargets(logger *log.Entry, ids []string) ([]reviewTarget, error) {
	applications, err := i.applicationStore.GetByIDs(ids)
	if err != nil {
		logger.WithError(err).Error("failed to load job applications")
		return nil, errors.Wrap(err, "failed to load job applications")
	}
	if missing := len(ids) - len(applications); missing > 0 {
		return nil, apperrors.NotFound(fmt.Sprintf("%d of %d applications", missing, len(ids)))
	}
	studentIDs := make([]string, 0, len(applications))
	for _, rec := range applications {
		studentIDs = append(studentIDs, rec.StudentProfileID)
	}
	students, err := i.profileStore.GetByIDs(uniqueIDs(studentIDs))
	if err != nil {
		logger.WithError(err).Error("failed to load student profiles")
		return nil, errors.Wrap(err, "failed to load student profiles")
	}
	studentMap := make(map[string]dbmodels.StudentProfile, len(students))
	for _, student := range students {
		studentMap[student.ID] = student
	}
	postingMap := map[string]dbmodels.JobPosting{}
	result := make([]reviewTarget, 0, len(applications))
	missingStudents := 0
	for _, rec := range applications {
		student, ok := studentMap[rec.StudentProfileID]
		if !ok {
			missingStudents++
			continue
		}
		posting, ok := postingMap[rec.JobPostingID]
		if !ok {
			loaded, err := i.jobPostingStore.GetByID(rec.JobPostingID)
			if err != nil {
				logger.WithError(err).Error("failed to load job posting")
				return nil, errors.Wrap(err, "failed to load job posting")
			}
			if loaded == nil {
				return nil, apperrors.NotFound("job posting")
			}
			posting = *loaded
			postingMap[posting.ID] = posting
		}
		result = append(result, reviewTarget{application: rec, student: student, posting: posting})
	}
	if missingStudents > 0 {
		return nil, apperrors.NotFound(fmt.Sprintf("%d student(s)", missingStudents))
	}
	return result, nil
}

// checkBatch validates every member before anything is written
func checkBatch(coordinator dbmodels.Coordinator, targets []reviewTarget) error {
	outOfScope, unverified, wrongStatus := 0, 0, 0
	ineligible := []string{}
	for _, target := range targets {
		if !accessscope.IsAuthorized(coordinator, target.student.Department) {
			outOfScope++
			continue
		}
		if !target.student.TpoDeptVerified {
			unverified++
		}
		if target.application.Status != models.ApplicationStatusSubmitted {
			wrongStatus++
		}
		if err := eligibility.Evaluate(eligibility.AcademicOf(target.student), target.posting.Criteria).Err(); err != nil {
			ineligible = append(ineligible, fmt.Sprintf("%s: %s", target.student.EnrollmentNumber, err.Error()))
		}
	}
	if outOfScope > 0 {
		return apperrors.PermissionDeniedf("%d application(s) belong to students outside of your department scope", outOfScope)
	}
	if unverified > 0 {
		return apperrors.PreconditionFailedf("%d application(s) belong to students whose profile is not verified", unverified)
	}
	if wrongStatus > 0 {
		return apperrors.PreconditionFailedf("%d application(s) are not in status %s", wrongStatus, models.ApplicationStatusSubmitted)
	}
	if len(ineligible) > 0 {
		return apperrors.PreconditionFailedf("%d application(s) do not meet eligibility criteria (%s)", len(ineligible), strings.Join(ineligible, "; "))
	}
	return nil
}

func (i impl) Stats(ctx context.Context, userID string) (statsapimodels.ApplicationStats, error) {
	coordinator, err := i.getProcessor(userID)
	if err != nil {
		return statsapimodels.ApplicationStats{}, err
	}
	return i.statistics.ApplicationStats(accessscope.AuthorizedDepartments(*coordinator))
}

func (i impl) Forward(ctx context.Context, adminUserID, applicationID, notes string) error {
	target, err := i.getTarget(adminUserID, nil, applicationID)
	if err != nil {
		return err
	}
	if !target.application.Status.IsAllowChange(models.ApplicationStatusForwarded) {
		return apperrors.PreconditionFailedf("application in status %s cannot be forwarded", target.application.Status)
	}
	updMap := adminReviewUpdMap(models.ApplicationStatusForwarded, adminUserID, time.Now(), notes)
	if err = i.transition(adminUserID, target.application, actionForward, models.ApplicationStatusForwarded, updMap, notes); err != nil {
		return err
	}
	i.notifyStudent(ctx, *target, models.EventApplicationForwarded, nil)
	return nil
}

func (i impl) AdminReject(ctx context.Context, adminUserID, applicationID, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return apperrors.Validation("reason is required to reject an application")
	}
	target, err := i.getTarget(adminUserID, nil, applicationID)
	if err != nil {
		return err
	}
	if target.application.Status != models.ApplicationStatusPendingAdmin {
		return apperrors.PreconditionFailedf("application in status %s cannot be rejected by the administrator", target.application.Status)
	}
	now := time.Now()
	updMap := adminReviewUpdMap(models.ApplicationStatusRejected, adminUserID, now, "")
	delete(updMap, "admin_review_notes")
	addRejection(updMap, adminUserID, now, reason)
	if err = i.transition(adminUserID, target.application, actionAdminReject, models.ApplicationStatusRejected, updMap, reason); err != nil {
		return err
	}
	i.notifyStudent(ctx, *target, models.EventApplicationRejected, map[string]string{"reason": reason})
	return nil
}

// ReopenRejected is the appeal path: a rejected application goes back to the administrator queue
func (i impl) ReopenRejected(ctx context.Context, adminUserID, applicationID, notes string) error {
	target, err := i.getTarget(adminUserID, nil, applicationID)
	if err != nil {
		return err
	}
	if target.application.Status != models.ApplicationStatusRejected {
		return apperrors.PreconditionFailedf("application in status %s cannot be re-opened", target.application.Status)
	}
	updMap := adminReviewUpdMap(models.ApplicationStatusPendingAdmin, adminUserID, time.Now(), notes)
	updMap["rejection_reason"] = ""
	updMap["rejected_by"] = nil
	updMap["rejected_at"] = nil
	if err = i.transition(adminUserID, target.application, actionReopen, models.ApplicationStatusPendingAdmin, updMap, notes); err != nil {
		return err
	}
	i.notifyStudent(ctx, *target, models.EventApplicationReopened, nil)
	return nil
}

func (i impl) transition(userID string, application dbmodels.JobApplication, action string, to models.ApplicationStatus,
	updMap map[string]interface{}, comment string) error {
	logger := i.getLogger(userID, application.ID).
		WithField("action", action).
		WithField("new_status", to)
	err := i.inTx(func(stores txStores) error {
		if err := stores.applications.Update(application.ID, updMap); err != nil {
			return err
		}
		_, err := stores.events.Create(newEvent(application.ID, action, application.Status, to, userID, comment))
		return err
	})
	if err != nil {
		logger.WithError(err).Error("failed to update job application")
		return errors.Wrap(err, "failed to update job application")
	}
	logger.Info("job application status changed")
	return nil
}

func (i impl) notifyStudent(ctx context.Context, target reviewTarget, event models.NotificationEvent, payload map[string]string) {
	data := map[string]string{"job_title": target.posting.Title}
	for key, value := range payload {
		data[key] = value
	}
	i.notifier.Notify(ctx, event, target.student.UserID, data)
}

func deptReviewUpdMap(status models.ApplicationStatus, userID string, now time.Time, notes string) map[string]interface{} {
	return map[string]interface{}{
		"status":            status,
		"dept_reviewed_by":  userID,
		"dept_reviewed_at":  now,
		"dept_review_notes": strings.TrimSpace(notes),
	}
}

func adminReviewUpdMap(status models.ApplicationStatus, userID string, now time.Time, notes string) map[string]interface{} {
	return map[string]interface{}{
		"status":             status,
		"admin_reviewed_by":  userID,
		"admin_reviewed_at":  now,
		"admin_review_notes": strings.TrimSpace(notes),
	}
}

func addRejection(updMap map[string]interface{}, userID string, now time.Time, reason string) {
	updMap["rejection_reason"] = reason
	updMap["rejected_by"] = userID
	updMap["rejected_at"] = now
}

func newEvent(id, action string, from, to models.ApplicationStatus, actorID, comment string) dbmodels.ReviewEvent {
	return dbmodels.ReviewEvent{
		EntityType: dbmodels.ReviewEntityApplication,
		EntityID:   id,
		Action:     action,
		FromStatus: string(from),
		ToStatus:   string(to),
		ActorID:    actorID,
		Comment:    strings.TrimSpace(comment),
	}
}

func uniqueIDs(ids []string) []string {
	result := make([]string, 0, len(ids))
	seen := map[string]bool{}
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		result = append(result, id)
	}
	return result
}
