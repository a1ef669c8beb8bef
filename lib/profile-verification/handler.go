package profileverification

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"tpo-portal-backend/db"
	accessscope "tpo-portal-backend/lib/access-scope"
	filestorage "tpo-portal-backend/lib/file-storage"
	"tpo-portal-backend/lib/notification"
	"tpo-portal-backend/lib/statistics"
	recordsstore "tpo-portal-backend/lib/student-profile/records-store"
	reviewnotestore "tpo-portal-backend/lib/student-profile/review-note-store"
	studentprofilestore "tpo-portal-backend/lib/student-profile/store"
	apperrors "tpo-portal-backend/lib/utils/app-errors"
	initchecker "tpo-portal-backend/lib/utils/init-checker"
	"tpo-portal-backend/lib/utils/lock"
	"tpo-portal-backend/models"
	profileapimodels "tpo-portal-backend/models/api/profile"
	statsapimodels "tpo-portal-backend/models/api/stats"
	dbmodels "tpo-portal-backend/models/db"
)

const (
	MinCompletionPercent = 80
	MaxBatchSize         = 50

	batchLockWait = 5 * time.Second
)

type Provider interface {
	ListCandidates(ctx context.Context, userID string, filter profileapimodels.ProfileFilter) (profileapimodels.ProfileListResult, int64, error)
	ExportCandidates(ctx context.Context, userID string, filter profileapimodels.ProfileFilter) ([]profileapimodels.ProfileView, error)
	GetDetail(ctx context.Context, userID, studentID string) (profileapimodels.ProfileDetailView, error)
	Verify(ctx context.Context, userID, studentID, notes string) error
	Hold(ctx context.Context, userID, studentID, issues string) error
	Reject(ctx context.Context, userID, studentID, reason string) error
	BatchVerify(ctx context.Context, userID string, studentIDs []string, notes string) (verified int, err error)
	Stats(ctx context.Context, userID string) (statsapimodels.ProfileStats, error)
}

var Instance Provider

// txStores are the stores bound to one database transaction
type txStores struct {
	profiles studentprofilestore.Provider
	notes    reviewnotestore.Provider
}

func NewHandler() {
	instance := impl{
		scope:        accessscope.Instance,
		profileStore: studentprofilestore.NewInstance(db.DB),
		noteStore:    reviewnotestore.NewInstance(db.DB),
		recordsStore: recordsstore.NewInstance(db.DB),
		statistics:   statistics.Instance,
		notifier:     notification.Instance,
		fileStorage:  filestorage.Instance,
		inTx:         gormTx,
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
			profiles: studentprofilestore.NewInstance(tx),
			notes:    reviewnotestore.NewInstance(tx),
		})
	})
}

type impl struct {
	scope        accessscope.Provider
	profileStore studentprofilestore.Provider
	noteStore    reviewnotestore.Provider
	recordsStore recordsstore.Provider
	statistics   statistics.Provider
	notifier     notification.Provider
	fileStorage  filestorage.Provider
	inTx         func(fn func(stores txStores) error) error
}

func (i impl) getLogger(userID, studentID string) *log.Entry {
	logger := log.WithField("coordinator_user_id", userID)
	if studentID != "" {
		logger = logger.WithField("student_id", studentID)
	}
	return logger
}

func (i impl) getVerifier(userID string) (*dbmodels.Coordinator, error) {
	coordinator, err := i.scope.GetCoordinator(userID)
	if err != nil {
		return nil, err
	}
	if err = accessscope.RequireProfileVerifier(*coordinator); err != nil {
		return nil, err
	}
	return coordinator, nil
}

func (i impl) getStudentInScope(coordinator dbmodels.Coordinator, studentID string) (*dbmodels.StudentProfile, error) {
	student, err := i.profileStore.GetByID(studentID)
	if err != nil {
		i.getLogger(coordinator.UserID, studentID).WithError(err).Error("failed to load student profile")
		return nil, errors.Wrap(err, "failed to load student profile")
	}
	if student == nil {
		return nil, apperrors.NotFound("student")
	}
	if !accessscope.IsAuthorized(coordinator, student.Department) {
		return nil, apperrors.PermissionDeniedf("student department %s is outside of your scope", student.Department)
	}
	return student, nil
}

func (i impl) ListCandidates(ctx context.Context, userID string, filter profileapimodels.ProfileFilter) (profileapimodels.ProfileListResult, int64, error) {
	candidates, stats, err := i.listCandidates(userID, filter)
	if err != nil {
		return profileapimodels.ProfileListResult{}, 0, err
	}
	from, to := filter.Bounds(len(candidates))
	result := profileapimodels.ProfileListResult{
		List:  make([]profileapimodels.ProfileView, 0, to-from),
		Stats: stats,
	}
	for _, rec := range candidates[from:to] {
		result.List = append(result.List, profileapimodels.ProfileConvert(rec))
	}
	return result, int64(len(candidates)), nil
}

func (i impl) ExportCandidates(ctx context.Context, userID string, filter profileapimodels.ProfileFilter) ([]profileapimodels.ProfileView, error) {
	candidates, _, err := i.listCandidates(userID, filter)
	if err != nil {
		return nil, err
	}
	result := make([]profileapimodels.ProfileView, 0, len(candidates))
	for _, rec := range candidates {
		result = append(result, profileapimodels.ProfileConvert(rec))
	}
	return result, nil
}

// listCandidates returns the whole filtered, ordered set and its aggregates
func (i impl) listCandidates(userID string, filter profileapimodels.ProfileFilter) ([]dbmodels.StudentProfile, profileapimodels.ListStats, error) {
	stats := profileapimodels.ListStats{}
	coordinator, err := i.getVerifier(userID)
	if err != nil {
		return nil, stats, err
	}
	if err = filter.Validate(); err != nil {
		return nil, stats, err
	}
	list, err := i.profileStore.List(studentprofilestore.Filter{
		Departments:    accessscope.AuthorizedDepartments(*coordinator),
		GraduationYear: filter.GraduationYear,
		Semester:       filter.Semester,
		CompletionMin:  filter.CompletionMin,
		CompletionMax:  filter.CompletionMax,
	})
	if err != nil {
		i.getLogger(userID, "").WithError(err).Error("failed to list student profiles")
		return nil, stats, errors.Wrap(err, "failed to list student profiles")
	}
	candidates := make([]dbmodels.StudentProfile, 0, len(list))
	completionSum := 0
	for _, rec := range list {
		if filter.Status != "" && rec.VerificationBucket() != filter.Status {
			continue
		}
		if !rec.MatchSearch(filter.Search) {
			continue
		}
		candidates = append(candidates, rec)
		completionSum += rec.ProfileCompletePercent
		switch rec.VerificationBucket() {
		case models.BucketVerified:
			stats.Verified++
		case models.BucketRejected:
			stats.Rejected++
		default:
			stats.Pending++
		}
	}
	stats.Total = len(candidates)
	if stats.Total > 0 {
		stats.AverageCompletion = math.Round(float64(completionSum)/float64(stats.Total)*100) / 100
	}
	sort.SliceStable(candidates, func(a, b int) bool {
		left, right := candidates[a], candidates[b]
		if left.TpoDeptVerified != right.TpoDeptVerified {
			return !left.TpoDeptVerified
		}
		if left.ProfileCompletePercent != right.ProfileCompletePercent {
			return left.ProfileCompletePercent > right.ProfileCompletePercent
		}
		return left.EnrollmentNumber < right.EnrollmentNumber
	})
	return candidates, stats, nil
}

func (i impl) GetDetail(ctx context.Context, userID, studentID string) (profileapimodels.ProfileDetailView, error) {
	coordinator, err := i.getVerifier(userID)
	if err != nil {
		return profileapimodels.ProfileDetailView{}, err
	}
	student, err := i.getStudentInScope(*coordinator, studentID)
	if err != nil {
		return profileapimodels.ProfileDetailView{}, err
	}
	logger := i.getLogger(userID, studentID)
	marks, err := i.recordsStore.ListSemesterMarks(student.ID)
	if err != nil {
		logger.WithError(err).Error("failed to load semester marks")
		return profileapimodels.ProfileDetailView{}, errors.Wrap(err, "failed to load semester marks")
	}
	resumes, err := i.recordsStore.ListResumes(student.ID)
	if err != nil {
		logger.WithError(err).Error("failed to load resumes")
		return profileapimodels.ProfileDetailView{}, errors.Wrap(err, "failed to load resumes")
	}
	documents, err := i.recordsStore.ListDocuments(student.ID)
	if err != nil {
		logger.WithError(err).Error("failed to load documents")
		return profileapimodels.ProfileDetailView{}, errors.Wrap(err, "failed to load documents")
	}
	notes, err := i.noteStore.List(student.ID)
	if err != nil {
		logger.WithError(err).Error("failed to load review notes")
		return profileapimodels.ProfileDetailView{}, errors.Wrap(err, "failed to load review notes")
	}
	result := profileapimodels.ProfileDetailView{
		ProfileView:   profileapimodels.ProfileConvert(*student),
		SemesterMarks: profileapimodels.SemesterMarksConvert(marks),
		Resumes:       make([]profileapimodels.ResumeView, 0, len(resumes)),
		Documents:     make([]profileapimodels.DocumentView, 0, len(documents)),
		ReviewNotes:   make([]profileapimodels.ReviewNoteView, 0, len(notes)),
	}
	for _, rec := range resumes {
		view := profileapimodels.ResumeConvert(rec)
		view.DownloadURL = i.fileLink(ctx, logger, rec.StorageKey, rec.FileName)
		result.Resumes = append(result.Resumes, view)
	}
	for _, rec := range documents {
		result.Documents = append(result.Documents, profileapimodels.DocumentView{ID: rec.ID, Title: rec.Title})
	}
	for _, rec := range notes {
		result.ReviewNotes = append(result.ReviewNotes, profileapimodels.ReviewNoteConvert(rec))
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

func (i impl) Verify(ctx context.Context, userID, studentID, notes string) error {
	coordinator, err := i.getVerifier(userID)
	if err != nil {
		return err
	}
	student, err := i.getStudentInScope(*coordinator, studentID)
	if err != nil {
		return err
	}
	if student.ProfileCompletePercent < MinCompletionPercent {
		return apperrors.PreconditionFailedf("profile completion must be ≥ %d%%", MinCompletionPercent)
	}
	if !student.ProfileStatus.AllowVerify() {
		return apperrors.PreconditionFailedf("profile in status %s cannot be verified", student.ProfileStatus)
	}
	logger := i.getLogger(userID, studentID)
	err = i.inTx(func(stores txStores) error {
		err := stores.profiles.Update(student.ID, verifyUpdMap(userID, time.Now()))
		if err != nil {
			return err
		}
		_, err = stores.notes.Create(newNote(student.ID, models.ProfileStatusVerified, notes, userID))
		return err
	})
	if err != nil {
		logger.WithError(err).Error("failed to verify student profile")
		return errors.Wrap(err, "failed to verify student profile")
	}
	logger.Info("student profile verified")
	i.notifier.Notify(ctx, models.EventProfileVerified, student.UserID, nil)
	return nil
}

func (i impl) Hold(ctx context.Context, userID, studentID, issues string) error {
	issues = strings.TrimSpace(issues)
	if issues == "" {
		return apperrors.Validation("issues are required to put a profile on hold")
	}
	student, err := i.changeStatus(userID, studentID, models.ProfileStatusHold, issues)
	if err != nil {
		return err
	}
	i.notifier.Notify(ctx, models.EventProfileHold, student.UserID, map[string]string{"issues": issues})
	return nil
}

func (i impl) Reject(ctx context.Context, userID, studentID, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return apperrors.Validation("reason is required to reject a profile")
	}
	student, err := i.changeStatus(userID, studentID, models.ProfileStatusRejected, reason)
	if err != nil {
		return err
	}
	i.notifier.Notify(ctx, models.EventProfileRejected, student.UserID, map[string]string{"reason": reason})
	return nil
}

// changeStatus moves an unverified profile to HOLD or REJECTED and logs the comment
func (i impl) changeStatus(userID, studentID string, status models.ProfileStatus, comment string) (*dbmodels.StudentProfile, error) {
	coordinator, err := i.getVerifier(userID)
	if err != nil {
		return nil, err
	}
	student, err := i.getStudentInScope(*coordinator, studentID)
	if err != nil {
		return nil, err
	}
	allowed := student.ProfileStatus.AllowHold()
	if status == models.ProfileStatusRejected {
		allowed = student.ProfileStatus.AllowReject()
	}
	if !allowed {
		return nil, apperrors.PreconditionFailedf("profile in status %s cannot be moved to %s", student.ProfileStatus, status)
	}
	logger := i.getLogger(userID, studentID).WithField("new_status", status)
	err = i.inTx(func(stores txStores) error {
		updMap := map[string]interface{}{
			"tpo_dept_verified": false,
			"profile_status":    status,
		}
		if err := stores.profiles.Update(student.ID, updMap); err != nil {
			return err
		}
		_, err := stores.notes.Create(newNote(student.ID, status, comment, userID))
		return err
	})
	if err != nil {
		logger.WithError(err).Error("failed to change student profile status")
		return nil, errors.Wrap(err, "failed to change student profile status")
	}
	logger.Info("student profile status changed")
	return student, nil
}

func (i impl) BatchVerify(ctx context.Context, userID string, studentIDs []string, notes string) (int, error) {
	if len(studentIDs) == 0 {
		return 0, apperrors.Validation("student ids are required")
	}
	if len(studentIDs) > MaxBatchSize {
		return 0, apperrors.Validationf("batch too large: %d ids, at most %d are allowed", len(studentIDs), MaxBatchSize)
	}
	coordinator, err := i.getVerifier(userID)
	if err != nil {
		return 0, err
	}
	ids := uniqueIDs(studentIDs)
	logger := i.getLogger(userID, "").WithField("batch_size", len(ids))

	var students []dbmodels.StudentProfile
	locked, err := lock.WithDelay(ctx, lock.BatchKey("verify-profiles", coordinator.ID), batchLockWait, func() error {
		students, err = i.profileStore.GetByIDs(ids)
		if err != nil {
			logger.WithError(err).Error("failed to load student profiles")
			return errors.Wrap(err, "failed to load student profiles")
		}
		if err = checkBatch(*coordinator, ids, students); err != nil {
			return err
		}
		now := time.Now()
		noteList := make([]dbmodels.ProfileReviewNote, 0, len(students))
		for _, student := range students {
			noteList = append(noteList, newNote(student.ID, models.ProfileStatusVerified, notes, userID))
		}
		return i.inTx(func(stores txStores) error {
			if _, err := stores.profiles.BulkUpdate(ids, verifyUpdMap(userID, now)); err != nil {
				return err
			}
			return stores.notes.CreateBatch(noteList)
		})
	})
	if err != nil {
		if apperrors.KindOf(err) == "" {
			logger.WithError(err).Error("batch verification failed")
		}
		return 0, err
	}
	if !locked {
		return 0, apperrors.PreconditionFailed("another batch verification of this coordinator is in progress")
	}
	logger.Info("student profiles verified in batch")
	for _, student := range students {
		i.notifier.Notify(ctx, models.EventProfileVerified, student.UserID, nil)
	}
	return len(students), nil
}

// checkBatch validates the whole batch before anything is written
func checkBatch(coordinator dbmodels.Coordinator, ids []string, students []dbmodels.StudentProfile) error {
	if missing := len(ids) - len(students); missing > 0 {
		return apperrors.NotFound(fmt.Sprintf("%d of %d students", missing, len(ids)))
	}
	outOfScope, incomplete, rejected := 0, 0, 0
	for _, student := range students {
		if !accessscope.IsAuthorized(coordinator, student.Department) {
			outOfScope++
		}
		if student.ProfileCompletePercent < MinCompletionPercent {
			incomplete++
		}
		if !student.ProfileStatus.AllowVerify() {
			rejected++
		}
	}
	if outOfScope > 0 {
		return apperrors.PermissionDeniedf("%d student(s) are outside of your department scope", outOfScope)
	}
	if incomplete > 0 {
		return apperrors.PreconditionFailedf("%d student(s) have profile completion below %d%%", incomplete, MinCompletionPercent)
	}
	if rejected > 0 {
		return apperrors.PreconditionFailedf("%d student(s) are rejected and cannot be verified", rejected)
	}
	return nil
}

func (i impl) Stats(ctx context.Context, userID string) (statsapimodels.ProfileStats, error) {
	coordinator, err := i.getVerifier(userID)
	if err != nil {
		return statsapimodels.ProfileStats{}, err
	}
	return i.statistics.ProfileStats(accessscope.AuthorizedDepartments(*coordinator))
}

func verifyUpdMap(userID string, now time.Time) map[string]interface{} {
	return map[string]interface{}{
		"tpo_dept_verified":    true,
		"tpo_dept_verified_by": userID,
		"tpo_dept_verified_at": now,
		"profile_status":       models.ProfileStatusVerified,
	}
}

func newNote(studentID string, action models.ProfileStatus, comment, actorID string) dbmodels.ProfileReviewNote {
	return dbmodels.ProfileReviewNote{
		StudentProfileID: studentID,
		Action:           action,
		Comment:          strings.TrimSpace(comment),
		ActorID:          actorID,
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
