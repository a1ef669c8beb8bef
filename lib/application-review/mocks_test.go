package applicationreview

import (
	"context"
	"sort"
	"time"

	"github.com/pkg/errors"
	applicationstore "tpo-portal-backend/lib/application-review/store"
	jobpostingstore "tpo-portal-backend/lib/job-posting/store"
	studentprofilestore "tpo-portal-backend/lib/student-profile/store"
	apperrors "tpo-portal-backend/lib/utils/app-errors"
	"tpo-portal-backend/models"
	statsapimodels "tpo-portal-backend/models/api/stats"
	dbmodels "tpo-portal-backend/models/db"
)

type scopeMock struct {
	recs map[string]dbmodels.Coordinator
}

func (m scopeMock) GetCoordinator(userID string) (*dbmodels.Coordinator, error) {
	rec, ok := m.recs[userID]
	if !ok || !rec.IsActive {
		return nil, apperrors.NotFound("coordinator")
	}
	return &rec, nil
}

type applicationStoreMock struct {
	recs     map[string]*dbmodels.JobApplication
	postings map[string]dbmodels.JobPosting
	writes   int
}

func (m *applicationStoreMock) GetByID(id string) (*dbmodels.JobApplication, error) {
	rec, ok := m.recs[id]
	if !ok {
		return nil, nil
	}
	result := *rec
	return &result, nil
}

func (m *applicationStoreMock) GetByIDs(ids []string) ([]dbmodels.JobApplication, error) {
	var result []dbmodels.JobApplication
	for _, id := range ids {
		if rec, ok := m.recs[id]; ok {
			result = append(result, *rec)
		}
	}
	return result, nil
}

func (m *applicationStoreMock) List(filter applicationstore.Filter) ([]dbmodels.JobApplication, error) {
	var result []dbmodels.JobApplication
	for _, rec := range m.recs {
		matched := len(filter.Statuses) == 0
		for _, status := range filter.Statuses {
			if rec.Status == status {
				matched = true
			}
		}
		if !matched {
			continue
		}
		if filter.JobPostingID != "" && rec.JobPostingID != filter.JobPostingID {
			continue
		}
		if filter.CreatedFrom != nil && rec.CreatedAt.Before(*filter.CreatedFrom) {
			continue
		}
		if filter.CreatedTo != nil && rec.CreatedAt.After(*filter.CreatedTo) {
			continue
		}
		item := *rec
		if posting, ok := m.postings[item.JobPostingID]; ok {
			item.JobPosting = &posting
		}
		result = append(result, item)
	}
	sort.Slice(result, func(a, b int) bool {
		return result[a].CreatedAt.Before(result[b].CreatedAt)
	})
	return result, nil
}

func (m *applicationStoreMock) Update(id string, updMap map[string]interface{}) error {
	rec, ok := m.recs[id]
	if !ok {
		return errors.New("job application not updated")
	}
	m.writes++
	applyApplicationUpdate(rec, updMap)
	return nil
}

func (m *applicationStoreMock) BulkUpdate(ids []string, updMap map[string]interface{}) (int64, error) {
	var affected int64
	for _, id := range ids {
		if rec, ok := m.recs[id]; ok {
			applyApplicationUpdate(rec, updMap)
			affected++
		}
	}
	m.writes++
	return affected, nil
}

func (m *applicationStoreMock) CountByStatus(departments []string) (map[models.ApplicationStatus]int64, error) {
	return nil, nil
}

func stringPtr(value interface{}) *string {
	if value == nil {
		return nil
	}
	result := value.(string)
	return &result
}

func timePtr(value interface{}) *time.Time {
	if value == nil {
		return nil
	}
	result := value.(time.Time)
	return &result
}

func applyApplicationUpdate(rec *dbmodels.JobApplication, updMap map[string]interface{}) {
	for key, value := range updMap {
		switch key {
		case "status":
			rec.Status = value.(models.ApplicationStatus)
		case "dept_reviewed_by":
			rec.DeptReviewedBy = stringPtr(value)
		case "dept_reviewed_at":
			rec.DeptReviewedAt = timePtr(value)
		case "dept_review_notes":
			rec.DeptReviewNotes = value.(string)
		case "admin_reviewed_by":
			rec.AdminReviewedBy = stringPtr(value)
		case "admin_reviewed_at":
			rec.AdminReviewedAt = timePtr(value)
		case "admin_review_notes":
			rec.AdminReviewNotes = value.(string)
		case "rejection_reason":
			rec.RejectionReason = value.(string)
		case "rejected_by":
			rec.RejectedBy = stringPtr(value)
		case "rejected_at":
			rec.RejectedAt = timePtr(value)
		}
	}
}

type profileStoreMock struct {
	studentprofilestore.Provider
	recs map[string]dbmodels.StudentProfile
}

func (m profileStoreMock) GetByID(id string) (*dbmodels.StudentProfile, error) {
	rec, ok := m.recs[id]
	if !ok || rec.DeletedAt.Valid {
		return nil, nil
	}
	return &rec, nil
}

func (m profileStoreMock) GetByIDs(ids []string) ([]dbmodels.StudentProfile, error) {
	var result []dbmodels.StudentProfile
	for _, id := range ids {
		if rec, _ := m.GetByID(id); rec != nil {
			result = append(result, *rec)
		}
	}
	return result, nil
}

type postingStoreMock struct {
	jobpostingstore.Provider
	recs map[string]dbmodels.JobPosting
}

func (m postingStoreMock) GetByID(id string) (*dbmodels.JobPosting, error) {
	rec, ok := m.recs[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

type consentStoreMock struct {
	rec *dbmodels.Consent
}

func (m consentStoreMock) GetLatestGiven(studentProfileID, jobPostingID string) (*dbmodels.Consent, error) {
	return m.rec, nil
}

type recordsStoreMock struct {
	resumes map[string]dbmodels.Resume
}

func (m recordsStoreMock) ListSemesterMarks(studentProfileID string) ([]dbmodels.SemesterMark, error) {
	return []dbmodels.SemesterMark{{Semester: 6, Sgpi: 7.9}}, nil
}

func (m recordsStoreMock) ListDocuments(studentProfileID string) ([]dbmodels.Document, error) {
	return nil, nil
}

func (m recordsStoreMock) ListResumes(studentProfileID string) ([]dbmodels.Resume, error) {
	return nil, nil
}

func (m recordsStoreMock) GetResume(id string) (*dbmodels.Resume, error) {
	rec, ok := m.resumes[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

type eventStoreMock struct {
	list []dbmodels.ReviewEvent
}

func (m *eventStoreMock) Create(rec dbmodels.ReviewEvent) (string, error) {
	m.list = append(m.list, rec)
	return "event-id", nil
}

func (m *eventStoreMock) CreateBatch(list []dbmodels.ReviewEvent) error {
	m.list = append(m.list, list...)
	return nil
}

func (m *eventStoreMock) List(entityType, entityID string) ([]dbmodels.ReviewEvent, error) {
	var result []dbmodels.ReviewEvent
	for _, rec := range m.list {
		if rec.EntityType == entityType && rec.EntityID == entityID {
			result = append(result, rec)
		}
	}
	return result, nil
}

type statisticsMock struct {
	departments []string
}

func (m *statisticsMock) ProfileStats(departments []string) (statsapimodels.ProfileStats, error) {
	return statsapimodels.ProfileStats{}, nil
}

func (m *statisticsMock) ApplicationStats(departments []string) (statsapimodels.ApplicationStats, error) {
	m.departments = departments
	return statsapimodels.ApplicationStats{ApprovalRate: "0.00%"}, nil
}

func (m *statisticsMock) Dashboard(userID string, role models.UserRole) (statsapimodels.Dashboard, error) {
	return statsapimodels.Dashboard{}, nil
}

type fileStorageMock struct{}

func (m fileStorageMock) GetFileLink(_ context.Context, storageKey, fileName string) (string, error) {
	return "https://files.local/" + storageKey, nil
}

func (m fileStorageMock) MakeBucket(_ context.Context) error { return nil }

type sentNotification struct {
	event   models.NotificationEvent
	userID  string
	payload map[string]string
}

type notifierMock struct {
	sent []sentNotification
}

func (m *notifierMock) Notify(_ context.Context, event models.NotificationEvent, recipientUserID string, payload map[string]string) {
	m.sent = append(m.sent, sentNotification{event: event, userID: recipientUserID, payload: payload})
}
