package profileverification

import (
	"context"
	"time"

	"github.com/pkg/errors"
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

type profileStoreMock struct {
	recs    map[string]*dbmodels.StudentProfile
	writes  int
	listErr error
}

func newProfileStoreMock(list ...dbmodels.StudentProfile) *profileStoreMock {
	m := &profileStoreMock{recs: map[string]*dbmodels.StudentProfile{}}
	for idx := range list {
		rec := list[idx]
		m.recs[rec.ID] = &rec
	}
	return m
}

func (m *profileStoreMock) GetByID(id string) (*dbmodels.StudentProfile, error) {
	rec, ok := m.recs[id]
	if !ok || rec.DeletedAt.Valid {
		return nil, nil
	}
	result := *rec
	return &result, nil
}

func (m *profileStoreMock) GetByIDs(ids []string) ([]dbmodels.StudentProfile, error) {
	var result []dbmodels.StudentProfile
	for _, id := range ids {
		if rec, _ := m.GetByID(id); rec != nil {
			result = append(result, *rec)
		}
	}
	return result, nil
}

func (m *profileStoreMock) List(filter studentprofilestore.Filter) ([]dbmodels.StudentProfile, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []dbmodels.StudentProfile
	for _, rec := range m.recs {
		if rec.DeletedAt.Valid || !contains(filter.Departments, rec.Department) {
			continue
		}
		if filter.GraduationYear != 0 && rec.GraduationYear != filter.GraduationYear {
			continue
		}
		if filter.Semester != 0 && rec.CurrentSemester != filter.Semester {
			continue
		}
		if filter.CompletionMin != nil && rec.ProfileCompletePercent < *filter.CompletionMin {
			continue
		}
		if filter.CompletionMax != nil && rec.ProfileCompletePercent > *filter.CompletionMax {
			continue
		}
		result = append(result, *rec)
	}
	return result, nil
}

func (m *profileStoreMock) Update(id string, updMap map[string]interface{}) error {
	rec, ok := m.recs[id]
	if !ok {
		return errors.New("student profile not updated")
	}
	m.writes++
	applyProfileUpdate(rec, updMap)
	return nil
}

func (m *profileStoreMock) BulkUpdate(ids []string, updMap map[string]interface{}) (int64, error) {
	var affected int64
	for _, id := range ids {
		if rec, ok := m.recs[id]; ok {
			applyProfileUpdate(rec, updMap)
			affected++
		}
	}
	m.writes++
	return affected, nil
}

func (m *profileStoreMock) CountByStatus(departments []string) ([]studentprofilestore.StatusCount, error) {
	return nil, nil
}

func applyProfileUpdate(rec *dbmodels.StudentProfile, updMap map[string]interface{}) {
	for key, value := range updMap {
		switch key {
		case "tpo_dept_verified":
			rec.TpoDeptVerified = value.(bool)
		case "tpo_dept_verified_by":
			by := value.(string)
			rec.TpoDeptVerifiedBy = &by
		case "tpo_dept_verified_at":
			at := value.(time.Time)
			rec.TpoDeptVerifiedAt = &at
		case "profile_status":
			rec.ProfileStatus = value.(models.ProfileStatus)
		}
	}
}

type noteStoreMock struct {
	list []dbmodels.ProfileReviewNote
}

func (m *noteStoreMock) Create(rec dbmodels.ProfileReviewNote) (string, error) {
	m.list = append(m.list, rec)
	return "note-id", nil
}

func (m *noteStoreMock) CreateBatch(list []dbmodels.ProfileReviewNote) error {
	m.list = append(m.list, list...)
	return nil
}

func (m *noteStoreMock) List(studentProfileID string) ([]dbmodels.ProfileReviewNote, error) {
	var result []dbmodels.ProfileReviewNote
	for _, rec := range m.list {
		if rec.StudentProfileID == studentProfileID {
			result = append(result, rec)
		}
	}
	return result, nil
}

type recordsStoreMock struct {
	marks   []dbmodels.SemesterMark
	resumes []dbmodels.Resume
}

func (m recordsStoreMock) ListSemesterMarks(studentProfileID string) ([]dbmodels.SemesterMark, error) {
	return m.marks, nil
}

func (m recordsStoreMock) ListDocuments(studentProfileID string) ([]dbmodels.Document, error) {
	return nil, nil
}

func (m recordsStoreMock) ListResumes(studentProfileID string) ([]dbmodels.Resume, error) {
	return m.resumes, nil
}

func (m recordsStoreMock) GetResume(id string) (*dbmodels.Resume, error) {
	return nil, nil
}

type fileStorageMock struct{}

func (m fileStorageMock) GetFileLink(_ context.Context, storageKey, fileName string) (string, error) {
	return "https://files.local/" + storageKey, nil
}

func (m fileStorageMock) MakeBucket(_ context.Context) error { return nil }

type statisticsMock struct {
	departments []string
}

func (m *statisticsMock) ProfileStats(departments []string) (statsapimodels.ProfileStats, error) {
	m.departments = departments
	return statsapimodels.ProfileStats{VerificationRate: "0.00%"}, nil
}

func (m *statisticsMock) ApplicationStats(departments []string) (statsapimodels.ApplicationStats, error) {
	return statsapimodels.ApplicationStats{}, nil
}

func (m *statisticsMock) Dashboard(userID string, role models.UserRole) (statsapimodels.Dashboard, error) {
	return statsapimodels.Dashboard{}, nil
}

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

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
