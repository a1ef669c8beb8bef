package applicationreview

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "tpo-portal-backend/lib/utils/app-errors"
	"tpo-portal-backend/models"
	apimodels "tpo-portal-backend/models/api"
	applicationapimodels "tpo-portal-backend/models/api/application"
	dbmodels "tpo-portal-backend/models/db"
)

const (
	coordinatorUserID = "coord-user"
	verifierOnlyID    = "verifier-user"
	adminUserID       = "admin-user"
	postingID         = "posting-1"
)

var baseTime = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

type fixture struct {
	provider     impl
	applications *applicationStoreMock
	students     map[string]dbmodels.StudentProfile
	events       *eventStoreMock
	notifier     *notifierMock
	stats        *statisticsMock
	txCounter    int
}

func newFixture(students []dbmodels.StudentProfile, applications ...dbmodels.JobApplication) *fixture {
	posting := dbmodels.JobPosting{
		BaseModel: dbmodels.BaseModel{ID: postingID},
		Title:     "Backend Engineer",
		Status:    models.JobPostingStatusActive,
		Criteria: dbmodels.EligibilityCriteria{
			CgpaMin:         7.0,
			MaxBacklogs:     0,
			AllowedBranches: pq.StringArray{"CSE", "IT"},
		},
	}
	f := &fixture{
		applications: &applicationStoreMock{
			recs:     map[string]*dbmodels.JobApplication{},
			postings: map[string]dbmodels.JobPosting{postingID: posting},
		},
		students: map[string]dbmodels.StudentProfile{},
		events:   &eventStoreMock{},
		notifier: &notifierMock{},
		stats:    &statisticsMock{},
	}
	for _, rec := range students {
		f.students[rec.ID] = rec
	}
	for idx := range applications {
		rec := applications[idx]
		f.applications.recs[rec.ID] = &rec
	}
	resumeID := "resume-1"
	consentAt := baseTime.Add(-time.Hour)
	f.provider = impl{
		scope: scopeMock{recs: map[string]dbmodels.Coordinator{
			coordinatorUserID: {
				BaseModel:              dbmodels.BaseModel{ID: "coord-1"},
				UserID:                 coordinatorUserID,
				PrimaryDepartment:      "CSE",
				AssignedDepartments:    pq.StringArray{"IT"},
				CanProcessApplications: true,
				IsActive:               true,
			},
			verifierOnlyID: {
				BaseModel:         dbmodels.BaseModel{ID: "coord-2"},
				UserID:            verifierOnlyID,
				PrimaryDepartment: "CSE",
				CanVerifyProfiles: true,
				IsActive:          true,
			},
		}},
		applicationStore: f.applications,
		profileStore:     profileStoreMock{recs: f.students},
		jobPostingStore:  postingStoreMock{recs: map[string]dbmodels.JobPosting{postingID: posting}},
		consentStore: consentStoreMock{rec: &dbmodels.Consent{
			Given:      true,
			GivenAt:    &consentAt,
			DataShared: pq.StringArray{"resume", "marks"},
		}},
		recordsStore: recordsStoreMock{resumes: map[string]dbmodels.Resume{
			resumeID: {BaseModel: dbmodels.BaseModel{ID: resumeID}, FileName: "cv.pdf", StorageKey: "resumes/cv.pdf"},
		}},
		eventStore:  f.events,
		statistics:  f.stats,
		notifier:    f.notifier,
		fileStorage: fileStorageMock{},
		inTx: func(fn func(stores txStores) error) error {
			f.txCounter++
			return fn(txStores{applications: f.applications, events: f.events})
		},
	}
	return f
}

func student(id, department string, cgpi float64) dbmodels.StudentProfile {
	return dbmodels.StudentProfile{
		BaseModel:              dbmodels.BaseModel{ID: id},
		UserID:                 "user-" + id,
		EnrollmentNumber:       "EN-" + id,
		FirstName:              "Student",
		LastName:               id,
		Department:             department,
		GraduationYear:         2026,
		Cgpi:                   cgpi,
		ProfileCompletePercent: 90,
		TpoDeptVerified:        true,
		ProfileStatus:          models.ProfileStatusVerified,
	}
}

func application(id, studentID string, status models.ApplicationStatus, minutes int) dbmodels.JobApplication {
	return dbmodels.JobApplication{
		BaseModel:        dbmodels.BaseModel{ID: id, CreatedAt: baseTime.Add(time.Duration(minutes) * time.Minute)},
		StudentProfileID: studentID,
		JobPostingID:     postingID,
		Status:           status,
	}
}

func TestApprove(t *testing.T) {
	ctx := context.Background()

	t.Run(`eligible verified student`, func(t *testing.T) {
		f := newFixture([]dbmodels.StudentProfile{student("s1", "CSE", 8.2)},
			application("a1", "s1", models.ApplicationStatusSubmitted, 0))
		require.NoError(t, f.provider.Approve(ctx, coordinatorUserID, "a1", " strong profile "))

		rec := f.applications.recs["a1"]
		require.Equal(t, models.ApplicationStatusPendingAdmin, rec.Status)
		require.Equal(t, coordinatorUserID, *rec.DeptReviewedBy)
		require.NotNil(t, rec.DeptReviewedAt)
		require.Equal(t, "strong profile", rec.DeptReviewNotes)
		require.Len(t, f.events.list, 1)
		require.Equal(t, string(models.ApplicationStatusSubmitted), f.events.list[0].FromStatus)
		require.Equal(t, string(models.ApplicationStatusPendingAdmin), f.events.list[0].ToStatus)
		require.Equal(t, []sentNotification{{
			event:   models.EventApplicationApproved,
			userID:  "user-s1",
			payload: map[string]string{"job_title": "Backend Engineer"},
		}}, f.notifier.sent)
	})

	t.Run(`each failing condition is named`, func(t *testing.T) {
		lowCgpa := student("s1", "CSE", 6.5)
		backlogs := student("s2", "CSE", 8)
		backlogs.ActiveBacklogs = true
		wrongBranch := student("s3", "ECE", 8)
		unverified := student("s4", "IT", 9)
		unverified.TpoDeptVerified = false
		unverified.ProfileStatus = models.ProfileStatusPending

		coordinator := scopeMock{recs: map[string]dbmodels.Coordinator{
			"wide": {
				UserID:                 "wide",
				PrimaryDepartment:      "CSE",
				AssignedDepartments:    pq.StringArray{"IT", "ECE"},
				CanProcessApplications: true,
				IsActive:               true,
			},
		}}
		f := newFixture([]dbmodels.StudentProfile{lowCgpa, backlogs, wrongBranch, unverified},
			application("a1", "s1", models.ApplicationStatusSubmitted, 0),
			application("a2", "s2", models.ApplicationStatusSubmitted, 1),
			application("a3", "s3", models.ApplicationStatusSubmitted, 2),
			application("a4", "s4", models.ApplicationStatusSubmitted, 3),
		)
		f.provider.scope = coordinator

		cases := map[string]string{
			"a1": "CGPA (6.5) is below minimum requirement (7.0)",
			"a2": "active backlogs are not allowed for this job posting",
			"a3": "department (ECE) is not eligible for this job posting (allowed: CSE, IT)",
			"a4": "profile must be verified",
		}
		for applicationID, message := range cases {
			err := f.provider.Approve(ctx, "wide", applicationID, "")
			require.True(t, apperrors.Is(err, apperrors.KindPreconditionFailed), applicationID)
			require.Equal(t, message, err.Error(), applicationID)
		}
		require.Zero(t, f.applications.writes)
		require.Empty(t, f.notifier.sent)
	})

	t.Run(`only submitted applications`, func(t *testing.T) {
		f := newFixture([]dbmodels.StudentProfile{student("s1", "CSE", 8)},
			application("a1", "s1", models.ApplicationStatusHold, 0))
		err := f.provider.Approve(ctx, coordinatorUserID, "a1", "")
		require.True(t, apperrors.Is(err, apperrors.KindPreconditionFailed))
	})

	t.Run(`scope and capability`, func(t *testing.T) {
		f := newFixture([]dbmodels.StudentProfile{student("s1", "MECH", 9), student("s2", "CSE", 9)},
			application("a1", "s1", models.ApplicationStatusSubmitted, 0),
			application("a2", "s2", models.ApplicationStatusSubmitted, 1))
		require.True(t, apperrors.Is(f.provider.Approve(ctx, coordinatorUserID, "a1", ""), apperrors.KindPermissionDenied))
		require.True(t, apperrors.Is(f.provider.Approve(ctx, verifierOnlyID, "a2", ""), apperrors.KindPermissionDenied))
		require.True(t, apperrors.Is(f.provider.Approve(ctx, coordinatorUserID, "missing", ""), apperrors.KindNotFound))
		require.Zero(t, f.applications.writes)
	})
}

func TestHoldAndReject(t *testing.T) {
	ctx := context.Background()

	t.Run(`empty text fails before any lookup`, func(t *testing.T) {
		f := newFixture(nil)
		require.True(t, apperrors.Is(f.provider.Reject(ctx, "stranger", "missing", ""), apperrors.KindValidation))
		require.True(t, apperrors.Is(f.provider.Hold(ctx, "stranger", "missing", " "), apperrors.KindValidation))
		require.True(t, apperrors.Is(f.provider.AdminReject(ctx, adminUserID, "missing", ""), apperrors.KindValidation))
	})

	t.Run(`hold then reject`, func(t *testing.T) {
		f := newFixture([]dbmodels.StudentProfile{student("s1", "IT", 8)},
			application("a1", "s1", models.ApplicationStatusSubmitted, 0))
		require.NoError(t, f.provider.Hold(ctx, coordinatorUserID, "a1", "resume outdated"))
		require.Equal(t, models.ApplicationStatusHold, f.applications.recs["a1"].Status)
		require.Equal(t, "resume outdated", f.applications.recs["a1"].DeptReviewNotes)

		err := f.provider.Hold(ctx, coordinatorUserID, "a1", "again")
		require.True(t, apperrors.Is(err, apperrors.KindPreconditionFailed))

		require.NoError(t, f.provider.Reject(ctx, coordinatorUserID, "a1", "no update received"))
		rec := f.applications.recs["a1"]
		require.Equal(t, models.ApplicationStatusRejected, rec.Status)
		require.Equal(t, "no update received", rec.RejectionReason)
		require.Equal(t, coordinatorUserID, *rec.RejectedBy)
		require.NotNil(t, rec.RejectedAt)
		require.Equal(t, "resume outdated", rec.DeptReviewNotes)
		require.Len(t, f.events.list, 2)
		require.Equal(t, map[string]string{"job_title": "Backend Engineer", "reason": "no update received"}, f.notifier.sent[1].payload)
	})

	t.Run(`department cannot reject after approval`, func(t *testing.T) {
		f := newFixture([]dbmodels.StudentProfile{student("s1", "CSE", 8)},
			application("a1", "s1", models.ApplicationStatusPendingAdmin, 0))
		err := f.provider.Reject(ctx, coordinatorUserID, "a1", "changed mind")
		require.True(t, apperrors.Is(err, apperrors.KindPreconditionFailed))
	})
}

func TestBatchApprove(t *testing.T) {
	ctx := context.Background()
	students := []dbmodels.StudentProfile{
		student("s1", "CSE", 8), student("s2", "IT", 7), student("s3", "CSE", 6.9), student("s4", "ECE", 9),
	}
	applications := []dbmodels.JobApplication{
		application("a1", "s1", models.ApplicationStatusSubmitted, 0),
		application("a2", "s2", models.ApplicationStatusSubmitted, 1),
		application("a3", "s3", models.ApplicationStatusSubmitted, 2),
		application("a4", "s4", models.ApplicationStatusSubmitted, 3),
	}

	t.Run(`all approved`, func(t *testing.T) {
		f := newFixture(students, applications...)
		approved, err := f.provider.BatchApprove(ctx, coordinatorUserID, []string{"a1", "a2", "a2"}, "batch")
		require.NoError(t, err)
		require.Equal(t, 2, approved)
		require.Equal(t, 1, f.txCounter)
		require.Equal(t, models.ApplicationStatusPendingAdmin, f.applications.recs["a1"].Status)
		require.Equal(t, models.ApplicationStatusPendingAdmin, f.applications.recs["a2"].Status)
		require.Len(t, f.events.list, 2)
		require.Len(t, f.notifier.sent, 2)
	})

	t.Run(`ineligible member fails the whole batch`, func(t *testing.T) {
		f := newFixture(students, applications...)
		_, err := f.provider.BatchApprove(ctx, coordinatorUserID, []string{"a1", "a3"}, "")
		require.True(t, apperrors.Is(err, apperrors.KindPreconditionFailed))
		require.Contains(t, err.Error(), "EN-s3: CGPA (6.9) is below minimum requirement (7.0)")
		require.Zero(t, f.applications.writes)
		require.Equal(t, models.ApplicationStatusSubmitted, f.applications.recs["a1"].Status)
	})

	t.Run(`out of scope member`, func(t *testing.T) {
		f := newFixture(students, applications...)
		_, err := f.provider.BatchApprove(ctx, coordinatorUserID, []string{"a1", "a4"}, "")
		require.True(t, apperrors.Is(err, apperrors.KindPermissionDenied))
		require.Zero(t, f.applications.writes)
		require.Empty(t, f.notifier.sent)
	})

	t.Run(`unknown ids and size limit`, func(t *testing.T) {
		f := newFixture(students, applications...)
		_, err := f.provider.BatchApprove(ctx, coordinatorUserID, []string{"a1", "zzz"}, "")
		require.True(t, apperrors.Is(err, apperrors.KindNotFound))

		ids := make([]string, MaxBatchSize+1)
		for idx := range ids {
			ids[idx] = fmt.Sprintf("a%d", idx)
		}
		_, err = f.provider.BatchApprove(ctx, coordinatorUserID, ids, "")
		require.True(t, apperrors.Is(err, apperrors.KindValidation))
		require.Zero(t, f.applications.writes)
	})
}

func TestListQueue(t *testing.T) {
	ctx := context.Background()
	deleted := student("s5", "CSE", 9)
	deleted.DeletedAt.Valid = true
	f := newFixture(
		[]dbmodels.StudentProfile{student("s1", "CSE", 8), student("s2", "IT", 7.2), student("s3", "ECE", 9), student("s4", "CSE", 9.5), deleted},
		application("a4", "s4", models.ApplicationStatusSubmitted, 30),
		application("a1", "s1", models.ApplicationStatusSubmitted, 10),
		application("a3", "s3", models.ApplicationStatusSubmitted, 0),
		application("a2", "s2", models.ApplicationStatusSubmitted, 20),
		application("a5", "s5", models.ApplicationStatusSubmitted, 5),
		application("a6", "s1", models.ApplicationStatusHold, 1),
	)

	t.Run(`oldest first, scoped`, func(t *testing.T) {
		list, total, err := f.provider.ListQueue(ctx, coordinatorUserID, applicationapimodels.ApplicationFilter{})
		require.NoError(t, err)
		require.Equal(t, int64(3), total)
		require.Equal(t, []string{"a1", "a2", "a4"}, ids(list))
		require.Equal(t, "Backend Engineer", list[0].JobTitle)
		require.Equal(t, "EN-s1", list[0].Student.EnrollmentNumber)
	})

	t.Run(`cgpa range, total after filtering`, func(t *testing.T) {
		cgpaMin, cgpaMax := 7.5, 9.0
		filter := applicationapimodels.ApplicationFilter{
			Pagination: apimodels.Pagination{Limit: 1, Page: 1},
			CgpaMin:    &cgpaMin,
			CgpaMax:    &cgpaMax,
		}
		list, total, err := f.provider.ListQueue(ctx, coordinatorUserID, filter)
		require.NoError(t, err)
		require.Equal(t, int64(1), total)
		require.Equal(t, []string{"a1"}, ids(list))
	})

	t.Run(`pagination and status`, func(t *testing.T) {
		filter := applicationapimodels.ApplicationFilter{Pagination: apimodels.Pagination{Limit: 2, Page: 2}}
		list, total, err := f.provider.ListQueue(ctx, coordinatorUserID, filter)
		require.NoError(t, err)
		require.Equal(t, int64(3), total)
		require.Equal(t, []string{"a4"}, ids(list))

		list, total, err = f.provider.ListQueue(ctx, coordinatorUserID, applicationapimodels.ApplicationFilter{Status: models.ApplicationStatusHold})
		require.NoError(t, err)
		require.Equal(t, int64(1), total)
		require.Equal(t, []string{"a6"}, ids(list))
	})

	t.Run(`search`, func(t *testing.T) {
		list, _, err := f.provider.ListQueue(ctx, coordinatorUserID, applicationapimodels.ApplicationFilter{Search: "en-s2"})
		require.NoError(t, err)
		require.Equal(t, []string{"a2"}, ids(list))
	})

	t.Run(`created date range`, func(t *testing.T) {
		from, to := baseTime.Add(15*time.Minute), baseTime.Add(30*time.Minute)
		filter := applicationapimodels.ApplicationFilter{CreatedFrom: &from, CreatedTo: &to}
		list, total, err := f.provider.ListQueue(ctx, coordinatorUserID, filter)
		require.NoError(t, err)
		require.Equal(t, int64(2), total)
		require.Equal(t, []string{"a2", "a4"}, ids(list))
		require.Equal(t, "Backend Engineer", list[1].JobTitle)

		end := baseTime.Add(19 * time.Minute)
		filter.CreatedTo = &end
		list, total, err = f.provider.ListQueue(ctx, coordinatorUserID, filter)
		require.NoError(t, err)
		require.Zero(t, total)
		require.Empty(t, list)
	})

	t.Run(`capability required`, func(t *testing.T) {
		_, _, err := f.provider.ListQueue(ctx, verifierOnlyID, applicationapimodels.ApplicationFilter{})
		require.True(t, apperrors.Is(err, apperrors.KindPermissionDenied))
	})
}

func TestAdminGate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(
		[]dbmodels.StudentProfile{student("s1", "CSE", 8), student("s2", "ECE", 8)},
		application("a1", "s1", models.ApplicationStatusPendingAdmin, 0),
		application("a2", "s2", models.ApplicationStatusPendingAdmin, 1),
		application("a3", "s1", models.ApplicationStatusSubmitted, 2),
	)

	list, total, err := f.provider.ListAdminQueue(ctx, applicationapimodels.ApplicationFilter{})
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	require.Equal(t, []string{"a1", "a2"}, ids(list))

	require.NoError(t, f.provider.Forward(ctx, adminUserID, "a1", "sent to recruiter"))
	rec := f.applications.recs["a1"]
	require.Equal(t, models.ApplicationStatusForwarded, rec.Status)
	require.Equal(t, adminUserID, *rec.AdminReviewedBy)
	require.Equal(t, "sent to recruiter", rec.AdminReviewNotes)

	require.True(t, apperrors.Is(f.provider.Forward(ctx, adminUserID, "a3", ""), apperrors.KindPreconditionFailed))
	require.True(t, apperrors.Is(f.provider.Forward(ctx, adminUserID, "a1", ""), apperrors.KindPreconditionFailed))

	require.NoError(t, f.provider.AdminReject(ctx, adminUserID, "a2", "position filled"))
	require.Equal(t, models.ApplicationStatusRejected, f.applications.recs["a2"].Status)

	require.NoError(t, f.provider.ReopenRejected(ctx, adminUserID, "a2", "appeal accepted"))
	rec = f.applications.recs["a2"]
	require.Equal(t, models.ApplicationStatusPendingAdmin, rec.Status)
	require.Empty(t, rec.RejectionReason)
	require.Nil(t, rec.RejectedBy)
	require.Nil(t, rec.RejectedAt)

	require.True(t, apperrors.Is(f.provider.ReopenRejected(ctx, adminUserID, "a1", ""), apperrors.KindPreconditionFailed))

	events := make([]models.NotificationEvent, 0, len(f.notifier.sent))
	for _, sent := range f.notifier.sent {
		events = append(events, sent.event)
	}
	require.Equal(t, []models.NotificationEvent{
		models.EventApplicationForwarded,
		models.EventApplicationRejected,
		models.EventApplicationReopened,
	}, events)
}

func TestGetDetail(t *testing.T) {
	ctx := context.Background()
	rec := application("a1", "s1", models.ApplicationStatusSubmitted, 0)
	resumeID := "resume-1"
	rec.ResumeID = &resumeID
	f := newFixture([]dbmodels.StudentProfile{student("s1", "CSE", 6.5), student("s2", "ECE", 8)},
		rec, application("a2", "s2", models.ApplicationStatusSubmitted, 1))

	detail, err := f.provider.GetDetail(ctx, coordinatorUserID, models.CoordinatorRole, "a1")
	require.NoError(t, err)
	require.Equal(t, "a1", detail.ID)
	require.Equal(t, "Backend Engineer", detail.JobPosting.Title)
	require.Equal(t, "s1", detail.Profile.ID)
	require.Len(t, detail.SemesterMarks, 1)
	require.NotNil(t, detail.Resume)
	require.Equal(t, "https://files.local/resumes/cv.pdf", detail.Resume.DownloadURL)
	require.NotNil(t, detail.Consent)
	require.Equal(t, []string{"resume", "marks"}, detail.Consent.DataShared)
	require.False(t, detail.Eligibility.Eligible)
	assert.Len(t, detail.Eligibility.Failures, 1)

	_, err = f.provider.GetDetail(ctx, coordinatorUserID, models.CoordinatorRole, "a2")
	require.True(t, apperrors.Is(err, apperrors.KindPermissionDenied))

	_, err = f.provider.GetDetail(ctx, adminUserID, models.AdminRole, "a2")
	require.NoError(t, err)
}

func TestStats(t *testing.T) {
	f := newFixture(nil)
	stats, err := f.provider.Stats(context.Background(), coordinatorUserID)
	require.NoError(t, err)
	require.Equal(t, "0.00%", stats.ApprovalRate)
	require.Equal(t, []string{"CSE", "IT"}, f.stats.departments)
}

func ids(list []applicationapimodels.ApplicationView) []string {
	result := make([]string, 0, len(list))
	for _, rec := range list {
		result = append(result, rec.ID)
	}
	return result
}
