package profileverification

import (
	"context"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	apperrors "tpo-portal-backend/lib/utils/app-errors"
	"tpo-portal-backend/models"
	apimodels "tpo-portal-backend/models/api"
	profileapimodels "tpo-portal-backend/models/api/profile"
	dbmodels "tpo-portal-backend/models/db"
)

const (
	coordinatorUserID = "coord-user"
	readOnlyUserID    = "readonly-user"
)

type fixture struct {
	provider  impl
	profiles  *profileStoreMock
	notes     *noteStoreMock
	stats     *statisticsMock
	notifier  *notifierMock
	txCounter int
}

func newFixture(students ...dbmodels.StudentProfile) *fixture {
	f := &fixture{
		profiles: newProfileStoreMock(students...),
		notes:    &noteStoreMock{},
		stats:    &statisticsMock{},
		notifier: &notifierMock{},
	}
	scope := scopeMock{recs: map[string]dbmodels.Coordinator{
		coordinatorUserID: {
			BaseModel:           dbmodels.BaseModel{ID: "coord-1"},
			UserID:              coordinatorUserID,
			PrimaryDepartment:   "CSE",
			AssignedDepartments: pq.StringArray{"IT"},
			CanVerifyProfiles:   true,
			IsActive:            true,
		},
		readOnlyUserID: {
			BaseModel:         dbmodels.BaseModel{ID: "coord-2"},
			UserID:            readOnlyUserID,
			PrimaryDepartment: "CSE",
			IsActive:          true,
		},
	}}
	f.provider = impl{
		scope:        scope,
		profileStore: f.profiles,
		noteStore:    f.notes,
		recordsStore: recordsStoreMock{
			marks:   []dbmodels.SemesterMark{{Semester: 1, Sgpi: 8.1}},
			resumes: []dbmodels.Resume{{BaseModel: dbmodels.BaseModel{ID: "resume-1"}, FileName: "cv.pdf", StorageKey: "resumes/cv.pdf"}},
		},
		statistics:  f.stats,
		notifier:    f.notifier,
		fileStorage: fileStorageMock{},
		inTx: func(fn func(stores txStores) error) error {
			f.txCounter++
			return fn(txStores{profiles: f.profiles, notes: f.notes})
		},
	}
	return f
}

func student(id, department string, completion int) dbmodels.StudentProfile {
	return dbmodels.StudentProfile{
		BaseModel:              dbmodels.BaseModel{ID: id},
		UserID:                 "user-" + id,
		EnrollmentNumber:       "EN-" + id,
		FirstName:              "Student",
		LastName:               id,
		Department:             department,
		GraduationYear:         2026,
		CurrentSemester:        7,
		Cgpi:                   8,
		ProfileCompletePercent: completion,
		ProfileStatus:          models.ProfileStatusPending,
	}
}

func TestVerify(t *testing.T) {
	ctx := context.Background()

	t.Run(`completion threshold`, func(t *testing.T) {
		f := newFixture(student("s79", "CSE", 79), student("s80", "CSE", 80))

		err := f.provider.Verify(ctx, coordinatorUserID, "s79", "")
		require.True(t, apperrors.Is(err, apperrors.KindPreconditionFailed))
		require.Contains(t, err.Error(), "80%")
		require.Zero(t, f.profiles.writes)

		require.NoError(t, f.provider.Verify(ctx, coordinatorUserID, "s80", "looks good"))
		rec := f.profiles.recs["s80"]
		require.True(t, rec.TpoDeptVerified)
		require.Equal(t, models.ProfileStatusVerified, rec.ProfileStatus)
		require.NotNil(t, rec.TpoDeptVerifiedBy)
		require.Equal(t, coordinatorUserID, *rec.TpoDeptVerifiedBy)
		require.NotNil(t, rec.TpoDeptVerifiedAt)
		require.Len(t, f.notes.list, 1)
		require.Equal(t, models.ProfileStatusVerified, f.notes.list[0].Action)
		require.Equal(t, "looks good", f.notes.list[0].Comment)
		require.Equal(t, []sentNotification{{event: models.EventProfileVerified, userID: "user-s80"}}, f.notifier.sent)
	})

	t.Run(`out of scope student`, func(t *testing.T) {
		f := newFixture(student("ece-1", "ECE", 95))
		err := f.provider.Verify(ctx, coordinatorUserID, "ece-1", "")
		require.True(t, apperrors.Is(err, apperrors.KindPermissionDenied))
		require.Zero(t, f.profiles.writes)
		require.Empty(t, f.notes.list)
		require.Empty(t, f.notifier.sent)
	})

	t.Run(`assigned department is in scope`, func(t *testing.T) {
		f := newFixture(student("it-1", "IT", 90))
		require.NoError(t, f.provider.Verify(ctx, coordinatorUserID, "it-1", ""))
	})

	t.Run(`unknown and deleted students`, func(t *testing.T) {
		deleted := student("gone", "CSE", 90)
		deleted.DeletedAt = gorm.DeletedAt{Valid: true}
		f := newFixture(deleted)
		require.True(t, apperrors.Is(f.provider.Verify(ctx, coordinatorUserID, "missing", ""), apperrors.KindNotFound))
		require.True(t, apperrors.Is(f.provider.Verify(ctx, coordinatorUserID, "gone", ""), apperrors.KindNotFound))
	})

	t.Run(`coordinator checks`, func(t *testing.T) {
		f := newFixture(student("s1", "CSE", 90))
		require.True(t, apperrors.Is(f.provider.Verify(ctx, "stranger", "s1", ""), apperrors.KindNotFound))
		require.True(t, apperrors.Is(f.provider.Verify(ctx, readOnlyUserID, "s1", ""), apperrors.KindPermissionDenied))
		require.Zero(t, f.profiles.writes)
	})

	t.Run(`rejected profile cannot be verified`, func(t *testing.T) {
		rejected := student("r1", "CSE", 90)
		rejected.ProfileStatus = models.ProfileStatusRejected
		f := newFixture(rejected)
		err := f.provider.Verify(ctx, coordinatorUserID, "r1", "")
		require.True(t, apperrors.Is(err, apperrors.KindPreconditionFailed))
	})
}

func TestHoldAndReject(t *testing.T) {
	ctx := context.Background()

	t.Run(`pending profile put on hold`, func(t *testing.T) {
		f := newFixture(student("s1", "CSE", 90))
		require.NoError(t, f.provider.Hold(ctx, coordinatorUserID, "s1", "  missing marksheet  "))

		rec := f.profiles.recs["s1"]
		require.False(t, rec.TpoDeptVerified)
		require.Equal(t, models.ProfileStatusHold, rec.ProfileStatus)
		require.Equal(t, models.BucketPending, rec.VerificationBucket())
		require.Len(t, f.notes.list, 1)
		require.Equal(t, models.ProfileStatusHold, f.notes.list[0].Action)
		require.Equal(t, "missing marksheet", f.notes.list[0].Comment)
		require.Equal(t, map[string]string{"issues": "missing marksheet"}, f.notifier.sent[0].payload)
	})

	t.Run(`verified profile cannot be put on hold or rejected`, func(t *testing.T) {
		f := newFixture(student("s1", "CSE", 90))
		require.NoError(t, f.provider.Verify(ctx, coordinatorUserID, "s1", ""))
		writes := f.profiles.writes

		require.True(t, apperrors.Is(f.provider.Hold(ctx, coordinatorUserID, "s1", "late issue"), apperrors.KindPreconditionFailed))
		require.True(t, apperrors.Is(f.provider.Reject(ctx, coordinatorUserID, "s1", "late issue"), apperrors.KindPreconditionFailed))
		rec := f.profiles.recs["s1"]
		require.True(t, rec.TpoDeptVerified)
		require.Equal(t, models.ProfileStatusVerified, rec.ProfileStatus)
		require.Equal(t, writes, f.profiles.writes)
		require.Len(t, f.notes.list, 1)
	})

	t.Run(`empty comment rejected before lookup`, func(t *testing.T) {
		f := newFixture()
		require.True(t, apperrors.Is(f.provider.Hold(ctx, "stranger", "missing", "   "), apperrors.KindValidation))
		require.True(t, apperrors.Is(f.provider.Reject(ctx, "stranger", "missing", ""), apperrors.KindValidation))
	})

	t.Run(`reject`, func(t *testing.T) {
		f := newFixture(student("s1", "CSE", 40))
		require.NoError(t, f.provider.Reject(ctx, coordinatorUserID, "s1", "fake documents"))
		rec := f.profiles.recs["s1"]
		require.Equal(t, models.ProfileStatusRejected, rec.ProfileStatus)
		require.Equal(t, models.BucketRejected, rec.VerificationBucket())
		require.Equal(t, models.EventProfileRejected, f.notifier.sent[0].event)

		err := f.provider.Hold(ctx, coordinatorUserID, "s1", "more issues")
		require.True(t, apperrors.Is(err, apperrors.KindPreconditionFailed))
	})

	t.Run(`out of scope`, func(t *testing.T) {
		f := newFixture(student("m1", "MECH", 90))
		require.True(t, apperrors.Is(f.provider.Hold(ctx, coordinatorUserID, "m1", "x"), apperrors.KindPermissionDenied))
		require.True(t, apperrors.Is(f.provider.Reject(ctx, coordinatorUserID, "m1", "x"), apperrors.KindPermissionDenied))
		require.Zero(t, f.profiles.writes)
	})
}

func TestBatchVerify(t *testing.T) {
	ctx := context.Background()

	t.Run(`all verified in one transaction`, func(t *testing.T) {
		f := newFixture(student("s1", "CSE", 90), student("s2", "IT", 85), student("s3", "CSE", 80))
		verified, err := f.provider.BatchVerify(ctx, coordinatorUserID, []string{"s1", "s2", "s3", "s1"}, "batch")
		require.NoError(t, err)
		require.Equal(t, 3, verified)
		require.Equal(t, 1, f.txCounter)
		for _, id := range []string{"s1", "s2", "s3"} {
			require.True(t, f.profiles.recs[id].TpoDeptVerified, id)
		}
		require.Len(t, f.notes.list, 3)
		require.Len(t, f.notifier.sent, 3)
	})

	t.Run(`one out of scope fails the whole batch`, func(t *testing.T) {
		f := newFixture(student("s1", "CSE", 90), student("s2", "CSE", 90), student("e1", "ECE", 90))
		_, err := f.provider.BatchVerify(ctx, coordinatorUserID, []string{"s1", "s2", "e1"}, "")
		require.True(t, apperrors.Is(err, apperrors.KindPermissionDenied))
		require.Contains(t, err.Error(), "1 student(s)")
		require.Zero(t, f.profiles.writes)
		require.Zero(t, f.txCounter)
		require.Empty(t, f.notes.list)
		require.Empty(t, f.notifier.sent)
		require.False(t, f.profiles.recs["s1"].TpoDeptVerified)
	})

	t.Run(`incomplete profiles fail the whole batch`, func(t *testing.T) {
		f := newFixture(student("s1", "CSE", 90), student("s2", "CSE", 50), student("s3", "CSE", 79))
		_, err := f.provider.BatchVerify(ctx, coordinatorUserID, []string{"s1", "s2", "s3"}, "")
		require.True(t, apperrors.Is(err, apperrors.KindPreconditionFailed))
		require.Contains(t, err.Error(), "2 student(s)")
		require.Zero(t, f.profiles.writes)
	})

	t.Run(`unknown ids`, func(t *testing.T) {
		f := newFixture(student("s1", "CSE", 90))
		_, err := f.provider.BatchVerify(ctx, coordinatorUserID, []string{"s1", "nope"}, "")
		require.True(t, apperrors.Is(err, apperrors.KindNotFound))
		require.Zero(t, f.profiles.writes)
	})

	t.Run(`size limits`, func(t *testing.T) {
		f := newFixture()
		_, err := f.provider.BatchVerify(ctx, coordinatorUserID, nil, "")
		require.True(t, apperrors.Is(err, apperrors.KindValidation))

		ids := make([]string, MaxBatchSize+1)
		for idx := range ids {
			ids[idx] = fmt.Sprintf("s%d", idx)
		}
		_, err = f.provider.BatchVerify(ctx, coordinatorUserID, ids, "")
		require.True(t, apperrors.Is(err, apperrors.KindValidation))
		require.Zero(t, f.profiles.writes)
		require.Zero(t, f.txCounter)
	})
}

func TestListCandidates(t *testing.T) {
	ctx := context.Background()
	verified := student("v1", "CSE", 100)
	verified.TpoDeptVerified = true
	verified.ProfileStatus = models.ProfileStatusVerified
	rejected := student("r1", "IT", 70)
	rejected.ProfileStatus = models.ProfileStatusRejected
	hold := student("h1", "CSE", 85)
	hold.ProfileStatus = models.ProfileStatusHold
	f := newFixture(
		verified, rejected, hold,
		student("p1", "CSE", 90),
		student("p2", "IT", 90),
		student("p3", "CSE", 60),
		student("e1", "ECE", 99),
	)

	t.Run(`scope, order and aggregates`, func(t *testing.T) {
		result, total, err := f.provider.ListCandidates(ctx, coordinatorUserID, profileapimodels.ProfileFilter{})
		require.NoError(t, err)
		require.Equal(t, int64(6), total)
		ids := make([]string, 0, len(result.List))
		for _, rec := range result.List {
			ids = append(ids, rec.ID)
		}
		require.Equal(t, []string{"p1", "p2", "h1", "r1", "p3", "v1"}, ids)
		require.Equal(t, profileapimodels.ListStats{
			Total:             6,
			Pending:           4,
			Verified:          1,
			Rejected:          1,
			AverageCompletion: 82.5,
		}, result.Stats)
	})

	t.Run(`bucket filter and pagination`, func(t *testing.T) {
		filter := profileapimodels.ProfileFilter{
			Pagination: apimodels.Pagination{Limit: 2, Page: 2},
			Status:     models.BucketPending,
		}
		result, total, err := f.provider.ListCandidates(ctx, coordinatorUserID, filter)
		require.NoError(t, err)
		require.Equal(t, int64(4), total)
		require.Equal(t, 4, result.Stats.Total)
		require.Len(t, result.List, 2)
		assert.Equal(t, "h1", result.List[0].ID)
		assert.Equal(t, "p3", result.List[1].ID)
	})

	t.Run(`search and completion range`, func(t *testing.T) {
		minCompletion := 80
		filter := profileapimodels.ProfileFilter{CompletionMin: &minCompletion, Search: "en-p"}
		result, total, err := f.provider.ListCandidates(ctx, coordinatorUserID, filter)
		require.NoError(t, err)
		require.Equal(t, int64(2), total)
		require.Equal(t, "p1", result.List[0].ID)
		require.Equal(t, "p2", result.List[1].ID)
	})

	t.Run(`page past the end`, func(t *testing.T) {
		filter := profileapimodels.ProfileFilter{Pagination: apimodels.Pagination{Limit: 10, Page: 5}}
		result, total, err := f.provider.ListCandidates(ctx, coordinatorUserID, filter)
		require.NoError(t, err)
		require.Equal(t, int64(6), total)
		require.Empty(t, result.List)
		require.Equal(t, 6, result.Stats.Total)
	})

	t.Run(`invalid bucket`, func(t *testing.T) {
		_, _, err := f.provider.ListCandidates(ctx, coordinatorUserID, profileapimodels.ProfileFilter{Status: "ARCHIVED"})
		require.True(t, apperrors.Is(err, apperrors.KindValidation))
	})

	t.Run(`export returns every row`, func(t *testing.T) {
		list, err := f.provider.ExportCandidates(ctx, coordinatorUserID, profileapimodels.ProfileFilter{Pagination: apimodels.Pagination{Limit: 1}})
		require.NoError(t, err)
		require.Len(t, list, 6)
	})
}

func TestGetDetail(t *testing.T) {
	ctx := context.Background()
	f := newFixture(student("s1", "CSE", 90), student("e1", "ECE", 90))
	require.NoError(t, f.provider.Hold(ctx, coordinatorUserID, "s1", "upload marksheet"))

	detail, err := f.provider.GetDetail(ctx, coordinatorUserID, "s1")
	require.NoError(t, err)
	require.Equal(t, "s1", detail.ID)
	require.Len(t, detail.SemesterMarks, 1)
	require.Len(t, detail.Resumes, 1)
	require.Equal(t, "https://files.local/resumes/cv.pdf", detail.Resumes[0].DownloadURL)
	require.Len(t, detail.ReviewNotes, 1)
	require.Equal(t, "upload marksheet", detail.ReviewNotes[0].Comment)

	_, err = f.provider.GetDetail(ctx, coordinatorUserID, "e1")
	require.True(t, apperrors.Is(err, apperrors.KindPermissionDenied))
}

func TestStats(t *testing.T) {
	f := newFixture()
	stats, err := f.provider.Stats(context.Background(), coordinatorUserID)
	require.NoError(t, err)
	require.Equal(t, "0.00%", stats.VerificationRate)
	require.Equal(t, []string{"CSE", "IT"}, f.stats.departments)
}
