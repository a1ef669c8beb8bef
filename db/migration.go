package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "tpo-portal-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	models := []struct {
		name string
		rec  interface{}
	}{
		{"User", &dbmodels.User{}},
		{"Coordinator", &dbmodels.Coordinator{}},
		{"StudentProfile", &dbmodels.StudentProfile{}},
		{"ProfileReviewNote", &dbmodels.ProfileReviewNote{}},
		{"SemesterMark", &dbmodels.SemesterMark{}},
		{"Document", &dbmodels.Document{}},
		{"Organization", &dbmodels.Organization{}},
		{"Recruiter", &dbmodels.Recruiter{}},
		{"JobPosting", &dbmodels.JobPosting{}},
		{"Resume", &dbmodels.Resume{}},
		{"Consent", &dbmodels.Consent{}},
		{"JobApplication", &dbmodels.JobApplication{}},
		{"ReviewEvent", &dbmodels.ReviewEvent{}},
		{"PushData", &dbmodels.PushData{}},
	}
	for _, model := range models {
		if err := DB.AutoMigrate(model.rec); err != nil {
			return errors.Wrapf(err, "failed to migrate %s", model.name)
		}
	}
	log.Info("migrations completed")
	return nil
}
