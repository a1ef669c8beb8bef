package initializers

import (
	"context"
	"time"

	"tpo-portal-backend/config"
	"tpo-portal-backend/fiberlog"
	accessscope "tpo-portal-backend/lib/access-scope"
	applicationreview "tpo-portal-backend/lib/application-review"
	xlsexport "tpo-portal-backend/lib/export/xls"
	jobposting "tpo-portal-backend/lib/job-posting"
	"tpo-portal-backend/lib/notification"
	cleanupworker "tpo-portal-backend/lib/notification/cleanup-worker"
	profileverification "tpo-portal-backend/lib/profile-verification"
	"tpo-portal-backend/lib/rbac"
	"tpo-portal-backend/lib/statistics"
	"tpo-portal-backend/lib/utils/helpers"
	connectionhub "tpo-portal-backend/lib/ws/hub/connection-hub"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	config.InitConfig()
	LoggerConfig = InitLogger(config.Conf.App.LogLevel)
	InitDBConnection(*config.Conf.Database.MigrateOnStart)
	InitS3(ctx)
	InitSmtp()
	InitEventBus(ctx)
	InitRateLimit()
	connectionhub.Init()
	rbac.NewHandler()
	xlsexport.NewHandler()
	accessscope.NewHandler()
	statistics.NewHandler()
	notification.NewHandler(*config.Conf.Notification.EmailEnabled)
	profileverification.NewHandler()
	jobposting.NewHandler()
	applicationreview.NewHandler()
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// purge of undelivered in-app notifications
	cleanupworker.StartWorker(ctx,
		time.Duration(config.Conf.Notification.RetentionDays)*24*time.Hour,
		time.Duration(config.Conf.Notification.CleanupIntervalHours)*time.Hour)

	if helpers.IsContextDone(ctx) {
		return
	}
	startRateLimitCleanup(ctx)
}
