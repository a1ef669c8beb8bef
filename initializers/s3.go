package initializers

import (
	"context"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"
	"tpo-portal-backend/config"
	filestorage "tpo-portal-backend/lib/file-storage"
)

// InitS3 leaves file links disabled when no endpoint is configured
func InitS3(ctx context.Context) {
	if config.Conf.S3.Endpoint == "" {
		log.Info("S3 endpoint not configured, resume links disabled")
		return
	}
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		log.WithError(err).Error("failed to init S3 client")
		return
	}

	filestorage.NewInstance(minioClient, config.Conf.S3.BucketName, time.Duration(config.Conf.S3.LinkTTLMinutes)*time.Minute)
	if err = filestorage.Instance.MakeBucket(ctx); err != nil {
		log.WithError(err).Error("S3 connection check failed")
		return
	}
	log.Info("S3 client initialized")
}
