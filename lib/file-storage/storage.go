package filestorage

import (
	"context"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

// Provider hands out time-limited links to stored student files
type Provider interface {
	GetFileLink(ctx context.Context, storageKey, fileName string) (string, error)
	MakeBucket(ctx context.Context) error
}

var Instance Provider

type impl struct {
	s3client   *minio.Client
	bucketName string
	linkTTL    time.Duration
}

func NewInstance(s3client *minio.Client, bucketName string, linkTTL time.Duration) {
	Instance = &impl{
		s3client:   s3client,
		bucketName: bucketName,
		linkTTL:    linkTTL,
	}
}

func (i impl) GetFileLink(ctx context.Context, storageKey, fileName string) (string, error) {
	if storageKey == "" {
		return "", nil
	}
	params := url.Values{}
	if fileName != "" {
		params.Set("response-content-disposition", "attachment; filename=\""+fileName+"\"")
	}
	link, err := i.s3client.PresignedGetObject(ctx, i.bucketName, storageKey, i.linkTTL, params)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign file link")
	}
	return link.String(), nil
}

func (i impl) MakeBucket(ctx context.Context) error {
	location := "us-east-1"
	exists, err := i.s3client.BucketExists(ctx, i.bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return i.s3client.MakeBucket(ctx, i.bucketName, minio.MakeBucketOptions{Region: location})
}
