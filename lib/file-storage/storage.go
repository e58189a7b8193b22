package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	"talentflow-backend/config"
	entitystore "talentflow-backend/lib/store"
	initchecker "talentflow-backend/lib/utils/init-checker"
	s3client "talentflow-backend/s3"
)

type Provider interface {
	UploadResume(ctx context.Context, applicantID string, file []byte, fileName string) error
	GetResume(ctx context.Context, applicantID string) (body []byte, fileName string, err error)
}

var Instance Provider

func NewHandler(store entitystore.Provider) {
	instance := impl{
		store: store,
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store entitystore.Provider
}

func (i impl) UploadResume(ctx context.Context, applicantID string, file []byte, fileName string) error {
	if s3client.Client == nil {
		return errors.New("file storage is not configured, resume upload is disabled")
	}
	if i.store.GetApplicant(applicantID) == nil {
		return errors.New("applicant not found")
	}
	objectKey := resumeObjectKey(applicantID, fileName)
	_, err := s3client.Client.PutObject(ctx, config.Conf.S3.BucketName, objectKey,
		bytes.NewReader(file), int64(len(file)),
		minio.PutObjectOptions{ContentType: "application/octet-stream"})
	if err != nil {
		return errors.Wrap(err, "failed to store the resume file")
	}
	return i.store.SetResumeObject(applicantID, objectKey)
}

func (i impl) GetResume(ctx context.Context, applicantID string) ([]byte, string, error) {
	if s3client.Client == nil {
		return nil, "", errors.New("file storage is not configured, resume download is disabled")
	}
	rec := i.store.GetApplicant(applicantID)
	if rec == nil {
		return nil, "", errors.New("applicant not found")
	}
	if rec.ResumeObjectKey == "" {
		return nil, "", errors.New("applicant has no uploaded resume")
	}
	object, err := s3client.Client.GetObject(ctx, config.Conf.S3.BucketName, rec.ResumeObjectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to fetch the resume file")
	}
	defer object.Close()
	body, err := io.ReadAll(object)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to read the resume file")
	}
	return body, path.Base(rec.ResumeObjectKey), nil
}

func resumeObjectKey(applicantID, fileName string) string {
	return fmt.Sprintf("resume/%s/%s", applicantID, path.Base(fileName))
}
