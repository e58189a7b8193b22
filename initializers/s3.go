package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"
	"talentflow-backend/config"
	s3client "talentflow-backend/s3"
)

// InitS3 is best-effort: without S3 settings resume storage stays disabled
// and the rest of the service keeps working.
func InitS3(ctx context.Context) {
	if config.Conf.S3.Endpoint == "" {
		log.Warn("S3 endpoint is not set, resume storage is disabled")
		return
	}
	client, err := s3client.NewClient(ctx)
	if err != nil {
		log.WithError(err).Error("failed to initialize the S3 client, resume storage is disabled")
		return
	}
	s3client.Client = client
	log.Info("S3 client initialized")
}
