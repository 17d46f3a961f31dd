package services

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/hitaloss/business/internal/domain/entities"
	"github.com/hitaloss/business/internal/domain/repositories"
)

// replayResponse decodes the response stored under key into dst. It reports
// false when no record exists.
func replayResponse(ctx context.Context, repo repositories.IdempotencyRepository, key string, dst any) (bool, error) {
	if key == "" {
		return false, nil
	}
	existingRecord, err := repo.FindByKey(ctx, key)
	if err != nil {
		return false, err
	}
	if existingRecord == nil {
		return false, nil
	}
	if err := json.Unmarshal([]byte(existingRecord.Response), dst); err != nil {
		return false, err
	}
	return true, nil
}

// storeResponse records the response for key. Failures are logged only:
// the write it describes has already succeeded.
func storeResponse(ctx context.Context, repo repositories.IdempotencyRepository, log logrus.FieldLogger, key string, request, response any, statusCode int) {
	if key == "" {
		return
	}
	requestJSON, _ := json.Marshal(request)
	responseJSON, _ := json.Marshal(response)

	record := entities.NewIdempotencyRecord(key, string(requestJSON))
	record.SetResponse(string(responseJSON), statusCode)
	if _, err := repo.Create(ctx, record); err != nil {
		log.WithError(err).WithField("idempotency_key", key).Warn("failed to store idempotency record")
	}
}
