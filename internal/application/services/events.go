package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/hitaloss/business/internal/messaging"
)

// publish emits an event after a committed write. Delivery failures are
// logged and never fail the request.
func publish(ctx context.Context, publisher messaging.Publisher, log logrus.FieldLogger, subject string, payload any) {
	if err := publisher.Publish(ctx, subject, payload); err != nil {
		log.WithError(err).WithField("subject", subject).Warn("failed to publish event")
	}
}
