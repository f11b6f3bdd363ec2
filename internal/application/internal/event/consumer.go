package event

import (
	"context"

	"github.com/ecodeclub/careerhub/internal/application/internal/service"
	"github.com/ecodeclub/careerhub/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
)

type AccountDeletedEventConsumer struct {
	*mqx.JSONConsumer[AccountDeletedEvent]
}

func NewAccountDeletedEventConsumer(q mq.MQ, svc service.ApplicationService) (*AccountDeletedEventConsumer, error) {
	c, err := mqx.NewJSONConsumer[AccountDeletedEvent](q, AccountDeletedEventName, "application",
		func(ctx context.Context, evt AccountDeletedEvent) error {
			return svc.DeleteByUid(ctx, evt.Uid)
		})
	if err != nil {
		return nil, err
	}
	return &AccountDeletedEventConsumer{JSONConsumer: c}, nil
}
