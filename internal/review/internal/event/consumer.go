package event

import (
	"context"

	"github.com/ecodeclub/careerhub/internal/pkg/mqx"
	"github.com/ecodeclub/careerhub/internal/review/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// AccountDeletedEventConsumer 用户注销之后删除他写过的评价
type AccountDeletedEventConsumer struct {
	*mqx.JSONConsumer[AccountDeletedEvent]
}

func NewAccountDeletedEventConsumer(q mq.MQ, svc service.ReviewService) (*AccountDeletedEventConsumer, error) {
	c, err := mqx.NewJSONConsumer[AccountDeletedEvent](q, AccountDeletedEventName, "review",
		func(ctx context.Context, evt AccountDeletedEvent) error {
			err := svc.DeleteByUid(ctx, evt.Uid)
			if err == nil {
				elog.DefaultLogger.Info("清理注销用户的评价", elog.Int64("uid", evt.Uid))
			}
			return err
		})
	if err != nil {
		return nil, err
	}
	return &AccountDeletedEventConsumer{JSONConsumer: c}, nil
}
