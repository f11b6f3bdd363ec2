package ioc

import (
	"context"

	"github.com/gotomicro/ego/server/egin"
)

type App struct {
	Web       *egin.Component
	Admin     AdminServer
	Consumers []Consumer
}

// Consumer 后台消费者，Start 不阻塞，ctx 取消之后退出
type Consumer interface {
	Start(ctx context.Context)
}
