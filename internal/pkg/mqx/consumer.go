// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mqx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// Handler 处理一条反序列化之后的事件
type Handler[T any] func(ctx context.Context, evt T) error

// JSONConsumer 负责循环拉消息，反序列化失败或者处理失败都只记日志，不会阻塞后面的消息
type JSONConsumer[T any] struct {
	consumer mq.Consumer
	topic    string
	handle   Handler[T]
	logger   *elog.Component
}

func NewJSONConsumer[T any](q mq.MQ, topic, groupID string, handle Handler[T]) (*JSONConsumer[T], error) {
	c, err := q.Consumer(topic, groupID)
	if err != nil {
		return nil, fmt.Errorf("创建 topic=%s 的消费者失败: %w", topic, err)
	}
	return &JSONConsumer[T]{
		consumer: c,
		topic:    topic,
		handle:   handle,
		logger:   elog.DefaultLogger,
	}, nil
}

// Start 非阻塞，ctx 取消之后后台的 goroutine 会退出
func (c *JSONConsumer[T]) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if ctx.Err() != nil {
				return
			}
			if err != nil {
				c.logger.Error("消费事件失败",
					elog.String("topic", c.topic),
					elog.FieldErr(err))
			}
		}
	}()
}

func (c *JSONConsumer[T]) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt T
	if err = json.Unmarshal(msg.Value, &evt); err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	if err = c.handle(ctx, evt); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("处理事件失败 event=%#v: %w", evt, err)
	}
	return nil
}
