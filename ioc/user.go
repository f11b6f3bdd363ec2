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

package ioc

import (
	"time"

	"github.com/ecodeclub/careerhub/internal/pkg/snowflake"
	"github.com/ecodeclub/careerhub/internal/pkg/token"
	"github.com/gotomicro/ego/core/econf"
)

type JWTConfig struct {
	Key    string `yaml:"key"`
	Issuer string `yaml:"issuer"`
	// 例如 24h，不配置就是一天
	Expiration string `yaml:"expiration"`
}

func initJWTConfig() JWTConfig {
	var cfg JWTConfig
	err := econf.UnmarshalKey("jwt", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

func InitTokenGenerator() token.Generator {
	cfg := initJWTConfig()
	expire := 24 * time.Hour
	if cfg.Expiration != "" {
		d, err := time.ParseDuration(cfg.Expiration)
		if err != nil {
			panic(err)
		}
		expire = d
	}
	return token.NewJWTGenerator(cfg.Issuer, cfg.Key, expire)
}

func InitTokenVerifier() token.Verifier {
	cfg := initJWTConfig()
	return token.NewJWTVerifier(cfg.Key)
}

// InitIDGenerator 多实例部署的时候 snowflake.node 不能重复
func InitIDGenerator() snowflake.IDGenerator {
	gen, err := snowflake.NewNodeGenerator(econf.GetInt64("snowflake.node"))
	if err != nil {
		panic(err)
	}
	return gen
}
