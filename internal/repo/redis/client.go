package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	goredis "github.com/go-redis/redis/v8"
)

// Options - параметры подключения к Redis.
// Для Addr в виде redis://... непустой Password и ненулевой DB важнее значений из URL.
type Options struct {
	Addr     string // host:port или redis://...
	Password string
	DB       int
}

// NewClient - клиент Redis с проверкой связи (fail-fast).
func NewClient(ctx context.Context, o Options) (*goredis.Client, error) {
	client := goredis.NewClient(o.clientOptions())
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", o.Addr, err)
	}
	return client, nil
}

func (o Options) clientOptions() *goredis.Options {
	if strings.Contains(o.Addr, "://") {
		if opts, err := goredis.ParseURL(o.Addr); err == nil {
			if o.Password != "" {
				opts.Password = o.Password
			}
			if o.DB != 0 {
				opts.DB = o.DB
			}
			return opts
		}
	}
	return &goredis.Options{
		Addr:         o.Addr,
		Password:     o.Password,
		DB:           o.DB,
		MinIdleConns: 1,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	}
}
