package config

import (
	"github.com/redis/rueidis"
	"github.com/sirupsen/logrus"
)

// NewRedisClient connects to the rate-limit store. Only INCR/EXPIRE are
// issued, so client-side caching stays off.
func NewRedisClient(addr string) rueidis.Client {
	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  []string{addr},
		DisableCache: true,
	})
	if err != nil {
		logrus.WithError(err).WithField("addr", addr).Fatal("failed to create redis client")
	}

	return client
}
