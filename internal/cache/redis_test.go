package cache

import (
	"testing"

	"readum/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestNewRedisClient_EmptyAddress(t *testing.T) {
	client, err := NewRedisClient(config.RedisConfig{})
	assert.Nil(t, client)
	assert.ErrorContains(t, err, "address is empty")
}
