package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnectRequiresURL(t *testing.T) {
	_, err := Connect(context.Background(), Config{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestConnectRejectsBadURL(t *testing.T) {
	_, err := Connect(context.Background(), Config{URL: "http://not-redis"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid URL")
}

func TestCloseWithoutClient(t *testing.T) {
	assert.Nil(t, Client())
	assert.NoError(t, Close())
}
