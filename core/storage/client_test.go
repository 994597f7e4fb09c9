package storage_test

import (
	"errors"
	"testing"

	"breezechess/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:4566",
			AccessKey: "test",
			SecretKey: "test",
			Bucket:    "test-bucket",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTP", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "http://localhost:4566/",
			AccessKey: "test",
			SecretKey: "test",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTPS", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "https://s3.amazonaws.com",
			AccessKey: "test",
			SecretKey: "test",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestConfig_Secure(t *testing.T) {
	tests := []struct {
		name string
		cfg  storage.Config
		want bool
	}{
		{"HTTP", storage.Config{Endpoint: "http://localhost:4566"}, false},
		{"HTTPS", storage.Config{Endpoint: "https://s3.amazonaws.com"}, true},
		{"NoScheme", storage.Config{Endpoint: "localhost:9000"}, false},
		{"Forced", storage.Config{Endpoint: "localhost:9000", UseSSL: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.Secure())
		})
	}
}

func TestIsBucketOwned(t *testing.T) {
	assert.False(t, storage.IsBucketOwned(nil))
	assert.False(t, storage.IsBucketOwned(errors.New("boom")))
	assert.True(t, storage.IsBucketOwned(minio.ErrorResponse{Code: "BucketAlreadyOwnedByYou"}))
	assert.True(t, storage.IsBucketOwned(minio.ErrorResponse{Code: "BucketAlreadyExists"}))
	assert.False(t, storage.IsBucketOwned(minio.ErrorResponse{Code: "AccessDenied"}))
}
