package storage

import "strings"

// Config holds configuration for the storage provider.
type Config struct {
	// Endpoint is the URL of the storage service. An https:// scheme enables TLS.
	Endpoint string `mapstructure:"endpoint" default:"http://localhost:4566" env:"AWS_ENDPOINT"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"test" env:"AWS_ACCESS_KEY_ID"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"test" env:"AWS_SECRET_ACCESS_KEY"`
	// UseSSL forces TLS even when the endpoint has no scheme.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket is the name of the bucket to store assets in.
	Bucket string `mapstructure:"bucket" default:"breezechess-bucket" env:"S3_BUCKET_NAME"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:"us-east-1" env:"AWS_REGION"`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Secure reports whether connections to the endpoint use TLS.
func (c Config) Secure() bool {
	return c.UseSSL || strings.HasPrefix(c.Endpoint, "https://")
}
