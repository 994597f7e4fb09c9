// Package config provides configuration management for the chess services.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file, with defaults declared next to each field.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP port and request body limit of the puzzle gateway
//   - Database: Postgres connection details for the puzzle store
//   - Storage: S3/MinIO credentials and bucket settings
//   - Pieces: local asset root and key layout for the piece synchronizer
//   - Log: Logging level and format
//
// # Environment Aliases
//
// Besides the nested names (STORAGE_BUCKET, DATABASE_HOST, ...), fields may declare
// aliases through the `env` tag. This keeps the variable names used by the existing
// docker-compose setup working (S3_BUCKET_NAME, AWS_ENDPOINT, POSTGRES_USER, ...).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
