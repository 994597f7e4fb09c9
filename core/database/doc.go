// Package database handles connections to the puzzle database.
//
// It provides a wrapper around GORM to configure Postgres (through the pgx
// stdlib driver), MySQL or SQLite connections from the application's configuration.
//
// # Connect
//
// Connect opens a pool and pings it. The Postgres DSN is assembled from host,
// port, user, password and database name and validated with pgx before use.
//
// # Provider
//
// Request handlers do not connect themselves. They receive a Provider, built
// once at process start, which connects lazily and shares the pool between
// requests. Tests substitute their own Provider.
//
// # Usage
//
//	provider := database.NewProvider(cfg.Database)
//	defer provider.Close()
//
//	db, err := provider.DB(ctx)
package database
