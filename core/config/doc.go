// Package config provides configuration management for the reporting service.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: SQLite/MySQL connection details
//   - Storage: S3/MinIO credentials and bucket settings for dataset exports
//   - Log: Logging level and format
//   - Dataset: Paths to the source CSV files
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
