// Package config provides configuration management for roster-sync.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults live next to each field as struct tags.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Log: Logging level and format
//   - Warehouse: Roster warehouse connection and staging table
//   - Storage: S3/MinIO credentials and bucket settings
//   - Secrets: Object key of the warehouse credential bundle
//   - API: Patient API endpoints, OAuth client and pacing
//   - Metrics: Pushgateway export
//   - Report: Run report archive
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.API.BaseURL)
package config
