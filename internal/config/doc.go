// Package config defines configuration structures for the apodgrab CLI.
//
// Configuration can be provided via:
//   - Command-line flags
//   - Environment variables (APODGRAB_ prefix, NASA_API_KEY honored too)
//   - YAML configuration file
//
// # Structure
//
//	type Config struct {
//	    APIKey      string
//	    Endpoint    string
//	    Output      string
//	    Workers     int
//	    Timeout     time.Duration
//	    MaxSpanDays int
//	    BufferSize  int64
//	    NoMetadata  bool
//	    Progress    bool
//	    Retry       RetryConfig
//	}
//
//	type RetryConfig struct {
//	    Attempts int
//	    Delay    time.Duration
//	}
package config
