package config

import "time"

const (
	defaultHTTPAddress     = "0.0.0.0:8080"
	defaultRequestTimeout  = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultUploadDir       = "static/uploads"
	defaultMaxUploadSize   = 16 << 20
	defaultDeleteBatchSize = 100
	defaultLogLevel        = "debug"
	defaultLogMaxSizeMB    = 10
	defaultLogMaxBackups   = 3
	defaultLogMaxAgeDays   = 28
	defaultVersion         = "dev"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version: defaultVersion,
		},
		Storage: Storage{
			DB: DB{
				DeleteBatchSize: defaultDeleteBatchSize,
			},
			Files: Files{
				UploadDir:     defaultUploadDir,
				MaxUploadSize: defaultMaxUploadSize,
			},
		},
		Server: Server{
			HTTPAddress:     defaultHTTPAddress,
			RequestTimeout:  defaultRequestTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
		},
		Log: Log{
			Level:      defaultLogLevel,
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
			MaxAgeDays: defaultLogMaxAgeDays,
		},
	}
}
