package config

import (
	"flag"
	"fmt"
	"net"
	"strconv"
)

// NetAddress is a host:port pair usable as a flag.Value. Host may be empty
// (all interfaces), an IP literal (IPv6 in brackets) or a host name such as
// a container service name.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-u upload directory for plant photos
//	-max-upload maximum multipart form size in bytes
//	-delete-batch page size of cascading deletes
//	-tz time zone used to count calendar days
//	-c/-config json file path with configs
//	-log-level zerolog level name
//	-log-file rotated log file path
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-shutdown-timeout graceful shutdown bound (e.g., "10s")
//	-digest-interval overdue digest interval (e.g., "1h"), 0 disables it
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		cfg           StructuredConfig
		serverAddress NetAddress
	)

	fs := flag.NewFlagSet("go-plant-keeper", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN (postgres://..., sqlite://... or file:...)")
	fs.IntVar(&cfg.Storage.DB.DeleteBatchSize, "delete-batch", 0, "Page size of cascading deletes")
	fs.StringVar(&cfg.Storage.Files.UploadDir, "u", "", "Upload directory for plant photos")
	fs.Int64Var(&cfg.Storage.Files.MaxUploadSize, "max-upload", 0, "Maximum plant form size in bytes")
	fs.StringVar(&cfg.App.Timezone, "tz", "", "Time zone for calendar days (e.g., Asia/Jakarta)")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level")
	fs.StringVar(&cfg.Log.File, "log-file", "", "Rotated log file path")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&cfg.Server.ShutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 10s)")
	fs.DurationVar(&cfg.Workers.DigestInterval, "digest-interval", 0, "Overdue digest interval (e.g., 1h)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	return &cfg, nil
}

// String returns host:port, bracketing IPv6 hosts. An unset address is "".
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. The port must be in 1-65535.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidNetAddress, err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: port %q must be a number in range 1-65535", ErrInvalidNetAddress, rawPort)
	}

	a.Host = host
	a.Port = port
	return nil
}
