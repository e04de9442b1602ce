// Command healthcheck probes the server's health endpoint and exits with a
// non-zero status unless it answers 200. It is meant to be used as a
// container HEALTHCHECK.
package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/MKhiriev/go-plant-keeper/internal/utils"
	"github.com/caarlos0/env/v11"
)

type probeConfig struct {
	URL     string        `env:"HEALTHCHECK_URL" envDefault:"http://127.0.0.1:8080/api/health"`
	Timeout time.Duration `env:"HEALTHCHECK_TIMEOUT" envDefault:"3s"`
}

var errUnhealthy = errors.New("server is unhealthy")

func main() {
	var cfg probeConfig
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error parsing healthcheck config: %v\n", err)
		os.Exit(2)
	}

	if err := probe(utils.NewHTTPClient(cfg.Timeout), cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func probe(client *utils.HTTPClient, cfg probeConfig) error {
	resp, err := client.R().Get(cfg.URL)
	if err != nil {
		return fmt.Errorf("error requesting %s: %w", cfg.URL, err)
	}

	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("%w: %s answered %d: %s", errUnhealthy, cfg.URL, resp.StatusCode(), resp.String())
	}
	return nil
}
