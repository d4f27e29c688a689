package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/learnhub/internal/flagx"
	"github.com/dmitrijs2005/learnhub/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Fields are
// pointers so that keys missing from the file keep the earlier value.
type JsonConfig struct {
	APIBaseURL     *string         `json:"api_base_url"`
	WSBaseURL      *string         `json:"ws_base_url"`
	GoogleClientID *string         `json:"google_client_id"`
	RazorpayKeyID  *string         `json:"razorpay_key_id"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	DatabasePath   *string         `json:"database_path"`
	LogLevel       *string         `json:"log_level"`
	OTelEndpoint   *string         `json:"otel_endpoint"`
}

// parseJson overlays cfg with values from the file named by -c/-config.
// Without the flag it is a no-op.
func parseJson(cfg *Config, args []string) error {
	path := flagx.JsonConfigFlags(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}

	setIf(&cfg.APIBaseURL, jc.APIBaseURL)
	setIf(&cfg.WSBaseURL, jc.WSBaseURL)
	setIf(&cfg.GoogleClientID, jc.GoogleClientID)
	setIf(&cfg.RazorpayKeyID, jc.RazorpayKeyID)
	setIf(&cfg.DatabasePath, jc.DatabasePath)
	setIf(&cfg.LogLevel, jc.LogLevel)
	setIf(&cfg.OTelEndpoint, jc.OTelEndpoint)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	return nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
