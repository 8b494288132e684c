package conf

import (
	"encoding/json"
	"fmt"
	"time"
)

// Bootstrap is the root of the service configuration.
type Bootstrap struct {
	Server  *Server  `json:"server"`
	Data    *Data    `json:"data"`
	Auth    *Auth    `json:"auth"`
	Limiter *Limiter `json:"limiter"`
}

type Server struct {
	Http *Server_HTTP `json:"http"`
}

type Server_HTTP struct {
	Network string    `json:"network"`
	Addr    string    `json:"addr"`
	Timeout *Duration `json:"timeout"`
}

// Data configures storage. Driver is "postgres" or "memory".
type Data struct {
	Driver   string         `json:"driver"`
	Database *Data_Database `json:"database"`
	Redis    *Data_Redis    `json:"redis"`
}

type Data_Database struct {
	Source      string `json:"source"`
	AutoMigrate bool   `json:"auto_migrate"`
}

type Data_Redis struct {
	Addr         string    `json:"addr"`
	Password     string    `json:"password"`
	ReadTimeout  *Duration `json:"read_timeout"`
	WriteTimeout *Duration `json:"write_timeout"`
}

// Auth protects write operations with a bearer token. An empty token disables it.
type Auth struct {
	Token string `json:"token"`
}

// Limiter bounds write operations per client and window. A zero limit disables it.
type Limiter struct {
	Limit  int       `json:"limit"`
	Window *Duration `json:"window"`
	Prefix string    `json:"prefix"`
}

// Duration is a time.Duration written as a Go duration string ("1s", "200ms").
type Duration struct {
	time.Duration
}

// AsDuration returns the wrapped duration; a nil receiver yields 0.
func (d *Duration) AsDuration() time.Duration {
	if d == nil {
		return 0
	}
	return d.Duration
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch val := v.(type) {
	case string:
		dur, err := time.ParseDuration(val)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", val, err)
		}
		d.Duration = dur
	case float64:
		d.Duration = time.Duration(val * float64(time.Second))
	default:
		return fmt.Errorf("invalid duration %s", b)
	}
	return nil
}
