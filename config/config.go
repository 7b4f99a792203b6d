package config

import "time"

type Config struct {
	App struct {
		Host string
		Port int
	}
	API struct {
		BaseURL string
		Timeout Duration
	}
	Session struct {
		Lifetime       Duration
		Secure         bool
		CSRFKey        string
		TrustedOrigins []string
	}
	Display struct {
		BoardTTL     Duration
		ReapSchedule string
		MaxBoards    int
	}
	Admin struct {
		PageSize   int
		LoginRate  float64
		LoginBurst int
	}
}

// Default returns the configuration used for keys missing from the file.
func Default() Config {
	var cfg Config

	cfg.App.Host = "0.0.0.0"
	cfg.App.Port = 3000

	cfg.API.BaseURL = "http://localhost:5001/api"
	cfg.API.Timeout = Duration{10 * time.Second}

	cfg.Session.Lifetime = Duration{24 * time.Hour}

	cfg.Display.BoardTTL = Duration{2 * time.Minute}
	cfg.Display.ReapSchedule = "@every 1m"
	cfg.Display.MaxBoards = 64

	cfg.Admin.PageSize = 100
	cfg.Admin.LoginRate = 0.2
	cfg.Admin.LoginBurst = 5

	return cfg
}

// Duration decodes TOML strings like "10s" or "2m".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
