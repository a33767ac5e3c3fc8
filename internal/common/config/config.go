package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration lets YAML carry Go duration strings like "15s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(v)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

type API struct {
	BaseURL string   `yaml:"base_url"`
	Timeout Duration `yaml:"timeout"`
}

type App struct {
	API      API    `yaml:"api"`
	StateDir string `yaml:"state_dir"`
	LogLevel string `yaml:"log_level"`
	Tracing  bool   `yaml:"tracing"`
}

// Defaults returns the config used when no file and no env overrides are present.
func Defaults() App {
	return App{
		API:      API{BaseURL: "http://localhost:8000", Timeout: Duration(15 * time.Second)},
		StateDir: defaultStateDir(),
		LogLevel: "info",
	}
}

// Load reads the YAML file at path on top of the defaults, then applies
// environment overrides. Priority: defaults < file < env.
func Load(path string) (App, error) {
	a := Defaults()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return App{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &a); err != nil {
			return App{}, fmt.Errorf("parse config: %w", err)
		}
	}
	applyEnv(&a)
	if a.API.BaseURL == "" {
		return App{}, fmt.Errorf("invalid config: missing api base_url")
	}
	a.API.BaseURL = strings.TrimRight(a.API.BaseURL, "/")
	if a.API.Timeout <= 0 {
		a.API.Timeout = Duration(15 * time.Second)
	}
	return a, nil
}

func applyEnv(a *App) {
	if v := os.Getenv("CAFE_API_URL"); v != "" {
		a.API.BaseURL = v
	}
	if v := os.Getenv("CAFE_STATE_DIR"); v != "" {
		a.StateDir = v
	}
	if v := os.Getenv("CAFE_LOG_LEVEL"); v != "" {
		a.LogLevel = v
	}
	if v := os.Getenv("CAFE_TRACING"); v != "" {
		a.Tracing = v == "1" || v == "true"
	}
}

// FindConfig probes the usual locations and returns the first file that exists.
func FindConfig() (string, error) {
	candidates := []string{"config.yaml", "config.yml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".cafe-delights", "config.yaml"))
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fs.ErrNotExist
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cafe-delights"
	}
	return filepath.Join(home, ".cafe-delights")
}
