// Package config loads wallcal settings.
//
// Sources are layered, later ones win:
//  1. Built-in defaults
//  2. TOML file
//  3. .env file
//  4. Process environment (WALLCAL_* variables)
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// EnvPrefix namespaces environment overrides
const EnvPrefix = "WALLCAL_"

// DefaultEnvFile is read from the working directory when present
const DefaultEnvFile = ".env"

// Config is the full application configuration
type Config struct {
	Debug      bool       `toml:"debug"`
	Server     Server     `toml:"server"`
	Background Background `toml:"background"`
	Snapshot   Snapshot   `toml:"snapshot"`
	Palette    Palette    `toml:"palette"`
}

// Server configures the HTTP front end
type Server struct {
	Addr            string        `toml:"addr"`
	BaseURL         string        `toml:"base_url"` // empty derives the base from each request
	Language        string        `toml:"language"`
	ShutdownTimeout time.Duration `toml:"shutdown_timeout"`
}

// Background configures the animated blob field
type Background struct {
	FPS           int    `toml:"fps"`
	Supersample   int    `toml:"supersample"`
	ReducedMotion bool   `toml:"reduced_motion"`
	Seed          uint64 `toml:"seed"` // 0 draws from the process generator
	Color         string `toml:"color"`
}

// Snapshot configures headless background renders
type Snapshot struct {
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	PixelRatio float64 `toml:"pixel_ratio"`
	MaxFrames  int     `toml:"max_frames"`
}

// Palette holds hex colors for posters, empty keeps the built-in color
type Palette struct {
	Background string `toml:"background"`
	Lived      string `toml:"lived"`
	Future     string `toml:"future"`
	Current    string `toml:"current"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Server: Server{
			Addr:            ":8080",
			Language:        "en",
			ShutdownTimeout: 5 * time.Second,
		},
		Background: Background{
			FPS:         60,
			Supersample: 2,
			Color:       "#0a0a0a",
		},
		Snapshot: Snapshot{
			Width:      1024,
			Height:     768,
			PixelRatio: 0.25,
			MaxFrames:  600,
		},
	}
}

// Load reads path (optional) and the .env file of the working directory
func Load(path string) (*Config, error) {
	return LoadFiles(path, DefaultEnvFile)
}

// LoadFiles layers defaults, the TOML file at path, envFile and the environment
// An empty path skips the TOML layer; a missing envFile is ignored
func LoadFiles(path, envFile string) (*Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		if extra := md.Undecoded(); len(extra) > 0 {
			keys := make([]string, len(extra))
			for i, k := range extra {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
		}
	}

	dotenv := map[string]string{}
	if envFile != "" {
		m, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			dotenv = m
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("env file %s: %w", envFile, err)
		}
	}

	env := lookup{dotenv: dotenv}
	if err := env.apply(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	switch {
	case c.Background.FPS < 1 || c.Background.FPS > 240:
		return fmt.Errorf("background.fps %d out of range [1, 240]", c.Background.FPS)
	case c.Background.Supersample < 1 || c.Background.Supersample > 8:
		return fmt.Errorf("background.supersample %d out of range [1, 8]", c.Background.Supersample)
	case c.Snapshot.PixelRatio <= 0 || c.Snapshot.PixelRatio > 4:
		return fmt.Errorf("snapshot.pixel_ratio %v out of range (0, 4]", c.Snapshot.PixelRatio)
	case c.Snapshot.Width < 1 || c.Snapshot.Height < 1:
		return fmt.Errorf("snapshot size %dx%d must be positive", c.Snapshot.Width, c.Snapshot.Height)
	case c.Snapshot.MaxFrames < 0:
		return fmt.Errorf("snapshot.max_frames %d must not be negative", c.Snapshot.MaxFrames)
	case c.Server.ShutdownTimeout < 0:
		return fmt.Errorf("server.shutdown_timeout %v must not be negative", c.Server.ShutdownTimeout)
	}
	return nil
}

// FrameInterval returns the refresh period for the configured FPS
func (b Background) FrameInterval() time.Duration {
	return time.Second / time.Duration(b.FPS)
}

// lookup resolves WALLCAL_* keys from the process environment, then the .env map
type lookup struct {
	dotenv map[string]string
}

func (l lookup) get(name string) (string, bool) {
	key := EnvPrefix + name
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v, true
	}
	v, ok := l.dotenv[key]
	return v, ok && v != ""
}

func (l lookup) apply(c *Config) error {
	strs := []struct {
		name string
		dst  *string
	}{
		{"ADDR", &c.Server.Addr},
		{"BASE_URL", &c.Server.BaseURL},
		{"LANG", &c.Server.Language},
		{"BG_COLOR", &c.Background.Color},
		{"PALETTE_BACKGROUND", &c.Palette.Background},
		{"PALETTE_LIVED", &c.Palette.Lived},
		{"PALETTE_FUTURE", &c.Palette.Future},
		{"PALETTE_CURRENT", &c.Palette.Current},
	}
	for _, s := range strs {
		if v, ok := l.get(s.name); ok {
			*s.dst = v
		}
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"FPS", &c.Background.FPS},
		{"SUPERSAMPLE", &c.Background.Supersample},
		{"SNAPSHOT_WIDTH", &c.Snapshot.Width},
		{"SNAPSHOT_HEIGHT", &c.Snapshot.Height},
		{"SNAPSHOT_MAX_FRAMES", &c.Snapshot.MaxFrames},
	}
	for _, i := range ints {
		v, ok := l.get(i.name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, i.name, err)
		}
		*i.dst = n
	}

	bools := []struct {
		name string
		dst  *bool
	}{
		{"DEBUG", &c.Debug},
		{"REDUCED_MOTION", &c.Background.ReducedMotion},
	}
	for _, b := range bools {
		v, ok := l.get(b.name)
		if !ok {
			continue
		}
		flag, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, b.name, err)
		}
		*b.dst = flag
	}

	if v, ok := l.get("SEED"); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED: %w", EnvPrefix, err)
		}
		c.Background.Seed = seed
	}
	if v, ok := l.get("SNAPSHOT_PIXEL_RATIO"); ok {
		ratio, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%sSNAPSHOT_PIXEL_RATIO: %w", EnvPrefix, err)
		}
		c.Snapshot.PixelRatio = ratio
	}
	if v, ok := l.get("SHUTDOWN_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sSHUTDOWN_TIMEOUT: %w", EnvPrefix, err)
		}
		c.Server.ShutdownTimeout = d
	}
	return nil
}
