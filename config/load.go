package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// DefaultEnvFile is read by Load when present
const DefaultEnvFile = ".env"

// Environment overrides, applied after the TOML file
const (
	EnvAudioEnabled = "VI_MERGE_AUDIO_ENABLED"
	EnvMasterVolume = "VI_MERGE_MASTER_VOLUME" // 0-100
	EnvSeed         = "VI_MERGE_SEED"
	EnvMaxBalls     = "VI_MERGE_MAX_BALLS"
	EnvFixedStep    = "VI_MERGE_FIXED_STEP"
)

// Load reads DefaultEnvFile, the optional TOML file at path, then environment overrides
func Load(path string) (*Config, error) {
	return LoadFrom(path, DefaultEnvFile)
}

// LoadFrom is Load with an explicit env file; a missing env file is not an error
func LoadFrom(path, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	cfg := Default()

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open config: %w", err)
		}
		defer f.Close()

		if err := Decode(f, cfg); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Decode overlays TOML from r onto cfg; keys not present keep their current values
func Decode(r io.Reader, cfg *Config) error {
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("unknown keys: %s", strict.String())
		}
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}

// Encode writes cfg as TOML
func Encode(w io.Writer, cfg *Config) error {
	enc := toml.NewEncoder(w).SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvAudioEnabled); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvAudioEnabled, err)
		}
		cfg.Audio.Enabled = b
	}

	if v := os.Getenv(EnvMasterVolume); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMasterVolume, err)
		}
		vol := float64(n) / 100.0
		if vol < 0 {
			vol = 0
		}
		if vol > 1 {
			vol = 1
		}
		cfg.Audio.MasterVolume = vol
	}

	if v := os.Getenv(EnvSeed); v != "" {
		n, err := strconv.ParseUint(v, 0, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Engine.Seed = n
	}

	if v := os.Getenv(EnvMaxBalls); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxBalls, err)
		}
		cfg.World.MaxBalls = n
	}

	if v := os.Getenv(EnvFixedStep); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvFixedStep, err)
		}
		cfg.Engine.FixedStep = b
	}
	return nil
}
