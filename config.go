package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the command's run configuration, as loaded from a TOML file like:
//
//	[run]
//	timeout = "5s"
//	trace = false
//	list = true
//	tape = 16
//	unfolded = false
//	input = "input.txt"
type Config struct {
	Run RunConfig `toml:"run"`
}

// RunConfig controls how a single program is translated and run.
type RunConfig struct {
	Timeout  Duration `toml:"timeout"`
	Trace    bool     `toml:"trace"`
	List     bool     `toml:"list"`
	Tape     int      `toml:"tape"`
	Unfolded bool     `toml:"unfolded"`
	Input    string   `toml:"input"`
}

// Duration is a time.Duration that decodes from TOML strings like "1m30s".
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	dur, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// LoadConfig decodes a TOML configuration file; unknown keys are an error.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("unknown keys in %s: %v", path, strings.Join(keys, ", "))
	}
	if cfg.Run.Tape < 0 || cfg.Run.Tape > TapeSize {
		return nil, fmt.Errorf("invalid run.tape %v in %s, must be in [0, %v]", cfg.Run.Tape, path, TapeSize)
	}
	return &cfg, nil
}

// buildOptions returns the translation options for this configuration.
func (rc RunConfig) buildOptions(name string) []BuildOption {
	opts := []BuildOption{Named(name)}
	if rc.Unfolded {
		opts = append(opts, Unfolded())
	}
	return opts
}
