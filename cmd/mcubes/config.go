package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gogpu/mcubes"
	"github.com/gogpu/mcubes/field"
)

// Config is the run configuration. It can be loaded from a JSON file and
// is then overridden by flags given on the command line.
type Config struct {
	Slices     int        `json:"slices"`
	Resolution int        `json:"resolution"`
	Zoom       float32    `json:"zoom"`
	Iso        float32    `json:"iso"`
	Pos        [3]float32 `json:"pos"`
	Field      string     `json:"field"`
	OBJ        string     `json:"obj,omitempty"`
	PNG        string     `json:"png,omitempty"`
	Size       int        `json:"size,omitempty"`
	Cache      int        `json:"cache,omitempty"`
	Instant    bool       `json:"instant,omitempty"`
	Timeout    string     `json:"timeout,omitempty"`
	Verbose    bool       `json:"verbose,omitempty"`
}

func defaultConfig() Config {
	return Config{
		Slices:     4,
		Resolution: 5,
		Zoom:       1,
		Iso:        0.5,
		Field:      "noise",
		Size:       512,
		Timeout:    "2m",
	}
}

// loadConfig reads a JSON config over the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Slices < 1 {
		return fmt.Errorf("slices must be positive, got %d", c.Slices)
	}
	if !(c.Zoom > 0) || math.IsInf(float64(c.Zoom), 1) {
		return fmt.Errorf("zoom must be positive and finite, got %v", c.Zoom)
	}
	if !c.params().Finite() {
		return fmt.Errorf("non-finite parameters: pos %v iso %v", c.Pos, c.Iso)
	}
	if c.PNG != "" && c.Size <= 0 {
		return fmt.Errorf("size must be positive, got %d", c.Size)
	}
	if _, err := field.Lookup(c.Field); err != nil {
		return err
	}
	if _, err := c.timeout(); err != nil {
		return err
	}
	return nil
}

func (c Config) timeout() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("timeout: %w", err)
	}
	return d, nil
}

// view returns the viewer position c describes.
func (c Config) view() mcubes.View {
	return mcubes.View{
		X:          c.Pos[0],
		Y:          c.Pos[1],
		Z:          c.Pos[2],
		Zoom:       c.Zoom,
		Iso:        c.Iso,
		Resolution: c.Resolution,
	}
}

// params returns the extraction parameters of c.
func (c Config) params() mcubes.Params { return c.view().Params() }

// parsePos parses "x,y,z".
func parsePos(s string) ([3]float32, error) {
	var out [3]float32
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return out, fmt.Errorf("pos %q: want x,y,z", s)
	}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return out, fmt.Errorf("pos %q: %w", s, err)
		}
		out[i] = float32(v)
	}
	return out, nil
}
