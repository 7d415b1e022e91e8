package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Paths helper for default/park config files.
type Paths struct {
	BaseDir string // base directory, e.g. /opt/app/config
}

func (p Paths) DefaultPath() string {
	return filepath.Join(p.BaseDir, "parks", "default.yaml")
}
func (p Paths) ParkPath(park string) string {
	return filepath.Join(p.BaseDir, "parks", park+".yaml")
}

// Loader reads YAML configs and merges default → park.
type Loader struct {
	paths Paths

	mu    sync.RWMutex
	cache map[string]RawConfig // key: park name or "$default"
}

// NewLoader creates a config loader with the given base directory.
func NewLoader(baseDir string) *Loader {
	return &Loader{
		paths: Paths{BaseDir: baseDir},
		cache: make(map[string]RawConfig),
	}
}

// LoadMerged loads and merges default → park (park optional; "" means the
// defaults alone). It returns the merged RawConfig without normalization.
func (l *Loader) LoadMerged(park string) (RawConfig, error) {
	key := park
	if key == "" {
		key = "$default"
	}
	l.mu.RLock()
	if cfg, ok := l.cache[key]; ok {
		l.mu.RUnlock()
		return cfg, nil
	}
	l.mu.RUnlock()

	defCfg, err := readYAML(l.paths.DefaultPath())
	if err != nil {
		return RawConfig{}, fmt.Errorf("read default: %w", err)
	}
	var parkCfg RawConfig
	if park != "" {
		parkCfg, _ = readYAML(l.paths.ParkPath(park)) // park file may not exist
	}

	merged := mergeRaw(defCfg, parkCfg)

	l.mu.Lock()
	l.cache["$default"] = defCfg
	l.cache[key] = merged
	l.mu.Unlock()

	return merged, nil
}

// Invalidate clears the loader's cache. Call after hot-reload detects changes.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = make(map[string]RawConfig)
}

// readYAML loads a YAML file into RawConfig. Missing files return zero cfg, no error.
func readYAML(path string) (RawConfig, error) {
	var cfg RawConfig
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return RawConfig{}, nil
		}
		return RawConfig{}, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return RawConfig{}, err
	}
	return cfg, nil
}

// mergeRaw performs a deep merge: 'b' overrides 'a' where provided.
func mergeRaw(a, b RawConfig) RawConfig {
	out := a

	// top-level scalars
	if b.Version != "" {
		out.Version = b.Version
	}
	if b.Notes != "" {
		out.Notes = b.Notes
	}

	// catalog
	if b.Catalog.Path != nil {
		out.Catalog.Path = b.Catalog.Path
	}
	if b.Catalog.Watch != nil {
		out.Catalog.Watch = b.Catalog.Watch
	}

	// planner
	if b.Planner.Budget != nil {
		out.Planner.Budget = b.Planner.Budget
	}
	if b.Planner.MinTime != nil {
		out.Planner.MinTime = b.Planner.MinTime
	}
	if b.Planner.MaxTime != nil {
		out.Planner.MaxTime = b.Planner.MaxTime
	}
	if b.Planner.MaxItems != nil {
		out.Planner.MaxItems = b.Planner.MaxItems
	}

	// server
	switch {
	case out.Server == nil && b.Server != nil:
		c := *b.Server
		out.Server = &c
	case out.Server != nil && b.Server != nil:
		if b.Server.Addr != nil {
			out.Server.Addr = b.Server.Addr
		}
	}

	// tickets
	switch {
	case out.Tickets == nil && b.Tickets != nil:
		c := *b.Tickets
		out.Tickets = &c
	case out.Tickets != nil && b.Tickets != nil:
		if b.Tickets.Name != "" {
			out.Tickets.Name = b.Tickets.Name
		}
		if b.Tickets.PerRide != nil {
			out.Tickets.PerRide = b.Tickets.PerRide
		}
		if b.Tickets.PerTenRide != nil {
			out.Tickets.PerTenRide = b.Tickets.PerTenRide
		}
		if b.Tickets.PerNRide != nil {
			out.Tickets.PerNRide = b.Tickets.PerNRide
		}
		if b.Tickets.N != nil {
			out.Tickets.N = b.Tickets.N
		}
	}

	return out
}
