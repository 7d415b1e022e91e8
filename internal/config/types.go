// types.go
package config

// Raw config loaded from YAML; optional fields are pointers so the merge
// can tell "absent" apart from "zero".
type RawConfig struct {
	Version string         `yaml:"version"`
	Catalog CatalogConfig  `yaml:"catalog"`
	Planner PlannerConfig  `yaml:"planner"`
	Server  *ServerConfig  `yaml:"server,omitempty"`
	Tickets *TicketsConfig `yaml:"tickets,omitempty"`
	Notes   string         `yaml:"notes,omitempty"`
}

type CatalogConfig struct {
	Path  *string `yaml:"path"`
	Watch *bool   `yaml:"watch,omitempty"`
}

type PlannerConfig struct {
	Budget   *int     `yaml:"budget"`
	MinTime  *float64 `yaml:"min_time,omitempty"`
	MaxTime  *float64 `yaml:"max_time,omitempty"`
	MaxItems *int     `yaml:"max_items,omitempty"`
}

type ServerConfig struct {
	Addr *string `yaml:"addr"`
}

type TicketsConfig struct {
	Name       string `yaml:"name,omitempty"`
	PerRide    *int   `yaml:"per_ride"`
	PerTenRide *int   `yaml:"per_ten_ride,omitempty"`
	PerNRide   *int   `yaml:"per_n_ride,omitempty"`
	N          *int   `yaml:"n,omitempty"`
}

// Params are the normalized runtime settings used by the CLI and server.
type Params struct {
	CatalogPath string
	Watch       bool
	Budget      int
	MinTime     float64
	MaxTime     float64
	MaxItems    int
	Addr        string
	TicketName  string
	PerRide     int
	PerTenRide  int
	PerNRide    int
	TicketN     int
	Version     string // effective config version for tracing
}
