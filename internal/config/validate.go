package config

import (
	"fmt"
	"strings"
)

// ValidateRaw checks semantic constraints of a RawConfig.
func ValidateRaw(cfg RawConfig) error {
	var errs []string

	if cfg.Catalog.Path != nil && *cfg.Catalog.Path == "" {
		errs = append(errs, "catalog.path must not be empty")
	}

	if cfg.Planner.Budget != nil && *cfg.Planner.Budget < 0 {
		errs = append(errs, "planner.budget must be >= 0")
	}
	if cfg.Planner.MinTime != nil && *cfg.Planner.MinTime < 0 {
		errs = append(errs, "planner.min_time must be >= 0")
	}
	if cfg.Planner.MinTime != nil && cfg.Planner.MaxTime != nil &&
		*cfg.Planner.MinTime > *cfg.Planner.MaxTime {
		errs = append(errs, "planner.min_time must not exceed planner.max_time")
	}
	if cfg.Planner.MaxItems != nil {
		if *cfg.Planner.MaxItems < 0 {
			errs = append(errs, "planner.max_items must be >= 0")
		}
		// exhaustive search enumerates 2^n subsets; 64+ overflows its counter
		if *cfg.Planner.MaxItems >= 64 {
			errs = append(errs, "planner.max_items must be < 64 (exhaustive search limit)")
		}
	}

	if cfg.Server != nil && cfg.Server.Addr != nil && *cfg.Server.Addr == "" {
		errs = append(errs, "server.addr must not be empty")
	}

	if cfg.Tickets != nil {
		if cfg.Tickets.PerRide != nil && *cfg.Tickets.PerRide < 0 {
			errs = append(errs, "tickets.per_ride must be >= 0")
		}
		if cfg.Tickets.PerTenRide != nil && *cfg.Tickets.PerTenRide < 0 {
			errs = append(errs, "tickets.per_ten_ride must be >= 0")
		}
		if cfg.Tickets.PerNRide != nil && *cfg.Tickets.PerNRide < 0 {
			errs = append(errs, "tickets.per_n_ride must be >= 0")
		}
		if cfg.Tickets.N != nil && *cfg.Tickets.N < 0 {
			errs = append(errs, "tickets.n must be >= 0")
		}
		if cfg.Tickets.PerNRide != nil && *cfg.Tickets.PerNRide > 0 &&
			(cfg.Tickets.N == nil || *cfg.Tickets.N <= 1) {
			errs = append(errs, "tickets.n must be > 1 when tickets.per_n_ride is set")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
