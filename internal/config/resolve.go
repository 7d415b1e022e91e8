// resolve.go
package config

// Built-in defaults applied when neither the default file nor the park file
// provides a value.
const (
	DefaultCatalogPath = "rides.csv"
	DefaultBudget      = 100
	DefaultMinTime     = 1
	DefaultMaxTime     = 500
	DefaultMaxItems    = 20
	DefaultAddr        = ":8080"
	DefaultPerRide     = 5
)

// Resolve merges default → park, validates, and normalizes into Params.
func (l *Loader) Resolve(park string) (RawConfig, Params, error) {
	raw, err := l.LoadMerged(park)
	if err != nil {
		return RawConfig{}, Params{}, err
	}
	if err := ValidateRaw(raw); err != nil {
		return RawConfig{}, Params{}, err
	}

	p := Params{
		CatalogPath: DefaultCatalogPath,
		Budget:      DefaultBudget,
		MinTime:     DefaultMinTime,
		MaxTime:     DefaultMaxTime,
		MaxItems:    DefaultMaxItems,
		Addr:        DefaultAddr,
		TicketName:  "Ride Ticket",
		PerRide:     DefaultPerRide,
		Version:     raw.Version,
	}

	if raw.Catalog.Path != nil {
		p.CatalogPath = *raw.Catalog.Path
	}
	if raw.Catalog.Watch != nil {
		p.Watch = *raw.Catalog.Watch
	}
	if raw.Planner.Budget != nil {
		p.Budget = *raw.Planner.Budget
	}
	if raw.Planner.MinTime != nil {
		p.MinTime = *raw.Planner.MinTime
	}
	if raw.Planner.MaxTime != nil {
		p.MaxTime = *raw.Planner.MaxTime
	}
	if raw.Planner.MaxItems != nil {
		p.MaxItems = *raw.Planner.MaxItems
	}
	if raw.Server != nil && raw.Server.Addr != nil {
		p.Addr = *raw.Server.Addr
	}
	if raw.Tickets != nil {
		if raw.Tickets.Name != "" {
			p.TicketName = raw.Tickets.Name
		}
		if raw.Tickets.PerRide != nil {
			p.PerRide = *raw.Tickets.PerRide
		}
		if raw.Tickets.PerTenRide != nil {
			p.PerTenRide = *raw.Tickets.PerTenRide
		}
		if raw.Tickets.PerNRide != nil {
			p.PerNRide = *raw.Tickets.PerNRide
		}
		if raw.Tickets.N != nil {
			p.TicketN = *raw.Tickets.N
		}
	}
	return raw, p, nil
}
