package health

import (
	"context"

	"github.com/hairizuanbinnoorazman/coffee-shop/logger"
)

// DefaultComponent is the component name reported when none is configured.
const DefaultComponent = "coffee-shop"

// State is the up/down signal of a component.
type State string

const (
	StateUp   State = "UP"
	StateDown State = "DOWN"
)

// Valid reports whether s is one of the enumerated states.
func (s State) Valid() bool {
	return s == StateUp || s == StateDown
}

// Status is the health of a single named component.
type Status struct {
	Name  string `json:"name"`
	State State  `json:"status"`
}

// Report is the envelope returned to probes: an overall state plus
// the individual checks it was derived from.
type Report struct {
	Status State    `json:"status"`
	Checks []Status `json:"checks"`
}

// NewReport builds a Report whose overall state is UP only when every
// check is UP. An empty check list is UP.
func NewReport(checks ...Status) Report {
	overall := StateUp
	for _, c := range checks {
		if c.State != StateUp {
			overall = StateDown
		}
	}
	if checks == nil {
		checks = []Status{}
	}
	return Report{Status: overall, Checks: checks}
}

// Readiness reports whether the service may receive traffic.
// It holds no mutable state and is safe for concurrent use.
type Readiness struct {
	name   string
	logger logger.Logger
}

// NewReadiness creates a readiness check for the named component.
func NewReadiness(name string, log logger.Logger) *Readiness {
	if name == "" {
		name = DefaultComponent
	}
	return &Readiness{name: name, logger: log}
}

// Component returns the name of the component being reported.
func (r *Readiness) Component() string {
	return r.name
}

// CheckReadiness returns the component's status. It is always UP.
func (r *Readiness) CheckReadiness(ctx context.Context) Status {
	status := Status{Name: r.name, State: StateUp}
	if r.logger != nil {
		r.logger.Info(ctx, "readiness check invoked", map[string]interface{}{
			"component": status.Name,
			"status":    string(status.State),
		})
	}
	return status
}

// Report wraps CheckReadiness in a probe response envelope.
func (r *Readiness) Report(ctx context.Context) Report {
	return NewReport(r.CheckReadiness(ctx))
}
