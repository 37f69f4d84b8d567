package vehicles

import "github.com/richxcame/fleet-management/pkg/config"

// QuotaPolicy computes how many vehicles may sit in Maintenance at once.
// The cap is a hard ceiling evaluated at the moment of transition; a fleet
// that later shrinks does not force vehicles back out of Maintenance.
type QuotaPolicy struct {
	Percent int
	Floor   int
}

// NewQuotaPolicy builds a policy from configuration
func NewQuotaPolicy(cfg config.QuotaConfig) QuotaPolicy {
	return QuotaPolicy{
		Percent: cfg.MaintenancePercent,
		Floor:   cfg.MinMaintenance,
	}
}

// Cap returns the maintenance ceiling for a fleet of the given size.
// With the default floor of 0, small fleets admit no Maintenance at all
// until total*percent/100 reaches 1.
func (p QuotaPolicy) Cap(total int) int {
	allowed := total * p.Percent / 100
	if allowed < p.Floor {
		return p.Floor
	}
	return allowed
}
