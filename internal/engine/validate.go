package engine

import (
	"fmt"
	"math"

	"github.com/atrofac/atrofac/internal/models"
)

// MaxUpdateIntervalSec is the largest accepted update_interval_sec.
const MaxUpdateIntervalSec = math.MaxUint32

// Validate checks a configuration for problems that would break the tray
// menu or the hardware writes.
func Validate(cfg *models.Config) error {
	seen := make(map[string]bool, len(cfg.Plans))
	for i, p := range cfg.Plans {
		if p == nil {
			return fmt.Errorf("plan #%d is empty", i+1)
		}
		if p.Name == "" {
			return fmt.Errorf("plan #%d has no name", i+1)
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate plan name %q", p.Name)
		}
		seen[p.Name] = true

		if !p.PowerPlan.Valid() {
			return fmt.Errorf("plan %q: unknown power plan %q (want windows, silent or turbo)", p.Name, p.PowerPlan)
		}
		if p.UpdateIntervalSec != nil && *p.UpdateIntervalSec <= 0 {
			return fmt.Errorf("plan %q: update_interval_sec must be positive", p.Name)
		}
		if p.UpdateIntervalSec != nil && int64(*p.UpdateIntervalSec) > MaxUpdateIntervalSec {
			return fmt.Errorf("plan %q: update_interval_sec must be at most %d", p.Name, int64(MaxUpdateIntervalSec))
		}
		if p.CPUCurve != "" {
			if _, err := models.ParseFanCurve(p.CPUCurve); err != nil {
				return fmt.Errorf("plan %q cpu_curve: %w", p.Name, err)
			}
		}
		if p.GPUCurve != "" {
			if _, err := models.ParseFanCurve(p.GPUCurve); err != nil {
				return fmt.Errorf("plan %q gpu_curve: %w", p.Name, err)
			}
		}
	}

	if cfg.Limits != nil {
		if cfg.Limits.CPU != "" {
			if _, err := models.ParseFanCurve(cfg.Limits.CPU); err != nil {
				return fmt.Errorf("limits.cpu: %w", err)
			}
		}
		if cfg.Limits.GPU != "" {
			if _, err := models.ParseFanCurve(cfg.Limits.GPU); err != nil {
				return fmt.Errorf("limits.gpu: %w", err)
			}
		}
	}
	return nil
}
