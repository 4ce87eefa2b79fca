package config

import "math"

// DifficultyManager computes level-dependent enemy stats and level growth
// beyond the authored catalog.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// SetEnabled enables or disables level scaling.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether level scaling is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Factor returns 1 + (level-1)*coef, or 1 when scaling is disabled.
func (d *DifficultyManager) Factor(level int, coef float64) float64 {
	if !d.cfg.Enabled || level <= 1 {
		return 1.0
	}
	return 1.0 + float64(level-1)*coef
}

// Speed scales a base movement speed for the given level.
func (d *DifficultyManager) Speed(base float64, level int) float64 {
	return base * d.Factor(level, d.cfg.Coefficients.Speed)
}

// Health scales base hit points, rounding down with a minimum of 1.
func (d *DifficultyManager) Health(base int, level int) int {
	hp := int(math.Floor(float64(base) * d.Factor(level, d.cfg.Coefficients.Health)))
	if hp < 1 {
		hp = 1
	}
	return hp
}

// Score scales a base score value, rounded to the nearest integer.
func (d *DifficultyManager) Score(base int, level int) int {
	return int(math.Round(float64(base) * d.Factor(level, d.cfg.Coefficients.Score)))
}

// ShootChance scales a per-frame fire probability, capped at 1.
func (d *DifficultyManager) ShootChance(base float64, level int) float64 {
	return clampF(base*d.Factor(level, d.cfg.Coefficients.ShootChance), 0, 1)
}

// Quota extrapolates an enemy quota for levels past the catalog.
func (d *DifficultyManager) Quota(last int, extraLevels int) int {
	if extraLevels <= 0 {
		return last
	}
	return last + d.cfg.Extrapolation.QuotaPerLevel*extraLevels
}

// SpawnDelay extrapolates a spawn delay (frames), clamped at the floor.
func (d *DifficultyManager) SpawnDelay(last float64, extraLevels int) float64 {
	if extraLevels <= 0 {
		return last
	}
	delay := last - d.cfg.Extrapolation.SpawnDelayStep*float64(extraLevels)
	return math.Max(delay, d.cfg.Extrapolation.SpawnDelayFloor)
}

// PowerUpRate extrapolates the per-frame power-up probability, clamped at the cap.
func (d *DifficultyManager) PowerUpRate(last float64, extraLevels int) float64 {
	if extraLevels <= 0 {
		return last
	}
	rate := last + d.cfg.Extrapolation.PowerUpRateStep*float64(extraLevels)
	if limit := d.cfg.Extrapolation.PowerUpRateCap; limit > 0 {
		rate = math.Min(rate, limit)
	}
	return rate
}

// IsBossLevel reports whether an extrapolated level carries a boss.
func (d *DifficultyManager) IsBossLevel(level int) bool {
	every := d.cfg.Extrapolation.BossEvery
	return every > 0 && level%every == 0
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
