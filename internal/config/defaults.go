package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the built-in configuration. It mirrors
// defaults/shooter.yaml and is used when the embedded file cannot be parsed.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Player: ShooterPlayer{
			Acceleration:      0.8,
			Friction:          0.85,
			MaxSpeed:          3.5,
			ShootDelayMS:      200,
			SpecialCooldownMS: 5000,
			InvulnerableMS:    2000,
			ExtraLives:        0,
		},
		Enemies: ShooterEnemies{
			FireChanceScale: 1.0,
			BulletSpeed:     4,
			RamDamage:       2,
		},
		Drops: ShooterDrops{
			PowerUpChance: 0.15,
			GoldChance:    0.3,
			PickupRadius:  1.2,
		},
		PowerUps: ShooterPowerUps{
			DurationMS:       10000,
			ShieldDurationMS: 15000,
			FallSpeed:        2,
			BombDamage:       10,
			Weights: PowerUpWeights{
				RapidFire: 20,
				Spread:    15,
				Laser:     10,
				Shield:    15,
				Health:    10,
				Bomb:      8,
				MultiShot: 12,
				Piercing:  10,
			},
		},
		Spawner: ShooterSpawner{
			FormationChance: 0.3,
			FormationSize:   3,
			FormationGap:    60,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Coefficients: CoefficientConfig{
				Speed:       0.15,
				Health:      0.15,
				Score:       0.15,
				ShootChance: 0.15,
			},
			Extrapolation: ExtrapolationConfig{
				QuotaPerLevel:   4,
				SpawnDelayStep:  2,
				SpawnDelayFloor: 20,
				PowerUpRateStep: 0.0002,
				PowerUpRateCap:  0.006,
				BossEvery:       5,
			},
		},
	}
}
