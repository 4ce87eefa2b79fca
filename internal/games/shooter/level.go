package shooter

import "github.com/vovakirdan/galaxy-shooter/internal/config"

// Feature is a bit flag enabling level mechanics.
type Feature uint8

const (
	FeatureFormations Feature = 1 << iota
	FeatureNebula
	FeatureBoss
)

// String returns a comma separated list of the set flags.
func (f Feature) String() string {
	names := ""
	add := func(flag Feature, name string) {
		if f&flag == 0 {
			return
		}
		if names != "" {
			names += ", "
		}
		names += name
	}
	add(FeatureFormations, "formations")
	add(FeatureNebula, "nebula")
	add(FeatureBoss, "boss")
	if names == "" {
		return "-"
	}
	return names
}

// Level describes one stage. Remaining is the only field that changes
// during play.
type Level struct {
	Number      int
	Name        string
	Description string
	Quota       int
	Remaining   int
	SpawnDelay  float64 // Frames between spawn events
	PowerUpRate float64 // Probability per frame
	Pool        []EnemyType
	Features    Feature
}

// Has reports whether the level enables feature f.
func (l Level) Has(f Feature) bool {
	return l.Features&f != 0
}

// Done reports whether every enemy of the quota has been spawned.
func (l *Level) Done() bool {
	return l.Remaining <= 0
}

var levelCatalog = []Level{
	{
		Number: 1, Name: "Outer Rim", Description: "Scouts probe the edge of the system",
		Quota: 10, SpawnDelay: 90, PowerUpRate: 0.0015,
		Pool: []EnemyType{EnemyScout},
	},
	{
		Number: 2, Name: "Asteroid Belt", Description: "Fighters join the patrols",
		Quota: 14, SpawnDelay: 80, PowerUpRate: 0.0018,
		Pool: []EnemyType{EnemyScout, EnemyFighter},
	},
	{
		Number: 3, Name: "Patrol Route", Description: "Enemies start flying in formation",
		Quota: 18, SpawnDelay: 75, PowerUpRate: 0.0020,
		Pool:     []EnemyType{EnemyScout, EnemyFighter},
		Features: FeatureFormations,
	},
	{
		Number: 4, Name: "Nebula Drift", Description: "Bombers hide in the gas clouds",
		Quota: 20, SpawnDelay: 70, PowerUpRate: 0.0022,
		Pool:     []EnemyType{EnemyScout, EnemyFighter, EnemyBomber},
		Features: FeatureNebula,
	},
	{
		Number: 5, Name: "Sentinel", Description: "A dreadnought guards the gate",
		Quota: 22, SpawnDelay: 65, PowerUpRate: 0.0025,
		Pool:     []EnemyType{EnemyFighter, EnemyBomber},
		Features: FeatureFormations | FeatureBoss,
	},
	{
		Number: 6, Name: "Interception", Description: "Fast interceptors weave through fire",
		Quota: 26, SpawnDelay: 60, PowerUpRate: 0.0025,
		Pool:     []EnemyType{EnemyFighter, EnemyInterceptor},
		Features: FeatureFormations,
	},
	{
		Number: 7, Name: "Deep Nebula", Description: "Visibility drops, pressure rises",
		Quota: 28, SpawnDelay: 55, PowerUpRate: 0.0028,
		Pool:     []EnemyType{EnemyBomber, EnemyInterceptor},
		Features: FeatureNebula | FeatureFormations,
	},
	{
		Number: 8, Name: "Siege Line", Description: "Destroyers hold the line",
		Quota: 30, SpawnDelay: 50, PowerUpRate: 0.0030,
		Pool:     []EnemyType{EnemyFighter, EnemyBomber, EnemyDestroyer},
		Features: FeatureFormations,
	},
	{
		Number: 9, Name: "Iron Armada", Description: "The main fleet moves in",
		Quota: 34, SpawnDelay: 45, PowerUpRate: 0.0030,
		Pool:     []EnemyType{EnemyInterceptor, EnemyDestroyer},
		Features: FeatureNebula | FeatureFormations,
	},
	{
		Number: 10, Name: "Dreadnought", Description: "Break the flagship",
		Quota: 36, SpawnDelay: 40, PowerUpRate: 0.0035,
		Pool:     AllEnemyTypes(),
		Features: FeatureNebula | FeatureFormations | FeatureBoss,
	},
}

// CatalogSize is the number of hand-authored levels.
func CatalogSize() int {
	return len(levelCatalog)
}

// LevelFor returns a fresh copy of level n (1-based). Levels past the
// catalog extrapolate from its last entry.
func LevelFor(n int, dm *config.DifficultyManager) Level {
	if n < 1 {
		n = 1
	}
	if n <= len(levelCatalog) {
		l := levelCatalog[n-1]
		l.Pool = append([]EnemyType(nil), l.Pool...)
		l.Remaining = l.Quota
		return l
	}

	last := levelCatalog[len(levelCatalog)-1]
	extra := n - len(levelCatalog)
	l := Level{
		Number:      n,
		Name:        "Deep Space",
		Description: "Uncharted territory",
		Quota:       dm.Quota(last.Quota, extra),
		SpawnDelay:  dm.SpawnDelay(last.SpawnDelay, extra),
		PowerUpRate: dm.PowerUpRate(last.PowerUpRate, extra),
		Pool:        AllEnemyTypes(),
		Features:    FeatureFormations | FeatureNebula,
	}
	if dm.IsBossLevel(n) {
		l.Features |= FeatureBoss
		l.Name = "Deep Space Flagship"
	}
	l.Remaining = l.Quota
	return l
}
