package shooter

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/galaxy-shooter/internal/core"
)

// Track is one of the independent upgrade paths.
type Track int

const (
	TrackDamage Track = iota
	TrackDefense
	TrackHealth
	TrackCount // Sentinel for counting tracks
)

// MaxUpgradeLevel is the highest purchasable level of every track.
const MaxUpgradeLevel = 3

var (
	ErrMaxLevel         = errors.New("shooter: upgrade already at max level")
	ErrInsufficientGold = errors.New("shooter: not enough gold")
	ErrUnknownTrack     = errors.New("shooter: unknown upgrade track")
)

// Persistent keys.
const (
	keyGold      = "gold"
	keyHighScore = "high_score"
	keyLastLevel = "last_level"
	keyMaster    = "volume.master"
	keySFX       = "volume.sfx"
)

var upgradeCosts = [TrackCount][MaxUpgradeLevel]int{
	TrackDamage:  {100, 250, 500},
	TrackDefense: {80, 200, 400},
	TrackHealth:  {150, 300, 600},
}

// Effect tables indexed by upgrade level.
var (
	fireDelayDivisors = [MaxUpgradeLevel + 1]float64{1, 1.25, 1.5, 2}
	shieldHitCaps     = [MaxUpgradeLevel + 1]int{4, 6, 8, 10}
	maxLivesTable     = [MaxUpgradeLevel + 1]int{3, 4, 5, 6}
)

// String returns the display name of the track.
func (t Track) String() string {
	switch t {
	case TrackDamage:
		return "Damage"
	case TrackDefense:
		return "Defense"
	case TrackHealth:
		return "Health"
	default:
		return "Unknown"
	}
}

// Key returns the persistent storage key of the track level.
func (t Track) Key() string {
	switch t {
	case TrackDamage:
		return "upgrade.damage"
	case TrackDefense:
		return "upgrade.defense"
	case TrackHealth:
		return "upgrade.health"
	default:
		return ""
	}
}

// Effect describes what the next level of the track does.
func (t Track) Effect() string {
	switch t {
	case TrackDamage:
		return "faster fire rate"
	case TrackDefense:
		return "stronger shield"
	case TrackHealth:
		return "extra life"
	default:
		return ""
	}
}

func (t Track) valid() bool {
	return t >= 0 && t < TrackCount
}

// Progression is the gold balance and upgrade levels that survive between
// runs. Every change is written to the store immediately.
type Progression struct {
	store  core.KVStore
	gold   int
	levels [TrackCount]int
}

// LoadProgression reads progression from store. Missing values default to
// zero, out-of-range values are clamped.
func LoadProgression(store core.KVStore) *Progression {
	p := &Progression{store: store}
	if v, ok := store.GetInt(keyGold); ok {
		p.gold = core.Max(v, 0)
	}
	for t := TrackDamage; t < TrackCount; t++ {
		if v, ok := store.GetInt(t.Key()); ok {
			p.levels[t] = core.Clamp(v, 0, MaxUpgradeLevel)
		}
	}
	return p
}

// Gold returns the current balance.
func (p *Progression) Gold() int {
	return p.gold
}

// Level returns the current level of a track, or 0 for an unknown track.
func (p *Progression) Level(t Track) int {
	if !t.valid() {
		return 0
	}
	return p.levels[t]
}

// Cost returns the price of the next level. ok is false when the track is
// maxed or unknown.
func (p *Progression) Cost(t Track) (cost int, ok bool) {
	if !t.valid() || p.levels[t] >= MaxUpgradeLevel {
		return 0, false
	}
	return upgradeCosts[t][p.levels[t]], true
}

// CanUpgrade reports whether Upgrade(t) would succeed.
func (p *Progression) CanUpgrade(t Track) bool {
	cost, ok := p.Cost(t)
	return ok && p.gold >= cost
}

// Upgrade buys the next level of t.
func (p *Progression) Upgrade(t Track) error {
	if !t.valid() {
		return fmt.Errorf("%w: %d", ErrUnknownTrack, t)
	}
	cost, ok := p.Cost(t)
	if !ok {
		return fmt.Errorf("%w: %s", ErrMaxLevel, t)
	}
	if p.gold < cost {
		return fmt.Errorf("%w: %s costs %d, have %d", ErrInsufficientGold, t, cost, p.gold)
	}
	p.gold -= cost
	p.levels[t]++
	p.Save()
	return nil
}

// AddGold credits n gold (ignored when n <= 0) and persists the balance.
func (p *Progression) AddGold(n int) {
	if n <= 0 {
		return
	}
	p.gold += n
	_ = p.store.SetInt(keyGold, p.gold)
}

// Save writes the full snapshot. Write errors are dropped; the next change
// tries again.
func (p *Progression) Save() {
	_ = p.store.SetInt(keyGold, p.gold)
	for t := TrackDamage; t < TrackCount; t++ {
		_ = p.store.SetInt(t.Key(), p.levels[t])
	}
}

// Reset clears gold and all upgrades.
func (p *Progression) Reset() {
	p.gold = 0
	p.levels = [TrackCount]int{}
	p.Save()
}

// FireDelayDivisor is the damage-track effect.
func (p *Progression) FireDelayDivisor() float64 {
	return fireDelayDivisors[p.levels[TrackDamage]]
}

// ShieldHitCap is the defense-track effect.
func (p *Progression) ShieldHitCap() int {
	return shieldHitCaps[p.levels[TrackDefense]]
}

// MaxLives is the health-track effect.
func (p *Progression) MaxLives() int {
	return maxLivesTable[p.levels[TrackHealth]]
}
