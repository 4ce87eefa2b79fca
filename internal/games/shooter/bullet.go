package shooter

import "github.com/vovakirdan/galaxy-shooter/internal/core"

// BulletType selects projectile size, damage and hit behavior.
type BulletType int

const (
	BulletNormal BulletType = iota
	BulletLaser
	BulletPiercing
)

// String returns the bullet type name.
func (t BulletType) String() string {
	switch t {
	case BulletNormal:
		return "normal"
	case BulletLaser:
		return "laser"
	case BulletPiercing:
		return "piercing"
	default:
		return "unknown"
	}
}

// Owner identifies which side fired a bullet.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

const (
	bulletWidth      = 5
	bulletHeight     = 12
	laserWidth       = 8
	laserHeight      = 20
	enemyBulletWidth = 4
	enemyBulletH     = 10
	laserDamage      = 3
)

// Bullet is a projectile moving in a straight line.
type Bullet struct {
	X, Y   float64
	W, H   float64
	VX, VY float64 // Units per frame
	Type   BulletType
	Owner  Owner
	Damage int
}

// NewPlayerBullet creates a player projectile of the given type.
func NewPlayerBullet(t BulletType, x, y, vx, vy float64) *Bullet {
	b := &Bullet{X: x, Y: y, VX: vx, VY: vy, Type: t, Owner: OwnerPlayer}
	switch t {
	case BulletLaser:
		b.W, b.H, b.Damage = laserWidth, laserHeight, laserDamage
	default:
		b.W, b.H, b.Damage = bulletWidth, bulletHeight, 1
	}
	return b
}

// NewEnemyBullet creates a downward enemy projectile.
func NewEnemyBullet(x, y, speed float64) *Bullet {
	return &Bullet{
		X: x, Y: y,
		W: enemyBulletWidth, H: enemyBulletH,
		VY:     speed,
		Type:   BulletNormal,
		Owner:  OwnerEnemy,
		Damage: 1,
	}
}

// Update moves the bullet.
func (b *Bullet) Update(frames float64) {
	b.X += b.VX * frames
	b.Y += b.VY * frames
}

// Bounds returns the bullet hitbox.
func (b *Bullet) Bounds() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}

// Pierces reports whether the bullet survives hitting an enemy.
func (b *Bullet) Pierces() bool {
	return b.Type == BulletPiercing
}

// OutOfBounds reports whether the bullet has left the playfield.
func (b *Bullet) OutOfBounds(worldW, worldH float64) bool {
	return b.Y+b.H < 0 || b.Y > worldH || b.X+b.W < 0 || b.X > worldW
}
