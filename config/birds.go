package config

import "image/color"

// BirdKind identifies a projectile variant.
type BirdKind int

const (
	BirdRed BirdKind = iota
	BirdBlue
	BirdYellow
	BirdKindCount // Must be last - used for array sizing
)

func (k BirdKind) String() string {
	if k < 0 || k >= BirdKindCount {
		return "unknown"
	}
	return Birds[k].Name
}

// Valid reports whether k names a configured variant.
func (k BirdKind) Valid() bool {
	return k >= 0 && k < BirdKindCount
}

// BirdTypeConfig contains configuration for one projectile variant.
type BirdTypeConfig struct {
	Name            string
	Mass            float64
	Radius          float64
	MaxImpulse      float64
	PowerMultiplier float64
	Material        MaterialConfig

	// Ability tuning, zero when the variant has none
	BoostMultiplier float64
	SplitHalfAngle  float64 // radians

	Color color.RGBA
}

// Birds is indexed by BirdKind.
var Birds [BirdKindCount]BirdTypeConfig

func initBirds() {
	birdMaterial := MaterialConfig{Elasticity: 0.8, Friction: 1}

	Birds[BirdRed] = BirdTypeConfig{
		Name:            "red",
		Mass:            5,
		Radius:          12,
		MaxImpulse:      200,
		PowerMultiplier: 45,
		Material:        birdMaterial,
		Color:           Red,
	}
	Birds[BirdBlue] = BirdTypeConfig{
		Name:            "blue",
		Mass:            4,
		Radius:          10,
		MaxImpulse:      180,
		PowerMultiplier: 42,
		Material:        birdMaterial,
		SplitHalfAngle:  Deg(30),
		Color:           Blue,
	}
	Birds[BirdYellow] = BirdTypeConfig{
		Name:            "yellow",
		Mass:            4,
		Radius:          12,
		MaxImpulse:      240,
		PowerMultiplier: 50,
		Material:        birdMaterial,
		BoostMultiplier: 2.2,
		Color:           Yellow,
	}
}

// BirdForDistance applies the drag-distance tiering: long drags pick the
// boost bird, medium drags the split bird, short drags the standard one.
func BirdForDistance(d float64) BirdKind {
	switch {
	case d > Aim.LongRange:
		return BirdYellow
	case d > Aim.MidRange:
		return BirdBlue
	}
	return BirdRed
}
