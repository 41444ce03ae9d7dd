// Package leveldata parses level layouts from TMX files into plain data. It
// does not depend on the game packages.
//
// Positions are converted from Tiled's y-down map space to world space,
// where y points up and the map's bottom edge is y = 0.
package leveldata

// Point is a world position.
type Point struct {
	X, Y float64
}

// Rect is an axis aligned box given by its centre and size.
type Rect struct {
	X, Y, W, H float64
}

// Segment is a static line, typically the ground.
type Segment struct {
	A, B     Point
	Friction float64 // 0 means use the configured default
}

// Layout holds everything a level setup spawns.
type Layout struct {
	Name      string
	MapWidth  int
	MapHeight int

	Ground  []Segment
	Pigs    []Point
	Columns []Point
	Statics []Rect
}

// Empty reports whether the layout spawns nothing.
func (l *Layout) Empty() bool {
	return len(l.Ground) == 0 && len(l.Pigs) == 0 && len(l.Columns) == 0 && len(l.Statics) == 0
}
