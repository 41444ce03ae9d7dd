// Package progression implements the score-threshold level sequence. It is
// generic over the game handle passed to each level's setup action so it has
// no dependency on ebitengine or donburi.
package progression

// NotStarted is the index before Start has been called.
const NotStarted = -1

// LevelSpec is one entry of the sequence. Setup may be nil.
type LevelSpec[G any] struct {
	Threshold int
	Setup     func(game G, index int)
}

// Progression tracks the current level and the score that unlocks the next
// one. Levels advance strictly one at a time.
type Progression[G any] struct {
	Levels  []LevelSpec[G]
	Current int
	Score   int
}

// New returns a progression that has not started.
func New[G any]() *Progression[G] {
	return &Progression[G]{Current: NotStarted}
}

// AddLevel appends a level to the end of the sequence.
func (p *Progression[G]) AddLevel(threshold int, setup func(G, int)) {
	p.Levels = append(p.Levels, LevelSpec[G]{Threshold: threshold, Setup: setup})
}

// Start moves to level 0 and runs its setup. It returns false if there are
// no levels or the progression already started.
func (p *Progression[G]) Start(game G) bool {
	if len(p.Levels) == 0 || p.Current != NotStarted {
		return false
	}
	p.enter(game, 0)
	return true
}

// UpdateScore records the latest score.
func (p *Progression[G]) UpdateScore(score int) {
	p.Score = score
}

// CheckAndAdvance moves to the next level when the score reaches its
// threshold. Only the immediate next level is considered, so a single large
// score jump never skips a level.
func (p *Progression[G]) CheckAndAdvance(game G) bool {
	if p.Current == NotStarted {
		return false
	}
	next := p.Current + 1
	if next >= len(p.Levels) {
		return false
	}
	if p.Score < p.Levels[next].Threshold {
		return false
	}
	p.enter(game, next)
	return true
}

// IsLastLevel reports whether the current level is the final one.
func (p *Progression[G]) IsLastLevel() bool {
	return p.Current == len(p.Levels)-1
}

// CurrentIndex returns the active level index, or NotStarted.
func (p *Progression[G]) CurrentIndex() int {
	return p.Current
}

func (p *Progression[G]) enter(game G, index int) {
	p.Current = index
	if setup := p.Levels[index].Setup; setup != nil {
		setup(game, index)
	}
}
