package tags

import "github.com/yohamta/donburi"

var (
	Bird         = donburi.NewTag().SetName("Bird")
	Pig          = donburi.NewTag().SetName("Pig")
	Passive      = donburi.NewTag().SetName("Passive")
	Static       = donburi.NewTag().SetName("Static")
	Ground       = donburi.NewTag().SetName("Ground")
	Destructible = donburi.NewTag().SetName("Destructible")
	DeadZone     = donburi.NewTag().SetName("DeadZone")
)

// Resolv tags for the debug mirror
const (
	ResolvBird     = "bird"
	ResolvPig      = "pig"
	ResolvPassive  = "passive"
	ResolvSolid    = "solid"
	ResolvDeadZone = "deadzone"
)
