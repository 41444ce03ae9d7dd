package systems

import (
	"math"
	"testing"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/physics/physicstest"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/automoto/slingshot/systems/factory"
	"github.com/automoto/slingshot/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestScene builds a scene without layouts: levels exist but spawn
// nothing, so each test places exactly what it needs.
func newTestScene(t *testing.T) (*ecs.ECS, *physicstest.World) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	world := physicstest.New(gamemath.Point2D{Y: cfg.Physics.Gravity})
	factory.CreateDefaultSpace(e)
	factory.CreateSimulation(e, world)
	factory.CreateCamera(e)
	factory.CreateLevel(e, nil)
	StartLevels(e)
	return e, world
}

func count(e *ecs.ECS, tag *donburi.ComponentType[donburi.Tag]) int {
	n := 0
	tag.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func TestCollisionPolicy(t *testing.T) {
	tests := []struct {
		impulse   float64
		destroyed bool
	}{
		{99, false},
		{100, false},
		{1200, false},
		{1201, true},
	}

	for _, tt := range tests {
		e, world := newTestScene(t)
		pig := factory.CreatePig(e, gamemath.Point2D{X: 900, Y: 100})
		bird := factory.CreateBird(e, cfg.BirdRed, gamemath.Point2D{X: 880, Y: 100}, gamemath.ImpulseVector{})

		world.Emit(components.Body.Get(bird).Shape, components.Body.Get(pig).Shape, tt.impulse)
		UpdateCollisions(e)

		if got := !pig.Valid(); got != tt.destroyed {
			t.Errorf("impulse %v: pig destroyed = %v, want %v", tt.impulse, got, tt.destroyed)
		}
		wantScore := 0
		if tt.destroyed {
			wantScore = cfg.Collision.PigAward
		}
		if got := Score(e); got != wantScore {
			t.Errorf("impulse %v: score = %d, want %d", tt.impulse, got, wantScore)
		}
		if !bird.Valid() {
			t.Errorf("impulse %v: bird destroyed", tt.impulse)
		}
	}
}

func TestStrongContactAdvancesLevel(t *testing.T) {
	e, world := newTestScene(t)
	pig := factory.CreatePig(e, gamemath.Point2D{X: 900, Y: 100})
	column := factory.CreateColumn(e, gamemath.Point2D{X: 920, Y: 50})

	world.Emit(components.Body.Get(column).Shape, components.Body.Get(pig).Shape, 5000)
	UpdateCollisions(e)

	if pig.Valid() || column.Valid() {
		t.Fatal("strong contact left a destructible alive")
	}
	if got := Score(e); got != 100 {
		t.Errorf("score = %d, want 100 (columns award nothing)", got)
	}
	if got := getLevel(e).Progression.CurrentIndex(); got != 1 {
		t.Errorf("level = %d, want 1", got)
	}
	if got := GetOrCreateRecord(e).Best; got != 100 {
		t.Errorf("best = %d, want 100", got)
	}
	if count(e, tags.Pig) != 0 {
		t.Error("pig still queryable")
	}
}

func TestStaticSurvivesStrongContact(t *testing.T) {
	e, world := newTestScene(t)
	block := factory.CreateStatic(e, gamemath.Point2D{X: 1500, Y: 30}, 120, 30)
	bird := factory.CreateBird(e, cfg.BirdRed, gamemath.Point2D{X: 1500, Y: 60}, gamemath.ImpulseVector{})

	world.Emit(components.Body.Get(bird).Shape, components.Body.Get(block).Shape, 5000)
	UpdateCollisions(e)

	if !block.Valid() || !bird.Valid() {
		t.Error("non-destructible entity removed by a contact")
	}
}

func TestModerateContactFlashes(t *testing.T) {
	e, world := newTestScene(t)
	pig := factory.CreatePig(e, gamemath.Point2D{X: 900, Y: 100})
	bird := factory.CreateBird(e, cfg.BirdRed, gamemath.Point2D{X: 880, Y: 100}, gamemath.ImpulseVector{})

	world.Emit(components.Body.Get(bird).Shape, components.Body.Get(pig).Shape, 500)
	UpdateCollisions(e)

	if got := components.Flash.Get(pig).Duration; got != cfg.Effects.FlashFrames {
		t.Errorf("flash duration = %d, want %d", got, cfg.Effects.FlashFrames)
	}
	if !bird.HasComponent(components.SquashStretch) {
		t.Error("bird was not squashed")
	}
}

func TestOutOfBounds(t *testing.T) {
	tests := []struct {
		p    gamemath.Point2D
		want bool
	}{
		{gamemath.Point2D{X: 900, Y: 100}, false},
		{gamemath.Point2D{X: 900, Y: -200}, false},
		{gamemath.Point2D{X: 900, Y: -200.5}, true},
		{gamemath.Point2D{X: -500, Y: 100}, false},
		{gamemath.Point2D{X: -501, Y: 100}, true},
		{gamemath.Point2D{X: cfg.Bounds.MaxX, Y: 100}, false},
		{gamemath.Point2D{X: cfg.Bounds.MaxX + 1, Y: 100}, true},
	}
	for _, tt := range tests {
		if got := OutOfBounds(tt.p); got != tt.want {
			t.Errorf("OutOfBounds(%+v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestBoundsSweep(t *testing.T) {
	e, world := newTestScene(t)
	fallen := factory.CreatePig(e, gamemath.Point2D{X: 900, Y: 100})
	resting := factory.CreatePig(e, gamemath.Point2D{X: 1000, Y: 100})
	flown := factory.CreateBird(e, cfg.BirdRed, gamemath.Point2D{X: 180, Y: 160}, gamemath.ImpulseVector{})
	block := factory.CreateStatic(e, gamemath.Point2D{X: 1500, Y: 30}, 0, 0)

	world.Place(components.Body.Get(fallen).Body, gamemath.Point2D{X: 900, Y: -250})
	world.Place(components.Body.Get(flown).Body, gamemath.Point2D{X: cfg.Bounds.MaxX + 10, Y: 300})
	UpdateBounds(e)

	if fallen.Valid() || flown.Valid() {
		t.Error("out of bounds entity survived the sweep")
	}
	if !resting.Valid() || !block.Valid() {
		t.Error("in bounds entity removed")
	}
	if Score(e) != 0 {
		t.Errorf("score = %d, want 0", Score(e))
	}
}

func TestAimReleaseSpawnsTieredBird(t *testing.T) {
	e, _ := newTestScene(t)

	PushInputEvent(e, components.InputEvent{Kind: components.PointerDown, Pos: gamemath.Point2D{X: 300, Y: 160}})
	PushInputEvent(e, components.InputEvent{Kind: components.PointerDrag, Pos: gamemath.Point2D{X: 380, Y: 160}})
	UpdateAim(e)

	aim := GetOrCreateAim(e)
	if !aim.Active {
		t.Fatal("aim not active after press")
	}
	if n := len(aim.Preview); n == 0 || n > cfg.Preview.Steps {
		t.Errorf("preview has %d points", n)
	}

	PushInputEvent(e, components.InputEvent{Kind: components.PointerUp, Pos: gamemath.Point2D{X: 380, Y: 160}})
	UpdateAim(e)

	if aim.Active || len(aim.Preview) != 0 {
		t.Error("aim still active after release")
	}
	bird, ok := tags.Bird.First(e.World)
	if !ok {
		t.Fatal("no bird spawned")
	}
	if kind := components.Bird.Get(bird).Kind; kind != cfg.BirdBlue {
		t.Errorf("kind = %v, want blue", kind)
	}
	body := components.Body.Get(bird)
	if pos := body.Position(); pos != SlingshotOrigin() {
		t.Errorf("spawned at %+v, want the slingshot", pos)
	}
	v := body.Velocity()
	if math.Abs(v.X+1890) > 1e-6 || math.Abs(v.Y) > 1e-6 {
		t.Errorf("velocity = %+v, want {-1890 0}", v)
	}
}

func TestForcedSelectionOverridesTier(t *testing.T) {
	e, _ := newTestScene(t)

	PushInputEvent(e, components.InputEvent{Kind: components.KeyForce, Bird: cfg.BirdRed})
	UpdateAim(e)
	if got := HUD(e).Selection; got != "Bird select: red" {
		t.Errorf("selection = %q", got)
	}

	PushInputEvent(e, components.InputEvent{Kind: components.PointerDown, Pos: gamemath.Point2D{X: 430, Y: 160}})
	PushInputEvent(e, components.InputEvent{Kind: components.PointerUp, Pos: gamemath.Point2D{X: 430, Y: 160}})
	UpdateAim(e)

	bird, ok := tags.Bird.First(e.World)
	if !ok {
		t.Fatal("no bird spawned")
	}
	if kind := components.Bird.Get(bird).Kind; kind != cfg.BirdRed {
		t.Errorf("kind = %v, want red", kind)
	}

	PushInputEvent(e, components.InputEvent{Kind: components.KeyClear})
	UpdateAim(e)
	if got := HUD(e).Selection; got != "Bird select: auto" {
		t.Errorf("selection after clear = %q", got)
	}
}

func TestPressFiresAbilityBeforeAiming(t *testing.T) {
	e, _ := newTestScene(t)
	bird := factory.CreateBird(e, cfg.BirdYellow, SlingshotOrigin(), gamemath.ImpulseVector{Angle: 0.5, Impulse: 150})
	before := components.Body.Get(bird).Velocity()

	PushInputEvent(e, components.InputEvent{Kind: components.PointerDown, Pos: gamemath.Point2D{X: 50, Y: 50}})
	UpdateAim(e)

	if GetOrCreateAim(e).Active {
		t.Error("press started an aim while an ability was available")
	}
	if !components.Bird.Get(bird).UsedAbility {
		t.Fatal("ability not used")
	}
	after := components.Body.Get(bird).Velocity()
	if math.Abs(after.X-before.X*2.2) > 1e-6 {
		t.Errorf("vx = %v, want %v", after.X, before.X*2.2)
	}

	// Nothing left to activate: the next press aims
	PushInputEvent(e, components.InputEvent{Kind: components.PointerUp, Pos: gamemath.Point2D{X: 50, Y: 50}})
	PushInputEvent(e, components.InputEvent{Kind: components.PointerDown, Pos: gamemath.Point2D{X: 50, Y: 50}})
	UpdateAim(e)
	if !GetOrCreateAim(e).Active {
		t.Error("second press did not start aiming")
	}
}

func TestQueuePointerEvents(t *testing.T) {
	input := &components.InputData{}
	a := gamemath.Point2D{X: 10, Y: 10}
	b := gamemath.Point2D{X: 20, Y: 10}

	queuePointerEvents(input, true, a)
	queuePointerEvents(input, true, a)
	queuePointerEvents(input, true, b)
	queuePointerEvents(input, false, b)
	queuePointerEvents(input, false, b)

	want := []components.InputEventKind{components.PointerDown, components.PointerDrag, components.PointerUp}
	if len(input.Events) != len(want) {
		t.Fatalf("events = %+v", input.Events)
	}
	for i, ev := range input.Events {
		if ev.Kind != want[i] {
			t.Errorf("event %d = %v, want %v", i, ev.Kind, want[i])
		}
	}
	if input.Events[2].Pos != b {
		t.Errorf("release at %+v, want %+v", input.Events[2].Pos, b)
	}
}

func TestScreenToWorldFlipsY(t *testing.T) {
	p := ScreenToWorld(180, float64(cfg.C.Height)-160)
	if p != SlingshotOrigin() {
		t.Errorf("ScreenToWorld = %+v, want %+v", p, SlingshotOrigin())
	}
	e, _ := newTestScene(t)
	if x, y := WorldToScreen(e, p); x != 180 || y != float64(cfg.C.Height)-160 {
		t.Errorf("WorldToScreen = %v,%v", x, y)
	}
}

func TestLevelEntryShowsBanner(t *testing.T) {
	e, _ := newTestScene(t)

	UpdateLevel(e)
	banner := getOrCreateBanner(e)
	if banner.Text != "Level 0" || banner.Sequence == nil {
		t.Fatalf("banner = %+v", banner)
	}
	if getLevel(e).Entered {
		t.Error("Entered not cleared")
	}

	total := cfg.Banner.FadeIn + cfg.Banner.Hold + cfg.Banner.FadeOut
	frames := int(total/float32(cfg.Physics.Step)) + 5
	sawVisible := false
	for range frames {
		UpdateBanner(e)
		if banner.Alpha > 0.5 {
			sawVisible = true
		}
	}
	if !sawVisible || !banner.Done || banner.Alpha != 0 {
		t.Errorf("banner after fade = visible %v done %v alpha %v", sawVisible, banner.Done, banner.Alpha)
	}
}

func TestScreenShakeExpires(t *testing.T) {
	e, _ := newTestScene(t)
	TriggerScreenShake(e, 6, 10)

	cameraEntry, _ := components.Camera.First(e.World)
	for range 10 {
		UpdateCamera(e)
	}
	if cameraEntry.HasComponent(components.ScreenShake) {
		t.Fatal("shake not removed after its duration")
	}
	UpdateCamera(e)
	if off := components.Camera.Get(cameraEntry).Offset; off.X != 0 || off.Y != 0 {
		t.Errorf("offset = %+v after shake, want zero", off)
	}
}

func TestEffectsExpire(t *testing.T) {
	e, _ := newTestScene(t)
	factory.SpawnDebris(e, gamemath.Point2D{X: 900, Y: 100}, cfg.Green)
	bird := factory.CreateBird(e, cfg.BirdRed, SlingshotOrigin(), gamemath.ImpulseVector{})
	TriggerSquashStretch(bird, 1.35)

	frames := max(cfg.Effects.DebrisFrames, int(cfg.Effects.SquashDuration/float32(cfg.Physics.Step))+1)
	for range frames {
		UpdateEffects(e)
	}

	n := 0
	components.Debris.Each(e.World, func(*donburi.Entry) { n++ })
	if n != 0 {
		t.Errorf("%d debris left", n)
	}
	if bird.HasComponent(components.SquashStretch) {
		t.Error("squash did not settle")
	}
}

func TestUpdateObjectsFollowsBody(t *testing.T) {
	e, world := newTestScene(t)
	pig := factory.CreatePig(e, gamemath.Point2D{X: 900, Y: 100})

	target := gamemath.Point2D{X: 700, Y: 300}
	world.Place(components.Body.Get(pig).Body, target)
	UpdateObjects(e)

	obj := components.Object.Get(pig)
	got := factory.SpaceToWorld(obj.X+obj.W/2, obj.Y+obj.H/2)
	if math.Abs(got.X-target.X) > 1e-9 || math.Abs(got.Y-target.Y) > 1e-9 {
		t.Errorf("mirror centre = %+v, want %+v", got, target)
	}
}

func TestPhysicsStepUsesFixedTimestep(t *testing.T) {
	e, world := newTestScene(t)
	UpdatePhysics(e)
	UpdatePhysics(e)
	if world.Steps != 2 {
		t.Errorf("steps = %d, want 2", world.Steps)
	}
}

func TestPreviewDotRadius(t *testing.T) {
	tests := map[int]float32{0: 6, 9: 6, 10: 5, 25: 4, 40: 2, 79: 2}
	for i, want := range tests {
		if got := PreviewDotRadius(i); got != want {
			t.Errorf("PreviewDotRadius(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestHUDText(t *testing.T) {
	e, _ := newTestScene(t)
	AddScore(e, 100)

	hud := HUD(e)
	if hud.Score != "Score: 100" || hud.Level != "Level: 1" || hud.Best != "Best: 100" {
		t.Errorf("HUD = %+v", hud)
	}
}

func TestPauseGatesGameplay(t *testing.T) {
	e, world := newTestScene(t)
	GetOrCreatePause(e).IsPaused = true

	WithGameplayChecks(UpdatePhysics)(e)
	if world.Steps != 0 {
		t.Error("physics stepped while paused")
	}

	GetOrCreatePause(e).IsPaused = false
	WithGameplayChecks(UpdatePhysics)(e)
	if world.Steps != 1 {
		t.Error("physics did not step after resume")
	}
}

func TestPauseDropsPointerEvents(t *testing.T) {
	e, _ := newTestScene(t)
	input := getOrCreateInput(e)
	p := gamemath.Point2D{X: 380, Y: 160}

	GetOrCreatePause(e).IsPaused = true
	queuePointerEvents(input, true, p)
	UpdatePause(e)
	queuePointerEvents(input, true, gamemath.Point2D{X: 390, Y: 160})
	UpdatePause(e)
	queuePointerEvents(input, false, p)
	UpdatePause(e)
	if n := len(input.Events); n != 0 {
		t.Fatalf("%d events kept while paused", n)
	}

	GetOrCreatePause(e).IsPaused = false
	UpdateAim(e)
	if count(e, tags.Bird) != 0 {
		t.Error("click made while paused launched a bird after resume")
	}
	if GetOrCreateAim(e).Active {
		t.Error("click made while paused started an aim")
	}
}

func TestPointerUpWithoutAimSpawnsNothing(t *testing.T) {
	e, _ := newTestScene(t)

	PushInputEvent(e, components.InputEvent{Kind: components.PointerDrag, Pos: gamemath.Point2D{X: 380, Y: 160}})
	PushInputEvent(e, components.InputEvent{Kind: components.PointerUp, Pos: gamemath.Point2D{X: 380, Y: 160}})
	UpdateAim(e)

	if count(e, tags.Bird) != 0 {
		t.Error("release without an active aim spawned a bird")
	}
	if aim := GetOrCreateAim(e); aim.Active || len(aim.Preview) != 0 {
		t.Errorf("aim = %+v, want inactive", aim)
	}
}

func TestPreviewUsesWorldGravity(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateDefaultSpace(e)
	factory.CreateSimulation(e, physicstest.New(gamemath.Point2D{}))

	PushInputEvent(e, components.InputEvent{Kind: components.PointerDown, Pos: gamemath.Point2D{X: 300, Y: 160}})
	UpdateAim(e)

	preview := GetOrCreateAim(e).Preview
	if len(preview) != cfg.Preview.Steps {
		t.Fatalf("preview has %d points, want %d", len(preview), cfg.Preview.Steps)
	}
	for i, p := range preview {
		if math.Abs(p.Y-SlingshotOrigin().Y) > 1e-6 {
			t.Fatalf("point %d y = %v, want a flat path without gravity", i, p.Y)
		}
	}
}

func TestBoundsIgnoreDeadZoneOverlap(t *testing.T) {
	e, _ := newTestScene(t)
	factory.CreateBoundsDeadZones(e)
	edge := factory.CreatePig(e, gamemath.Point2D{X: cfg.Bounds.MaxX - 5, Y: 100})

	UpdateObjects(e)
	if components.Object.Get(edge).Check(0, 0, tags.ResolvDeadZone) == nil {
		t.Fatal("mirror over the bound does not touch the dead zone")
	}
	UpdateBounds(e)
	if !edge.Valid() {
		t.Error("pig removed while its centre is in bounds")
	}
}

func TestStepSelectionWraps(t *testing.T) {
	input := &components.InputData{}

	input.Current[cfg.ActionMenuUp] = true
	if got := stepSelection(input, 0, 3); got != 2 {
		t.Errorf("up from 0 = %d, want 2", got)
	}

	input.Current = [cfg.ActionCount]bool{}
	input.Current[cfg.ActionMenuDown] = true
	if got := stepSelection(input, 2, 3); got != 0 {
		t.Errorf("down from 2 = %d, want 0", got)
	}

	input.Previous = input.Current
	if got := stepSelection(input, 1, 3); got != 1 {
		t.Errorf("held down moved the cursor to %d", got)
	}
}
