package system

import (
	"testing"

	"github.com/milk9111/platformer/camera"
	"github.com/milk9111/platformer/collision"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/input"
	"github.com/milk9111/platformer/physics"
)

type testRig struct {
	world  *ecs.World
	player ecs.Entity
	actor  *physics.Actor
	cam    *camera.Controller
	log    *EventLogSystem
}

// newRig builds a 320x200 level with a floor whose top is at y=100 and a
// player whose hitbox bottom starts at y=93.
func newRig(t *testing.T, src input.Source) *testRig {
	t.Helper()

	var blocks []collision.Block
	for x := 0.0; x < 320; x += 16 {
		b, err := collision.NewBlock(collision.Solid, x, 100, 0)
		if err != nil {
			t.Fatal(err)
		}
		blocks = append(blocks, b)
	}
	reg, err := collision.NewRegistry(blocks...)
	if err != nil {
		t.Fatal(err)
	}

	actor, err := physics.NewActor(common.Vec{X: 100, Y: 40}, physics.Config{
		Gravity:         0.1,
		Epsilon:         physics.DefaultEpsilon,
		Hitbox:          physics.HitboxShape{OffsetX: 35, OffsetY: 26, Width: 14, Height: 27},
		InitialVelocity: common.Vec{X: 0, Y: 1},
	})
	if err != nil {
		t.Fatal(err)
	}
	cam, err := camera.NewController(camera.Config{
		Tracking:       camera.TrackingBox{OffsetX: -50, Width: 200, Height: 80},
		ViewportWidth:  256,
		ViewportHeight: 144,
		Zoom:           1,
		LevelWidth:     320,
		LevelHeight:    200,
	})
	if err != nil {
		t.Fatal(err)
	}

	w := ecs.NewWorld()
	rig := &testRig{world: w, actor: actor, cam: cam, log: NewEventLogSystem(nil)}

	level := ecs.CreateEntity(w)
	mustAdd(t, ecs.Add(w, level, component.LevelBoundsComponent.Kind(), &component.LevelBounds{Width: 320, Height: 200}))

	rig.player = ecs.CreateEntity(w)
	mustAdd(t, ecs.Add(w, rig.player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}))
	mustAdd(t, ecs.Add(w, rig.player, component.ActorComponent.Kind(), actor))
	mustAdd(t, ecs.Add(w, rig.player, component.InputComponent.Kind(), &component.Input{}))
	mustAdd(t, ecs.Add(w, rig.player, component.MovementComponent.Kind(), &component.Movement{Speed: 2, JumpVelocity: -4, ClampToLevel: true}))
	mustAdd(t, ecs.Add(w, rig.player, component.FacingComponent.Kind(), &component.Facing{}))
	mustAdd(t, ecs.Add(w, rig.player, component.ContactsComponent.Kind(), &component.Contacts{}))
	mustAdd(t, ecs.Add(w, rig.player, component.AnimationComponent.Kind(), &component.Animation{
		Defs: map[string]component.AnimationDef{
			"Idle": {FrameCount: 8, FrameBuffer: 3}, "IdleLeft": {FrameCount: 8, FrameBuffer: 3},
			"Run": {FrameCount: 8, FrameBuffer: 5}, "RunLeft": {FrameCount: 8, FrameBuffer: 5},
			"Jump": {FrameCount: 2, FrameBuffer: 3}, "JumpLeft": {FrameCount: 2, FrameBuffer: 3},
			"Fall": {FrameCount: 2, FrameBuffer: 3}, "FallLeft": {FrameCount: 2, FrameBuffer: 3},
		},
		Current: "Idle",
	}))

	camEntity := ecs.CreateEntity(w)
	mustAdd(t, ecs.Add(w, camEntity, component.CameraTagComponent.Kind(), &component.CameraTag{}))
	mustAdd(t, ecs.Add(w, camEntity, component.CameraComponent.Kind(), cam))

	w.AddSystem(NewInputSystem(src))
	w.AddSystem(NewPlayerControllerSystem())
	w.AddSystem(NewPhysicsSystem(reg, nil))
	w.AddSystem(NewCameraSystem())
	w.AddSystem(NewAnimationSystem())
	w.AddSystem(rig.log)
	return rig
}

func mustAdd(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

func (r *testRig) run(n int) {
	for i := 0; i < n; i++ {
		r.world.Update()
	}
}

func (r *testRig) anim(t *testing.T) *component.Animation {
	t.Helper()
	a, ok := ecs.Get(r.world, r.player, component.AnimationComponent.Kind())
	if !ok {
		t.Fatal("missing animation")
	}
	return a
}

func TestPlayerLandsOnceAndIdles(t *testing.T) {
	rig := newRig(t, input.Idle)
	rig.run(30)

	if got := rig.actor.Hitbox.Bottom(); got < 99.98 || got >= 100 {
		t.Fatalf("expected hitbox resting on floor, bottom=%v", got)
	}
	if rig.actor.Velocity.Y != 0 {
		t.Fatalf("expected vy=0 at rest, got %v", rig.actor.Velocity.Y)
	}
	if n := rig.log.Count(ecs.EventLanded); n != 1 {
		t.Fatalf("expected exactly one landing, got %d", n)
	}
	if cur := rig.anim(t).Current; cur != "Idle" {
		t.Fatalf("expected Idle at rest, got %s", cur)
	}
	c, _ := ecs.Get(rig.world, rig.player, component.ContactsComponent.Kind())
	if !c.Current.Ground {
		t.Fatal("expected ground contact")
	}
}

func TestHorizontalIntentAndFacing(t *testing.T) {
	src := input.Concat(
		input.Repeat(input.Snapshot{}, 20),
		input.Repeat(input.Snapshot{Left: true}, 5),
		input.Repeat(input.Snapshot{}, 1),
	)
	rig := newRig(t, src)

	rig.run(20)
	x := rig.actor.Position.X

	rig.run(5)
	if got := rig.actor.Position.X; got != x-10 {
		t.Fatalf("expected 5 frames at speed 2 to move 10 left, from %v got %v", x, got)
	}
	facing, _ := ecs.Get(rig.world, rig.player, component.FacingComponent.Kind())
	if !facing.Left {
		t.Fatal("expected facing left")
	}
	if cur := rig.anim(t).Current; cur != "RunLeft" {
		t.Fatalf("expected RunLeft, got %s", cur)
	}

	rig.run(1)
	if rig.actor.Velocity.X != 0 {
		t.Fatalf("releasing the key should stop, vx=%v", rig.actor.Velocity.X)
	}
	if !facing.Left || rig.anim(t).Current != "IdleLeft" {
		t.Fatalf("expected to keep facing left while idle, got %s", rig.anim(t).Current)
	}
}

func TestJumpOnlyOnPressEdge(t *testing.T) {
	src := input.Concat(
		input.Repeat(input.Snapshot{}, 20),
		input.Repeat(input.Snapshot{Jump: true}, 3),
	)
	rig := newRig(t, src)
	rig.run(20)

	rig.run(1)
	// -4 impulse then one tick of gravity.
	if got := rig.actor.Velocity.Y; got < -3.91 || got > -3.89 {
		t.Fatalf("expected vy=-3.9 after jump tick, got %v", got)
	}
	if cur := rig.anim(t).Current; cur != "Jump" {
		t.Fatalf("expected Jump, got %s", cur)
	}

	rig.run(1)
	if got := rig.actor.Velocity.Y; got < -3.81 || got > -3.79 {
		t.Fatalf("holding jump must not re-impulse, vy=%v", got)
	}
}

func TestControllerDrivesOnlyTaggedPlayers(t *testing.T) {
	rig := newRig(t, input.SourceFunc(func(int) input.Snapshot { return input.Snapshot{Right: true} }))

	other, err := physics.NewActor(common.Vec{X: 200, Y: 40}, physics.Config{
		Gravity: 0.1,
		Epsilon: physics.DefaultEpsilon,
		Hitbox:  physics.HitboxShape{Width: 14, Height: 27},
	})
	if err != nil {
		t.Fatal(err)
	}
	e := ecs.CreateEntity(rig.world)
	mustAdd(t, ecs.Add(rig.world, e, component.ActorComponent.Kind(), other))
	mustAdd(t, ecs.Add(rig.world, e, component.InputComponent.Kind(), &component.Input{}))
	mustAdd(t, ecs.Add(rig.world, e, component.MovementComponent.Kind(), &component.Movement{Speed: 2}))

	rig.run(10)

	if other.Position.X != 200 || other.Velocity.X != 0 {
		t.Fatalf("untagged actor moved sideways: pos=%+v vel=%+v", other.Position, other.Velocity)
	}
	if rig.actor.Position.X != 120 {
		t.Fatalf("expected player at x=120 after 10 frames, got %v", rig.actor.Position.X)
	}
}

func TestClampToLevelStopsAtEdge(t *testing.T) {
	rig := newRig(t, input.SourceFunc(func(int) input.Snapshot { return input.Snapshot{Right: true} }))
	rig.run(200)

	if right := rig.actor.Hitbox.Right(); right >= 320 {
		t.Fatalf("hitbox crossed level edge, right=%v", right)
	}
	if rig.actor.Velocity.X != 0 {
		t.Fatalf("expected vx clamped to 0 at the edge, got %v", rig.actor.Velocity.X)
	}
}

func TestCameraTracksPlayer(t *testing.T) {
	rig := newRig(t, input.Idle)
	rig.run(3)

	want := rig.actor.Position.Add(common.Vec{X: -50})
	if rig.cam.Box.Pos != want {
		t.Fatalf("expected tracking box at %+v, got %+v", want, rig.cam.Box.Pos)
	}
}

func TestAnimationStep(t *testing.T) {
	anim := &component.Animation{
		Defs:    map[string]component.AnimationDef{"Jump": {FrameCount: 2, FrameBuffer: 3}},
		Current: "Jump",
	}
	var frames []int
	for i := 0; i < 9; i++ {
		step(anim)
		frames = append(frames, anim.Frame)
	}
	want := []int{0, 0, 1, 1, 1, 0, 0, 0, 1}
	for i := range want {
		if frames[i] != want[i] {
			t.Fatalf("frame sequence %v, want %v", frames, want)
		}
	}
}

func TestChooseClip(t *testing.T) {
	cases := []struct {
		dir  int
		vy   float64
		left bool
		want string
	}{
		{0, 0, false, "Idle"},
		{0, 0, true, "IdleLeft"},
		{1, 0, false, "Run"},
		{-1, 0, true, "RunLeft"},
		{1, -2, false, "Jump"},
		{0, 0.5, true, "FallLeft"},
	}
	for _, c := range cases {
		if got := chooseClip(c.dir, c.vy, c.left); got != c.want {
			t.Fatalf("chooseClip(%d, %v, %v) = %s, want %s", c.dir, c.vy, c.left, got, c.want)
		}
	}
}

func TestSystemsTolerateNilWorld(t *testing.T) {
	NewInputSystem(nil).Update(nil)
	NewPlayerControllerSystem().Update(nil)
	NewPhysicsSystem(nil, nil).Update(nil)
	NewCameraSystem().Update(nil)
	NewAnimationSystem().Update(nil)
	NewEventLogSystem(nil).Update(nil)
}
