package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/input"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/physics"
	"github.com/milk9111/platformer/prefabs"
)

func newWarrior(t *testing.T, src input.Source) *Sim {
	t.Helper()
	s, err := New(Options{Level: "warrior", Source: src})
	require.NoError(t, err)
	return s
}

func run(s *Sim, n int) {
	for i := 0; i < n; i++ {
		s.Advance()
	}
}

func TestNewPlacesPlayerAtSpawn(t *testing.T) {
	s := newWarrior(t, nil)
	st := s.State()

	assert.Equal(t, 0, st.Frame)
	assert.Equal(t, 100.0, st.Position.X)
	assert.Equal(t, 300.0, st.Position.Y)
	assert.Equal(t, 1.0, st.Velocity.Y)
	assert.Equal(t, 135.0, st.Hitbox.Left())
	assert.Equal(t, 326.0, st.Hitbox.Top())
	assert.Equal(t, 576.0, st.LevelWidth)
	assert.Equal(t, 432.0, st.LevelHeight)
	assert.Equal(t, 4.0, st.Zoom)
	assert.Equal(t, -288.0, st.CameraPosition.Y)
	assert.Equal(t, "Idle", st.Clip)
	assert.NotEmpty(t, s.Registry().Solids())
}

func TestFallsToFloorAndRests(t *testing.T) {
	s := newWarrior(t, input.Idle)
	run(s, 120)

	st := s.State()
	assert.Equal(t, 120, st.Frame)
	assert.True(t, st.Contacts.Ground)
	assert.Equal(t, 0.0, st.Velocity.Y)
	assert.InDelta(t, 400-53-physics.DefaultEpsilon, st.Position.Y, 1e-6)
	assert.InDelta(t, 400-physics.DefaultEpsilon, st.Hitbox.Bottom(), 1e-6)
	assert.Equal(t, 1, s.EventCount(ecs.EventLanded))
	assert.Equal(t, "Idle", st.Clip)

	// At rest the camera never pans.
	assert.Equal(t, 0.0, st.CameraPosition.X)
	assert.Equal(t, -288.0, st.CameraPosition.Y)
}

func TestJumpThroughPlatformAndLandOnIt(t *testing.T) {
	src := input.Concat(
		input.Repeat(input.Snapshot{}, 60),
		input.Replay{{Jump: true}},
	)
	s := newWarrior(t, src)

	run(s, 61)
	st := s.State()
	assert.Equal(t, "Jump", st.Clip)
	assert.Less(t, st.Velocity.Y, 0.0)

	run(s, 120)
	st = s.State()
	assert.True(t, st.Contacts.Platform)
	assert.False(t, st.Contacts.Ground)
	assert.InDelta(t, 320-53-physics.DefaultEpsilon, st.Position.Y, 1e-6)
	assert.Equal(t, 2, s.EventCount(ecs.EventLanded))
}

func TestWalkScriptHitsWall(t *testing.T) {
	data, err := prefabs.LoadScript("walk")
	require.NoError(t, err)
	script, err := input.NewScript("walk", data, nil)
	require.NoError(t, err)

	s := newWarrior(t, script)
	run(s, 100)

	st := s.State()
	assert.NoError(t, script.Err())
	assert.Greater(t, st.Position.X, 100.0)
	assert.GreaterOrEqual(t, s.EventCount(ecs.EventHitWall), 1)
	assert.Equal(t, physics.SideRight, st.Contacts.Wall)
	assert.InDelta(t, 320-physics.DefaultEpsilon, st.Hitbox.Right(), 1e-6)
}

func TestCustomLevelAndSpecOverrides(t *testing.T) {
	lvl, err := levels.Parse([]byte(`{
		"name": "box",
		"columns": 20,
		"floor": [` + floorRow(20, 11) + `]
	}`))
	require.NoError(t, err)

	player, err := prefabs.LoadPlayerSpec()
	require.NoError(t, err)
	player.Gravity = 0
	player.InitialVelocity = prefabs.VecSpec{}
	player.Position = prefabs.VecSpec{X: 10, Y: 10}

	s, err := New(Options{LevelData: lvl, Player: player})
	require.NoError(t, err)
	run(s, 30)

	st := s.State()
	assert.Equal(t, 10.0, st.Position.X)
	assert.Equal(t, 10.0, st.Position.Y)
	assert.Equal(t, 320.0, st.LevelWidth)
	assert.Equal(t, 176.0, st.LevelHeight)
}

// floorRow renders rows of zeros with the last row solid.
func floorRow(columns, rows int) string {
	out := ""
	for r := 0; r < rows; r++ {
		for c := 0; c < columns; c++ {
			if out != "" {
				out += ","
			}
			if r == rows-1 {
				out += "202"
			} else {
				out += "0"
			}
		}
	}
	return out
}

func TestApplySpecsKeepsPositionAndVelocity(t *testing.T) {
	s := newWarrior(t, input.Idle)
	run(s, 5)
	before := s.State()

	player, err := prefabs.LoadPlayerSpec()
	require.NoError(t, err)
	player.Gravity = 0.2
	player.MoveSpeed = 3
	phys := &prefabs.PhysicsSpec{Epsilon: 0.05, ClampToLevel: true}

	require.NoError(t, s.ApplySpecs(player, phys))
	assert.Equal(t, before.Position, s.Actor().Position)
	assert.Equal(t, before.Velocity, s.Actor().Velocity)
	assert.Equal(t, 0.2, s.Actor().Gravity)
	assert.Equal(t, 0.05, s.Actor().Epsilon())

	run(s, 200)
	assert.InDelta(t, 400-0.05, s.State().Hitbox.Bottom(), 1e-6)

	bad := *player
	bad.Hitbox.Height = -5
	assert.Error(t, s.ApplySpecs(&bad, phys))
	assert.Equal(t, 0.2, s.Actor().Gravity)
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Options{Level: "no-such-level"})
	assert.ErrorContains(t, err, "sim: levels: load")
}

func TestNilSim(t *testing.T) {
	var s *Sim
	s.Advance()
	assert.Equal(t, 0, s.Frame())
	assert.Equal(t, State{}, s.State())
	assert.NoError(t, s.ApplySpecs(nil, nil))
}
