package levels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/platformer/collision"
	"github.com/milk9111/platformer/common"
)

const tinyLevel = `{
  "name": "tiny",
  "columns": 4,
  "spawn": {"x": 8, "y": 4},
  "floor": [
    0, 0, 0, 0,
    0, 0, 0, 0,
    202, 202, 1, 202
  ],
  "platforms": [
    0, 0, 0, 0,
    0, 202, 202, 0,
    0, 0, 0, 0
  ]
}`

func TestParseAppliesDefaults(t *testing.T) {
	lvl, err := Parse([]byte(tinyLevel))
	require.NoError(t, err)

	assert.Equal(t, common.TileSize, lvl.TileSize)
	assert.Equal(t, common.SolidSymbol, lvl.SolidSymbol)
	assert.Equal(t, float64(collision.PlatformHeight), lvl.PlatformHeight)
	assert.Equal(t, common.Vec{X: 8, Y: 4}, lvl.SpawnPosition())

	w, h := lvl.Bounds()
	assert.Equal(t, 64.0, w)
	assert.Equal(t, 48.0, h)
}

func TestRows(t *testing.T) {
	lvl, err := Parse([]byte(tinyLevel))
	require.NoError(t, err)

	rows := lvl.Rows(lvl.Floor)
	require.Len(t, rows, 3)
	assert.Equal(t, []int{202, 202, 1, 202}, rows[2])
}

func TestBlocks(t *testing.T) {
	lvl, err := Parse([]byte(tinyLevel))
	require.NoError(t, err)

	blocks, err := lvl.Blocks()
	require.NoError(t, err)
	require.Len(t, blocks, 5)

	want := []collision.Block{
		{Kind: collision.Solid, Rect: common.Rect{Pos: common.Vec{X: 0, Y: 32}, Width: 16, Height: 16}},
		{Kind: collision.Solid, Rect: common.Rect{Pos: common.Vec{X: 16, Y: 32}, Width: 16, Height: 16}},
		{Kind: collision.Solid, Rect: common.Rect{Pos: common.Vec{X: 48, Y: 32}, Width: 16, Height: 16}},
		{Kind: collision.Platform, Rect: common.Rect{Pos: common.Vec{X: 16, Y: 16}, Width: 16, Height: 4}},
		{Kind: collision.Platform, Rect: common.Rect{Pos: common.Vec{X: 32, Y: 16}, Width: 16, Height: 4}},
	}
	assert.Equal(t, want, blocks)

	reg, err := lvl.BuildRegistry()
	require.NoError(t, err)
	assert.Len(t, reg.Solids(), 3)
	assert.Len(t, reg.Platforms(), 2)
}

func TestValidateRejectsMalformed(t *testing.T) {
	cases := []struct {
		name string
		json string
	}{
		{"no_columns", `{"columns": 0, "floor": [0]}`},
		{"ragged_floor", `{"columns": 3, "floor": [0, 0, 0, 0]}`},
		{"empty_floor", `{"columns": 3, "floor": []}`},
		{"platform_mismatch", `{"columns": 2, "floor": [0, 0], "platforms": [0, 0, 0, 0]}`},
		{"platform_too_tall", `{"columns": 1, "floor": [0], "platform_height": 32}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.json))
			assert.ErrorIs(t, err, ErrMalformedLevel)
		})
	}
}

func TestParseRejectsBadJSON(t *testing.T) {
	_, err := Parse([]byte(`{"columns": "wide"}`))
	assert.Error(t, err)
}

func TestLoadEmbeddedWarrior(t *testing.T) {
	for _, name := range []string{"warrior", "warrior.json", "levels/warrior.json"} {
		t.Run(name, func(t *testing.T) {
			lvl, err := Load(name)
			require.NoError(t, err)

			w, h := lvl.Bounds()
			assert.Equal(t, 576.0, w)
			assert.Equal(t, 432.0, h)

			reg, err := lvl.BuildRegistry()
			require.NoError(t, err)
			assert.NotEmpty(t, reg.Solids())
			assert.NotEmpty(t, reg.Platforms())
		})
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load("does-not-exist")
	assert.Error(t, err)
}
