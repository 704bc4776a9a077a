package figure

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_GallowsOnly(t *testing.T) {
	out := Render(StageNone)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 13, "expected 13 rows")

	assert.Equal(t, "┏━━━━━━━┓", lines[0])
	assert.Equal(t, strings.Repeat("█", 16), lines[12])
	assert.NotContains(t, out, "◕", "stage 0 must not draw the head")
}

func TestRender_StagesAccumulate(t *testing.T) {
	prev := Render(StageNone)
	for s := StageHead; s <= StageLeftShoe; s++ {
		cur := Render(s)
		assert.NotEqual(t, prev, cur, "stage %s should change the picture", s)
		prev = cur
	}
}

func TestRender_FinalStage(t *testing.T) {
	out := Render(StageLeftShoe)

	assert.Contains(t, out, "◕‿◕", "head face")
	assert.Contains(t, out, "┷━┙", "left shoe")
	assert.Contains(t, out, "┕━┙", "right shoe")
}

func TestRender_ClampsOutOfRange(t *testing.T) {
	assert.Equal(t, Render(StageNone), Render(Stage(-3)))
	assert.Equal(t, Render(StageLeftShoe), Render(Stage(42)))
}

func TestForMisses(t *testing.T) {
	tests := []struct {
		misses int
		want   Stage
	}{
		{-1, StageNone},
		{0, StageNone},
		{1, StageHead},
		{5, StageLeftArm},
		{9, StageLeftShoe},
		{10, StageLeftShoe},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ForMisses(tt.misses), "misses=%d", tt.misses)
	}
}

func TestStage_String(t *testing.T) {
	assert.Equal(t, "none", StageNone.String())
	assert.Equal(t, "head", StageHead.String())
	assert.Equal(t, "left shoe", StageLeftShoe.String())
	assert.Equal(t, "unknown", Stage(99).String())
}

func TestDrawableStages(t *testing.T) {
	require.Equal(t, 9, DrawableStages)
	require.Equal(t, Stage(DrawableStages), StageLeftShoe)
}
