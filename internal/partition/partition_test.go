package partition

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/rectcut/internal/model"
)

func TestNew_SingleRoot(t *testing.T) {
	root := model.NewRect(0, 0, 100, 100)
	p := New(root)

	require.Equal(t, 1, p.Len())
	assert.Equal(t, root, p.Rects()[0])
	assert.Equal(t, model.Vertical, p.Orientation())
	_, ok := p.Preview()
	assert.False(t, ok, "new partition should have no preview")
}

func TestCut_ScenarioVerticalThenHorizontal(t *testing.T) {
	p := New(model.NewRect(0, 0, 100, 100))

	require.True(t, p.Cut(model.Pt(50, 50)))
	assert.Equal(t, []model.Rect{
		model.NewRect(0, 0, 50, 100),
		model.NewRect(50, 0, 50, 100),
	}, p.Rects())

	p.SwitchDirection()
	require.True(t, p.Cut(model.Pt(25, 25)))

	// The cut child is removed and its halves appended after the survivor.
	assert.Equal(t, []model.Rect{
		model.NewRect(50, 0, 50, 100),
		model.NewRect(0, 0, 50, 25),
		model.NewRect(0, 25, 50, 75),
	}, p.Rects())
}

func TestCut_BoundaryIsNoOp(t *testing.T) {
	root := model.NewRect(0, 0, 100, 100)
	points := []model.Point{
		model.Pt(0, 50),   // left column
		model.Pt(99, 50),  // right column (right-1)
		model.Pt(50, 0),   // top row
		model.Pt(50, 99),  // bottom row (bottom-1)
		model.Pt(100, 50), // just outside
		model.Pt(-5, -5),  // far outside
	}
	for _, pt := range points {
		p := New(root)
		assert.False(t, p.Cut(pt), "cut at %v should be a no-op", pt)
		assert.Equal(t, []model.Rect{root}, p.Rects())
	}
}

func TestCut_SharedEdgeBetweenChildrenIsNoOp(t *testing.T) {
	p := New(model.NewRect(0, 0, 100, 100))
	require.True(t, p.Cut(model.Pt(50, 50)))

	// x=49 is the last column of the left child, x=50 the first of the right.
	assert.False(t, p.Cut(model.Pt(49, 30)))
	assert.False(t, p.Cut(model.Pt(50, 30)))
	assert.Equal(t, 2, p.Len())
}

func TestCut_Deterministic(t *testing.T) {
	root := model.NewRect(10, 20, 80, 60)
	a := New(root)
	b := New(root)
	for _, pt := range []model.Point{model.Pt(40, 50), model.Pt(20, 30), model.Pt(70, 70)} {
		a.Cut(pt)
		b.Cut(pt)
		a.SwitchDirection()
		b.SwitchDirection()
	}
	assert.Equal(t, a.Rects(), b.Rects())
}

func TestCut_DegenerateChildAccepted(t *testing.T) {
	// Split directly, since an interior point can never sit on the left edge.
	a, b := Split(model.NewRect(0, 0, 10, 10), model.Vertical, model.Pt(0, 5))
	assert.Equal(t, model.NewRect(0, 0, 0, 10), a)
	assert.Equal(t, model.NewRect(0, 0, 10, 10), b)

	a, b = Split(model.NewRect(0, 0, 10, 10), model.Horizontal, model.Pt(5, 0))
	assert.Equal(t, model.NewRect(0, 0, 10, 0), a)
	assert.Equal(t, model.NewRect(0, 0, 10, 10), b)
}

func TestCut_ThinRectangleHasNoInterior(t *testing.T) {
	// A two-pixel-wide rectangle is all border.
	p := New(model.NewRect(0, 0, 2, 100))
	assert.False(t, p.Cut(model.Pt(1, 50)))
	assert.False(t, p.UpdatePreview(model.Pt(1, 50)))
}

func TestUpdatePreview_Vertical(t *testing.T) {
	p := New(model.NewRect(12, 12, 75, 75))
	require.True(t, p.UpdatePreview(model.Pt(40, 30)))

	seg, ok := p.Preview()
	require.True(t, ok)
	assert.Equal(t, model.Segment{Start: model.Pt(40, 12), End: model.Pt(40, 86)}, seg)
}

func TestUpdatePreview_Horizontal(t *testing.T) {
	p := New(model.NewRect(12, 12, 75, 75))
	p.SwitchDirection()
	require.True(t, p.UpdatePreview(model.Pt(40, 30)))

	seg, ok := p.Preview()
	require.True(t, ok)
	assert.Equal(t, model.Segment{Start: model.Pt(12, 30), End: model.Pt(86, 30)}, seg)
}

func TestUpdatePreview_ClearedOnBoundaryOrOutside(t *testing.T) {
	p := New(model.NewRect(0, 0, 100, 100))
	require.True(t, p.UpdatePreview(model.Pt(50, 50)))

	assert.False(t, p.UpdatePreview(model.Pt(0, 50)))
	_, ok := p.Preview()
	assert.False(t, ok, "boundary hover should clear preview")

	require.True(t, p.UpdatePreview(model.Pt(50, 50)))
	assert.False(t, p.UpdatePreview(model.Pt(200, 200)))
	_, ok = p.Preview()
	assert.False(t, ok, "outside hover should clear preview")
}

func TestUpdatePreview_UsesRectangleUnderPointer(t *testing.T) {
	p := New(model.NewRect(0, 0, 100, 100))
	require.True(t, p.Cut(model.Pt(50, 50)))
	p.SwitchDirection()

	require.True(t, p.UpdatePreview(model.Pt(75, 40)))
	seg, _ := p.Preview()
	assert.Equal(t, model.Segment{Start: model.Pt(50, 40), End: model.Pt(99, 40)}, seg)
}

func TestSwitchDirection_KeepsRectsAndPreview(t *testing.T) {
	p := New(model.NewRect(0, 0, 100, 100))
	require.True(t, p.UpdatePreview(model.Pt(30, 30)))
	before, _ := p.Preview()

	assert.Equal(t, model.Horizontal, p.SwitchDirection())
	after, ok := p.Preview()
	require.True(t, ok)
	assert.Equal(t, before, after, "toggle must not recompute the preview")
	assert.Equal(t, 1, p.Len())
}

func TestSwitchDirection_Cycles(t *testing.T) {
	p := New(model.NewRect(0, 0, 10, 10))
	want := []model.Orientation{model.Horizontal, model.Vertical, model.Horizontal, model.Vertical}
	for i, o := range want {
		assert.Equal(t, o, p.SwitchDirection(), "toggle %d", i+1)
	}
}

func TestRect_LiveHandle(t *testing.T) {
	p := New(model.NewRect(0, 0, 100, 100))
	require.True(t, p.Cut(model.Pt(50, 50)))

	left := p.Rect(0)
	require.NotNil(t, left)
	left.Width = 60
	assert.Equal(t, 60, p.Rects()[0].Width)

	assert.Nil(t, p.Rect(5))
	assert.Nil(t, p.Rect(-1))
}

func TestRandomCuts_AreaConservedAndDisjoint(t *testing.T) {
	root := model.NewRect(12, 12, 75, 75)
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 20; trial++ {
		p := New(root)
		for step := 0; step < 200; step++ {
			if rng.Intn(4) == 0 {
				p.SwitchDirection()
			}
			pt := model.Pt(rng.Intn(100), rng.Intn(100))
			before := p.Len()
			if p.Cut(pt) {
				require.Equal(t, before+1, p.Len())
			} else {
				require.Equal(t, before, p.Len())
			}
			p.UpdatePreview(pt)
		}

		require.Equal(t, root.Area(), p.Area(), "trial %d: area not conserved", trial)

		rects := p.Rects()
		for i := range rects {
			assert.True(t, rects[i].Width >= 0 && rects[i].Height >= 0)
			for j := i + 1; j < len(rects); j++ {
				require.False(t, rects[i].Overlaps(rects[j]),
					"trial %d: %v overlaps %v", trial, rects[i], rects[j])
			}
		}
	}
}

func TestRandomCuts_PreviewNeverOnBorder(t *testing.T) {
	p := New(model.NewRect(0, 0, 60, 60))
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		p.Cut(model.Pt(rng.Intn(60), rng.Intn(60)))
		p.SwitchDirection()
	}
	for _, r := range p.Rects() {
		for _, pt := range []model.Point{
			model.Pt(r.Left, r.Top+r.Height/2),
			model.Pt(r.Right()-1, r.Top+r.Height/2),
			model.Pt(r.Left+r.Width/2, r.Top),
			model.Pt(r.Left+r.Width/2, r.Bottom()-1),
		} {
			if !r.Contains(pt) {
				continue
			}
			// The point is on this rectangle's border; any match must be
			// another rectangle's interior, which disjointness rules out.
			assert.False(t, p.UpdatePreview(pt), "border point %v of %v", pt, r)
		}
	}
}
