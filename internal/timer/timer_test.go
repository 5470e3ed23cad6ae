package timer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewnote/brewnote/internal/model"
)

func twoStepRecipe() model.Recipe {
	return model.Recipe{
		ID:    "r1",
		Title: "테스트 레시피",
		Steps: []model.PourStep{
			{Label: "뜸들이기", StartTime: 0, EndTime: 30, WaterAmount: 60, AddedAmount: 60},
			{Label: "1차 추출", StartTime: 30, EndTime: 120, WaterAmount: 300, AddedAmount: 240},
		},
	}
}

func advance(t *PourTimer, tenths int) {
	for i := 0; i < tenths; i++ {
		t.Tick()
	}
}

func TestNewPourTimer_RequiresSteps(t *testing.T) {
	_, err := NewPourTimer(model.Recipe{ID: "empty"})
	require.ErrorIs(t, err, model.ErrNoSteps)
}

func TestPourTimer_ActiveStepAndProgress(t *testing.T) {
	pt, err := NewPourTimer(twoStepRecipe())
	require.NoError(t, err)

	pt.Toggle()
	advance(pt, 450) // 45.0s

	assert.Equal(t, StateRunning, pt.State())
	assert.Equal(t, 1, pt.ActiveStepIndex())
	assert.Equal(t, "1차 추출", pt.ActiveStep().Label)
	// 15s into a 90s window.
	assert.InDelta(t, 0.1667, pt.StepProgress(), 0.0001)
	assert.InDelta(t, 0.375, pt.Completion(), 0.0001)

	st := pt.Status()
	assert.Equal(t, StateRunning, st.State)
	assert.Equal(t, 450, st.ElapsedTenths)
	assert.Equal(t, 1, st.ActiveStep)
}

func TestPourTimer_FinishClampsAtTotal(t *testing.T) {
	pt, err := NewPourTimer(twoStepRecipe())
	require.NoError(t, err)

	pt.Toggle()
	advance(pt, 1500) // well past 120s

	assert.Equal(t, StateFinished, pt.State())
	assert.Equal(t, 1200, pt.ElapsedTenths())
	assert.Equal(t, float64(120), pt.ElapsedSeconds())
	assert.Equal(t, 1, pt.ActiveStepIndex())
	assert.Equal(t, 1.0, pt.StepProgress())
	assert.Equal(t, 1.0, pt.Completion())

	// Ticks after finishing must not move the clock.
	pt.Tick()
	assert.Equal(t, 1200, pt.ElapsedTenths())
}

func TestPourTimer_ToggleLifecycle(t *testing.T) {
	pt, err := NewPourTimer(twoStepRecipe())
	require.NoError(t, err)

	assert.Equal(t, StateIdle, pt.State())

	pt.Toggle()
	assert.Equal(t, StateRunning, pt.State())
	advance(pt, 100)

	pt.Toggle()
	assert.Equal(t, StatePaused, pt.State())
	pt.Tick()
	assert.Equal(t, 100, pt.ElapsedTenths(), "paused timers must not advance")

	pt.Toggle()
	assert.Equal(t, StateRunning, pt.State())

	// Finishing then toggling restarts from zero straight into running.
	advance(pt, 1200)
	require.Equal(t, StateFinished, pt.State())
	pt.Toggle()
	assert.Equal(t, StateRunning, pt.State())
	assert.Equal(t, 0, pt.ElapsedTenths())
}

func TestPourTimer_Reset(t *testing.T) {
	pt, err := NewPourTimer(twoStepRecipe())
	require.NoError(t, err)

	pt.Toggle()
	advance(pt, 315)
	pt.Reset()

	assert.Equal(t, StateIdle, pt.State())
	assert.Equal(t, 0, pt.ElapsedTenths())
	assert.Equal(t, 0, pt.ActiveStepIndex())
}

func TestPourTimer_BoundaryFallbacks(t *testing.T) {
	// A gap between windows falls back to the first step.
	gapped := model.Recipe{
		ID: "gap",
		Steps: []model.PourStep{
			{Label: "a", StartTime: 0, EndTime: 10},
			{Label: "b", StartTime: 20, EndTime: 30},
		},
	}
	pt, err := NewPourTimer(gapped)
	require.NoError(t, err)

	pt.Toggle()
	advance(pt, 150) // 15s, inside the gap
	assert.Equal(t, 0, pt.ActiveStepIndex())
}

func TestFreeTimer_NeverFinishes(t *testing.T) {
	ft := NewFreeTimer()

	ft.Toggle()
	require.True(t, ft.Running())
	for i := 0; i < 100000; i++ {
		ft.Tick()
	}

	assert.True(t, ft.Running())
	assert.Equal(t, 100000, ft.ElapsedTenths())
}

func TestFreeTimer_CycleProgress(t *testing.T) {
	ft := NewFreeTimer()
	ft.Toggle()

	advance := func(tenths int) {
		for i := 0; i < tenths; i++ {
			ft.Tick()
		}
	}

	advance(150) // 15s
	assert.InDelta(t, 0.25, ft.CycleProgress(), 0.0001)

	advance(600) // 75s total, 15s into the second cycle
	assert.InDelta(t, 0.25, ft.CycleProgress(), 0.0001)
}

func TestFreeTimer_Reset(t *testing.T) {
	ft := NewFreeTimer()
	ft.Toggle()
	ft.Tick()
	ft.Reset()

	assert.False(t, ft.Running())
	assert.Equal(t, 0, ft.ElapsedTenths())

	ft.Tick()
	assert.Equal(t, 0, ft.ElapsedTenths(), "stopped timers must not advance")
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "00:45", FormatClock(450))
	assert.Equal(t, "02:00", FormatClock(1200))
	assert.Equal(t, "10:05", FormatClock(6059))
}

func TestRunner_StopsWhenDone(t *testing.T) {
	pt, err := NewPourTimer(model.Recipe{
		ID:    "short",
		Steps: []model.PourStep{{Label: "only", StartTime: 0, EndTime: 0.2}},
	})
	require.NoError(t, err)
	pt.Toggle()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	r := NewRunner(WithInterval(time.Millisecond))
	err = r.Run(ctx, pt, func() bool { return pt.State() == StateFinished })
	require.NoError(t, err)
	assert.Equal(t, StateFinished, pt.State())
}

func TestRunner_ContextCancellation(t *testing.T) {
	ft := NewFreeTimer()
	ft.Toggle()

	ctx, cancel := context.WithCancel(context.Background())
	var ticks int
	r := NewRunner(WithInterval(time.Millisecond), WithOnTick(func() {
		ticks++
		if ticks >= 3 {
			cancel()
		}
	}))

	err := r.Run(ctx, ft, nil)
	require.ErrorIs(t, err, context.Canceled)
	assert.GreaterOrEqual(t, ft.ElapsedTenths(), 3)
}
