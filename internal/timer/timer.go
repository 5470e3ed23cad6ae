// Package timer implements the pour timer state machines: the guided timer
// driven by a recipe's step list and the free-form elapsed timer. The
// machines are deterministic; an external clock advances them by calling
// Tick once per tenth of a second while running.
package timer

import (
	"fmt"
	"math"

	"github.com/brewnote/brewnote/internal/model"
)

// State is the lifecycle phase of a timer.
type State string

const (
	StateIdle     State = "idle"
	StateRunning  State = "running"
	StatePaused   State = "paused"
	StateFinished State = "finished"
)

// PourTimer is the guided brew timer. It tracks elapsed time in tenths of a
// second against the recipe's step timeline and finishes the instant elapsed
// time reaches the final step's end time.
type PourTimer struct {
	steps       []model.PourStep
	totalSec    float64
	totalTenths int
	tenths      int
	state       State
}

// NewPourTimer builds a guided timer for the recipe. Guided mode requires at
// least one step; model.ErrNoSteps is returned otherwise.
func NewPourTimer(r model.Recipe) (*PourTimer, error) {
	if len(r.Steps) == 0 {
		return nil, model.ErrNoSteps
	}
	total := r.TotalDuration()
	return &PourTimer{
		steps:       append([]model.PourStep(nil), r.Steps...),
		totalSec:    total,
		totalTenths: int(math.Round(total * 10)),
		state:       StateIdle,
	}, nil
}

// State returns the current lifecycle phase.
func (t *PourTimer) State() State { return t.state }

// ElapsedTenths returns the displayed elapsed time in tenths of a second,
// clamped to the total duration once finished.
func (t *PourTimer) ElapsedTenths() int { return t.tenths }

// ElapsedSeconds returns the elapsed time in seconds.
func (t *PourTimer) ElapsedSeconds() float64 { return float64(t.tenths) / 10 }

// TotalSeconds returns the recipe's total brew duration.
func (t *PourTimer) TotalSeconds() float64 { return t.totalSec }

// Toggle applies the single start/pause/resume/restart control:
// idle starts, running pauses, paused resumes, and finished restarts from
// zero straight into running.
func (t *PourTimer) Toggle() {
	switch t.state {
	case StateIdle, StatePaused:
		t.state = StateRunning
	case StateRunning:
		t.state = StatePaused
	case StateFinished:
		t.tenths = 0
		t.state = StateRunning
	}
}

// Reset returns the timer to idle at zero.
func (t *PourTimer) Reset() {
	t.tenths = 0
	t.state = StateIdle
}

// Tick advances the clock one tenth of a second. Outside running it does
// nothing. Reaching or passing the total duration clamps the displayed time
// to exactly the total and moves the machine to finished.
func (t *PourTimer) Tick() {
	if t.state != StateRunning {
		return
	}
	t.tenths++
	if t.tenths >= t.totalTenths {
		t.tenths = t.totalTenths
		t.state = StateFinished
	}
}

// ActiveStepIndex resolves the running step: the first step whose window
// contains the elapsed time. When no window matches, the last step is active
// at or past total duration and the first step otherwise (the boundary
// instants).
func (t *PourTimer) ActiveStepIndex() int {
	sec := t.ElapsedSeconds()
	for i, step := range t.steps {
		if sec >= step.StartTime && sec < step.EndTime {
			return i
		}
	}
	if sec >= t.totalSec {
		return len(t.steps) - 1
	}
	return 0
}

// ActiveStep returns the currently active step.
func (t *PourTimer) ActiveStep() model.PourStep {
	return t.steps[t.ActiveStepIndex()]
}

// StepProgress returns the active step's local progress ratio in [0, 1].
// Clamping hides overshoot from tick granularity.
func (t *PourTimer) StepProgress() float64 {
	step := t.ActiveStep()
	duration := step.EndTime - step.StartTime
	if duration <= 0 {
		return 1
	}
	return clamp01((t.ElapsedSeconds() - step.StartTime) / duration)
}

// Completion returns overall brew progress in [0, 1].
func (t *PourTimer) Completion() float64 {
	if t.totalSec <= 0 {
		return 1
	}
	return clamp01(t.ElapsedSeconds() / t.totalSec)
}

// Status is the wire shape of a guided timer's display state.
type Status struct {
	State         State   `json:"state"`
	ElapsedTenths int     `json:"elapsedTenths"`
	ActiveStep    int     `json:"activeStep"`
	StepProgress  float64 `json:"stepProgress"`
	Completion    float64 `json:"completion"`
}

// Status returns everything a display needs to render the timer.
func (t *PourTimer) Status() Status {
	return Status{
		State:         t.state,
		ElapsedTenths: t.tenths,
		ActiveStep:    t.ActiveStepIndex(),
		StepProgress:  t.StepProgress(),
		Completion:    t.Completion(),
	}
}

// FreeTimer is the step-less elapsed timer. It has no finished state and
// counts without bound while running.
type FreeTimer struct {
	tenths  int
	running bool
}

// NewFreeTimer returns a stopped free timer at zero.
func NewFreeTimer() *FreeTimer { return &FreeTimer{} }

// Running reports whether the clock is advancing.
func (t *FreeTimer) Running() bool { return t.running }

// ElapsedTenths returns the elapsed time in tenths of a second.
func (t *FreeTimer) ElapsedTenths() int { return t.tenths }

// Toggle flips between running and paused.
func (t *FreeTimer) Toggle() { t.running = !t.running }

// Reset stops the clock and zeroes the elapsed time.
func (t *FreeTimer) Reset() {
	t.running = false
	t.tenths = 0
}

// Tick advances the clock one tenth of a second while running.
func (t *FreeTimer) Tick() {
	if t.running {
		t.tenths++
	}
}

// CycleProgress returns the position within a repeating 60-second display
// cycle in [0, 1). Purely visual; it carries no domain meaning.
func (t *FreeTimer) CycleProgress() float64 {
	sec := float64(t.tenths) / 10
	return math.Mod(sec, 60) / 60
}

// FormatClock renders tenths of a second as mm:ss for display.
func FormatClock(tenths int) string {
	totalSeconds := tenths / 10
	return fmt.Sprintf("%02d:%02d", totalSeconds/60, totalSeconds%60)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
