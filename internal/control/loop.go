package control

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/sweeney/ledpanel/internal/adc"
	"github.com/sweeney/ledpanel/internal/display"
	"github.com/sweeney/ledpanel/internal/gpio"
	"github.com/sweeney/ledpanel/internal/logic"
	"github.com/sweeney/ledpanel/internal/status"
)

// Loop is the loop context: one cooperative sequence that samples, decides,
// actuates and renders once per tick.
type Loop struct {
	scenario Scenario
	mode     *logic.ModeState
	sampler  adc.Sampler
	actuator gpio.Actuator
	renderer display.Renderer

	// Interval is the pause between ticks. Defaults to the scenario's.
	Interval time.Duration

	// Tracker, if set, receives every tick. Edges, if set, supplies counters.
	Tracker *status.Tracker
	Edges   *EdgeHandler

	// Heartbeat is how often Run logs a status line (0 disables).
	Heartbeat time.Duration

	now   func() time.Time
	after func(time.Duration) <-chan time.Time
}

// NewLoop wires a scenario to its collaborators.
func NewLoop(scenario Scenario, mode *logic.ModeState, sampler adc.Sampler, actuator gpio.Actuator, renderer display.Renderer) *Loop {
	return &Loop{
		scenario: scenario,
		mode:     mode,
		sampler:  sampler,
		actuator: actuator,
		renderer: renderer,
		Interval: scenario.Interval(),
		now:      time.Now,
		after:    time.After,
	}
}

// Tick runs one iteration and returns any extra delay the scenario asked for.
// Mode state is read once, at the top.
func (l *Loop) Tick() (time.Duration, error) {
	m := l.mode.Snapshot()
	tick := status.Tick{Time: l.now(), Mode: m}

	if !l.scenario.Enabled(m) {
		if err := l.actuate(logic.Levels{}); err != nil {
			return 0, err
		}
		if err := l.render(display.Lines(l.scenario.DisabledMessage())); err != nil {
			return 0, err
		}
		l.record(tick)
		return 0, nil
	}

	out, err := l.scenario.Step(m, l.sampler)
	if err != nil {
		return 0, fmt.Errorf("%s step: %w", l.scenario.Name(), err)
	}
	if err := l.actuate(out.Levels); err != nil {
		return 0, err
	}
	if err := l.render(out.Frame); err != nil {
		return 0, err
	}

	tick.Enabled = true
	tick.Levels = out.Levels
	tick.Band = out.Band
	tick.Samples = out.Samples
	// Target and measured may have been derived this tick
	tick.Mode.Target = l.mode.Target()
	tick.Mode.Measured = l.mode.Measured()
	l.record(tick)
	return out.Delay, nil
}

// Run ticks until ctx is cancelled, then turns every actuator off.
// A hardware error ends the loop.
func (l *Loop) Run(ctx context.Context) error {
	for {
		extra, err := l.Tick()
		if err != nil {
			return err
		}

		if l.Tracker != nil && l.Tracker.CheckHeartbeat(l.now(), l.Heartbeat) {
			log.Printf("heartbeat: %s", status.FormatLine(l.Tracker.Snapshot()))
		}

		select {
		case <-ctx.Done():
			return l.Stop()
		case <-l.after(l.Interval + extra):
		}
	}
}

// Stop turns every actuator off and blanks the display.
func (l *Loop) Stop() error {
	if err := l.actuate(logic.Levels{}); err != nil {
		return err
	}
	return l.render(nil)
}

func (l *Loop) actuate(levels logic.Levels) error {
	for ch, level := range levels {
		if err := l.actuator.Set(logic.Channel(ch), level); err != nil {
			return fmt.Errorf("actuate: %w", err)
		}
	}
	return nil
}

func (l *Loop) render(f display.Frame) error {
	if err := l.renderer.Render(f); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

func (l *Loop) record(tick status.Tick) {
	if l.Tracker == nil {
		return
	}
	var edges logic.EdgeCounts
	if l.Edges != nil {
		edges = l.Edges.Counts()
	}
	l.Tracker.Update(tick, edges)
}
