package main

import (
	"testing"
	"time"

	"github.com/sweeney/ledpanel/internal/control"
	"github.com/sweeney/ledpanel/internal/gpio"
	"github.com/sweeney/ledpanel/internal/logic"
)

func defaultConfig() config {
	return config{
		scenario:  control.ScenarioCursor,
		debounce:  100 * time.Millisecond,
		tolerance: logic.BandTolerance,
		centerX:   logic.DefaultCenterX,
		centerY:   logic.DefaultCenterY,
		chip:      gpio.DefaultChip,
		pinA:      gpio.DefaultPinA,
		pinB:      gpio.DefaultPinB,
		leds:      [logic.NumChannels]int{gpio.DefaultPinRed, gpio.DefaultPinGreen, gpio.DefaultPinBlue},
		heartbeat: 15 * time.Minute,
	}
}

func TestNewScenarioDefaults(t *testing.T) {
	for _, name := range control.Names {
		cfg := defaultConfig()
		cfg.scenario = name
		sc, err := newScenario(cfg, logic.NewModeState())
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if sc.Name() != name {
			t.Errorf("Name: got %q, want %q", sc.Name(), name)
		}
	}
}

func TestNewScenarioRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*config)
	}{
		{"unknown scenario", func(c *config) { c.scenario = "thermostat" }},
		{"negative interval", func(c *config) { c.interval = -time.Second }},
		{"negative debounce", func(c *config) { c.debounce = -time.Millisecond }},
		{"same button pins", func(c *config) { c.pinB = c.pinA }},
		{"center-x too large", func(c *config) { c.centerX = 5000 }},
		{"center-y negative", func(c *config) { c.centerY = -1 }},
		{"negative tolerance", func(c *config) {
			c.scenario = control.ScenarioIrrigation
			c.tolerance = -5
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig()
			tc.modify(&cfg)
			if _, err := newScenario(cfg, logic.NewModeState()); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestPWMPinNames(t *testing.T) {
	got := pwmPinNames([logic.NumChannels]int{12, 16, 13})
	want := [logic.NumChannels]string{"GPIO12", "GPIO16", "GPIO13"}
	if got != want {
		t.Errorf("pwmPinNames: got %v, want %v", got, want)
	}
}

func TestStatusConfig(t *testing.T) {
	cfg := defaultConfig()
	cfg.scenario = control.ScenarioIrrigation
	sc, err := newScenario(cfg, logic.NewModeState())
	if err != nil {
		t.Fatalf("newScenario: %v", err)
	}

	sc0 := statusConfig(cfg, sc)
	if sc0.IntervalMs != 500 {
		t.Errorf("IntervalMs: got %d, want scenario default 500", sc0.IntervalMs)
	}
	if sc0.Scenario != control.ScenarioIrrigation {
		t.Errorf("Scenario: got %q", sc0.Scenario)
	}
	if sc0.DebounceMs != 100 {
		t.Errorf("DebounceMs: got %d, want 100", sc0.DebounceMs)
	}

	cfg.interval = 250 * time.Millisecond
	if got := statusConfig(cfg, sc).IntervalMs; got != 250 {
		t.Errorf("IntervalMs override: got %d, want 250", got)
	}
}
