// Command ledpanel reads an analog joystick and two push buttons and drives
// RGB indicator LEDs and an SSD1306 display according to a scenario.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"

	"github.com/sweeney/ledpanel/internal/adc"
	"github.com/sweeney/ledpanel/internal/control"
	"github.com/sweeney/ledpanel/internal/display"
	"github.com/sweeney/ledpanel/internal/gpio"
	"github.com/sweeney/ledpanel/internal/logic"
	"github.com/sweeney/ledpanel/internal/status"
)

type config struct {
	scenario   string
	interval   time.Duration
	debounce   time.Duration
	tolerance  int
	centerX    int
	centerY    int
	chip       string
	pinA       int
	pinB       int
	leds       [logic.NumChannels]int
	i2cBus     string
	heartbeat  time.Duration
	printState bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.scenario, "scenario", control.ScenarioCursor, "Scenario to run (joystick, cursor, irrigation)")
	flag.DurationVar(&cfg.interval, "interval", 0, "Loop interval (0 uses the scenario default)")
	flag.DurationVar(&cfg.debounce, "debounce", logic.DebounceWindowMs*time.Millisecond, "Button debounce window")
	flag.IntVar(&cfg.tolerance, "tolerance", logic.BandTolerance, "Irrigation band tolerance in percent")
	flag.IntVar(&cfg.centerX, "center-x", logic.DefaultCenterX, "Joystick X rest sample")
	flag.IntVar(&cfg.centerY, "center-y", logic.DefaultCenterY, "Joystick Y rest sample")
	flag.StringVar(&cfg.chip, "gpiochip", gpio.DefaultChip, "GPIO character device for buttons and digital LEDs")
	flag.IntVar(&cfg.pinA, "pin-a", gpio.DefaultPinA, "BCM pin number for button A")
	flag.IntVar(&cfg.pinB, "pin-b", gpio.DefaultPinB, "BCM pin number for button B")
	flag.IntVar(&cfg.leds[logic.ChannelRed], "led-red", gpio.DefaultPinRed, "BCM pin number for the red LED")
	flag.IntVar(&cfg.leds[logic.ChannelGreen], "led-green", gpio.DefaultPinGreen, "BCM pin number for the green LED")
	flag.IntVar(&cfg.leds[logic.ChannelBlue], "led-blue", gpio.DefaultPinBlue, "BCM pin number for the blue LED")
	flag.StringVar(&cfg.i2cBus, "i2c", "", "I2C bus for the ADC and display (empty for the first bus)")
	flag.DurationVar(&cfg.heartbeat, "heartbeat", 15*time.Minute, "Heartbeat log interval (0 to disable)")
	flag.BoolVar(&cfg.printState, "print-state", false, "Run a single tick, print state and exit")

	flag.Parse()

	if err := run(cfg); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

func run(cfg config) error {
	mode := logic.NewModeState()
	sc, err := newScenario(cfg, mode)
	if err != nil {
		return err
	}

	if _, err := host.Init(); err != nil {
		return fmt.Errorf("init host: %w", err)
	}

	bus, err := i2creg.Open(cfg.i2cBus)
	if err != nil {
		return fmt.Errorf("open i2c: %w", err)
	}
	defer bus.Close()

	sampler, err := adc.NewRealSampler(bus)
	if err != nil {
		return fmt.Errorf("init adc: %w", err)
	}
	defer sampler.Close()

	renderer, err := display.NewSSD1306(bus)
	if err != nil {
		return fmt.Errorf("init display: %w", err)
	}
	defer renderer.Close()

	actuator, err := newActuator(cfg, sc)
	if err != nil {
		return fmt.Errorf("init leds: %w", err)
	}
	defer actuator.Close()

	tracker := status.NewTracker(time.Now(), statusConfig(cfg, sc))
	edges := control.NewEdgeHandler(logic.NewDebouncer(uint32(cfg.debounce.Milliseconds())), control.NewMonotonicClock(), sc)

	loop := control.NewLoop(sc, mode, sampler, actuator, renderer)
	if cfg.interval > 0 {
		loop.Interval = cfg.interval
	}
	loop.Tracker = tracker
	loop.Edges = edges
	loop.Heartbeat = cfg.heartbeat

	// Print state mode
	if cfg.printState {
		if _, err := loop.Tick(); err != nil {
			return err
		}
		fmt.Println(string(status.FormatJSON(tracker.Snapshot())))
		return loop.Stop()
	}

	buttons, err := gpio.NewRealButtons(cfg.chip, []gpio.Button{
		{Source: logic.SourcePrimary, Pin: cfg.pinA},
		{Source: logic.SourceSecondary, Pin: cfg.pinB},
	}, edges.Handle)
	if err != nil {
		return fmt.Errorf("init buttons: %w", err)
	}
	defer buttons.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("started: scenario=%s interval=%v debounce=%v heartbeat=%v", sc.Name(), loop.Interval, cfg.debounce, cfg.heartbeat)

	err = loop.Run(ctx)
	log.Printf("shutting down")
	return err
}

// newScenario validates the parsed flags and builds the selected scenario.
func newScenario(cfg config, mode *logic.ModeState) (control.Scenario, error) {
	if cfg.interval < 0 {
		return nil, fmt.Errorf("interval must not be negative, got %v", cfg.interval)
	}
	if cfg.debounce < 0 {
		return nil, fmt.Errorf("debounce must not be negative, got %v", cfg.debounce)
	}
	if cfg.pinA == cfg.pinB {
		return nil, fmt.Errorf("buttons must use different pins, both are %d", cfg.pinA)
	}
	opts := control.DefaultOptions()
	cx, err := sample(cfg.centerX)
	if err != nil {
		return nil, fmt.Errorf("center-x: %w", err)
	}
	cy, err := sample(cfg.centerY)
	if err != nil {
		return nil, fmt.Errorf("center-y: %w", err)
	}
	opts.CenterX, opts.CenterY = cx, cy
	opts.Tolerance = cfg.tolerance
	return control.NewScenario(cfg.scenario, mode, opts)
}

func sample(v int) (uint16, error) {
	if v < 0 || v > logic.MaxSample {
		return 0, fmt.Errorf("%d out of range 0-%d", v, logic.MaxSample)
	}
	return uint16(v), nil
}

// newActuator picks the LED backend: the irrigation indicator only switches
// channels fully on or off, every other scenario dims them.
func newActuator(cfg config, sc control.Scenario) (gpio.Actuator, error) {
	if sc.Name() == control.ScenarioIrrigation {
		return gpio.NewDigitalOutputs(cfg.chip, cfg.leds)
	}
	return gpio.NewPWMOutputs(pwmPinNames(cfg.leds), sc.MaxLevel(), gpio.DefaultPWMFreqHz*physic.Hertz)
}

// pwmPinNames converts BCM numbers to periph.io pin names.
func pwmPinNames(pins [logic.NumChannels]int) [logic.NumChannels]string {
	var names [logic.NumChannels]string
	for i, p := range pins {
		names[i] = fmt.Sprintf("GPIO%d", p)
	}
	return names
}

func statusConfig(cfg config, sc control.Scenario) status.Config {
	interval := sc.Interval()
	if cfg.interval > 0 {
		interval = cfg.interval
	}
	return status.Config{
		Scenario:    sc.Name(),
		IntervalMs:  interval.Milliseconds(),
		DebounceMs:  cfg.debounce.Milliseconds(),
		HeartbeatMs: cfg.heartbeat.Milliseconds(),
		Tolerance:   cfg.tolerance,
		CenterX:     uint16(cfg.centerX),
		CenterY:     uint16(cfg.centerY),
	}
}
