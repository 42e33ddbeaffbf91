package status

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/sweeney/ledpanel/internal/logic"
)

func TestNewTracker(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cfg := Config{Scenario: "cursor", IntervalMs: 10, DebounceMs: 100, Tolerance: 10}
	tr := NewTracker(start, cfg)

	snap := tr.Snapshot()
	if !snap.StartTime.Equal(start) {
		t.Errorf("StartTime: got %v, want %v", snap.StartTime, start)
	}
	if snap.Config.Scenario != "cursor" {
		t.Errorf("Config.Scenario: got %q, want cursor", snap.Config.Scenario)
	}
	if snap.Config.IntervalMs != 10 {
		t.Errorf("Config.IntervalMs: got %d, want 10", snap.Config.IntervalMs)
	}
	if snap.Ticks != 0 {
		t.Errorf("expected no ticks initially, got %d", snap.Ticks)
	}
}

func TestUpdateAndSnapshot(t *testing.T) {
	tr := NewTracker(time.Now(), Config{})

	tr.Update(Tick{
		Enabled: true,
		Mode:    logic.ModeSnapshot{Powered: true, Target: 50, Measured: 30},
		Levels:  logic.Levels{4095, 0, 0},
		Band:    logic.BandBelow,
	}, logic.EdgeCounts{PrimaryAccepted: 2, SecondaryRejected: 1})

	snap := tr.Snapshot()
	if snap.Ticks != 1 {
		t.Errorf("Ticks: got %d, want 1", snap.Ticks)
	}
	if snap.Last.Band != logic.BandBelow {
		t.Errorf("Band: got %q, want BELOW", snap.Last.Band)
	}
	if snap.Last.Levels[logic.ChannelRed] != 4095 {
		t.Errorf("red: got %d, want 4095", snap.Last.Levels[logic.ChannelRed])
	}
	if snap.Edges.PrimaryAccepted != 2 {
		t.Errorf("Edges.PrimaryAccepted: got %d, want 2", snap.Edges.PrimaryAccepted)
	}
	if snap.Edges.SecondaryRejected != 1 {
		t.Errorf("Edges.SecondaryRejected: got %d, want 1", snap.Edges.SecondaryRejected)
	}
}

func TestCheckHeartbeat(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tr := NewTracker(start, Config{})

	// No heartbeat before the first tick
	if tr.CheckHeartbeat(start.Add(time.Hour), time.Minute) {
		t.Error("expected no heartbeat before first tick")
	}

	tr.Update(Tick{}, logic.EdgeCounts{})

	if tr.CheckHeartbeat(start.Add(30*time.Second), time.Minute) {
		t.Error("expected no heartbeat before interval")
	}
	if !tr.CheckHeartbeat(start.Add(time.Minute), time.Minute) {
		t.Error("expected heartbeat at interval")
	}
	if tr.CheckHeartbeat(start.Add(90*time.Second), time.Minute) {
		t.Error("expected interval to restart after heartbeat")
	}
	if !tr.CheckHeartbeat(start.Add(2*time.Minute), time.Minute) {
		t.Error("expected second heartbeat")
	}
}

func TestCheckHeartbeatDisabled(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tr := NewTracker(start, Config{})
	tr.Update(Tick{}, logic.EdgeCounts{})

	if tr.CheckHeartbeat(start.Add(24*time.Hour), 0) {
		t.Error("expected no heartbeat when disabled")
	}
}

func TestSnapshotUptime(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	snap := Snapshot{
		StartTime: start,
		Now:       start.Add(15 * time.Minute),
	}

	if snap.Uptime() != 15*time.Minute {
		t.Errorf("Uptime: got %v, want 15m", snap.Uptime())
	}
}

func TestSnapshotNowIsSet(t *testing.T) {
	tr := NewTracker(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), Config{})

	before := time.Now()
	snap := tr.Snapshot()
	after := time.Now()

	if snap.Now.Before(before) || snap.Now.After(after) {
		t.Errorf("Now (%v) not between %v and %v", snap.Now, before, after)
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	tr := NewTracker(time.Now(), Config{})
	tr.Update(Tick{Band: logic.BandWithin}, logic.EdgeCounts{})

	snap1 := tr.Snapshot()

	tr.Update(Tick{Band: logic.BandAbove}, logic.EdgeCounts{PrimaryAccepted: 1})

	// snap1 should still reflect old state
	if snap1.Last.Band != logic.BandWithin {
		t.Error("snapshot should be a copy; Band was modified")
	}
	if snap1.Edges.PrimaryAccepted != 0 {
		t.Error("snapshot should be a copy; Edges were modified")
	}
}

func TestFormatJSON(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	snap := Snapshot{
		Last: Tick{
			Enabled: true,
			Mode:    logic.ModeSnapshot{Powered: true, Manual: true, Target: 50, Measured: 55},
			Levels:  logic.Levels{0, 4095, 0},
			Band:    logic.BandWithin,
			Samples: [logic.NumAxes]uint16{2048, 2252},
		},
		Ticks:     42,
		Edges:     logic.EdgeCounts{PrimaryAccepted: 3, PrimaryRejected: 5},
		StartTime: start,
		Now:       start.Add(15 * time.Minute),
		Config:    Config{Scenario: "irrigation", IntervalMs: 500, DebounceMs: 100, Tolerance: 10},
	}

	data := FormatJSON(snap)

	var parsed StatusJSON
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	s := parsed.Status
	if s.Scenario != "irrigation" {
		t.Errorf("Scenario: got %q, want irrigation", s.Scenario)
	}
	if !s.Enabled {
		t.Error("expected Enabled=true")
	}
	if s.UptimeSeconds != 900 {
		t.Errorf("UptimeSeconds: got %d, want 900", s.UptimeSeconds)
	}
	if s.Ticks != 42 {
		t.Errorf("Ticks: got %d, want 42", s.Ticks)
	}
	if !s.Mode.Manual || s.Mode.Measured != 55 || s.Mode.Target != 50 {
		t.Errorf("Mode: got %+v", s.Mode)
	}
	if s.Levels.Green != 4095 || s.Levels.Red != 0 {
		t.Errorf("Levels: got %+v", s.Levels)
	}
	if s.Band != "WITHIN" {
		t.Errorf("Band: got %q, want WITHIN", s.Band)
	}
	if s.Samples.X != 2048 || s.Samples.Y != 2252 {
		t.Errorf("Samples: got %+v", s.Samples)
	}
	if s.Edges.PrimaryRejected != 5 {
		t.Errorf("Edges.PrimaryRejected: got %d, want 5", s.Edges.PrimaryRejected)
	}
	if s.Config.IntervalMs != 500 {
		t.Errorf("Config.IntervalMs: got %d, want 500", s.Config.IntervalMs)
	}
}

func TestFormatLineOmitsEmptyBand(t *testing.T) {
	snap := Snapshot{
		StartTime: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Now:       time.Date(2026, 1, 1, 0, 0, 1, 0, time.UTC),
	}

	data := FormatLine(snap)

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	status := raw["status"].(map[string]interface{})
	if _, exists := status["band"]; exists {
		t.Error("band should be omitted when empty")
	}
	for _, b := range data {
		if b == '\n' {
			t.Fatal("FormatLine should be a single line")
		}
	}
}

func TestConcurrentAccess(t *testing.T) {
	tr := NewTracker(time.Now(), Config{})
	var wg sync.WaitGroup

	// Writer
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			tr.Update(Tick{Levels: logic.Levels{uint16(i)}}, logic.EdgeCounts{PrimaryAccepted: uint32(i)})
			tr.CheckHeartbeat(time.Now(), time.Millisecond)
		}
	}()

	// Reader
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			snap := tr.Snapshot()
			_ = snap.Uptime()
		}
	}()

	wg.Wait()
}
