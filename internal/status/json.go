package status

import (
	"encoding/json"
	"time"

	"github.com/sweeney/ledpanel/internal/logic"
)

// StatusJSON is the top-level JSON envelope for status output.
type StatusJSON struct {
	Status StatusInner `json:"status"`
}

// StatusInner contains the status details.
type StatusInner struct {
	Scenario      string     `json:"scenario"`
	Enabled       bool       `json:"enabled"`
	UptimeSeconds int64      `json:"uptime_seconds"`
	StartTime     string     `json:"start_time"`
	Timestamp     string     `json:"timestamp"`
	Ticks         uint64     `json:"ticks"`
	Mode          ModeJSON   `json:"mode"`
	Samples       SampleJSON `json:"samples"`
	Levels        LevelsJSON `json:"levels"`
	Band          string     `json:"band,omitempty"`
	Edges         EdgesJSON  `json:"edges"`
	Config        ConfigJSON `json:"config"`
}

// ModeJSON is the JSON representation of the mode flags.
type ModeJSON struct {
	Powered  bool  `json:"powered"`
	Manual   bool  `json:"manual"`
	LED      bool  `json:"led"`
	Border   bool  `json:"border"`
	Target   uint8 `json:"target"`
	Measured uint8 `json:"measured"`
}

// SampleJSON is the JSON representation of the last axis samples.
type SampleJSON struct {
	X uint16 `json:"x"`
	Y uint16 `json:"y"`
}

// LevelsJSON is the JSON representation of actuator levels.
type LevelsJSON struct {
	Red   uint16 `json:"red"`
	Green uint16 `json:"green"`
	Blue  uint16 `json:"blue"`
}

// EdgesJSON is the JSON representation of edge counters.
type EdgesJSON struct {
	PrimaryAccepted   uint32 `json:"primary_accepted"`
	PrimaryRejected   uint32 `json:"primary_rejected"`
	SecondaryAccepted uint32 `json:"secondary_accepted"`
	SecondaryRejected uint32 `json:"secondary_rejected"`
}

// ConfigJSON is the JSON representation of daemon config.
type ConfigJSON struct {
	IntervalMs  int64  `json:"interval_ms"`
	DebounceMs  int64  `json:"debounce_ms"`
	HeartbeatMs int64  `json:"heartbeat_ms"`
	Tolerance   int    `json:"tolerance"`
	CenterX     uint16 `json:"center_x"`
	CenterY     uint16 `json:"center_y"`
}

func buildInner(snap Snapshot) StatusInner {
	last := snap.Last
	return StatusInner{
		Scenario:      snap.Config.Scenario,
		Enabled:       last.Enabled,
		UptimeSeconds: int64(snap.Uptime().Truncate(time.Second).Seconds()),
		StartTime:     snap.StartTime.UTC().Format(time.RFC3339),
		Timestamp:     snap.Now.UTC().Format(time.RFC3339),
		Ticks:         snap.Ticks,
		Mode: ModeJSON{
			Powered:  last.Mode.Powered,
			Manual:   last.Mode.Manual,
			LED:      last.Mode.LEDOn,
			Border:   last.Mode.Border,
			Target:   last.Mode.Target,
			Measured: last.Mode.Measured,
		},
		Samples: SampleJSON{
			X: last.Samples[logic.AxisX],
			Y: last.Samples[logic.AxisY],
		},
		Levels: LevelsJSON{
			Red:   last.Levels[logic.ChannelRed],
			Green: last.Levels[logic.ChannelGreen],
			Blue:  last.Levels[logic.ChannelBlue],
		},
		Band: string(last.Band),
		Edges: EdgesJSON{
			PrimaryAccepted:   snap.Edges.PrimaryAccepted,
			PrimaryRejected:   snap.Edges.PrimaryRejected,
			SecondaryAccepted: snap.Edges.SecondaryAccepted,
			SecondaryRejected: snap.Edges.SecondaryRejected,
		},
		Config: ConfigJSON{
			IntervalMs:  snap.Config.IntervalMs,
			DebounceMs:  snap.Config.DebounceMs,
			HeartbeatMs: snap.Config.HeartbeatMs,
			Tolerance:   snap.Config.Tolerance,
			CenterX:     snap.Config.CenterX,
			CenterY:     snap.Config.CenterY,
		},
	}
}

// FormatJSON returns indented JSON status for --print-state.
func FormatJSON(snap Snapshot) []byte {
	data, _ := json.MarshalIndent(StatusJSON{Status: buildInner(snap)}, "", "  ")
	return data
}

// FormatLine returns compact JSON status for a single log line.
func FormatLine(snap Snapshot) []byte {
	data, _ := json.Marshal(StatusJSON{Status: buildInner(snap)})
	return data
}
