// Package config provides YAML-based game configuration loading for the
// blocks platform.
package config

// BlocksConfig contains all tunable rules for the falling-block engine.
type BlocksConfig struct {
	Timing  TimingConfig  `yaml:"timing"`
	Rules   RulesConfig   `yaml:"rules"`
	Display DisplayConfig `yaml:"display"`
}

// TimingConfig defines tick-based durations. All values are in simulation
// ticks (60 per second by default), never wall-clock, so gameplay stays
// deterministic.
type TimingConfig struct {
	// LockDelayTicks is the grace period after a piece becomes grounded
	// before it locks into the board.
	LockDelayTicks int `yaml:"lock_delay_ticks"`

	// MaxLockResets caps how many times moves or rotations may restart the
	// lock delay for one piece. Past the cap the piece locks regardless.
	MaxLockResets int `yaml:"max_lock_resets"`

	// LineClearTicks is how long the line-clear resolution state lasts
	// (the flash the renderer shows before rows compact).
	LineClearTicks int `yaml:"line_clear_ticks"`
}

// RulesConfig toggles optional scoring and gameplay rules.
type RulesConfig struct {
	// BackToBack enables the 3/2 multiplier for consecutive tetrises.
	BackToBack bool `yaml:"back_to_back"`

	// HoldEnabled allows swapping the active piece with the hold slot.
	HoldEnabled bool `yaml:"hold_enabled"`
}

// DisplayConfig defines presentation hints the engine exposes in snapshots.
type DisplayConfig struct {
	// PreviewCount is how many upcoming pieces to show (0-7).
	PreviewCount int `yaml:"preview_count"`

	// GhostPiece shows where the active piece would land.
	GhostPiece bool `yaml:"ghost_piece"`
}

// Normalize clamps out-of-range values to safe bounds.
func (c *BlocksConfig) Normalize() {
	if c.Timing.LockDelayTicks < 1 {
		c.Timing.LockDelayTicks = 1
	}
	if c.Timing.MaxLockResets < 0 {
		c.Timing.MaxLockResets = 0
	}
	if c.Timing.LineClearTicks < 0 {
		c.Timing.LineClearTicks = 0
	}
	if c.Display.PreviewCount < 0 {
		c.Display.PreviewCount = 0
	}
	if c.Display.PreviewCount > 7 {
		c.Display.PreviewCount = 7
	}
}
