package config

import (
	_ "embed"
)

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

// DefaultBlocksConfig returns the default engine rules: half-second lock
// delay with the guideline move-reset cap, a short line-clear flash, five
// previews, ghost piece and back-to-back scoring on.
func DefaultBlocksConfig() BlocksConfig {
	return BlocksConfig{
		Timing: TimingConfig{
			LockDelayTicks: 30,
			MaxLockResets:  15,
			LineClearTicks: 18,
		},
		Rules: RulesConfig{
			BackToBack:  true,
			HoldEnabled: true,
		},
		Display: DisplayConfig{
			PreviewCount: 5,
			GhostPiece:   true,
		},
	}
}
