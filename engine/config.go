package engine

import (
	"time"

	"go.uber.org/zap"

	"github.com/daystram/checkers/board"
)

const (
	DefaultMaxDepth uint8 = 3
)

// ScoringMode selects the material formula used by Evaluate.
type ScoringMode uint8

const (
	// ScoringModeMaterial counts men as 1 and kings as 4.
	ScoringModeMaterial ScoringMode = iota

	// ScoringModeMaterialPotential counts kings as 5 and rewards men for advancing.
	ScoringModeMaterialPotential
)

func (m ScoringMode) String() string {
	switch m {
	case ScoringModeMaterial:
		return "Material"
	case ScoringModeMaterialPotential:
		return "MaterialPotential"
	default:
		return ""
	}
}

// SeedPolicy decides how the move shuffling source is seeded.
type SeedPolicy uint8

const (
	SeedPolicyTimeBased SeedPolicy = iota
	SeedPolicyFixedZero

	// SeedPolicyNone disables shuffling, moves keep board order.
	SeedPolicyNone
)

func (p SeedPolicy) String() string {
	switch p {
	case SeedPolicyTimeBased:
		return "TimeBased"
	case SeedPolicyFixedZero:
		return "FixedZero"
	case SeedPolicyNone:
		return "None"
	default:
		return ""
	}
}

type EngineConfig struct {
	MaxDepth    uint8
	ScoringMode ScoringMode
	Pruning     bool
	SeedPolicy  SeedPolicy
	Logger      *zap.SugaredLogger
}

func (cfg *EngineConfig) newRand() *board.PseudoRand {
	switch cfg.SeedPolicy {
	case SeedPolicyFixedZero:
		return board.NewPseudoRand(0)
	case SeedPolicyNone:
		return nil
	default:
		return board.NewPseudoRand(uint64(time.Now().UnixNano()))
	}
}
