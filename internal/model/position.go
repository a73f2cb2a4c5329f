package model

import "strings"

type Position string

const (
	PosUnknown Position = "UNK"
	PosQB      Position = "QB"
	PosRB      Position = "RB"
	PosWR      Position = "WR"
	PosTE      Position = "TE"
)

// FantasyPositions are the positions the pipeline scores. Kickers and
// defenses are excluded from projections and ADP estimation.
var FantasyPositions = []Position{PosQB, PosRB, PosWR, PosTE}

func ParsePosition(pos string) Position {
	switch strings.ToUpper(strings.TrimSpace(pos)) {
	case "QB":
		return PosQB
	case "RB", "FB", "HB":
		return PosRB
	case "WR":
		return PosWR
	case "TE":
		return PosTE
	default:
		return PosUnknown
	}
}

func (p Position) Valid() bool {
	return p != PosUnknown && p != ""
}
