package service

import (
	"time"

	"github.com/davidly-empire/security-verifier-server/internal/model"
)

// SplitIntoRounds groups a chronologically sorted scan sequence into
// contiguous patrol rounds: a new round starts whenever the gap between two
// consecutive scans exceeds the threshold. Used when the client supplies no
// explicit round identifiers.
func SplitIntoRounds(scans []model.ScanEvent, gap time.Duration) [][]model.ScanEvent {
	var rounds [][]model.ScanEvent
	var current []model.ScanEvent

	for _, scan := range scans {
		if len(current) > 0 {
			last := current[len(current)-1].ScanTime
			if scan.ScanTime.Sub(last) > gap {
				rounds = append(rounds, current)
				current = nil
			}
		}
		current = append(current, scan)
	}

	if len(current) > 0 {
		rounds = append(rounds, current)
	}

	return rounds
}
