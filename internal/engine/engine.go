package engine

import (
	"horaires.srtgn.tn/internal/models"
	"horaires.srtgn.tn/internal/timetable"
	"horaires.srtgn.tn/internal/translate"
)

// Engine answers recommendation requests against timetable snapshots. It
// holds no mutable state of its own; every call reads one snapshot and is
// safe for unbounded concurrent use.
type Engine struct {
	translator *translate.Translator
}

// NewEngine creates an Engine using the given alias tables.
func NewEngine(translator *translate.Translator) *Engine {
	return &Engine{translator: translator}
}

// Recommend resolves both endpoints, searches direct trips first and falls
// back to single-transfer itineraries, then scores and ranks whichever set
// was found. It fails only when an endpoint cannot be resolved; an empty
// result list is a valid outcome.
func (e *Engine) Recommend(snapshot *timetable.Snapshot, criteria Criteria) ([]models.Recommendation, error) {
	originID, err := resolveStation(snapshot, e.translator, criteria.Origin, timetable.RoleOrigin)
	if err != nil {
		return nil, err
	}
	destID, err := resolveStation(snapshot, e.translator, criteria.Destination, timetable.RoleDestination)
	if err != nil {
		return nil, err
	}

	if direct := findDirect(snapshot, originID, destID, criteria.PreferredTime); len(direct) > 0 {
		scored := scoreDirect(direct, criteria)
		recommendations := make([]models.Recommendation, 0, len(scored))
		for _, s := range scored {
			recommendations = append(recommendations, assembleDirect(s, snapshot, criteria))
		}
		return recommendations, nil
	}

	transfers := findTransfer(snapshot, originID, destID, criteria)
	if max := criteria.EffectiveMaxResults(); len(transfers) > max {
		transfers = transfers[:max]
	}
	recommendations := make([]models.Recommendation, 0, len(transfers))
	for _, c := range transfers {
		recommendations = append(recommendations, assembleTransfer(c, snapshot))
	}
	return recommendations, nil
}

// ResolveStation exposes endpoint resolution for callers that validate a
// station name without running a full search.
func (e *Engine) ResolveStation(snapshot *timetable.Snapshot, name string, role timetable.Role) (string, error) {
	return resolveStation(snapshot, e.translator, name, role)
}
