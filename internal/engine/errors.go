package engine

import (
	"fmt"

	"horaires.srtgn.tn/internal/timetable"
)

// StationNotFoundError reports that one endpoint of a journey could not be
// resolved to any station in the timetable. It is the only error the engine
// surfaces; every other condition degrades to an empty result list.
type StationNotFoundError struct {
	Role timetable.Role
	Name string
}

func (e *StationNotFoundError) Error() string {
	return fmt.Sprintf("%s station %q not found in timetable", e.Role, e.Name)
}
