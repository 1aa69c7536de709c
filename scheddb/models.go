package scheddb

// TripRow is one scheduled trip as stored in the trips table. Times are
// minutes since midnight; day flags are 0/1, Monday first. Service and
// season values are kept raw; semantic mapping happens in the timetable
// layer.
type TripRow struct {
	ID          int64
	Origin      string
	Destination string
	Departure   int64
	Duration    int64
	Service     string
	Monday      int64
	Tuesday     int64
	Wednesday   int64
	Thursday    int64
	Friday      int64
	Saturday    int64
	Sunday      int64
	Season      string
}

// DayFlags returns the per-weekday operates flags in column order.
func (r TripRow) DayFlags() [7]int64 {
	return [7]int64{r.Monday, r.Tuesday, r.Wednesday, r.Thursday, r.Friday, r.Saturday, r.Sunday}
}

// StationRow is one station as stored in the stations table. A station can
// appear in either or both timetable columns.
type StationRow struct {
	Name          string
	IsOrigin      int64
	IsDestination int64
}
