package booking

import "time"

// BookedFilter is the explicit criteria handed to the persistence layer when
// scanning for conflicting Booked requests. Only Booked rows ever count as
// conflicts; Pending requests for the same slot may coexist.
type BookedFilter struct {
	RoomID    int64
	Date      time.Time
	ExcludeID *int64
}

func NewBookedFilter(roomID int64, date time.Time) BookedFilter {
	return BookedFilter{
		RoomID: roomID,
		Date:   NormalizeDate(date),
	}
}

// Excluding removes one request from the scan, used when a request is checked
// against every Booked request other than itself during confirmation.
func (f BookedFilter) Excluding(id int64) BookedFilter {
	f.ExcludeID = &id
	return f
}
