package schedule

import "errors"

// Day is a weekday name in lowercase, matching the stored representation.
type Day string

const (
	Monday    Day = "monday"
	Tuesday   Day = "tuesday"
	Wednesday Day = "wednesday"
	Thursday  Day = "thursday"
	Friday    Day = "friday"
	Saturday  Day = "saturday"
	Sunday    Day = "sunday"
)

func (d Day) Valid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	}
	return false
}

var ErrNotFound = errors.New("schedule not found")

// Schedule is one recurring timetable entry for a doctor. Times are stored
// as "HH:MM" strings; entries for the same doctor and day may overlap, the
// store does not check ranges against each other.
type Schedule struct {
	ID           int64  `db:"id" json:"id"`
	DoctorID     int64  `db:"doctor_id" json:"doctorId"`
	Day          Day    `db:"day" json:"day"`
	StartTime    string `db:"start_time" json:"startTime"`
	EndTime      string `db:"end_time" json:"endTime"`
	ActivityType string `db:"activity_type" json:"activityType"`
}

// Patch carries a partial update. Nil fields are preserved; non-nil fields
// overwrite (shallow merge). DoctorID is settable so a nurse can reassign an
// entry, mirroring the update surface of the other collections.
type Patch struct {
	DoctorID     *int64  `json:"doctorId,omitempty"`
	Day          *Day    `json:"day,omitempty"`
	StartTime    *string `json:"startTime,omitempty"`
	EndTime      *string `json:"endTime,omitempty"`
	ActivityType *string `json:"activityType,omitempty"`
}
