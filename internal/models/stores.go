package models

import (
	"time"
)

const (
	// Fallback map centre used when a store registers without coordinates.
	DefaultLatitude  = 37.5665
	DefaultLongitude = 126.9780
)

type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

// LocationSchedule is where a store parks on a given weekday and for how long.
type LocationSchedule struct {
	Address   string  `json:"address" validate:"required"`
	Lat       float64 `json:"lat" validate:"latitude"`
	Lng       float64 `json:"lng" validate:"longitude"`
	StartTime string  `json:"start_time" validate:"required,datetime=15:04"` // HH:MM (24h)
	EndTime   string  `json:"end_time" validate:"required,datetime=15:04"`   // HH:MM (24h)
}

type WeeklySchedule struct {
	Monday    *LocationSchedule `json:"monday,omitempty" validate:"omitempty"`
	Tuesday   *LocationSchedule `json:"tuesday,omitempty" validate:"omitempty"`
	Wednesday *LocationSchedule `json:"wednesday,omitempty" validate:"omitempty"`
	Thursday  *LocationSchedule `json:"thursday,omitempty" validate:"omitempty"`
	Friday    *LocationSchedule `json:"friday,omitempty" validate:"omitempty"`
	Saturday  *LocationSchedule `json:"saturday,omitempty" validate:"omitempty"`
	Sunday    *LocationSchedule `json:"sunday,omitempty" validate:"omitempty"`
}

// ForDay returns the entry for the given weekday, or nil when the store has
// nothing planned that day.
func (w WeeklySchedule) ForDay(day time.Weekday) *LocationSchedule {
	switch day {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	case time.Sunday:
		return w.Sunday
	}
	return nil
}

func (w WeeklySchedule) Clone() WeeklySchedule {
	cp := func(ls *LocationSchedule) *LocationSchedule {
		if ls == nil {
			return nil
		}
		v := *ls
		return &v
	}
	return WeeklySchedule{
		Monday:    cp(w.Monday),
		Tuesday:   cp(w.Tuesday),
		Wednesday: cp(w.Wednesday),
		Thursday:  cp(w.Thursday),
		Friday:    cp(w.Friday),
		Saturday:  cp(w.Saturday),
		Sunday:    cp(w.Sunday),
	}
}

type Store struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Category           string          `json:"category"`
	Description        string          `json:"description,omitempty"`
	IsOpen             bool            `json:"is_open"`
	Menu               []string        `json:"menu"`
	Location           Location        `json:"location"`
	OwnerID            string          `json:"owner_id"`
	Phone              string          `json:"phone,omitempty"`
	OpeningHours       string          `json:"opening_hours,omitempty"`
	AverageRating      float64         `json:"average_rating"`
	ReviewCount        int             `json:"review_count"`
	ViewCount          int             `json:"view_count"`
	Schedule           *WeeklySchedule `json:"schedule,omitempty"`
	IsGpsTracked       bool            `json:"is_gps_tracked"`
	LastLocationUpdate *time.Time      `json:"last_location_update,omitempty"`
}

// Clone returns a copy that shares no slices or pointers with s.
func (s Store) Clone() Store {
	out := s
	out.Menu = append([]string(nil), s.Menu...)
	if s.Schedule != nil {
		sc := s.Schedule.Clone()
		out.Schedule = &sc
	}
	if s.LastLocationUpdate != nil {
		t := *s.LastLocationUpdate
		out.LastLocationUpdate = &t
	}
	return out
}

type TrustLevel string

const (
	TrustGPS    TrustLevel = "gps"
	TrustHigh   TrustLevel = "high"
	TrustMedium TrustLevel = "medium"
	TrustLow    TrustLevel = "low"
)

// LocationTrust grades how fresh the store's reported position is.
func (s Store) LocationTrust(now time.Time) TrustLevel {
	if s.IsGpsTracked {
		return TrustGPS
	}
	if s.LastLocationUpdate == nil {
		return TrustLow
	}
	age := now.Sub(*s.LastLocationUpdate)
	switch {
	case age < 5*time.Minute:
		return TrustHigh
	case age < 30*time.Minute:
		return TrustMedium
	}
	return TrustLow
}

type NewStoreInput struct {
	Name         string   `json:"name" validate:"required,max=100"`
	Category     string   `json:"category" validate:"max=100"`
	Description  string   `json:"description" validate:"max=1000"`
	Menu         []string `json:"menu" validate:"required,min=1,dive,required"`
	Address      string   `json:"address" validate:"required"`
	Lat          *float64 `json:"lat,omitempty" validate:"omitempty,latitude"`
	Lng          *float64 `json:"lng,omitempty" validate:"omitempty,longitude"`
	Phone        string   `json:"phone" validate:"max=32"`
	OpeningHours string   `json:"opening_hours" validate:"max=64"`
	IsGpsTracked bool     `json:"is_gps_tracked"`
}

type LocationInput struct {
	Lat     float64 `json:"lat" validate:"latitude"`
	Lng     float64 `json:"lng" validate:"longitude"`
	Address string  `json:"address" validate:"required"`
}
