package models

// Faculty is a teaching faculty member, optionally attached to a campus
type Faculty struct {
	ID         int64  `json:"id"`
	Email      string `json:"email"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	CampusID   *int64 `json:"campusId"`
	CampusName string `json:"campusName,omitempty"`
}
