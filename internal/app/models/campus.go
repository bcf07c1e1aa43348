package models

// Campus represents a physical or online university campus
type Campus struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}
