package models

// Location is a caller-supplied address with point coordinates.
type Location struct {
	Address     string    `bson:"address" json:"address"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"` // [longitude, latitude]
}

// ReminderPayload is the queued payload for a scheduled booking reminder.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	Target    string `json:"target"` // "user" or "provider"
	ID        string `json:"id"`     // recipient user or provider id
	Title     string `json:"title"`
	Body      string `json:"body"`
	FireDate  string `json:"fireDate"`
}
