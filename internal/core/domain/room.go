package domain

// RoomMeasurements holds optional room dimensions in feet.
type RoomMeasurements struct {
	Length float64 `json:"length,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Area   float64 `json:"area,omitempty"`
}

// Room represents a physical room within a project.
type Room struct {
	RoomID       string            `json:"roomID"`    // Primary Key (e.g., UUID)
	ProjectID    string            `json:"projectID"` // FK -> projects.project_id
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Measurements *RoomMeasurements `json:"measurements,omitempty"`
	Notes        string            `json:"notes"`
	AuditFields
}
