package domain

// DefaultWorldID is where new profiles spawn.
const DefaultWorldID = "overworld"

// Location is a world position with view angles.
type Location struct {
	WorldID string  `json:"world_id"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Z       float64 `json:"z"`
	Yaw     float32 `json:"yaw"`
	Pitch   float32 `json:"pitch"`
}

// SpawnLocation returns the default spawn point.
func SpawnLocation() Location {
	return Location{WorldID: DefaultWorldID, Y: 64}
}
