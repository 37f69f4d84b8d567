package vehicles

// Status is the lifecycle state of a vehicle.
type Status string

const (
	StatusAvailable   Status = "Available"
	StatusInUse       Status = "InUse"
	StatusMaintenance Status = "Maintenance"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusInUse, StatusMaintenance:
		return true
	}
	return false
}

// Vehicle is a single fleet record. The collection as a whole is the unit
// of persistence: every mutation rewrites the full set.
type Vehicle struct {
	ID           string `json:"id"`
	LicensePlate string `json:"licensePlate"`
	Status       Status `json:"status"`
	CreatedAt    string `json:"createdAt"`
}

// CreateVehicleRequest is the request body for creating a vehicle.
// Status cannot be supplied; new vehicles always start Available.
type CreateVehicleRequest struct {
	ID           string `json:"id"`
	LicensePlate string `json:"licensePlate"`
}

// UpdateVehicleRequest is the request body for patching a vehicle.
// All fields are optional; absent fields are left untouched.
type UpdateVehicleRequest struct {
	ID           *string `json:"id,omitempty"`
	LicensePlate *string `json:"licensePlate,omitempty"`
	Status       *Status `json:"status,omitempty"`
}
