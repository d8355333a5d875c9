// Package entity contains the core business objects of the project.
package entity

// ModerationStatus controls whether a piece of submitted content may appear
// on any public surface. The transition graph is free: any status may be set
// at any time, and re-applying the current status is a no-op overwrite.
type ModerationStatus string

const (
	// StatusPending is the initial status of every submitted item.
	StatusPending ModerationStatus = "pending"
	// StatusApproved makes an item eligible for public display.
	StatusApproved ModerationStatus = "approved"
	// StatusRejected hides an item from every public surface.
	StatusRejected ModerationStatus = "rejected"
)

// String returns the string representation of the ModerationStatus.
func (s ModerationStatus) String() string {
	return string(s)
}

// IsValid checks if the ModerationStatus is a valid value.
func (s ModerationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}
