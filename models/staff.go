package models

// StaffMember is a tip recipient registered by the business.
// Records are immutable once created — there is no update or delete path.
type StaffMember struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}
