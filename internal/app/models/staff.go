package models

// StaffMember is the shared shape of instructional designers and media leads
type StaffMember struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// StaffKind distinguishes the staff tables that share StaffMember
type StaffKind string

const (
	StaffInstructionalDesigner StaffKind = "instructional designer"
	StaffMediaLead             StaffKind = "media lead"
)
