package complaints

import "github.com/govseva/govseva/internal/domain"

// createComplaintRequest represents a new complaint
type createComplaintRequest struct {
	Name    string `json:"name,omitempty" example:"Asha"`
	Contact string `json:"contact,omitempty" example:"asha@example.com"`
	Issue   string `json:"issue" example:"Street light not working on MG Road"` // Required
}

// updateComplaintRequest represents a status transition
type updateComplaintRequest struct {
	Status string `json:"status" example:"in_progress" enum:"open,in_progress,resolved,closed"`
}

// complaintStatusResponse is returned after a create or status update
type complaintStatusResponse struct {
	OK     bool   `json:"ok"`
	ID     uint   `json:"id"`
	Status string `json:"status"`
}

type listComplaintsResponse struct {
	OK         bool               `json:"ok"`
	Complaints []domain.Complaint `json:"complaints"`
}

type getComplaintResponse struct {
	OK        bool             `json:"ok"`
	Complaint domain.Complaint `json:"complaint"`
}
