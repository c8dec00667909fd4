package dto

// CreateAssignmentRequest payload for assignments.
type CreateAssignmentRequest struct {
	RecipientPayload
	RequestID    *string `json:"requestId"`
	Section      string  `json:"section" validate:"required"`
	TaskTitle    string  `json:"taskTitle"`
	TaskDate     string  `json:"taskDate" validate:"omitempty,datetime=2006-01-02"`
	TaskTime     string  `json:"taskTime"`
	TaskLocation string  `json:"taskLocation"`
	Notes        string  `json:"notes"`
}

// UpdateAssignmentRequest lists editable fields; absent fields are unchanged.
type UpdateAssignmentRequest struct {
	AssignedTo      *string `json:"assignedTo"`
	AssignedToID    *string `json:"assignedToId"`
	AssignedToEmail *string `json:"assignedToEmail" validate:"omitempty,email"`
	AssignedToName  *string `json:"assignedToName"`
	TaskTitle       *string `json:"taskTitle"`
	TaskDate        *string `json:"taskDate" validate:"omitempty,datetime=2006-01-02"`
	TaskTime        *string `json:"taskTime"`
	TaskLocation    *string `json:"taskLocation"`
	Notes           *string `json:"notes"`
}

// RejectAssignmentRequest carries the rejection reason. Blank reasons are refused by
// the lifecycle itself.
type RejectAssignmentRequest struct {
	Reason string `json:"reason"`
}

// RespondInvitationRequest answers an invitation.
type RespondInvitationRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected"`
}
