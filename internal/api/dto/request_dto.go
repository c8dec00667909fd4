package dto

// CreateRequestRequest payload for client requests.
type CreateRequestRequest struct {
	Title           string `json:"title" validate:"required"`
	Description     string `json:"description"`
	Date            string `json:"date" validate:"required,datetime=2006-01-02"`
	Time            string `json:"time"`
	Location        string `json:"location"`
	PersonToContact string `json:"personToContact"`
	ContactInfo     string `json:"contactInfo"`
	ServiceNeeded   string `json:"serviceNeeded"`
	AttachedFile    string `json:"attachedFile"`
}

// UpdateRequestRequest payload for editing a pending request.
type UpdateRequestRequest struct {
	Title           *string `json:"title" validate:"omitempty,min=1"`
	Description     *string `json:"description"`
	Date            *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time            *string `json:"time"`
	Location        *string `json:"location"`
	PersonToContact *string `json:"personToContact"`
	ContactInfo     *string `json:"contactInfo"`
	ServiceNeeded   *string `json:"serviceNeeded"`
	AttachedFile    *string `json:"attachedFile"`
}

// DenyRequestRequest carries the reason of denial.
type DenyRequestRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// RecipientPayload identifies one assignee.
type RecipientPayload struct {
	AssignedTo      string `json:"assignedTo"`
	AssignedToID    string `json:"assignedToId"`
	AssignedToEmail string `json:"assignedToEmail" validate:"omitempty,email"`
	AssignedToName  string `json:"assignedToName"`
}

// AssignRequestRequest turns an approved request into assignments.
type AssignRequestRequest struct {
	Section      string             `json:"section" validate:"required"`
	Recipients   []RecipientPayload `json:"recipients" validate:"required,min=1,dive"`
	TaskTitle    string             `json:"taskTitle"`
	TaskDate     string             `json:"taskDate" validate:"omitempty,datetime=2006-01-02"`
	TaskTime     string             `json:"taskTime"`
	TaskLocation string             `json:"taskLocation"`
	Notes        string             `json:"notes"`
}
