package models

import "time"

const RequestTable = "sep_requests"

// RequestStatus is the lifecycle state of a borrow request.
type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
	StatusReturned RequestStatus = "returned"
)

// Active reports whether the request still blocks equipment deletion:
// pending and approved requests reference live bookings, rejected and
// returned ones are terminal history.
func (s RequestStatus) Active() bool {
	return s == StatusPending || s == StatusApproved
}

type BorrowRequest struct {
	ID          string `gorm:"primaryKey;size:26" json:"id"`
	EquipmentID string `gorm:"type:uuid;index;not null" json:"equipmentId"`
	Requester   string `gorm:"size:255;index;not null" json:"requester"`

	// Inclusive calendar range as supplied by the caller. Kept as strings;
	// the booking package parses them at every overlap decision.
	StartDate string `gorm:"size:64;not null" json:"startDate"`
	EndDate   string `gorm:"size:64;not null" json:"endDate"`

	Status RequestStatus `gorm:"size:20;not null;default:'pending'" json:"status"`

	Approver   *string    `gorm:"size:255" json:"approver,omitempty"`
	ApprovedAt *time.Time `json:"approvedAt,omitempty"`
	RejectedAt *time.Time `json:"rejectedAt,omitempty"`
	ReturnedAt *time.Time `json:"returnedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (BorrowRequest) TableName() string { return RequestTable }
