package booking

import (
	"time"

	"github.com/oklog/ulid/v2"

	"equipment_portal/apperr"
	"equipment_portal/models"
)

// NewRequest builds a pending borrow request for the given equipment after
// validating the range against every currently approved booking for it.
// Creation never touches inventory: reservation is soft, overlapping pending
// requests may coexist and capacity is consumed at approval only.
func NewRequest(eq *models.Equipment, requester, start, end string, approved []models.BorrowRequest, now time.Time) (*models.BorrowRequest, error) {
	if err := ValidateRange(start, end); err != nil {
		return nil, err
	}
	if err := CheckConflicts(start, end, approved, ""); err != nil {
		return nil, err
	}
	return &models.BorrowRequest{
		ID:          ulid.Make().String(),
		EquipmentID: eq.ID,
		Requester:   requester,
		StartDate:   start,
		EndDate:     end,
		Status:      models.StatusPending,
		CreatedAt:   now,
	}, nil
}

// Approve moves a pending request to approved and consumes one unit of
// equipment quantity. The overlap re-check against the other approved
// requests is required: two overlapping pending requests may coexist and
// only one may ever win.
func Approve(r *models.BorrowRequest, eq *models.Equipment, otherApproved []models.BorrowRequest, approver string, now time.Time) error {
	if r.Status != models.StatusPending {
		return apperr.NewConflict("only pending requests can be approved")
	}
	if err := CheckConflicts(r.StartDate, r.EndDate, otherApproved, r.ID); err != nil {
		return err
	}
	if eq.Quantity <= 0 {
		return apperr.NewConflict("no items available to approve this request")
	}
	eq.Quantity--
	eq.SyncAvailability()

	r.Status = models.StatusApproved
	r.Approver = &approver
	r.ApprovedAt = &now
	return nil
}

// Reject moves a pending request to rejected. Inventory is untouched.
func Reject(r *models.BorrowRequest, approver string, now time.Time) error {
	if r.Status != models.StatusPending {
		return apperr.NewConflict("only pending requests can be rejected")
	}
	r.Status = models.StatusRejected
	r.Approver = &approver
	r.RejectedAt = &now
	return nil
}

// AllowReturn gates who may process a return: staff/admin, or the user who
// made the request.
func AllowReturn(r *models.BorrowRequest, username string, role models.Role) error {
	if role.CanModerate() || r.Requester == username {
		return nil
	}
	return apperr.NewForbidden("not allowed to return this request")
}

// BlocksDeletion refuses equipment deletion while any of its requests still
// holds an active booking; rejected/returned history does not block.
func BlocksDeletion(requests []models.BorrowRequest) error {
	for _, r := range requests {
		if r.Status.Active() {
			return apperr.NewConflict("equipment has active borrow requests")
		}
	}
	return nil
}

// Return moves an approved request to returned and gives the unit back.
func Return(r *models.BorrowRequest, eq *models.Equipment, now time.Time) error {
	if r.Status != models.StatusApproved {
		return apperr.NewConflict("only approved requests can be returned")
	}
	eq.Quantity++
	eq.SyncAvailability()

	r.Status = models.StatusReturned
	r.ReturnedAt = &now
	return nil
}
