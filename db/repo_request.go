package db

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"equipment_portal/booking"
	"equipment_portal/models"
)

// Borrow requests. Every mutating operation runs in one transaction that
// locks the equipment row first, so two concurrent approvals for the same
// item can never both observe quantity > 0 and double-decrement.

func (r *Repo) CreateRequest(ctx context.Context, equipmentID, requester, start, end string) (*models.BorrowRequest, error) {
	var req *models.BorrowRequest
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var eq models.Equipment
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&eq, "id = ?", equipmentID).Error; err != nil {
			return notFound(err, "equipment not found")
		}
		approved, err := approvedForEquipment(tx, equipmentID)
		if err != nil {
			return err
		}
		nr, err := booking.NewRequest(&eq, requester, start, end, approved, time.Now().UTC())
		if err != nil {
			return err
		}
		if err := tx.Create(nr).Error; err != nil {
			return err
		}
		req = nr
		return nil
	})
	return req, err
}

func (r *Repo) ApproveRequest(ctx context.Context, id, approver string) (*models.BorrowRequest, error) {
	return r.decide(ctx, id, func(tx *gorm.DB, req *models.BorrowRequest) error {
		var eq models.Equipment
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&eq, "id = ?", req.EquipmentID).Error; err != nil {
			return notFound(err, "equipment not found")
		}
		others, err := approvedForEquipment(tx, req.EquipmentID)
		if err != nil {
			return err
		}
		if err := booking.Approve(req, &eq, others, approver, time.Now().UTC()); err != nil {
			return err
		}
		return tx.Save(&eq).Error
	})
}

func (r *Repo) RejectRequest(ctx context.Context, id, approver string) (*models.BorrowRequest, error) {
	return r.decide(ctx, id, func(tx *gorm.DB, req *models.BorrowRequest) error {
		return booking.Reject(req, approver, time.Now().UTC())
	})
}

func (r *Repo) ReturnRequest(ctx context.Context, id, username string, role models.Role) (*models.BorrowRequest, error) {
	return r.decide(ctx, id, func(tx *gorm.DB, req *models.BorrowRequest) error {
		if err := booking.AllowReturn(req, username, role); err != nil {
			return err
		}
		var eq models.Equipment
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&eq, "id = ?", req.EquipmentID).Error; err != nil {
			return notFound(err, "equipment not found")
		}
		if err := booking.Return(req, &eq, time.Now().UTC()); err != nil {
			return err
		}
		return tx.Save(&eq).Error
	})
}

// decide loads and locks one request, applies the lifecycle mutation and
// persists the result, all inside a single transaction.
func (r *Repo) decide(ctx context.Context, id string, fn func(tx *gorm.DB, req *models.BorrowRequest) error) (*models.BorrowRequest, error) {
	var req models.BorrowRequest
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&req, "id = ?", id).Error; err != nil {
			return notFound(err, "request not found")
		}
		if err := fn(tx, &req); err != nil {
			return err
		}
		return tx.Save(&req).Error
	})
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// ListRequests is role-scoped: staff/admin see everything, students only
// their own.
func (r *Repo) ListRequests(ctx context.Context, username string, role models.Role) ([]models.BorrowRequest, error) {
	q := r.DB.WithContext(ctx).Model(&models.BorrowRequest{}).Order("created_at DESC")
	if !role.CanModerate() {
		q = q.Where("requester = ?", username)
	}
	var rs []models.BorrowRequest
	if err := q.Find(&rs).Error; err != nil {
		return nil, err
	}
	return rs, nil
}

func approvedForEquipment(tx *gorm.DB, equipmentID string) ([]models.BorrowRequest, error) {
	var approved []models.BorrowRequest
	err := tx.
		Where("equipment_id = ? AND status = ?", equipmentID, models.StatusApproved).
		Find(&approved).Error
	return approved, err
}
