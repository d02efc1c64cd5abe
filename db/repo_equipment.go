package db

import (
	"context"

	"gorm.io/gorm"

	"equipment_portal/apperr"
	"equipment_portal/booking"
	"equipment_portal/models"
)

// Equipment

func (r *Repo) CreateEquipment(ctx context.Context, eq *models.Equipment) error {
	return r.DB.WithContext(ctx).Create(eq).Error
}

func (r *Repo) FindEquipmentByID(ctx context.Context, id string) (*models.Equipment, error) {
	var eq models.Equipment
	if err := r.DB.WithContext(ctx).First(&eq, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "equipment not found")
	}
	return &eq, nil
}

func (r *Repo) ListEquipment(ctx context.Context) ([]models.Equipment, error) {
	var items []models.Equipment
	err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&items).Error
	return items, err
}

// EquipmentPatch carries the optional fields of an update; nil means keep.
type EquipmentPatch struct {
	Name      *string
	Category  *string
	Condition *string
	Quantity  *int
}

// UpdateEquipment applies a patch. Available is re-derived from quantity,
// never taken from input.
func (r *Repo) UpdateEquipment(ctx context.Context, id string, p EquipmentPatch) (*models.Equipment, error) {
	var eq models.Equipment
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&eq, "id = ?", id).Error; err != nil {
			return notFound(err, "equipment not found")
		}
		if p.Name != nil {
			eq.Name = *p.Name
		}
		if p.Category != nil {
			eq.Category = *p.Category
		}
		if p.Condition != nil {
			eq.Condition = *p.Condition
		}
		if p.Quantity != nil {
			if *p.Quantity < 0 {
				return apperr.NewValidation("quantity must not be negative")
			}
			eq.Quantity = *p.Quantity
		}
		eq.SyncAvailability()
		return tx.Save(&eq).Error
	})
	if err != nil {
		return nil, err
	}
	return &eq, nil
}

// DeleteEquipment refuses to delete while any pending or approved request
// still references the item, so approved bookings never go orphaned.
func (r *Repo) DeleteEquipment(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var eq models.Equipment
		if err := tx.First(&eq, "id = ?", id).Error; err != nil {
			return notFound(err, "equipment not found")
		}
		var rs []models.BorrowRequest
		if err := tx.Select("id", "status").
			Where("equipment_id = ?", id).
			Find(&rs).Error; err != nil {
			return err
		}
		if err := booking.BlocksDeletion(rs); err != nil {
			return err
		}
		return tx.Delete(&eq).Error
	})
}
