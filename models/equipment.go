package models

import "time"

const EquipmentTable = "sep_equipment"

type Equipment struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string `gorm:"size:200;not null" json:"name"`
	Category  string `gorm:"size:120" json:"category"`
	Condition string `gorm:"size:60;not null;default:'Good'" json:"condition"`
	// Quantity counts units not currently lent out. Approval takes one,
	// return gives one back.
	Quantity int `gorm:"not null;default:0" json:"quantity"`
	// Available is derived from Quantity; never set from client input.
	Available bool `gorm:"not null;default:true" json:"available"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Equipment) TableName() string { return EquipmentTable }

// SyncAvailability re-derives the Available flag after a quantity change.
func (e *Equipment) SyncAvailability() { e.Available = e.Quantity > 0 }
