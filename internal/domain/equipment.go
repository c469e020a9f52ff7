package domain

import "time"

type EquipmentStatus string

const (
	EquipmentStatusAvailable   EquipmentStatus = "available"
	EquipmentStatusInUse       EquipmentStatus = "in-use"
	EquipmentStatusMaintenance EquipmentStatus = "maintenance"
)

type EquipmentCategory string

const (
	CategoryAudio       EquipmentCategory = "audio"
	CategoryVideo       EquipmentCategory = "video"
	CategoryLighting    EquipmentCategory = "lighting"
	CategoryInstruments EquipmentCategory = "instruments"
	CategoryCables      EquipmentCategory = "cables"
	CategoryComputers   EquipmentCategory = "computers"
	CategoryOther       EquipmentCategory = "other"
)

// Categories lists the valid equipment categories in display order.
var Categories = []EquipmentCategory{
	CategoryAudio,
	CategoryVideo,
	CategoryLighting,
	CategoryInstruments,
	CategoryCables,
	CategoryComputers,
	CategoryOther,
}

func (c EquipmentCategory) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type Equipment struct {
	ID            int64             `json:"id"`
	Name          string            `json:"name"`
	Category      EquipmentCategory `json:"category"`
	Model         string            `json:"model,omitempty"`
	SerialNumber  string            `json:"serial_number,omitempty"`
	Description   string            `json:"description,omitempty"`
	Status        EquipmentStatus   `json:"status"`
	Location      string            `json:"location,omitempty"`
	PurchaseDate  *time.Time        `json:"purchase_date,omitempty"`
	PurchasePrice *float64          `json:"purchase_price,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// EquipmentFilter narrows equipment listings. Zero values match everything.
type EquipmentFilter struct {
	Search   string
	Category EquipmentCategory
	Status   EquipmentStatus
}

// EquipmentStats is the dashboard status breakdown.
type EquipmentStats struct {
	Total       int64 `json:"total"`
	Available   int64 `json:"available"`
	InUse       int64 `json:"in_use"`
	Maintenance int64 `json:"maintenance"`
}
