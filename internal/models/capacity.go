package models

// ChildcareCapacity is a singleton row (ID 1). When Reached is true the
// public form hides the nursing option until an admin reopens it.
type ChildcareCapacity struct {
	ID      uint `json:"id" gorm:"primarykey"`
	Reached bool `json:"reached"`
}

// ChildcareCapacityID is the fixed identifier of the singleton row.
const ChildcareCapacityID uint = 1
