package models

import "time"

// Product is a single tracked inventory row. Name is the natural key: adding
// an existing name again overwrites price, quantity, and timestamp in place.
type Product struct {
	ID         int64     `gorm:"column:product_id;primaryKey;autoIncrement"`
	Name       string    `gorm:"column:product_name;uniqueIndex;not null"`
	PriceCents int64     `gorm:"column:product_price;not null"`
	Quantity   int       `gorm:"column:product_quantity;not null"`
	// Managed explicitly so seed imports and re-entries stamp the same clock.
	UpdatedAt time.Time `gorm:"column:date_updated;not null;autoUpdateTime:false"`
}

func (Product) TableName() string {
	return "products"
}
