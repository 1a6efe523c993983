package domain

import "context"

// Product maps the `product` table by column name. The original store
// named the image column image_url while the API speaks "image".
type Product struct {
	ID          int64   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title       string  `gorm:"column:title;size:255" json:"title"`
	Category    string  `gorm:"column:category;size:255" json:"category"`
	Price       float64 `gorm:"column:price" json:"price"`
	Image       string  `gorm:"column:image_url;size:512" json:"image"`
	Description string  `gorm:"column:description" json:"description"`
}

func (Product) TableName() string { return "product" }

type ProductRepository interface {
	Create(ctx context.Context, p *Product) error
	FindByID(ctx context.Context, id int64) (*Product, error)
	List(ctx context.Context) ([]Product, error)
	// Update overwrites all mutable fields of the row with p.ID and
	// returns false when no such row exists.
	Update(ctx context.Context, p *Product) (bool, error)
	Delete(ctx context.Context, id int64) error
}
