package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"storefront-api/internal/domain"
)

type ProductRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) Create(ctx context.Context, p *domain.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProductRepo) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	var p domain.Product
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &p, err
}

func (r *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	items := make([]domain.Product, 0)
	err := r.db.WithContext(ctx).Order("id asc").Find(&items).Error
	return items, err
}

func (r *ProductRepo) Update(ctx context.Context, p *domain.Product) (bool, error) {
	var existing domain.Product
	err := r.db.WithContext(ctx).First(&existing, "id = ?", p.ID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	existing.Title = p.Title
	existing.Category = p.Category
	existing.Price = p.Price
	existing.Image = p.Image
	existing.Description = p.Description
	if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	// Deliberately ignores RowsAffected: deleting an absent id succeeds.
	return r.db.WithContext(ctx).Delete(&domain.Product{}, "id = ?", id).Error
}
