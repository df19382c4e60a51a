package mysql

import (
	"context"

	customerDomain "finbook-backend/internal/domain/customer"

	"gorm.io/gorm"
)

type CustomerRepository struct{ db *gorm.DB }

func NewCustomerRepository(db *gorm.DB) *CustomerRepository { return &CustomerRepository{db: db} }

func (r *CustomerRepository) List(ctx context.Context) ([]customerDomain.Customer, error) {
	var out []customerDomain.Customer
	res := r.db.WithContext(ctx).Order("customer_id ASC").Find(&out)
	return out, res.Error
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*customerDomain.Customer, error) {
	var out customerDomain.Customer
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *CustomerRepository) Save(ctx context.Context, c *customerDomain.Customer) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&customerDomain.Customer{}).Error
}

func (r *CustomerRepository) MaxCustomerID(ctx context.Context) (int, error) {
	var max int
	res := r.db.WithContext(ctx).Model(&customerDomain.Customer{}).
		Select("COALESCE(MAX(customer_id), 0)").
		Scan(&max)
	return max, res.Error
}

func (r *CustomerRepository) SetImageURL(ctx context.Context, id, url string) error {
	res := r.db.WithContext(ctx).Model(&customerDomain.Customer{}).
		Where("id = ?", id).
		Update("image_url", url)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type GuarantorRepository struct{ db *gorm.DB }

func NewGuarantorRepository(db *gorm.DB) *GuarantorRepository {
	return &GuarantorRepository{db: db}
}

func (r *GuarantorRepository) List(ctx context.Context) ([]customerDomain.Guarantor, error) {
	var out []customerDomain.Guarantor
	res := r.db.WithContext(ctx).Order("guarantor_id ASC").Find(&out)
	return out, res.Error
}

func (r *GuarantorRepository) GetByID(ctx context.Context, id string) (*customerDomain.Guarantor, error) {
	var out customerDomain.Guarantor
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *GuarantorRepository) Save(ctx context.Context, g *customerDomain.Guarantor) error {
	return r.db.WithContext(ctx).Save(g).Error
}

func (r *GuarantorRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&customerDomain.Guarantor{}).Error
}

func (r *GuarantorRepository) MaxGuarantorID(ctx context.Context) (int, error) {
	var max int
	res := r.db.WithContext(ctx).Model(&customerDomain.Guarantor{}).
		Select("COALESCE(MAX(guarantor_id), 0)").
		Scan(&max)
	return max, res.Error
}

func (r *GuarantorRepository) SetImageURL(ctx context.Context, id, url string) error {
	res := r.db.WithContext(ctx).Model(&customerDomain.Guarantor{}).
		Where("id = ?", id).
		Update("image_url", url)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
