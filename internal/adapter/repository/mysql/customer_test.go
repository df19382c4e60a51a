package mysql

import (
	"context"
	"errors"
	"testing"

	domain "finbook-backend/internal/domain/customer"
	"finbook-backend/pkg/id"

	"gorm.io/gorm"
)

func TestCustomerRepository_SequenceAndImage(t *testing.T) {
	db := openTestDB(t, &domain.Customer{})
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	max, err := repo.MaxCustomerID(ctx)
	if err != nil || max != 0 {
		t.Fatalf("empty max = %d err = %v", max, err)
	}

	c := &domain.Customer{ID: id.New(), CustomerID: 7, Name: "John", Address: "Village"}
	if err := repo.Save(ctx, c); err != nil {
		t.Fatalf("save: %v", err)
	}
	max, _ = repo.MaxCustomerID(ctx)
	if max != 7 {
		t.Errorf("max = %d", max)
	}

	if err := repo.SetImageURL(ctx, c.ID, "https://x/img.png"); err != nil {
		t.Fatalf("set image: %v", err)
	}
	got, _ := repo.GetByID(ctx, c.ID)
	if got.ImageURL != "https://x/img.png" {
		t.Errorf("image url = %q", got.ImageURL)
	}

	err = repo.SetImageURL(ctx, "nope", "https://x/img.png")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("missing row: err = %v", err)
	}
}

func TestGuarantorRepository_CRUD(t *testing.T) {
	db := openTestDB(t, &domain.Guarantor{})
	repo := NewGuarantorRepository(db)
	ctx := context.Background()

	g := &domain.Guarantor{ID: id.New(), GuarantorID: 3, Name: "Mary"}
	if err := repo.Save(ctx, g); err != nil {
		t.Fatalf("save: %v", err)
	}
	list, err := repo.List(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("list = %v err %v", list, err)
	}
	if err := repo.Delete(ctx, g.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, g.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("after delete: %v", err)
	}
}
