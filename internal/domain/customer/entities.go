package customer

// Customer is the persisted person record, distinct from the denormalized
// names embedded on loans.
type Customer struct {
	ID         string `gorm:"primaryKey;size:36" json:"id"`
	CustomerID int    `gorm:"column:customer_id;index" json:"customerId"`
	Aadhaar    string `gorm:"size:16;index" json:"aadhaar,omitempty"`
	Name       string `gorm:"size:128;index" json:"name"`
	Father     string `gorm:"size:128" json:"father,omitempty"`
	Address    string `gorm:"size:255" json:"address"`
	Village    string `gorm:"size:64" json:"village,omitempty"`
	Mandal     string `gorm:"size:64" json:"mandal,omitempty"`
	District   string `gorm:"size:64" json:"district,omitempty"`
	Phone1     string `gorm:"size:16" json:"phone1,omitempty"`
	Phone2     string `gorm:"size:16" json:"phone2,omitempty"`
	ImageURL   string `gorm:"column:image_url;type:text" json:"imageUrl,omitempty"`
}

func (Customer) TableName() string { return "customers" }

type Guarantor struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	GuarantorID int    `gorm:"column:guarantor_id;index" json:"guarantorId"`
	Aadhaar     string `gorm:"size:16;index" json:"aadhaar,omitempty"`
	Name        string `gorm:"size:128;index" json:"name"`
	Father      string `gorm:"size:128" json:"father,omitempty"`
	Address     string `gorm:"size:255" json:"address"`
	Phone       string `gorm:"size:16" json:"phone,omitempty"`
	ImageURL    string `gorm:"column:image_url;type:text" json:"imageUrl,omitempty"`
}

func (Guarantor) TableName() string { return "guarantors" }
