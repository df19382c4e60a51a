package audit

import "time"

// LoanEdit is an append-only snapshot of a loan's identity fields before and
// after an edit. Written in the same transaction as the edit itself.
type LoanEdit struct {
	ID         uint64    `gorm:"primaryKey" json:"-"`
	LoanID     string    `gorm:"column:loan_id;size:36;index" json:"loanId"`
	OldDate    string    `gorm:"column:o_date;size:10" json:"oDate"`
	NewDate    string    `gorm:"column:n_date;size:10" json:"nDate"`
	OldType    string    `gorm:"column:o_loan_type;size:8" json:"oLoanType"`
	NewType    string    `gorm:"column:n_loan_type;size:8" json:"nLoanType"`
	OldNumber  int       `gorm:"column:o_number" json:"oNumber"`
	NewNumber  int       `gorm:"column:n_number" json:"nNumber"`
	OldName    string    `gorm:"column:o_customer_name;size:128" json:"oName"`
	NewName    string    `gorm:"column:n_customer_name;size:128" json:"nName"`
	OldAadhaar string    `gorm:"column:o_aadhaar;size:16" json:"oAadhaar"`
	NewAadhaar string    `gorm:"column:n_aadhaar;size:16" json:"nAadhaar"`
	OldAmount  float64   `gorm:"column:o_loan_amount;type:decimal(18,2)" json:"oAmount"`
	NewAmount  float64   `gorm:"column:n_loan_amount;type:decimal(18,2)" json:"nAmount"`
	UserName   string    `gorm:"column:user_name;size:64" json:"user"`
	EditedAt   time.Time `gorm:"column:edited_at;autoCreateTime;index" json:"editedAt"`
}

func (LoanEdit) TableName() string { return "loan_edits" }

// LoanDeletion snapshots a loan at the moment it was hard-deleted.
type LoanDeletion struct {
	ID        uint64    `gorm:"primaryKey" json:"-"`
	LoanID    string    `gorm:"column:loan_id;size:36;index" json:"loanId"`
	Date      string    `gorm:"size:10" json:"date"`
	LoanType  string    `gorm:"column:loan_type;size:8" json:"loanType"`
	Number    int       `json:"number"`
	Name      string    `gorm:"column:customer_name;size:128" json:"name"`
	Aadhaar   string    `gorm:"size:16" json:"aadhaar"`
	Amount    float64   `gorm:"column:loan_amount;type:decimal(18,2)" json:"amount"`
	UserName  string    `gorm:"column:user_name;size:64" json:"user"`
	DeletedAt time.Time `gorm:"column:deleted_at;autoCreateTime;index" json:"deletedAt"`
}

func (LoanDeletion) TableName() string { return "loan_deletions" }
