package loan

import "fmt"

type Type string

const (
	TypeCD   Type = "CD"
	TypeHP   Type = "HP"
	TypeSTBD Type = "STBD"
	TypeTBD  Type = "TBD"
	TypeFD   Type = "FD"
	TypeOD   Type = "OD"
	TypeRD   Type = "RD"
)

var Types = []Type{TypeCD, TypeHP, TypeSTBD, TypeTBD, TypeFD, TypeOD, TypeRD}

func (t Type) Valid() bool {
	for _, k := range Types {
		if t == k {
			return true
		}
	}
	return false
}

// Guarantor is the denormalized guarantor block embedded on a loan.
type Guarantor struct {
	Name    string `gorm:"size:128" json:"name"`
	Aadhaar string `gorm:"size:16" json:"aadhaar,omitempty"`
	Phone   string `gorm:"size:16" json:"phone,omitempty"`
}

type Loan struct {
	ID           string `gorm:"primaryKey;size:36" json:"id"`
	Number       int    `gorm:"index:idx_loans_type_number" json:"number"`
	Date         string `gorm:"size:10;index" json:"date"`
	LoanType     Type   `gorm:"column:loan_type;size:8;index:idx_loans_type_number" json:"loanType"`
	CustomerName string `gorm:"column:customer_name;size:128;index" json:"customerName"`
	FatherName   string `gorm:"column:father_name;size:128" json:"fatherName,omitempty"`
	Aadhaar      string `gorm:"size:16;index" json:"aadhaar,omitempty"`
	CNo          string `gorm:"column:c_no;size:32" json:"cNo,omitempty"`
	Address      string `gorm:"size:255" json:"address"`
	Phone1       string `gorm:"size:16" json:"phone1,omitempty"`
	Phone2       string `gorm:"size:16" json:"phone2,omitempty"`

	Guarantor1 Guarantor `gorm:"embedded;embeddedPrefix:guarantor1_" json:"guarantor1"`
	Guarantor2 Guarantor `gorm:"embedded;embeddedPrefix:guarantor2_" json:"guarantor2"`

	Particulars     string  `gorm:"size:255" json:"particulars,omitempty"`
	LoanAmount      float64 `gorm:"column:loan_amount;type:decimal(18,2)" json:"loanAmount"`
	RateOfInterest  float64 `gorm:"column:rate_of_interest;type:decimal(6,2)" json:"rateOfInterest,omitempty"`
	Period          int     `json:"period"` // days
	DocumentCharges float64 `gorm:"column:document_charges;type:decimal(18,2)" json:"documentCharges,omitempty"`

	// Both the foreign key and the display name are stored, as the ledger
	// predates referential integrity.
	PartnerID   string `gorm:"column:partner_id;size:36;index" json:"partnerId,omitempty"`
	PartnerName string `gorm:"column:partner_name;size:128" json:"partnerName,omitempty"`

	UserName  string `gorm:"column:user_name;size:64" json:"userName"`
	EntryTime string `gorm:"column:entry_time;size:35" json:"entryTime"`

	CustomerImageURL   string `gorm:"column:customer_image_url;type:text" json:"customerImageUrl,omitempty"`
	Guarantor1ImageURL string `gorm:"column:guarantor1_image_url;type:text" json:"guarantor1ImageUrl,omitempty"`
	Guarantor2ImageURL string `gorm:"column:guarantor2_image_url;type:text" json:"guarantor2ImageUrl,omitempty"`
	PartnerImageURL    string `gorm:"column:partner_image_url;type:text" json:"partnerImageUrl,omitempty"`
}

func (Loan) TableName() string { return "loans" }

// AccountNumber is the human-facing "{loanType}-{number}" identifier. It is
// derived, not enforced unique at the storage layer.
func (l *Loan) AccountNumber() string {
	return fmt.Sprintf("%s-%d", l.LoanType, l.Number)
}

// Installment is one row of a repayment schedule, unique per (loan, sn).
type Installment struct {
	ID                uint64  `gorm:"primaryKey" json:"-"`
	LoanID            string  `gorm:"column:loan_id;size:36;uniqueIndex:ux_installments_loan_sn" json:"-"`
	SN                int     `gorm:"column:sn;uniqueIndex:ux_installments_loan_sn" json:"sn"`
	DueDate           string  `gorm:"column:due_date;size:10" json:"dueDate"`
	InstallmentAmount float64 `gorm:"column:installment_amount;type:decimal(18,2)" json:"installmentAmount"`
	PaidAmount        float64 `gorm:"column:paid_amount;type:decimal(18,2)" json:"paidAmount"`
	DueAmount         float64 `gorm:"column:due_amount;type:decimal(18,2)" json:"dueAmount"`
	PaidDate          string  `gorm:"column:paid_date;size:10" json:"paidDate,omitempty"`
	DueDays           int     `gorm:"column:due_days" json:"dueDays"`
	Penalty           float64 `gorm:"type:decimal(18,2)" json:"penalty"`
}

func (Installment) TableName() string { return "installments" }
