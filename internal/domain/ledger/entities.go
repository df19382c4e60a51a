package ledger

// Transaction is one ledger entry. AccountName is free text and doubles, via
// substring matching, as the join key back to loans. Exactly one of
// Credit/Debit is non-zero in practice; nothing enforces it.
type Transaction struct {
	ID          string  `gorm:"primaryKey;size:36" json:"id"`
	Date        string  `gorm:"size:10;index" json:"date"`
	AccountName string  `gorm:"column:account_name;size:128;index" json:"accountName"`
	Particulars string  `gorm:"size:255" json:"particulars"`
	RNo         string  `gorm:"column:rno;size:32" json:"rno,omitempty"`
	Number      string  `gorm:"size:32" json:"number,omitempty"`
	Credit      float64 `gorm:"type:decimal(18,2)" json:"credit"`
	Debit       float64 `gorm:"type:decimal(18,2)" json:"debit"`
	UserName    string  `gorm:"column:user_name;size:64" json:"userName"`
	EntryTime   string  `gorm:"column:entry_time;size:35" json:"entryTime"`
}

func (Transaction) TableName() string { return "transactions" }
