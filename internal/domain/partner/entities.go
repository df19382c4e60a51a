package partner

type Partner struct {
	ID      string `gorm:"primaryKey;size:36" json:"id"`
	Name    string `gorm:"size:128;index" json:"name"`
	Phone   string `gorm:"size:16" json:"phone,omitempty"`
	Address string `gorm:"size:255" json:"address,omitempty"`
}

func (Partner) TableName() string { return "partners" }
