package models

// Setting is a small persisted key-value configuration entry
// (logo URL, QR code URL, daily accent color). Writes are upserts;
// no history is retained.
type Setting struct {
	Key   string `gorm:"primaryKey" json:"key"`
	Value string `json:"value"`
}

func (Setting) TableName() string {
	return "settings"
}
