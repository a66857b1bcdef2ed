package models

type Reader struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"not null" json:"name"`

	// Associations
	Books []Book `gorm:"foreignKey:ReaderID" json:"books,omitempty"`
}

func (Reader) TableName() string {
	return "reader"
}
