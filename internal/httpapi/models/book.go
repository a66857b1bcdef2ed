package models

type Book struct {
	ID     int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name   string `gorm:"not null" json:"name"`
	Author string `gorm:"not null" json:"author"`
	// ReaderID is nil while the book sits in the library.
	ReaderID *int64 `gorm:"index" json:"reader_id,omitempty"`

	// Associations
	Reader *Reader `gorm:"foreignKey:ReaderID" json:"reader,omitempty"`
}

func (Book) TableName() string {
	return "book"
}

// Borrowed reports whether the book is currently linked to a reader.
func (b *Book) Borrowed() bool {
	return b.ReaderID != nil
}
