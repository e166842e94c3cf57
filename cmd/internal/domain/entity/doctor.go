package entity

type Doctor struct {
	ID        int    `gorm:"primaryKey"`
	FirstName string `gorm:"not null"`
	LastName  string `gorm:"not null"`
}
