package entity

import "time"

type Todo struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Text      string    `json:"text" gorm:"type:varchar(255);not null"`
	Completed bool      `json:"completed" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName binds the entity to the todos table for gorm
func (Todo) TableName() string {
	return "todos"
}
