package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Email     *string `gorm:"uniqueIndex"`
	Name      *string
	Password  string
	Confirmed bool   `gorm:"default:false"`
	Role      string `gorm:"default:user"`
	GoogleID  *string
}
