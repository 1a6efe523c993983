package domain

import "context"

// User maps the pre-existing `users` table. This service never writes it;
// rows come from whatever provisioned the database.
type User struct {
	ID           int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name         string `gorm:"column:name;size:64" json:"name"`
	Email        string `gorm:"column:email;size:255" json:"email"`
	PasswordHash string `gorm:"column:password;size:100" json:"-"`
	ImgURL       string `gorm:"column:img_url;size:512" json:"imgURL"`
}

func (User) TableName() string { return "users" }

type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*User, error)
	FindByName(ctx context.Context, name string) (*User, error)
	List(ctx context.Context) ([]User, error)
}
