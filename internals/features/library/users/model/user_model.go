// file: internals/features/library/users/model/user_model.go
package model

import (
	"time"

	"gorm.io/datatypes"
)

type UserModel struct {
	UsersID int64 `json:"users_id" gorm:"column:users_id;primaryKey;autoIncrement"`

	UsersName             string         `json:"users_name"              gorm:"column:users_name;type:varchar(255);not null"`
	UsersEmail            string         `json:"users_email"             gorm:"column:users_email;type:varchar(255);not null;index:idx_users_email"`
	UsersRegistrationDate datatypes.Date `json:"users_registration_date" gorm:"column:users_registration_date;not null"`
	UsersPhone            string         `json:"users_phone"             gorm:"column:users_phone;type:varchar(20);not null"`

	UsersCreatedAt time.Time `json:"users_created_at" gorm:"column:users_created_at;not null;autoCreateTime"`
	UsersUpdatedAt time.Time `json:"users_updated_at" gorm:"column:users_updated_at;not null;autoUpdateTime"`
}

func (UserModel) TableName() string { return "users" }
