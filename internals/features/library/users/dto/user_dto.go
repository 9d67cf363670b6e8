// file: internals/features/library/users/dto/user_dto.go
package dto

import (
	"strings"
	"time"

	model "github.com/guipadovan/library-manager/internals/features/library/users/model"
	helper "github.com/guipadovan/library-manager/internals/helpers"
	"github.com/guipadovan/library-manager/internals/helpers/apperror"
	"github.com/guipadovan/library-manager/internals/helpers/dbtime"

	"gorm.io/datatypes"
)

/* =========================
   REQUEST
   ========================= */

// UserRequest is used for create and for update (full replace).
type UserRequest struct {
	Name             string `json:"name"             validate:"required,max=255"`
	Email            string `json:"email"            validate:"required,email,max=255"`
	RegistrationDate string `json:"registrationDate" validate:"required,ymd"`
	Phone            string `json:"phone"            validate:"required,phone_br"`
}

func (r *UserRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.RegistrationDate = strings.TrimSpace(r.RegistrationDate)
	r.Phone = strings.TrimSpace(r.Phone)
}

func (r *UserRequest) Validate() error {
	extra := apperror.FieldErrors{}
	if d, err := dbtime.ParseDate(r.RegistrationDate); err == nil && d.After(dbtime.Today()) {
		extra.Add("registrationDate", "must be a date in the past or in the present")
	}
	return helper.ValidateStruct(r, extra)
}

func (r *UserRequest) ToModel() *model.UserModel {
	m := &model.UserModel{}
	r.ApplyToModel(m)
	return m
}

func (r *UserRequest) ApplyToModel(m *model.UserModel) {
	reg, _ := dbtime.ParseDate(r.RegistrationDate)
	m.UsersName = r.Name
	m.UsersEmail = r.Email
	m.UsersRegistrationDate = datatypes.Date(reg)
	m.UsersPhone = r.Phone
}

/* =========================
   RESPONSE
   ========================= */

type UserResponse struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	RegistrationDate string `json:"registrationDate"`
	Phone            string `json:"phone"`
}

func FromModel(m *model.UserModel) UserResponse {
	return UserResponse{
		ID:               m.UsersID,
		Name:             m.UsersName,
		Email:            m.UsersEmail,
		RegistrationDate: dbtime.FormatDate(time.Time(m.UsersRegistrationDate)),
		Phone:            m.UsersPhone,
	}
}

func FromModels(list []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
