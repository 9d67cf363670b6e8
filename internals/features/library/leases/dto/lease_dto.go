// file: internals/features/library/leases/dto/lease_dto.go
package dto

import (
	"strings"
	"time"

	model "github.com/guipadovan/library-manager/internals/features/library/leases/model"
	"github.com/guipadovan/library-manager/internals/helpers/dbtime"
)

const (
	MsgUserNotFound   = "user not found"
	MsgBookNotFound   = "book not found"
	MsgBookInUse      = "book already in use"
	MsgBookNotInUse   = "book not in use"
	MsgPastOrPresent  = "must be a date in the past or in the present"
	MsgFutureRequired = "must be a date in the future"
)

/* =========================
   REQUEST
   ========================= */

type CreateLeaseRequest struct {
	UserID     int64  `json:"userId"     validate:"required,gt=0"`
	BookID     int64  `json:"bookId"     validate:"required,gt=0"`
	LeaseDate  string `json:"leaseDate"  validate:"required,ymd"`
	ReturnDate string `json:"returnDate" validate:"required,ymd"`
}

func (r *CreateLeaseRequest) Normalize() {
	r.LeaseDate = strings.TrimSpace(r.LeaseDate)
	r.ReturnDate = strings.TrimSpace(r.ReturnDate)
}

// Query for the admin listing
type LeaseListQuery struct {
	Status string `query:"status"`
}

/* =========================
   RESPONSE
   ========================= */

type LeaseResponse struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"userId"`
	BookID     int64  `json:"bookId"`
	LeaseDate  string `json:"leaseDate"`
	ReturnDate string `json:"returnDate"`
	Status     string `json:"status"`
}

func FromModel(m *model.LeaseModel) LeaseResponse {
	return LeaseResponse{
		ID:         m.LeasesID,
		UserID:     m.LeasesUserID,
		BookID:     m.LeasesBookID,
		LeaseDate:  dbtime.FormatDate(time.Time(m.LeasesLeaseDate)),
		ReturnDate: dbtime.FormatDate(time.Time(m.LeasesReturnDate)),
		Status:     string(m.LeasesStatus),
	}
}

func FromModels(list []model.LeaseModel) []LeaseResponse {
	out := make([]LeaseResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
