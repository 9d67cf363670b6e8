// file: internals/features/library/leases/service/lease_service.go
package service

import (
	"context"
	"log"

	database "github.com/guipadovan/library-manager/internals/databases"
	bookModel "github.com/guipadovan/library-manager/internals/features/library/books/model"
	dto "github.com/guipadovan/library-manager/internals/features/library/leases/dto"
	model "github.com/guipadovan/library-manager/internals/features/library/leases/model"
	repository "github.com/guipadovan/library-manager/internals/features/library/leases/repository"
	helper "github.com/guipadovan/library-manager/internals/helpers"
	"github.com/guipadovan/library-manager/internals/helpers/apperror"
	"github.com/guipadovan/library-manager/internals/helpers/dbtime"

	"gorm.io/datatypes"
)

type LeaseService struct {
	store repository.Store
}

func NewLeaseService(store repository.Store) *LeaseService {
	return &LeaseService{store: store}
}

/* ===============================
   Create
=================================*/

// CreateLease checks every rule, reports all violations together and,
// when there are none, persists an ACTIVE lease.
func (s *LeaseService) CreateLease(ctx context.Context, req dto.CreateLeaseRequest) (*model.LeaseModel, error) {
	req.Normalize()

	fe := apperror.FieldErrors{}
	if err := helper.ValidateStruct(&req, nil); err != nil {
		ve, ok := err.(*apperror.ValidationError)
		if !ok {
			return nil, err
		}
		fe.Merge(ve.Fields)
	}

	today := dbtime.Today()
	leaseDate, leaseErr := dbtime.ParseDate(req.LeaseDate)
	returnDate, returnErr := dbtime.ParseDate(req.ReturnDate)
	if leaseErr == nil && leaseDate.After(today) {
		fe.Add("leaseDate", dto.MsgPastOrPresent)
	}
	if returnErr == nil && !returnDate.After(today) {
		fe.Add("returnDate", dto.MsgFutureRequired)
	}

	var created *model.LeaseModel
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		if !fe.Has("userId") {
			ok, err := tx.UserExists(ctx, req.UserID)
			if err != nil {
				return err
			}
			if !ok {
				fe.Add("userId", dto.MsgUserNotFound)
			}
		}

		if !fe.Has("bookId") {
			ok, err := tx.BookExists(ctx, req.BookID)
			if err != nil {
				return err
			}
			if !ok {
				fe.Add("bookId", dto.MsgBookNotFound)
			} else {
				inUse, err := tx.HasActiveLease(ctx, req.BookID)
				if err != nil {
					return err
				}
				if inUse {
					fe.Add("bookId", dto.MsgBookInUse)
				}
			}
		}

		if err := fe.Err(); err != nil {
			return err
		}

		m := &model.LeaseModel{
			LeasesUserID:     req.UserID,
			LeasesBookID:     req.BookID,
			LeasesLeaseDate:  datatypes.Date(leaseDate),
			LeasesReturnDate: datatypes.Date(returnDate),
			LeasesStatus:     model.LeaseStatusActive,
		}
		if err := tx.Create(ctx, m); err != nil {
			// a concurrent lease won the race on uq_leases_active_book
			if database.IsUniqueViolation(err) {
				return apperror.FieldErrors{"bookId": dto.MsgBookInUse}.Err()
			}
			return err
		}
		created = m
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[INFO] lease created id=%d user=%d book=%d", created.LeasesID, created.LeasesUserID, created.LeasesBookID)
	return created, nil
}

/* ===============================
   Return
=================================*/

// ReturnBook closes the ACTIVE lease of the book with today as return date.
func (s *LeaseService) ReturnBook(ctx context.Context, bookID int64) (*model.LeaseModel, error) {
	var lease *model.LeaseModel
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		ok, err := tx.BookExists(ctx, bookID)
		if err != nil {
			return err
		}
		if !ok {
			return apperror.FieldErrors{"bookId": dto.MsgBookNotFound}.Err()
		}

		active, err := tx.FindActiveByBook(ctx, bookID)
		if err != nil {
			return err
		}
		if active == nil {
			return apperror.FieldErrors{"bookId": dto.MsgBookNotInUse}.Err()
		}

		today := dbtime.Today()
		n, err := tx.MarkReturned(ctx, active.LeasesID, today)
		if err != nil {
			return err
		}
		if n == 0 {
			return apperror.FieldErrors{"bookId": dto.MsgBookNotInUse}.Err()
		}

		active.LeasesStatus = model.LeaseStatusReturned
		active.LeasesReturnDate = datatypes.Date(today)
		lease = active
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[INFO] lease returned id=%d book=%d", lease.LeasesID, bookID)
	return lease, nil
}

/* ===============================
   Queries
=================================*/

// GetLeasedBooksByUser does not check that the user exists; an unknown user has no history.
func (s *LeaseService) GetLeasedBooksByUser(ctx context.Context, userID int64) ([]bookModel.BookModel, error) {
	return s.store.LeasedBooksByUser(ctx, userID)
}

// GetLease returns (nil, nil) when absent.
func (s *LeaseService) GetLease(ctx context.Context, id int64) (*model.LeaseModel, error) {
	return s.store.FindByID(ctx, id)
}

func (s *LeaseService) ListLeases(ctx context.Context, status model.LeaseStatus, offset, limit int) ([]model.LeaseModel, int64, error) {
	return s.store.List(ctx, status, offset, limit)
}

func (s *LeaseService) DeleteLease(ctx context.Context, id int64) (bool, error) {
	n, err := s.store.DeleteByID(ctx, id)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
