package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	bookModel "github.com/guipadovan/library-manager/internals/features/library/books/model"
	dto "github.com/guipadovan/library-manager/internals/features/library/leases/dto"
	model "github.com/guipadovan/library-manager/internals/features/library/leases/model"
	repository "github.com/guipadovan/library-manager/internals/features/library/leases/repository"
	service "github.com/guipadovan/library-manager/internals/features/library/leases/service"
	"github.com/guipadovan/library-manager/internals/helpers/apperror"
	"github.com/guipadovan/library-manager/internals/helpers/dbtime"
)

// fakeStore keeps leases in memory; WithinTx runs fn against itself.
type fakeStore struct {
	users     map[int64]bool
	books     map[int64]bool
	leases    []*model.LeaseModel
	nextID    int64
	createErr error
	txCalls   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{users: map[int64]bool{}, books: map[int64]bool{}}
}

func (f *fakeStore) WithinTx(ctx context.Context, fn func(tx repository.Store) error) error {
	f.txCalls++
	return fn(f)
}

func (f *fakeStore) UserExists(ctx context.Context, id int64) (bool, error) { return f.users[id], nil }
func (f *fakeStore) BookExists(ctx context.Context, id int64) (bool, error) { return f.books[id], nil }

func (f *fakeStore) HasActiveLease(ctx context.Context, bookID int64) (bool, error) {
	l, _ := f.FindActiveByBook(ctx, bookID)
	return l != nil, nil
}

func (f *fakeStore) FindActiveByBook(ctx context.Context, bookID int64) (*model.LeaseModel, error) {
	for _, l := range f.leases {
		if l.LeasesBookID == bookID && l.IsActive() {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) Create(ctx context.Context, m *model.LeaseModel) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	m.LeasesID = f.nextID
	cp := *m
	f.leases = append(f.leases, &cp)
	return nil
}

func (f *fakeStore) MarkReturned(ctx context.Context, leaseID int64, returnDate time.Time) (int64, error) {
	for _, l := range f.leases {
		if l.LeasesID == leaseID && l.IsActive() {
			l.LeasesStatus = model.LeaseStatusReturned
			l.LeasesReturnDate = datatypes.Date(returnDate)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeStore) FindByID(ctx context.Context, id int64) (*model.LeaseModel, error) {
	for _, l := range f.leases {
		if l.LeasesID == id {
			return l, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) DeleteByID(ctx context.Context, id int64) (int64, error) {
	for i, l := range f.leases {
		if l.LeasesID == id {
			f.leases = append(f.leases[:i], f.leases[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeStore) List(ctx context.Context, status model.LeaseStatus, offset, limit int) ([]model.LeaseModel, int64, error) {
	var out []model.LeaseModel
	for _, l := range f.leases {
		if status == "" || l.LeasesStatus == status {
			out = append(out, *l)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeStore) LeasedBooksByUser(ctx context.Context, userID int64) ([]bookModel.BookModel, error) {
	return []bookModel.BookModel{}, nil
}

var _ repository.Store = (*fakeStore)(nil)

func fixClock(t *testing.T) {
	t.Helper()
	orig := dbtime.Now
	dbtime.Now = func() time.Time { return time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { dbtime.Now = orig })
}

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var ve *apperror.ValidationError
	require.True(t, errors.As(err, &ve), "expected validation error, got %v", err)
	return ve.Fields
}

func validLease() dto.CreateLeaseRequest {
	return dto.CreateLeaseRequest{UserID: 1, BookID: 10, LeaseDate: "2024-05-10", ReturnDate: "2024-05-20"}
}

func Test_CreateLease_Success(t *testing.T) {
	// setup
	fixClock(t)
	store := newFakeStore()
	store.users[1] = true
	store.books[10] = true
	s := service.NewLeaseService(store)

	// act
	got, err := s.CreateLease(context.Background(), validLease())

	// assert
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.LeasesID)
	assert.Equal(t, model.LeaseStatusActive, got.LeasesStatus)
	assert.Equal(t, "2024-05-20", dbtime.FormatDate(time.Time(got.LeasesReturnDate)))
	assert.Equal(t, 1, store.txCalls)
}

func Test_CreateLease_UnknownUserAndBook(t *testing.T) {
	fixClock(t)
	s := service.NewLeaseService(newFakeStore())

	_, err := s.CreateLease(context.Background(), validLease())

	assert.Equal(t, map[string]string{
		"userId": dto.MsgUserNotFound,
		"bookId": dto.MsgBookNotFound,
	}, fieldsOf(t, err))
}

func Test_CreateLease_DateRules(t *testing.T) {
	// setup
	fixClock(t)
	store := newFakeStore()
	store.users[1] = true
	store.books[10] = true
	s := service.NewLeaseService(store)

	req := validLease()
	req.LeaseDate = "2024-05-11"
	req.ReturnDate = "2024-05-10"

	// act
	_, err := s.CreateLease(context.Background(), req)

	// assert
	assert.Equal(t, map[string]string{
		"leaseDate":  dto.MsgPastOrPresent,
		"returnDate": dto.MsgFutureRequired,
	}, fieldsOf(t, err))
	assert.Empty(t, store.leases)
}

func Test_CreateLease_MissingFields(t *testing.T) {
	fixClock(t)
	store := newFakeStore()
	s := service.NewLeaseService(store)

	_, err := s.CreateLease(context.Background(), dto.CreateLeaseRequest{LeaseDate: "10/05/2024"})

	assert.Equal(t, map[string]string{
		"userId":     "must not be null",
		"bookId":     "must not be null",
		"leaseDate":  "must be a date in YYYY-MM-DD format",
		"returnDate": "must not be blank",
	}, fieldsOf(t, err))
}

func Test_CreateLease_BookAlreadyInUse(t *testing.T) {
	// setup
	fixClock(t)
	store := newFakeStore()
	store.users[1] = true
	store.users[2] = true
	store.books[10] = true
	s := service.NewLeaseService(store)
	first, err := s.CreateLease(context.Background(), validLease())
	require.NoError(t, err)

	req := validLease()
	req.UserID = 2

	// act
	_, err = s.CreateLease(context.Background(), req)

	// assert
	assert.Equal(t, map[string]string{"bookId": dto.MsgBookInUse}, fieldsOf(t, err))
	require.Len(t, store.leases, 1)
	assert.Equal(t, first.LeasesID, store.leases[0].LeasesID)
	assert.Equal(t, int64(1), store.leases[0].LeasesUserID)
	assert.True(t, store.leases[0].IsActive())
}

func Test_CreateLease_UniqueViolationBecomesInUse(t *testing.T) {
	fixClock(t)
	store := newFakeStore()
	store.users[1] = true
	store.books[10] = true
	store.createErr = gorm.ErrDuplicatedKey
	s := service.NewLeaseService(store)

	_, err := s.CreateLease(context.Background(), validLease())

	assert.Equal(t, map[string]string{"bookId": dto.MsgBookInUse}, fieldsOf(t, err))
}

func Test_CreateLease_StoreErrorPropagates(t *testing.T) {
	fixClock(t)
	boom := errors.New("disk full")
	store := newFakeStore()
	store.users[1] = true
	store.books[10] = true
	store.createErr = boom
	s := service.NewLeaseService(store)

	_, err := s.CreateLease(context.Background(), validLease())

	assert.ErrorIs(t, err, boom)
	assert.False(t, apperror.IsValidation(err))
}

func Test_ReturnBook_Success(t *testing.T) {
	// setup
	fixClock(t)
	store := newFakeStore()
	store.users[1] = true
	store.books[10] = true
	s := service.NewLeaseService(store)
	_, err := s.CreateLease(context.Background(), validLease())
	require.NoError(t, err)

	// act
	got, err := s.ReturnBook(context.Background(), 10)

	// assert
	require.NoError(t, err)
	assert.Equal(t, model.LeaseStatusReturned, got.LeasesStatus)
	assert.Equal(t, "2024-05-10", dbtime.FormatDate(time.Time(got.LeasesReturnDate)))
	assert.Equal(t, model.LeaseStatusReturned, store.leases[0].LeasesStatus)

	// a second return has nothing to close
	_, err = s.ReturnBook(context.Background(), 10)
	assert.Equal(t, map[string]string{"bookId": dto.MsgBookNotInUse}, fieldsOf(t, err))
}

func Test_ReturnBook_Errors(t *testing.T) {
	fixClock(t)
	store := newFakeStore()
	store.books[10] = true
	s := service.NewLeaseService(store)

	_, err := s.ReturnBook(context.Background(), 99)
	assert.Equal(t, map[string]string{"bookId": dto.MsgBookNotFound}, fieldsOf(t, err))

	_, err = s.ReturnBook(context.Background(), 10)
	assert.Equal(t, map[string]string{"bookId": dto.MsgBookNotInUse}, fieldsOf(t, err))
}

func Test_DeleteLease(t *testing.T) {
	fixClock(t)
	store := newFakeStore()
	store.users[1] = true
	store.books[10] = true
	s := service.NewLeaseService(store)
	l, err := s.CreateLease(context.Background(), validLease())
	require.NoError(t, err)

	ok, err := s.DeleteLease(context.Background(), l.LeasesID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.DeleteLease(context.Background(), l.LeasesID)
	require.NoError(t, err)
	assert.False(t, ok)
}
