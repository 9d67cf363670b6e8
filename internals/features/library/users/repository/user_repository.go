// file: internals/features/library/users/repository/user_repository.go
package repository

import (
	"context"
	"errors"

	model "github.com/guipadovan/library-manager/internals/features/library/users/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// FindByID returns (nil, nil) when the user does not exist.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*model.UserModel, error) {
	var m model.UserModel
	err := r.DB.WithContext(ctx).First(&m, "users_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *UserRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.UserModel{}).Where("users_id = ?", id).Count(&n).Error
	return n > 0, err
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.UserModel{}).Where("users_email = ?", email).Count(&n).Error
	return n > 0, err
}

func (r *UserRepository) Save(ctx context.Context, m *model.UserModel) error {
	return r.DB.WithContext(ctx).Save(m).Error
}

// DeleteByID removes the user and every lease of the user in one transaction.
func (r *UserRepository) DeleteByID(ctx context.Context, id int64) (int64, error) {
	var affected int64
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM leases WHERE leases_user_id = ?`, id).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.UserModel{}, "users_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return nil
	})
	return affected, err
}

func (r *UserRepository) List(ctx context.Context, offset, limit int) ([]model.UserModel, int64, error) {
	var (
		rows  []model.UserModel
		total int64
	)
	q := r.DB.WithContext(ctx).Model(&model.UserModel{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := q.Order("users_id ASC").Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
