package directory

import (
	"context"
	"errors"

	directoryerrors "github.com/kidaholy/human-resource-sub000/internal/directory/errors"

	"gorm.io/gorm"
)

// Directory is the read-only view of the entity records owned by the HR
// master data system. Every lookup hits the store; nothing is cached so a
// department head reassignment is visible on the next call.
//
//go:generate mockgen -source=directory_repo.go -destination=mock/directory_repo_mock.go -package=mock
type Directory interface {
	FindEmployeeByID(ctx context.Context, employeeID string) (*Employee, error)
	FindEmployeeByUserID(ctx context.Context, userID string) (*Employee, error)
	FindDepartmentByID(ctx context.Context, departmentID string) (*Department, error)
	// FindDepartmentsByHead returns every department the employee currently
	// heads, ordered by name. An employee heading nothing gets an empty slice.
	FindDepartmentsByHead(ctx context.Context, employeeID string) ([]Department, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Directory {
	return &repository{db: db}
}

func (r *repository) FindEmployeeByID(ctx context.Context, employeeID string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).First(&e, "id = ?", employeeID).Error
	if err != nil {
		return nil, mapNotFound(err, directoryerrors.ErrEmployeeNotFound)
	}
	return &e, nil
}

func (r *repository) FindEmployeeByUserID(ctx context.Context, userID string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&e).Error
	if err != nil {
		return nil, mapNotFound(err, directoryerrors.ErrEmployeeNotLinked)
	}
	return &e, nil
}

func (r *repository) FindDepartmentByID(ctx context.Context, departmentID string) (*Department, error) {
	var d Department
	err := r.db.WithContext(ctx).First(&d, "id = ?", departmentID).Error
	if err != nil {
		return nil, mapNotFound(err, directoryerrors.ErrDepartmentNotFound)
	}
	return &d, nil
}

func (r *repository) FindDepartmentsByHead(ctx context.Context, employeeID string) ([]Department, error) {
	var depts []Department
	err := r.db.WithContext(ctx).
		Where("head_employee_id = ?", employeeID).
		Order("name ASC").
		Find(&depts).Error
	return depts, err
}

func mapNotFound(err, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}
