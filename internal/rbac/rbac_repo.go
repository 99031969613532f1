package rbac

import "gorm.io/gorm"

type Repository interface {
	GetRolePermissions() ([]RolePermissionRow, error)
	GetRoleInheritance() ([]RoleInheritanceRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

type RolePermissionRow struct {
	Role     string `gorm:"primaryKey;size:32"`
	Resource string `gorm:"primaryKey;size:64"`
	Action   string `gorm:"primaryKey;size:32"`
}

func (RolePermissionRow) TableName() string {
	return "role_permissions"
}

type RoleInheritanceRow struct {
	Role   string `gorm:"primaryKey;size:32"`
	Parent string `gorm:"primaryKey;size:32"`
}

func (RoleInheritanceRow) TableName() string {
	return "role_inheritance"
}

func (r *repository) GetRolePermissions() ([]RolePermissionRow, error) {
	var result []RolePermissionRow
	err := r.db.Order("role, resource, action").Find(&result).Error
	return result, err
}

func (r *repository) GetRoleInheritance() ([]RoleInheritanceRow, error) {
	var result []RoleInheritanceRow
	err := r.db.Order("role, parent").Find(&result).Error
	return result, err
}
