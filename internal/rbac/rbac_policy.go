package rbac

import "github.com/kidaholy/human-resource-sub000/internal/directory"

const (
	ResourceLeave           = "leave"
	ResourceLeaveDepartment = "leave_department"
	ResourceLeaveAdmin      = "leave_admin"
	ResourceLeaveAudit      = "leave_audit"
	ResourceRBAC            = "rbac"

	ActionCreate = "create"
	ActionRead   = "read"
	ActionDecide = "decide"
	ActionManage = "manage"
)

// DefaultPermissions is used when the role_permissions table is empty.
func DefaultPermissions() []RolePermissionRow {
	return []RolePermissionRow{
		{Role: directory.RoleEmployee, Resource: ResourceLeave, Action: ActionCreate},
		{Role: directory.RoleEmployee, Resource: ResourceLeave, Action: ActionRead},

		// Headship is resolved per request from the directory, not from the
		// token role, so a newly assigned head can act before re-login.
		{Role: directory.RoleEmployee, Resource: ResourceLeaveDepartment, Action: ActionRead},
		{Role: directory.RoleEmployee, Resource: ResourceLeaveDepartment, Action: ActionDecide},

		{Role: directory.RoleAdmin, Resource: ResourceLeaveAdmin, Action: ActionRead},
		{Role: directory.RoleAdmin, Resource: ResourceLeaveAdmin, Action: ActionDecide},
		{Role: directory.RoleAdmin, Resource: ResourceLeaveAudit, Action: ActionRead},
		{Role: directory.RoleAdmin, Resource: ResourceRBAC, Action: ActionRead},
		{Role: directory.RoleAdmin, Resource: ResourceRBAC, Action: ActionManage},
	}
}

// DefaultInheritance lets heads and admins use the employee self-service
// routes.
func DefaultInheritance() []RoleInheritanceRow {
	return []RoleInheritanceRow{
		{Role: directory.RoleDepartmentHead, Parent: directory.RoleEmployee},
		{Role: directory.RoleAdmin, Parent: directory.RoleEmployee},
	}
}
