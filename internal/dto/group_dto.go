package dto

type CreateGroupRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Description string `json:"description" binding:"required"`
}

type UpdateGroupRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=100"`
	Description *string `json:"description"`
}

type CreatePeopleRoleRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Description string `json:"description"`
}

type UpdatePeopleRoleRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=100"`
	Description *string `json:"description"`
}

// AssignGroupRoleRequest declares a PeopleRole as applicable to a group.
type AssignGroupRoleRequest struct {
	RoleID uint `json:"roleId" binding:"required"`
}

// AddGroupMemberRequest adds (or reactivates) a person's membership in a group.
type AddGroupMemberRequest struct {
	PersonID     uint  `json:"personId" binding:"required"`
	PersonRoleID *uint `json:"personRoleId"`
}

type UpdateGroupMemberRequest struct {
	Status       *string `json:"status" binding:"omitempty,min=1,max=50"`
	PersonRoleID *uint   `json:"personRoleId"`
}

type GroupURI struct {
	GroupID uint `uri:"groupId" binding:"required"`
}

type GroupRoleURI struct {
	GroupID uint `uri:"groupId" binding:"required"`
	RoleID  uint `uri:"roleId" binding:"required"`
}

type GroupMemberURI struct {
	GroupID  uint `uri:"groupId" binding:"required"`
	PersonID uint `uri:"personId" binding:"required"`
}
