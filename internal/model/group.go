package model

import "time"

// Membership status values. The column stays free text; these are the values
// the services write.
const (
	MemberStatusActive   = "ACTIVE"
	MemberStatusInactive = "INACTIVE"
)

type Group struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Members         []GroupMember         `gorm:"foreignKey:GroupID" json:"members,omitempty"`
	RoleAssignments []GroupRoleAssignment `gorm:"foreignKey:GroupID" json:"role_assignments,omitempty"`
}

type PeopleRole struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// GroupMember is the membership join between Person and Group, carrying the
// member's status and in-group role. (person, group) is unique: re-adding an
// existing member reactivates the row instead of duplicating it.
type GroupMember struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	PersonID     uint        `gorm:"not null;uniqueIndex:idx_person_group" json:"personId"`
	Person       Person      `gorm:"constraint:OnDelete:CASCADE" json:"person,omitempty"`
	GroupID      uint        `gorm:"not null;uniqueIndex:idx_person_group" json:"groupId"`
	Group        Group       `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Status       string      `gorm:"size:50;not null;default:ACTIVE" json:"status"`
	PersonRoleID *uint       `json:"personRoleId,omitempty"`
	PersonRole   *PeopleRole `gorm:"foreignKey:PersonRoleID;constraint:OnDelete:SET NULL" json:"personRole,omitempty"`
	CreatedAt    time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

// GroupRoleAssignment declares which PeopleRole values are applicable to a
// group, independent of individual membership records.
type GroupRoleAssignment struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	GroupID   uint       `gorm:"not null;uniqueIndex:idx_group_role" json:"groupId"`
	Group     Group      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	RoleID    uint       `gorm:"not null;uniqueIndex:idx_group_role" json:"roleId"`
	Role      PeopleRole `gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE" json:"role,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
}
