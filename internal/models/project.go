package models

import (
	"time"

	"gorm.io/datatypes"
)

// Feature is an embedded reference from a project to a chat; ID matches the
// chat's primary key. Order in the list is display order.
type Feature struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// Branch is one version-control branch tracked on a project. The list is
// replaced wholesale on every update.
type Branch struct {
	Name           string    `json:"name"`
	LastCommitDate time.Time `json:"lastCommitDate"`
}

// Project groups chats as features and tracks branch metadata for one
// repository/workspace. GitURL is unique when present.
type Project struct {
	ID        string                       `gorm:"primaryKey;size:64" json:"id"`
	GitURL    *string                      `gorm:"column:git_url;uniqueIndex;size:512" json:"gitUrl,omitempty"`
	Features  datatypes.JSONSlice[Feature] `json:"features"`
	Branches  datatypes.JSONSlice[Branch]  `json:"branches"`
	Timestamp time.Time                    `json:"timestamp"`
}

func (Project) TableName() string { return "projects" }
