// Package domain contains the audit trail persisted for every mutation.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

const (
	ActionCreate = "CREATE"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
)

// AuditLog records one successful mutation, written in the same transaction
// as the change itself.
type AuditLog struct {
	ID          snowflake.ID      `gorm:"primaryKey" json:"id"`
	Entity      string            `gorm:"column:entity;type:varchar(50);not null;index" json:"entity"`
	EntityID    string            `gorm:"column:entity_id;type:varchar(30);not null;index" json:"entity_id"`
	Action      string            `gorm:"column:action;type:varchar(10);not null" json:"action"`
	ActorID     string            `gorm:"column:actor_id;type:varchar(20)" json:"actor_id"`
	Payload     datatypes.JSONMap `gorm:"column:payload" json:"payload"`
	CreatedDate time.Time         `gorm:"column:created_date;not null;index" json:"created_date"`
}

// TableName sets the database table name.
func (AuditLog) TableName() string { return "audit_logs" }
