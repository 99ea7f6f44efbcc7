package audit

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/kelolahq/anggaran/internal/audit/domain"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ActionCreate = domain.ActionCreate
	ActionUpdate = domain.ActionUpdate
	ActionDelete = domain.ActionDelete
)

// Entry describes one mutation to record.
type Entry struct {
	Entity   string
	EntityID string
	Action   string
	ActorID  string
	Payload  map[string]any
}

// Recorder writes audit rows inside the caller's transaction.
type Recorder struct {
	node *snowflake.Node
}

func NewRecorder(node *snowflake.Node) *Recorder {
	return &Recorder{node: node}
}

func (r *Recorder) Record(ctx context.Context, tx *gorm.DB, entry Entry) error {
	row := domain.AuditLog{
		ID:          r.node.Generate(),
		Entity:      entry.Entity,
		EntityID:    entry.EntityID,
		Action:      entry.Action,
		ActorID:     entry.ActorID,
		Payload:     datatypes.JSONMap(entry.Payload),
		CreatedDate: time.Now().UTC(),
	}
	return tx.WithContext(ctx).Create(&row).Error
}

// Prune removes audit rows older than the cutoff and returns how many went.
func Prune(ctx context.Context, db *gorm.DB, cutoff time.Time) (int64, error) {
	res := db.WithContext(ctx).
		Where("created_date < ?", cutoff).
		Delete(&domain.AuditLog{})
	return res.RowsAffected, res.Error
}
