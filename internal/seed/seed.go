// Package seed provisions the rows a fresh installation needs before the
// first request: counter definitions and a bootstrap admin user.
package seed

import (
	"time"

	"github.com/bwmarrin/snowflake"
	counterdomain "github.com/kelolahq/anggaran/internal/counter/domain"
	masterdomain "github.com/kelolahq/anggaran/internal/masterdata/domain"
	"gorm.io/gorm"
)

const adminUserID = "USR0001"

func defaultCounters() []counterdomain.CounterNumber {
	return []counterdomain.CounterNumber{
		{ScreenID: "MCO01", Description: "Company master", Prefix: "MS", Digit: 5, MaxValue: 99999},
		{ScreenID: "MDP01", Description: "Department master", Prefix: "MDP", Digit: 4, MaxValue: 9999},
		{ScreenID: "MBG01", Description: "Budget", Prefix: "BDG", Digit: 5, MaxValue: 99999},
		{ScreenID: "MCB01", Description: "Category budget", Prefix: "CBG", Digit: 5, MaxValue: 99999},
	}
}

// EnsureDefaults inserts the counter definitions and the bootstrap admin
// user when they are missing. Safe to run on every startup.
func EnsureDefaults(db *gorm.DB) error {
	for _, counter := range defaultCounters() {
		row := counter
		if err := db.Where("screen_id = ?", counter.ScreenID).
			FirstOrCreate(&row).Error; err != nil {
			return err
		}
	}
	return ensureAdmin(db)
}

func ensureAdmin(db *gorm.DB) error {
	var n int64
	if err := db.Model(&masterdomain.User{}).
		Where("user_id = ?", adminUserID).
		Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}
	return db.Create(&masterdomain.User{
		UserID:      adminUserID,
		Username:    "admin",
		FullName:    "Administrator",
		UniqueID:    node.Generate(),
		Active:      true,
		CreatedBy:   adminUserID,
		CreatedDate: time.Now().UTC(),
	}).Error
}
