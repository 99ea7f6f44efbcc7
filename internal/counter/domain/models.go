// Package domain contains the counter rows backing sequence allocation.
package domain

import "time"

// CounterNumber is one allocatable sequence, keyed by the screen that owns
// it. current_value only ever moves forward within a period; when
// reset_per_period is set and the formatted allocation date rolls over, the
// counter restarts from min_value.
type CounterNumber struct {
	ScreenID       string    `gorm:"primaryKey;column:screen_id;type:varchar(10)" json:"screen_id"`
	Description    string    `gorm:"column:description;type:varchar(100)" json:"description"`
	Prefix         string    `gorm:"column:ptn_prefix;type:varchar(10)" json:"prefix"`
	Suffix         string    `gorm:"column:ptn_suffix;type:varchar(10)" json:"suffix"`
	Separator      string    `gorm:"column:c_cnt_ptn;type:varchar(5)" json:"separator"`
	Digit          int       `gorm:"column:digit;not null" json:"digit"`
	MinValue       int64     `gorm:"column:min_value;not null" json:"min_value"`
	MaxValue       int64     `gorm:"column:max_value;not null" json:"max_value"`
	CurrentValue   int64     `gorm:"column:curr_value;not null" json:"current_value"`
	PeriodFormat   string    `gorm:"column:cnt_date_fmt;type:varchar(20)" json:"period_format"`
	ResetPerPeriod bool      `gorm:"column:seq_flg;not null" json:"reset_per_period"`
	PeriodMarker   string    `gorm:"column:cnt_date;type:varchar(20)" json:"period_marker"`
	UpdatedDate    time.Time `gorm:"column:updated_date" json:"updated_date"`
}

// TableName sets the database table name.
func (CounterNumber) TableName() string { return "ms_counter_number" }
