package model

import "time"

// Artwork - единица складского учета.
type Artwork struct {
	ID            string     `json:"id" db:"id"`
	Title         string     `json:"title" db:"title"`
	Price         int64      `json:"price" db:"price"`
	StockCount    int        `json:"stock_count" db:"stock_count"`
	IsLimitedDrop bool       `json:"is_limited_drop" db:"is_limited_drop"`
	DropEndTime   *time.Time `json:"drop_end_time,omitempty" db:"drop_end_time"`
}

// DropExpired сообщает, что окно лимитированной продажи закрыто на момент now.
func (a *Artwork) DropExpired(now time.Time) bool {
	if !a.IsLimitedDrop || a.DropEndTime == nil {
		return false
	}
	return !now.Before(*a.DropEndTime)
}
