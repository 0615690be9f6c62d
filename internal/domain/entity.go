package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Historical records persisted by the recorder storage. One row per
// published event; RecordedAt is assigned by the recorder. CUSIP columns
// are pinned explicitly: gorm's default naming would split the field
// into cus_ip, and the query helpers filter on cusip.

// PositionRecord is one book's position at the time it was published.
// The aggregate across books is stored as a row with Book = "AGGREGATE".
type PositionRecord struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	RecordedAt time.Time `json:"recorded_at"`
	CUSIP      string    `gorm:"column:cusip;index" json:"cusip"`
	Book       string    `json:"book"`
	Quantity   int64     `json:"quantity"`
}

// RiskRecord is a published PV01 exposure, either for one instrument or
// for a bucketed sector (Key is the CUSIP or the sector name).
type RiskRecord struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	RecordedAt time.Time       `json:"recorded_at"`
	Key        string          `gorm:"index" json:"key"`
	Sector     bool            `json:"sector"`
	PV01       decimal.Decimal `gorm:"type:numeric" json:"pv01"`
	Quantity   int64           `json:"quantity"`
}

// ExecutionRecord is a published execution order.
type ExecutionRecord struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	RecordedAt time.Time       `json:"recorded_at"`
	CUSIP      string          `gorm:"column:cusip;index" json:"cusip"`
	OrderID    string          `json:"order_id"`
	Side       string          `json:"side"`
	OrderType  string          `json:"order_type"`
	Price      decimal.Decimal `gorm:"type:numeric" json:"price"`
	Visible    int64           `json:"visible"`
	Hidden     int64           `json:"hidden"`
	IsChild    bool            `json:"is_child"`
}

// StreamRecord is one side of a published two-way price stream.
type StreamRecord struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	RecordedAt time.Time       `json:"recorded_at"`
	CUSIP      string          `gorm:"column:cusip;index" json:"cusip"`
	Side       string          `json:"side"`
	Price      decimal.Decimal `gorm:"type:numeric" json:"price"`
	Visible    int64           `json:"visible"`
	Hidden     int64           `json:"hidden"`
}

// InquiryRecord is a published inquiry snapshot; an inquiry appears once
// per state transition.
type InquiryRecord struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	RecordedAt time.Time       `json:"recorded_at"`
	InquiryID  string          `gorm:"index" json:"inquiry_id"`
	CUSIP      string          `gorm:"column:cusip" json:"cusip"`
	Side       string          `json:"side"`
	Quantity   int64           `json:"quantity"`
	Price      decimal.Decimal `gorm:"type:numeric" json:"price"`
	State      string          `json:"state"`
}
