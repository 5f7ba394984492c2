package core

import "time"

// Model is embedded by every registry entity. Timestamps are stamped by the
// services, so gorm's automatic time tracking is turned off.
type Model struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false" json:"updated_at"`
}

func (m *Model) GetID() uint { return m.ID }

func (m *Model) StampCreated(now time.Time) {
	m.CreatedAt = now
	m.UpdatedAt = now
}

func (m *Model) StampUpdated(now time.Time) { m.UpdatedAt = now }
