package model

import (
	"time"
)

// Delivery log statuses.
const (
	DeliveryStatusSent    = "sent"
	DeliveryStatusFailed  = "failed"
	DeliveryStatusSkipped = "skipped"
)

// Delivery channels.
const (
	ChannelSMS   = "sms"
	ChannelEmail = "email"
)

// DeliveryLog records a single outbound message attempt.
type DeliveryLog struct {
	ID                uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	AppointmentID     int       `json:"appointment_id" gorm:"index"`
	Kind              string    `json:"kind" gorm:"type:varchar(32)"`
	Channel           string    `json:"channel" gorm:"type:varchar(16)"`
	Destination       string    `json:"destination" gorm:"type:varchar(255)"`
	Status            string    `json:"status" gorm:"type:varchar(16)"`
	ProviderMessageID string    `json:"provider_message_id" gorm:"type:varchar(255)"`
	ErrorMsg          string    `json:"error_msg" gorm:"type:text"`
	CreatedAt         time.Time `json:"created_at"`
}

// TableName specifies the table name for DeliveryLog
func (DeliveryLog) TableName() string {
	return "delivery_logs"
}
