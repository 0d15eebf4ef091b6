package mentoring

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

// A booking moves through up to three tutor offers before it is completed.
const (
	BookingFirstOffer  BookingStatus = "first_offer"
	BookingSecondOffer BookingStatus = "second_offer"
	BookingThirdOffer  BookingStatus = "third_offer"
	BookingCompleted   BookingStatus = "completed"
)

var bookingOrder = []BookingStatus{BookingFirstOffer, BookingSecondOffer, BookingThirdOffer, BookingCompleted}

func (s BookingStatus) Valid() bool {
	for _, v := range bookingOrder {
		if s == v {
			return true
		}
	}
	return false
}

// Next returns the following status, or false once completed.
func (s BookingStatus) Next() (BookingStatus, bool) {
	for i, v := range bookingOrder {
		if v == s && i+1 < len(bookingOrder) {
			return bookingOrder[i+1], true
		}
	}
	return s, false
}

// Booking is a student's request for a tutoring session.
type Booking struct {
	ID                 uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID          uuid.UUID     `gorm:"type:uuid;not null;index" json:"student_id"`
	Subject            string        `gorm:"not null;column:subject" json:"subject"`
	RequestDescription string        `gorm:"not null;column:request_description" json:"request_description"`
	Whatsapp           string        `gorm:"not null;column:whatsapp" json:"whatsapp"`
	Status             BookingStatus `gorm:"not null;column:status;index" json:"status"`
	AdminNotes         *string       `gorm:"column:admin_notes" json:"admin_notes,omitempty"`
	CreatedAt          time.Time     `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time     `gorm:"not null" json:"updated_at"`
}

func (Booking) TableName() string { return "bookings" }

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.Status == "" {
		b.Status = BookingFirstOffer
	}
	return nil
}
