package dealership

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrSlotTaken is returned when the requested date and time is already booked.
var ErrSlotTaken = errors.New("slot already booked")

// TimeSlots are the bookable hours on any open day.
var TimeSlots = []string{
	"9:00", "10:00", "11:00", "12:00", "13:00", "16:00", "17:00",
}

// Appointment is a confirmed booking.
type Appointment struct {
	ID        string
	UserID    string
	Date      string
	Time      string
	Status    string
	CreatedAt time.Time
}

// AppointmentBook tracks bookings in memory. Safe for concurrent use.
type AppointmentBook struct {
	mu       sync.Mutex
	bookings map[string]Appointment // keyed by date+"/"+time
}

func NewAppointmentBook() *AppointmentBook {
	return &AppointmentBook{bookings: make(map[string]Appointment)}
}

// AvailableSlots returns the hours still free on a date, in order.
func (b *AppointmentBook) AvailableSlots(date string) []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	var free []string
	for _, t := range TimeSlots {
		if _, taken := b.bookings[date+"/"+t]; !taken {
			free = append(free, t)
		}
	}
	return free
}

// Schedule books a slot for a user. A taken slot returns ErrSlotTaken.
func (b *AppointmentBook) Schedule(userID, date, timeSlot string) (Appointment, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	key := date + "/" + timeSlot
	if _, taken := b.bookings[key]; taken {
		return Appointment{}, ErrSlotTaken
	}
	appt := Appointment{
		ID:        uuid.NewString(),
		UserID:    userID,
		Date:      date,
		Time:      timeSlot,
		Status:    "scheduled",
		CreatedAt: time.Now(),
	}
	b.bookings[key] = appt
	return appt, nil
}
