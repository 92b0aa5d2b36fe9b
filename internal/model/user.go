package model

// UserStatus is the conversation lifecycle of one WhatsApp user.
type UserStatus string

const (
	StatusNew      UserStatus = "new"
	StatusWelcomed UserStatus = "welcomed"
	StatusActive   UserStatus = "active"
)

// UserState is created lazily on first contact and destroyed only by an
// explicit reset.
type UserState struct {
	Status          UserStatus
	LastInteraction string
	Preferences     map[string]string
	Appointment     map[string]string
}

func NewUserState() UserState {
	return UserState{
		Status:      StatusNew,
		Preferences: map[string]string{},
		Appointment: map[string]string{},
	}
}
