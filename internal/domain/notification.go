package domain

// NotificationKind identifies the message template to deliver.
type NotificationKind string

const (
	NotifyInvitation          NotificationKind = "invitation"
	NotifyBookingConfirmed    NotificationKind = "booking_confirmed"
	NotifyParticipantCanceled NotificationKind = "participant_canceled"
	NotifyTrainingCanceled    NotificationKind = "training_canceled"
)

// Notification is one message to a user about a training.
type Notification struct {
	Kind     NotificationKind
	User     *User
	Training *Training
}

// NotificationDispatcher delivers notifications best-effort. Dispatch must
// never block the caller beyond queue submission and must never surface a
// delivery failure; implementations log and drop.
type NotificationDispatcher interface {
	Dispatch(n Notification)
}

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// TemplateRenderer renders notification content from a named template with the given data.
type TemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}
