package domain

// BookingRequest is a service request submitted through the booking form.
// Email and phone are optional; when present they enable the confirmation
// and business-alert emails.
type BookingRequest struct {
	Name      string `json:"name"`
	Appliance string `json:"appliance"`
	Issue     string `json:"issue"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// EmailDelivery reports which notification emails went out for a booking.
type EmailDelivery struct {
	Customer bool `json:"customer"`
	Business bool `json:"business"`
}

// BookingConfirmation is what the caller gets back. Confirmation is always
// non-empty, whether or not any email was delivered.
type BookingConfirmation struct {
	BookingRef   string        `json:"bookingRef"`
	Confirmation string        `json:"confirmation"`
	EmailSent    EmailDelivery `json:"emailSent"`
}

// ConfirmationComposer produces the human-readable confirmation text for a
// booking. Implementations may call out to a text-generation service; the
// booking flow always has a deterministic template to fall back on, so a
// composer is free to fail.
type ConfirmationComposer interface {
	Compose(name, appliance, issue, bookingRef string) (string, error)
}
