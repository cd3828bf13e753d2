package application

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/khannoor710/carerefrigeration/internal/domain"
	"github.com/khannoor710/carerefrigeration/internal/email"
)

// emailTimeout bounds how long a booking waits on notification delivery. The
// confirmation is returned to the caller even when delivery fails or times
// out; a slow mail provider must never stall a booking response.
const emailTimeout = 5 * time.Second

// BookingMailer delivers the notification emails for a booking.
type BookingMailer interface {
	SendCustomerConfirmation(info email.BookingInfo) error
	SendBusinessAlert(info email.BookingInfo) error
}

// BookingService handles booking-confirmation requests: it validates input,
// generates a reference, composes the confirmation text, and makes a
// best-effort attempt at the notification emails.
type BookingService struct {
	composer  domain.ConfirmationComposer
	fallback  *DeterministicComposer
	mailer    BookingMailer
	validator *Validator
}

// NewBookingService wires the booking flow. composer may be nil, in which
// case only the deterministic template is used. mailer may be nil when no
// SMTP settings are configured; bookings still succeed.
func NewBookingService(composer domain.ConfirmationComposer, fallback *DeterministicComposer, mailer BookingMailer) *BookingService {
	return &BookingService{
		composer:  composer,
		fallback:  fallback,
		mailer:    mailer,
		validator: &Validator{},
	}
}

// CreateBooking processes a booking request end to end. It always returns a
// non-empty confirmation on success, regardless of email delivery.
func (s *BookingService) CreateBooking(req domain.BookingRequest) (*domain.BookingConfirmation, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Appliance = strings.TrimSpace(req.Appliance)
	req.Issue = strings.TrimSpace(req.Issue)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)

	if req.Name == "" || req.Appliance == "" || req.Issue == "" {
		return nil, fmt.Errorf("%w: name, appliance and issue are required", domain.ErrValidation)
	}
	if req.Email != "" {
		if err := s.validator.ValidateEmail(req.Email); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}
	}
	if req.Phone != "" {
		if err := s.validator.ValidatePhone(req.Phone); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}
	}

	bookingRef := newBookingRef()
	confirmation := s.composeConfirmation(req, bookingRef)

	result := &domain.BookingConfirmation{
		BookingRef:   bookingRef,
		Confirmation: confirmation,
		EmailSent:    s.sendEmails(req, confirmation, bookingRef),
	}
	return result, nil
}

func (s *BookingService) composeConfirmation(req domain.BookingRequest, bookingRef string) string {
	if s.composer != nil {
		text, err := s.composer.Compose(req.Name, req.Appliance, req.Issue, bookingRef)
		if err == nil && strings.TrimSpace(text) != "" {
			return text
		}
		if err != nil {
			log.Printf("Confirmation composer failed, using template: %v", err)
		}
	}
	text, _ := s.fallback.Compose(req.Name, req.Appliance, req.Issue, bookingRef)
	return text
}

// sendEmails attempts the customer confirmation and the business alert,
// bounded by emailTimeout. Delivery failures are logged, never surfaced.
func (s *BookingService) sendEmails(req domain.BookingRequest, confirmation, bookingRef string) domain.EmailDelivery {
	var delivery domain.EmailDelivery
	if s.mailer == nil {
		return delivery
	}

	info := email.BookingInfo{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Appliance:    req.Appliance,
		Issue:        req.Issue,
		BookingRef:   bookingRef,
		Confirmation: confirmation,
	}

	var wg sync.WaitGroup
	var mu sync.Mutex

	if req.Email != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.mailer.SendCustomerConfirmation(info); err != nil {
				log.Printf("Failed to send customer confirmation for %s: %v", bookingRef, err)
				return
			}
			mu.Lock()
			delivery.Customer = true
			mu.Unlock()
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := s.mailer.SendBusinessAlert(info); err != nil {
			log.Printf("Failed to send business alert for %s: %v", bookingRef, err)
			return
		}
		mu.Lock()
		delivery.Business = true
		mu.Unlock()
	}()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(emailTimeout):
		log.Printf("Email delivery for %s still pending after %v, responding without it", bookingRef, emailTimeout)
	}

	mu.Lock()
	defer mu.Unlock()
	return delivery
}

// newBookingRef builds a reference like CR-483920.
func newBookingRef() string {
	return fmt.Sprintf("CR-%d", 100000+rand.Intn(900000))
}
