package application

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/khannoor710/carerefrigeration/internal/domain"
	"github.com/khannoor710/carerefrigeration/internal/email"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookingRefPattern = regexp.MustCompile(`^CR-\d{6}$`)

func newTestBookingService(mailer BookingMailer) *BookingService {
	fallback := &DeterministicComposer{
		CompanyName:  "Care Refrigeration",
		CompanyPhone: "+91 9819 124 194",
	}
	return NewBookingService(nil, fallback, mailer)
}

func TestCreateBookingReturnsConfirmation(t *testing.T) {
	s := newTestBookingService(nil)

	result, err := s.CreateBooking(domain.BookingRequest{
		Name:      "Asha",
		Appliance: "Refrigerator",
		Issue:     "not cooling",
	})
	require.NoError(t, err)

	assert.Regexp(t, bookingRefPattern, result.BookingRef)
	assert.Contains(t, result.Confirmation, "Asha")
	assert.Contains(t, result.Confirmation, "Refrigerator")
	assert.Contains(t, result.Confirmation, result.BookingRef)
	assert.False(t, result.EmailSent.Customer)
	assert.False(t, result.EmailSent.Business)
}

func TestCreateBookingRequiresCoreFields(t *testing.T) {
	s := newTestBookingService(nil)

	for _, req := range []domain.BookingRequest{
		{Appliance: "AC", Issue: "leaking"},
		{Name: "Asha", Issue: "leaking"},
		{Name: "Asha", Appliance: "AC"},
		{Name: "  ", Appliance: "AC", Issue: "leaking"},
	} {
		_, err := s.CreateBooking(req)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrValidation))
	}
}

func TestCreateBookingValidatesOptionalContactFields(t *testing.T) {
	s := newTestBookingService(nil)

	_, err := s.CreateBooking(domain.BookingRequest{
		Name: "Asha", Appliance: "AC", Issue: "leaking", Email: "not-an-email",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))

	_, err = s.CreateBooking(domain.BookingRequest{
		Name: "Asha", Appliance: "AC", Issue: "leaking", Phone: "abc",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestCreateBookingSucceedsWhenMailerFails(t *testing.T) {
	mailer := &fakeMailer{err: fmt.Errorf("smtp unreachable")}
	s := newTestBookingService(mailer)

	result, err := s.CreateBooking(domain.BookingRequest{
		Name:      "Asha",
		Appliance: "Refrigerator",
		Issue:     "not cooling",
		Email:     "asha@example.com",
	})
	require.NoError(t, err, "booking must succeed even when the notification sink is unreachable")

	assert.NotEmpty(t, result.Confirmation)
	assert.False(t, result.EmailSent.Customer)
	assert.False(t, result.EmailSent.Business)
}

func TestCreateBookingReportsDeliveredEmails(t *testing.T) {
	mailer := &fakeMailer{}
	s := newTestBookingService(mailer)

	result, err := s.CreateBooking(domain.BookingRequest{
		Name:      "Ravi",
		Appliance: "Washing Machine",
		Issue:     "drum stuck",
		Email:     "ravi@example.com",
		Phone:     "+91 98190 00000",
	})
	require.NoError(t, err)

	assert.True(t, result.EmailSent.Customer)
	assert.True(t, result.EmailSent.Business)
	require.Len(t, mailer.customer, 1)
	assert.Equal(t, "ravi@example.com", mailer.customer[0].Email)
	assert.Equal(t, result.BookingRef, mailer.customer[0].BookingRef)
	require.Len(t, mailer.business, 1)
}

func TestCreateBookingSkipsCustomerEmailWithoutAddress(t *testing.T) {
	mailer := &fakeMailer{}
	s := newTestBookingService(mailer)

	result, err := s.CreateBooking(domain.BookingRequest{
		Name: "Ravi", Appliance: "AC", Issue: "noisy",
	})
	require.NoError(t, err)

	assert.False(t, result.EmailSent.Customer)
	assert.True(t, result.EmailSent.Business)
	assert.Empty(t, mailer.customer)
}

func TestComposerFailureFallsBackToTemplate(t *testing.T) {
	fallback := &DeterministicComposer{CompanyName: "Care Refrigeration", CompanyPhone: "+91 9819 124 194"}
	s := NewBookingService(&failingComposer{}, fallback, nil)

	result, err := s.CreateBooking(domain.BookingRequest{
		Name: "Asha", Appliance: "Geyser", Issue: "no hot water",
	})
	require.NoError(t, err)

	assert.Contains(t, result.Confirmation, "Asha")
	assert.Contains(t, result.Confirmation, "Geyser")
	assert.Contains(t, result.Confirmation, "Care Refrigeration Team")
}

func TestComposerOutputUsedWhenAvailable(t *testing.T) {
	s := NewBookingService(
		&staticComposer{text: "Hello from the generator"},
		&DeterministicComposer{CompanyName: "Care Refrigeration", CompanyPhone: "+91 9819 124 194"},
		nil,
	)

	result, err := s.CreateBooking(domain.BookingRequest{
		Name: "Asha", Appliance: "AC", Issue: "leaking",
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello from the generator", result.Confirmation)
}

func TestDeterministicComposerTemplate(t *testing.T) {
	c := &DeterministicComposer{CompanyName: "Care Refrigeration", CompanyPhone: "+91 9819 124 194"}

	text, err := c.Compose("Asha", "Refrigerator", "not cooling", "CR-123456")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(text, "Thank you, Asha!"))
	assert.Contains(t, text, "your Refrigerator")
	assert.Contains(t, text, "Your booking reference is: CR-123456")
	assert.Contains(t, text, "+91 9819 124 194")
}

type fakeMailer struct {
	err      error
	customer []email.BookingInfo
	business []email.BookingInfo
}

func (m *fakeMailer) SendCustomerConfirmation(info email.BookingInfo) error {
	if m.err != nil {
		return m.err
	}
	m.customer = append(m.customer, info)
	return nil
}

func (m *fakeMailer) SendBusinessAlert(info email.BookingInfo) error {
	if m.err != nil {
		return m.err
	}
	m.business = append(m.business, info)
	return nil
}

type failingComposer struct{}

func (c *failingComposer) Compose(name, appliance, issue, bookingRef string) (string, error) {
	return "", fmt.Errorf("generator unavailable")
}

type staticComposer struct{ text string }

func (c *staticComposer) Compose(name, appliance, issue, bookingRef string) (string, error) {
	return c.text, nil
}
