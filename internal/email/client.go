package email

import (
	"crypto/tls"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/wneessen/go-mail"
)

// Client sends booking notification emails over SMTP.
type Client struct {
	host          string
	port          int
	user          string
	password      string
	fromName      string
	fromEmail     string
	businessEmail string
}

// NewClient creates a new email client.
func NewClient(host, portStr, user, password, fromName, fromEmail, businessEmail string) (*Client, error) {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP port: %w", err)
	}

	return &Client{
		host:          host,
		port:          port,
		user:          user,
		password:      password,
		fromName:      fromName,
		fromEmail:     fromEmail,
		businessEmail: businessEmail,
	}, nil
}

// SendEmail sends a single email with an HTML body and a plain-text fallback.
func (c *Client) SendEmail(to, subject, htmlBody, textBody string) error {
	m := mail.NewMsg()

	if err := m.From(fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail)); err != nil {
		return fmt.Errorf("setting sender: %w", err)
	}
	if err := m.To(to); err != nil {
		return fmt.Errorf("setting recipient: %w", err)
	}

	m.Subject(subject)
	m.SetBodyString(mail.TypeTextPlain, textBody)
	m.AddAlternativeString(mail.TypeTextHTML, htmlBody)

	log.Printf("SMTP: connecting to %s:%d as user=%s", c.host, c.port, c.user)

	client, err := mail.NewClient(c.host,
		mail.WithPort(c.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(c.user),
		mail.WithPassword(c.password),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTLSConfig(&tls.Config{
			ServerName: c.host,
		}),
		mail.WithTimeout(5*time.Second),
	)
	if err != nil {
		return fmt.Errorf("creating SMTP client (host=%s port=%d user=%s): %w", c.host, c.port, c.user, err)
	}

	if err := client.DialAndSend(m); err != nil {
		// Add useful context to the error without exposing credentials.
		return fmt.Errorf("sending email (host=%s port=%d user=%s): %w", c.host, c.port, c.user, err)
	}

	return nil
}

// BookingInfo carries the booking details into the email templates.
type BookingInfo struct {
	Name         string
	Email        string
	Phone        string
	Appliance    string
	Issue        string
	BookingRef   string
	Confirmation string
}

// SendCustomerConfirmation emails the confirmation to the customer.
func (c *Client) SendCustomerConfirmation(info BookingInfo) error {
	if info.Email == "" {
		return fmt.Errorf("no customer email provided")
	}
	subject := fmt.Sprintf("Service Request Confirmed - %s", info.BookingRef)
	return c.SendEmail(info.Email, subject, generateCustomerHTML(info), info.Confirmation)
}

// SendBusinessAlert emails the new-booking alert to the business inbox.
func (c *Client) SendBusinessAlert(info BookingInfo) error {
	if c.businessEmail == "" {
		return fmt.Errorf("business email not configured")
	}

	subject := fmt.Sprintf("New Service Request - %s", info.BookingRef)

	var text strings.Builder
	fmt.Fprintf(&text, "New booking received!\n\nReference: %s\nCustomer: %s\nAppliance: %s\nIssue: %s\n",
		info.BookingRef, info.Name, info.Appliance, info.Issue)
	if info.Phone != "" {
		fmt.Fprintf(&text, "Phone: %s\n", info.Phone)
	}
	if info.Email != "" {
		fmt.Fprintf(&text, "Email: %s\n", info.Email)
	}

	return c.SendEmail(c.businessEmail, subject, generateBusinessHTML(info), text.String())
}

// generateCustomerHTML builds the customer confirmation email body.
func generateCustomerHTML(info BookingInfo) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>Booking Confirmation</title>
</head>
<body style="margin: 0; padding: 0; font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background-color: #f4f4f4;">
	<table width="100%%" cellpadding="0" cellspacing="0" style="background-color: #f4f4f4; padding: 20px;">
		<tr>
			<td align="center">
				<table width="600" cellpadding="0" cellspacing="0" style="background-color: #ffffff; border-radius: 8px; overflow: hidden; box-shadow: 0 2px 4px rgba(0,0,0,0.1);">
					<tr>
						<td style="background: linear-gradient(135deg, #667eea 0%%, #764ba2 100%%); padding: 30px 20px; text-align: center;">
							<h1 style="color: #ffffff; margin: 0; font-size: 28px;">Care Refrigeration</h1>
							<p style="color: #ffffff; margin: 10px 0 0 0;">Your Trusted Appliance Repair Service</p>
						</td>
					</tr>
					<tr>
						<td style="padding: 30px 20px;">
							<h2 style="margin-top: 0;">Booking Confirmation</h2>
							<div style="background: #f8f9fa; border-left: 4px solid #667eea; padding: 15px; margin: 20px 0; border-radius: 4px;">
								<p style="margin: 0;">%s</p>
							</div>
							<div style="background: #667eea; color: white; padding: 10px 15px; border-radius: 6px; font-size: 18px; font-weight: bold; text-align: center; margin: 20px 0;">
								Booking Reference: %s
							</div>
							<table width="100%%" cellpadding="0" cellspacing="0" style="border: 1px solid #e0e0e0; border-radius: 6px; margin: 20px 0;">
								<tr>
									<td style="padding: 10px 15px; border-bottom: 1px solid #f0f0f0; font-weight: bold; color: #666; width: 140px;">Customer Name:</td>
									<td style="padding: 10px 15px; border-bottom: 1px solid #f0f0f0;">%s</td>
								</tr>
								<tr>
									<td style="padding: 10px 15px; border-bottom: 1px solid #f0f0f0; font-weight: bold; color: #666;">Appliance Type:</td>
									<td style="padding: 10px 15px; border-bottom: 1px solid #f0f0f0;">%s</td>
								</tr>
								<tr>
									<td style="padding: 10px 15px; font-weight: bold; color: #666;">Issue:</td>
									<td style="padding: 10px 15px;">%s</td>
								</tr>
							</table>
							<p style="color: #666; font-size: 14px;">
								<strong>What happens next?</strong><br>
								Our technical team will review your request and contact you within 2-3 business hours
								to schedule a convenient appointment time. Please keep your phone handy!
							</p>
						</td>
					</tr>
					<tr>
						<td style="background-color: #f8f9fa; padding: 20px; text-align: center; color: #666; font-size: 14px; border-top: 1px solid #e0e0e0;">
							<p style="margin: 0 0 10px 0;">Thank you for choosing Care Refrigeration!</p>
							<p style="margin: 0; font-size: 12px; color: #999;">
								This is an automated confirmation email. Please do not reply to this email.
							</p>
						</td>
					</tr>
				</table>
			</td>
		</tr>
	</table>
</body>
</html>
`,
		strings.ReplaceAll(info.Confirmation, "\n", "<br>"),
		info.BookingRef,
		info.Name,
		info.Appliance,
		info.Issue,
	)
}

// generateBusinessHTML builds the business alert email body.
func generateBusinessHTML(info BookingInfo) string {
	contactRows := ""
	if info.Phone != "" {
		contactRows += fmt.Sprintf(`
								<tr>
									<td style="padding: 10px 15px; border-bottom: 1px solid #f0f0f0; font-weight: bold; color: #666; width: 140px;">Phone:</td>
									<td style="padding: 10px 15px; border-bottom: 1px solid #f0f0f0;"><a href="tel:%s">%s</a></td>
								</tr>`, info.Phone, info.Phone)
	}
	if info.Email != "" {
		contactRows += fmt.Sprintf(`
								<tr>
									<td style="padding: 10px 15px; border-bottom: 1px solid #f0f0f0; font-weight: bold; color: #666; width: 140px;">Email:</td>
									<td style="padding: 10px 15px; border-bottom: 1px solid #f0f0f0;"><a href="mailto:%s">%s</a></td>
								</tr>`, info.Email, info.Email)
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>New Booking Alert</title>
</head>
<body style="margin: 0; padding: 0; font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background-color: #f4f4f4;">
	<table width="100%%" cellpadding="0" cellspacing="0" style="background-color: #f4f4f4; padding: 20px;">
		<tr>
			<td align="center">
				<table width="600" cellpadding="0" cellspacing="0" style="background-color: #ffffff; border-radius: 8px; overflow: hidden; box-shadow: 0 2px 4px rgba(0,0,0,0.1);">
					<tr>
						<td style="background: linear-gradient(135deg, #f093fb 0%%, #f5576c 100%%); padding: 30px 20px; text-align: center;">
							<h1 style="color: #ffffff; margin: 0; font-size: 28px;">New Booking Alert</h1>
							<p style="color: #ffffff; margin: 10px 0 0 0;">Care Refrigeration - Admin Notification</p>
						</td>
					</tr>
					<tr>
						<td style="padding: 30px 20px;">
							<div style="background: #667eea; color: white; padding: 15px; border-radius: 6px; font-size: 20px; font-weight: bold; text-align: center; margin: 20px 0;">
								Booking Reference: %s
							</div>
							<table width="100%%" cellpadding="0" cellspacing="0" style="border: 2px solid #667eea; border-radius: 6px; margin: 20px 0;">
								<tr>
									<td style="padding: 10px 15px; border-bottom: 1px solid #f0f0f0; font-weight: bold; color: #666; width: 140px;">Customer Name:</td>
									<td style="padding: 10px 15px; border-bottom: 1px solid #f0f0f0;">%s</td>
								</tr>%s
								<tr>
									<td style="padding: 10px 15px; border-bottom: 1px solid #f0f0f0; font-weight: bold; color: #666;">Appliance Type:</td>
									<td style="padding: 10px 15px; border-bottom: 1px solid #f0f0f0;">%s</td>
								</tr>
								<tr>
									<td style="padding: 10px 15px; border-bottom: 1px solid #f0f0f0; font-weight: bold; color: #666;">Issue:</td>
									<td style="padding: 10px 15px; border-bottom: 1px solid #f0f0f0;">%s</td>
								</tr>
								<tr>
									<td style="padding: 10px 15px; font-weight: bold; color: #666;">Submitted At:</td>
									<td style="padding: 10px 15px;">%s</td>
								</tr>
							</table>
							<div style="background: #fff3cd; border: 1px solid #ffc107; border-radius: 6px; padding: 15px; margin: 20px 0;">
								<h4 style="margin: 0 0 10px 0; color: #856404;">Response Required</h4>
								<p style="margin: 0; color: #856404;">Please contact the customer within <strong>2-3 business hours</strong> to schedule their appointment.</p>
							</div>
						</td>
					</tr>
					<tr>
						<td style="background-color: #f8f9fa; padding: 20px; text-align: center; color: #666; font-size: 14px; border-top: 1px solid #e0e0e0;">
							<p style="margin: 0;">This is an automated notification from your website booking system.</p>
						</td>
					</tr>
				</table>
			</td>
		</tr>
	</table>
</body>
</html>
`,
		info.BookingRef,
		info.Name,
		contactRows,
		info.Appliance,
		info.Issue,
		time.Now().Format("02/01/2006 15:04"),
	)
}
