package email

import (
	"fmt"
	"time"

	"github.com/resend/resend-go/v2"

	"github.com/celosalong/salon-booking-api/internal/catalog"
)

// ResendMailer sends through the Resend transactional API.
type ResendMailer struct {
	client     *resend.Client
	fromDomain string
	adminEmail string
}

func NewResend(apiKey, fromDomain, adminEmail string) *ResendMailer {
	return &ResendMailer{
		client:     resend.NewClient(apiKey),
		fromDomain: fromDomain,
		adminEmail: adminEmail,
	}
}

func (m *ResendMailer) Configured() bool { return true }

func (m *ResendMailer) from() string {
	return fmt.Sprintf("%s <noreply@%s>", catalog.Salon().Name, m.fromDomain)
}

func (m *ResendMailer) SendBookingConfirmation(b BookingEmail) error {
	svcName, svcPrice := serviceInfo(b.ServiceID)

	_, err := m.client.Emails.Send(&resend.SendEmailRequest{
		From:    m.from(),
		To:      []string{b.Email},
		Subject: fmt.Sprintf("Bokningsbekräftelse - %s %s", svcName, b.Date),
		Html:    confirmationHTML(b, svcName, svcPrice),
	})
	return err
}

func (m *ResendMailer) SendAdminNotification(b BookingEmail) error {
	if m.adminEmail == "" {
		return nil
	}

	svcName, svcPrice := serviceInfo(b.ServiceID)

	_, err := m.client.Emails.Send(&resend.SendEmailRequest{
		From:    m.from(),
		To:      []string{m.adminEmail},
		Subject: fmt.Sprintf("Ny bokning: %s %s kl. %s", svcName, b.Date, b.Time),
		Html:    adminHTML(b, svcName, svcPrice),
	})
	return err
}

func serviceInfo(serviceID string) (string, float64) {
	if svc, ok := catalog.ServiceByID(serviceID); ok {
		return svc.Name, svc.Price
	}
	return serviceID, 0
}

// formatDate renders "2026-08-30" as "lördag 30 augusti 2026".
func formatDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}

	weekdays := []string{"söndag", "måndag", "tisdag", "onsdag", "torsdag", "fredag", "lördag"}
	months := []string{"", "januari", "februari", "mars", "april", "maj", "juni",
		"juli", "augusti", "september", "oktober", "november", "december"}

	return fmt.Sprintf("%s %d %s %d", weekdays[int(t.Weekday())], t.Day(), months[int(t.Month())], t.Year())
}

func confirmationHTML(b BookingEmail, svcName string, svcPrice float64) string {
	salon := catalog.Salon()
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; color: #1B2838;">
  <h1>%s</h1>
  <h2>Bokning Bekräftad</h2>
  <p>Tack för din bokning, %s!</p>
  <table>
    <tr><td><strong>Tjänst</strong></td><td>%s</td></tr>
    <tr><td><strong>Datum</strong></td><td>%s</td></tr>
    <tr><td><strong>Tid</strong></td><td>kl. %s</td></tr>
    <tr><td><strong>Pris</strong></td><td>%.0f kr</td></tr>
  </table>
  <p>%s, %s %s<br>
  <a href="%s">Öppna i Google Maps</a></p>
  <p>Behöver du ändra eller avboka? Kontakta oss på %s.</p>
</body>
</html>`,
		salon.Name, b.CustomerName, svcName, formatDate(b.Date), b.Time, svcPrice,
		salon.Address, salon.PostalCode, salon.City, salon.GoogleMapsURL, salon.Phone)
}

func adminHTML(b BookingEmail, svcName string, svcPrice float64) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; color: #1B2838;">
  <h2>Ny bokning</h2>
  <table>
    <tr><td><strong>Kund</strong></td><td>%s</td></tr>
    <tr><td><strong>Telefon</strong></td><td>%s</td></tr>
    <tr><td><strong>E-post</strong></td><td>%s</td></tr>
    <tr><td><strong>Tjänst</strong></td><td>%s (%.0f kr)</td></tr>
    <tr><td><strong>Datum &amp; tid</strong></td><td>%s kl. %s</td></tr>
    <tr><td><strong>Noteringar</strong></td><td>%s</td></tr>
  </table>
</body>
</html>`,
		b.CustomerName, b.Phone, b.Email, svcName, svcPrice, formatDate(b.Date), b.Time, b.Notes)
}
