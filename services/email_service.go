package services

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/gomail.v2"

	"naoh-aquatics/models"
)

type EmailService struct {
	dialer *gomail.Dialer
}

func NewEmailService() (*EmailService, error) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	if smtpHost == "" || smtpUser == "" || smtpPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		port = 587
	}

	return &EmailService{dialer: gomail.NewDialer(smtpHost, port, smtpUser, smtpPass)}, nil
}

// SendOrderReceipt mails the customer a summary of the order they just
// placed. Amounts are rendered with two decimals and the peso sign.
func (s *EmailService) SendOrderReceipt(toEmail, siteName string, order *models.Order) error {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Order %s - %s", order.OrderNumber, siteName))

	var lines strings.Builder
	for _, item := range order.Items {
		detail := item.Name
		if item.VariationName != nil {
			detail += " (" + *item.VariationName + ")"
		}
		if item.AddOnsSummary != nil {
			detail += " + " + *item.AddOnsSummary
		}
		lines.WriteString(fmt.Sprintf(
			`<tr><td style="padding:8px;border-bottom:1px solid #eee;">%s</td>
			 <td style="padding:8px;border-bottom:1px solid #eee;text-align:center;">%d</td>
			 <td style="padding:8px;border-bottom:1px solid #eee;text-align:right;">&#8369;%s</td></tr>`,
			detail, item.Quantity, item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))).StringFixed(2)))
	}

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
    <div style="max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px;">
        <h2 style="color: #0d9488;">%s</h2>
        <p>Hi %s,</p>
        <p>Thanks for your order! Here is your receipt for order <strong>%s</strong>:</p>
        <table style="width:100%%; border-collapse: collapse;">
            <tr>
                <th style="text-align:left; padding:8px; border-bottom:2px solid #0d9488;">Item</th>
                <th style="text-align:center; padding:8px; border-bottom:2px solid #0d9488;">Qty</th>
                <th style="text-align:right; padding:8px; border-bottom:2px solid #0d9488;">Amount</th>
            </tr>
            %s
        </table>
        <p style="text-align:right; font-size: 18px;"><strong>Total: &#8369;%s</strong></p>
        <p style="color: #666; font-size: 12px;">This is an automated email. Please do not reply.</p>
    </div>
</body>
</html>`, siteName, order.CustomerName, order.OrderNumber, lines.String(), order.TotalAmount.StringFixed(2))

	m.SetBody("text/html", body)
	return s.dialer.DialAndSend(m)
}
