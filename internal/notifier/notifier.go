package notifier

import (
	"log"

	config "github.com/bfarinango/student-store/configs"
	"github.com/bfarinango/student-store/internal/models"
)

// Notifier tells the store operator that an order was placed, by SES
// email and AfricasTalking SMS. Either channel is skipped when its
// recipient is not configured, so a zero-config notifier is a no-op.
// Delivery failures are logged and never surfaced to the API caller.
type Notifier struct {
	email config.EmailConfig
	sms   config.AfricaTalkingConfig
}

func New(email config.EmailConfig, sms config.AfricaTalkingConfig) *Notifier {
	return &Notifier{email: email, sms: sms}
}

func (n *Notifier) OrderPlaced(order *models.Order) {
	if n.email.StoreEmail != "" {
		if err := n.sendEmail(order.ID, order.TotalPrice); err != nil {
			log.Printf("Failed to send email for order %d to %s: %v", order.ID, n.email.StoreEmail, err)
		}
	}

	if n.sms.StorePhone != "" {
		if err := n.sendSMS(order.ID, order.TotalPrice); err != nil {
			log.Printf("Failed to send SMS for order %d to %s: %v", order.ID, n.sms.StorePhone, err)
		}
	}
}
