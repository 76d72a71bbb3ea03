package services

import (
	"context"
	"fmt"
	"log"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"google.golang.org/api/option"

	"listeden-backend/config"
	"listeden-backend/models"
)

type NotificationService struct {
	messaging *messaging.Client
}

var notifService *NotificationService

func GetNotificationService() *NotificationService {
	if notifService == nil {
		notifService = &NotificationService{}
		notifService.initFirebase()
	}
	return notifService
}

func (ns *NotificationService) initFirebase() {
	ctx := context.Background()
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(config.AppConfig.FirebaseCredPath))
	if err != nil {
		log.Println("⚠️  Firebase not configured, running without push notifications:", err)
		return
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		log.Println("⚠️  Firebase messaging unavailable:", err)
		return
	}
	ns.messaging = client
}

// ============================================================
// EMAIL via SendGrid
// ============================================================

func (ns *NotificationService) sendEmail(toEmail string, toName string, subject string, htmlBody string) {
	if config.AppConfig.SendGridAPIKey == "" {
		log.Printf("⚠️  SendGrid API key not set, skipping email to %s", toEmail)
		return
	}

	from := mail.NewEmail(config.AppConfig.AppName, config.AppConfig.SendGridFrom)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridAPIKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("❌ Email send error: %v", err)
		return
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		log.Printf("✅ Email sent to %s", toEmail)
	} else {
		log.Printf("⚠️  SendGrid returned status: %d", resp.StatusCode)
	}
}

// ============================================================
// PUSH via FCM
// ============================================================

func (ns *NotificationService) sendPush(ctx context.Context, fcmToken string, title string, body string, data map[string]string) {
	if ns.messaging == nil || fcmToken == "" {
		return
	}

	_, err := ns.messaging.Send(ctx, &messaging.Message{
		Token: fcmToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	})
	if err != nil {
		log.Printf("❌ FCM send error: %v", err)
		return
	}
	log.Printf("✅ Push notification sent")
}

// ============================================================
// NOTIFICATION EVENTS
// ============================================================

// NotifyInvitation mails the invitation code to the recipient. Delivery is
// best effort; the invitation itself is already persisted.
func (ns *NotificationService) NotifyInvitation(invitation models.Invitation, inviter models.User, listName string) {
	subject := fmt.Sprintf("%s invited you to \"%s\" on %s", inviter.Username, listName, config.AppConfig.AppName)
	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
	<h2>🛒 You're invited!</h2>
	<p><strong>%s</strong> invited you to collaborate on the shopping list <strong>"%s"</strong>.</p>
	<p>Use this invitation code in the app to accept:</p>
	<p style="font-size: 20px; font-family: monospace; background: #f5f5f5; padding: 12px; border-radius: 8px;">%s</p>
	<p>The invitation expires on %s.</p>
	<p style="color: #999; font-size: 12px;">— %s</p>
</body>
</html>`,
		inviter.Username, listName, invitation.InvitationCode,
		invitation.ExpiresAt.Format("Jan 2, 2006"), config.AppConfig.AppName)

	ns.sendEmail(invitation.RecipientEmail, "", subject, htmlBody)
}

// NotifyShareCreated pushes and mails the user who just got access to a list.
func (ns *NotificationService) NotifyShareCreated(ctx context.Context, list models.ShoppingList, sharer models.User, target models.User, level models.PermissionLevel) {
	title := fmt.Sprintf("You can now access \"%s\"", list.Name)
	body := fmt.Sprintf("%s shared the shopping list \"%s\" with you (%s)", sharer.Username, list.Name, level)

	ns.sendPush(ctx, target.FCMToken, title, body, map[string]string{
		"type":    "share_created",
		"list_id": list.ID.String(),
	})

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
	<h2>👋 A list was shared with you</h2>
	<p>Hi <strong>%s</strong>,</p>
	<p><strong>%s</strong> shared the shopping list <strong>"%s"</strong> with you at the <strong>%s</strong> level.</p>
	<p style="color: #999; font-size: 12px;">— %s</p>
</body>
</html>`, target.Username, sharer.Username, list.Name, level, config.AppConfig.AppName)

	ns.sendEmail(target.Email, target.Username, title, htmlBody)
}
