package email

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Service handles email sending
type Service struct {
	fromEmail   string
	fromName    string
	baseURL     string
	sendGridKey string
	useSendGrid bool
}

// NewService creates a new email service
// If sendGridAPIKey is provided, emails will be sent via SendGrid
// Otherwise, emails will be logged to console (development mode)
func NewService(fromEmail, fromName, baseURL, sendGridAPIKey string) *Service {
	useSendGrid := sendGridAPIKey != ""
	if useSendGrid {
		log.Printf("✅ Email service initialized with SendGrid")
	} else {
		log.Printf("⚠️  Email service in console-only mode (set SENDGRID_API_KEY for production)")
	}

	return &Service{
		fromEmail:   fromEmail,
		fromName:    fromName,
		baseURL:     baseURL,
		sendGridKey: sendGridAPIKey,
		useSendGrid: useSendGrid,
	}
}

// SendVerificationEmail sends an email verification link
func (s *Service) SendVerificationEmail(toEmail, toName, token string) error {
	verificationURL := fmt.Sprintf("%s/verificar-email/%s", s.baseURL, token)

	subject := "Confirme seu cadastro na VivaSaúde"
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Bem-vindo à VivaSaúde!</h2>
			<p>Olá %s,</p>
			<p>Obrigado por se cadastrar na VivaSaúde. Confirme seu endereço de email clicando no botão abaixo:</p>
			<p><a href="%s" style="background-color: #4CAF50; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Confirmar Email</a></p>
			<p>Ou copie e cole este link no seu navegador:</p>
			<p><a href="%s">%s</a></p>
			<p><strong>Este link expira em 24 horas.</strong></p>
			<p>Se você não criou uma conta, pode ignorar este email com segurança.</p>
			<p>Obrigado,<br>Equipe VivaSaúde</p>
		</body>
		</html>
	`, toName, verificationURL, verificationURL, verificationURL)

	plainText := fmt.Sprintf(`
Olá %s,

Bem-vindo à VivaSaúde! Confirme seu endereço de email pelo link abaixo:

%s

Este link expira em 24 horas.

Se você não criou uma conta, pode ignorar este email com segurança.

Obrigado,
Equipe VivaSaúde
	`, toName, verificationURL)

	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, body, plainText)
	}

	// Development mode: log to console
	return s.logEmailToConsole(toEmail, toName, subject, verificationURL)
}

// SendWelcomeEmail sends a welcome email after verification
func (s *Service) SendWelcomeEmail(toEmail, toName string) error {
	subject := "Bem-vindo à VivaSaúde!"
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Bem-vindo à VivaSaúde!</h2>
			<p>Olá %s,</p>
			<p>Seu email foi confirmado com sucesso! Agora você tem acesso completo à VivaSaúde.</p>
			<h3>Primeiros passos:</h3>
			<ul>
				<li>Complete seu perfil</li>
				<li>Explore os planos para profissionais</li>
				<li>Use um cupom de boas-vindas se tiver recebido um</li>
			</ul>
			<p><a href="%s/painel" style="background-color: #4CAF50; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Ir para o Painel</a></p>
			<p>Obrigado,<br>Equipe VivaSaúde</p>
		</body>
		</html>
	`, toName, s.baseURL)

	plainText := fmt.Sprintf(`
Olá %s,

Seu email foi confirmado com sucesso! Agora você tem acesso completo à VivaSaúde.

Primeiros passos:
- Complete seu perfil
- Explore os planos para profissionais
- Use um cupom de boas-vindas se tiver recebido um

Acesse seu painel: %s/painel

Obrigado,
Equipe VivaSaúde
	`, toName, s.baseURL)

	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, body, plainText)
	}

	// Development mode: log to console
	log.Printf("📧 [EMAIL] Welcome email to: %s <%s>", toName, toEmail)
	return nil
}

// SendRawEmail sends an email with custom subject and body content.
// Uses SendGrid in production, logs to console in development.
func (s *Service) SendRawEmail(toEmail, toName, subject, htmlBody, plainTextBody string) error {
	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, htmlBody, plainTextBody)
	}

	log.Printf("📧 [EMAIL] %s", subject)
	log.Printf("   To: %s <%s>", toName, toEmail)
	log.Printf("   From: %s <%s>", s.fromName, s.fromEmail)
	log.Printf("   ⚠️  Email NOT sent (development mode)")
	return nil
}

// sendViaSendGrid sends email using SendGrid API
func (s *Service) sendViaSendGrid(toEmail, toName, subject, htmlBody, plainTextBody string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(toName, toEmail)

	message := mail.NewSingleEmail(from, subject, to, plainTextBody, htmlBody)

	client := sendgrid.NewSendClient(s.sendGridKey)
	response, err := client.Send(message)

	if err != nil {
		log.Printf("❌ SendGrid error: %v", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	if response.StatusCode >= 400 {
		log.Printf("❌ SendGrid returned error status %d: %s", response.StatusCode, response.Body)
		return fmt.Errorf("sendgrid returned error status: %d", response.StatusCode)
	}

	log.Printf("✅ Email sent successfully to %s (SendGrid status: %d)", toEmail, response.StatusCode)
	return nil
}

// logEmailToConsole logs email details to console (development mode)
func (s *Service) logEmailToConsole(toEmail, toName, subject, actionURL string) error {
	log.Printf("📧 [EMAIL] %s", subject)
	log.Printf("   To: %s <%s>", toName, toEmail)
	log.Printf("   From: %s <%s>", s.fromName, s.fromEmail)
	log.Printf("   Action URL: %s", actionURL)
	log.Printf("   ---")
	log.Printf("   ⚠️  Email NOT sent (development mode)")
	log.Printf("   Set SENDGRID_API_KEY environment variable to enable email sending")
	log.Printf("   ---")
	return nil
}
