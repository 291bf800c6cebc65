package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewService_ConsoleMode(t *testing.T) {
	svc := NewService("from@example.com", "VivaSaúde", "https://app.vivasaude.com.br", "")
	assert.False(t, svc.useSendGrid)
	assert.Equal(t, "from@example.com", svc.fromEmail)
	assert.Equal(t, "VivaSaúde", svc.fromName)
	assert.Equal(t, "https://app.vivasaude.com.br", svc.baseURL)
}

func TestNewService_SendGridMode(t *testing.T) {
	svc := NewService("from@example.com", "VivaSaúde", "https://app.vivasaude.com.br", "SG.test-key")
	assert.True(t, svc.useSendGrid)
	assert.Equal(t, "SG.test-key", svc.sendGridKey)
}

func TestSendVerificationEmail_ConsoleMode(t *testing.T) {
	svc := NewService("from@example.com", "VivaSaúde", "https://app.vivasaude.com.br", "")

	err := svc.SendVerificationEmail("user@example.com", "Test User", "abc123token")
	assert.NoError(t, err, "Console mode should not error")
}

func TestSendWelcomeEmail_ConsoleMode(t *testing.T) {
	svc := NewService("from@example.com", "VivaSaúde", "https://app.vivasaude.com.br", "")

	err := svc.SendWelcomeEmail("user@example.com", "Test User")
	assert.NoError(t, err, "Console mode should not error")
}

func TestSendRawEmail_ConsoleMode(t *testing.T) {
	svc := NewService("from@example.com", "VivaSaúde", "https://app.vivasaude.com.br", "")

	err := svc.SendRawEmail("user@example.com", "Test User", "Assunto", "<p>corpo</p>", "corpo")
	assert.NoError(t, err, "Console mode should not error")
}
