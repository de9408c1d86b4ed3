package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWelcomeBodyEscapesName(t *testing.T) {
	body := welcomeBody("<b>Ann</b>")
	assert.Contains(t, body, "&lt;b&gt;Ann&lt;/b&gt;")
	assert.NotContains(t, body, "<b>Ann</b>")
}

func TestNoopEmailService(t *testing.T) {
	assert.NoError(t, NewNoopEmailService().SendWelcome("a@x.com", "A"))
}
