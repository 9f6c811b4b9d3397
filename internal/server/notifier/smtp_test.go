package notifier

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMessage(t *testing.T) {
	n := NewSMTPNotifier("smtp.example.com", 587, "app", "pw", "Valentine Funs <no-reply@example.com>")

	msg := n.buildMessage("a@x.com", "042918")

	assert.True(t, strings.Contains(msg, "To: a@x.com"))
	assert.True(t, strings.Contains(msg, "042918"))
	assert.True(t, strings.HasPrefix(msg, "From: Valentine Funs <no-reply@example.com>\r\n"))
}

func TestBareAddress(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Valentine Funs <no-reply@example.com>", "no-reply@example.com"},
		{"no-reply@example.com", "no-reply@example.com"},
		{"  padded@example.com  ", "padded@example.com"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, bareAddress(tc.in))
	}
}
