package notifier

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"
)

// SMTPNotifier sends the login code by email. Port 465 uses implicit TLS;
// any other port dials plain and upgrades with STARTTLS when the server
// offers it.
type SMTPNotifier struct {
	host string
	port int
	user string
	pass string
	from string
}

func NewSMTPNotifier(host string, port int, user, pass, from string) *SMTPNotifier {
	return &SMTPNotifier{host: host, port: port, user: user, pass: pass, from: from}
}

func (n *SMTPNotifier) Deliver(ctx context.Context, to string, code string) (bool, error) {
	message := n.buildMessage(to, code)

	client, err := n.dial()
	if err != nil {
		return false, fmt.Errorf("smtp dial: %w", err)
	}
	defer client.Close()

	auth := smtp.PlainAuth("", n.user, n.pass, n.host)
	if err := client.Auth(auth); err != nil {
		return false, fmt.Errorf("smtp auth: %w", err)
	}

	if err := client.Mail(bareAddress(n.from)); err != nil {
		return false, err
	}
	if err := client.Rcpt(to); err != nil {
		return false, err
	}

	w, err := client.Data()
	if err != nil {
		return false, err
	}
	if _, err := w.Write([]byte(message)); err != nil {
		_ = w.Close()
		return false, err
	}
	if err := w.Close(); err != nil {
		return false, err
	}

	return true, nil
}

func (n *SMTPNotifier) dial() (*smtp.Client, error) {
	addr := fmt.Sprintf("%s:%d", n.host, n.port)

	if n.port == 465 {
		conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: n.host})
		if err != nil {
			return nil, err
		}
		return smtp.NewClient(conn, n.host)
	}

	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, err
	}
	client, err := smtp.NewClient(conn, n.host)
	if err != nil {
		return nil, err
	}
	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: n.host}); err != nil {
			_ = client.Close()
			return nil, err
		}
	}
	return client, nil
}

func (n *SMTPNotifier) buildMessage(to string, code string) string {
	lines := []string{
		"From: " + n.from,
		"To: " + to,
		"Subject: Your Valentine Funs login code",
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=utf-8",
		"",
		"Your one-time login code is: " + code,
		"It expires in 10 minutes. If you did not request it, ignore this email.",
	}
	return strings.Join(lines, "\r\n")
}

// bareAddress strips a display name, "Name <a@b>" -> "a@b".
func bareAddress(from string) string {
	start := strings.Index(from, "<")
	end := strings.Index(from, ">")
	if start >= 0 && end > start {
		return strings.TrimSpace(from[start+1 : end])
	}
	return strings.TrimSpace(from)
}
