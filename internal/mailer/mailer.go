package mailer

import (
	"bytes"
	"embed"
	"html/template"
	"time"

	"github.com/go-mail/mail/v2"
)

//go:embed "templates"
var templateFS embed.FS

type Mailer interface {
	Send(recipient, templateFile string, data any) error
}

// SMTPMailer renders a template from templates/ and sends it over SMTP. Each
// template defines a subject, plainBody and htmlBody.
type SMTPMailer struct {
	dialer *mail.Dialer
	sender string
}

func New(host string, port int, username, password, sender string) *SMTPMailer {
	dialer := mail.NewDialer(host, port, username, password)
	dialer.Timeout = 5 * time.Second

	return &SMTPMailer{
		dialer: dialer,
		sender: sender,
	}
}

func (m *SMTPMailer) Send(recipient, templateFile string, data any) error {
	msg, err := render(templateFile, data)
	if err != nil {
		return err
	}

	message := mail.NewMessage()
	message.SetHeader("To", recipient)
	message.SetHeader("From", m.sender)
	message.SetHeader("Subject", msg.subject)
	message.SetBody("text/plain", msg.plainBody)
	message.AddAlternative("text/html", msg.htmlBody)

	for i := 1; i <= 3; i++ {
		err = m.dialer.DialAndSend(message)
		if err == nil {
			return nil
		}

		time.Sleep(500 * time.Millisecond)
	}

	return err
}

type rendered struct {
	subject   string
	plainBody string
	htmlBody  string
}

func render(templateFile string, data any) (*rendered, error) {
	tmpl, err := template.New("email").ParseFS(templateFS, "templates/"+templateFile)
	if err != nil {
		return nil, err
	}

	var out rendered

	for name, dst := range map[string]*string{
		"subject":   &out.subject,
		"plainBody": &out.plainBody,
		"htmlBody":  &out.htmlBody,
	} {
		buf := new(bytes.Buffer)

		err = tmpl.ExecuteTemplate(buf, name, data)
		if err != nil {
			return nil, err
		}

		*dst = buf.String()
	}

	return &out, nil
}
