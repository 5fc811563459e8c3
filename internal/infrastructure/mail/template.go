package mail

import (
	"bytes"
	"fmt"
	"text/template"
)

const (
	DefaultSubject = "Happy birthday!"

	// DefaultBodyTemplate is executed with GreetingParams.
	DefaultBodyTemplate = `Happy birthday {{.Username}}! 🎉`
)

// GreetingParams is passed as data when executing the body template.
type GreetingParams struct {
	Username string
}

// Greetings renders birthday emails from a parsed template.
type Greetings struct {
	subject string
	body    *template.Template
}

// NewGreetings parses body. Empty arguments select the defaults.
func NewGreetings(subject, body string) (*Greetings, error) {
	if subject == "" {
		subject = DefaultSubject
	}
	if body == "" {
		body = DefaultBodyTemplate
	}
	tmpl, err := template.New("greeting").Option("missingkey=error").Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse greeting template: %w", err)
	}
	return &Greetings{subject: subject, body: tmpl}, nil
}

func (g *Greetings) Greeting(username string) (string, string, error) {
	var buf bytes.Buffer
	if err := g.body.Execute(&buf, GreetingParams{Username: username}); err != nil {
		return "", "", fmt.Errorf("execute greeting template: %w", err)
	}
	return g.subject, buf.String(), nil
}
