package notifications

import (
	"bytes"
	"context"
	"fmt"
	"text/template"
)

// Transport sends a rendered message to a recipient address.
// The SMTP adapter in internal/adapters/out/mail is the production
// implementation; tests substitute fakes.
type Transport interface {
	Send(ctx context.Context, to, subject, body string) error
}

const newDeliverySubject = "You have a new package to deliver"

const newDeliveryBody = `Hello {{.CourierName}},

A new package is waiting for pickup.

Product: {{.Product}}

Deliver to:
  {{.RecipientName}}{{if .RecipientPhone}} ({{.RecipientPhone}}){{end}}
  {{.Street}}, {{.Number}}{{if .Complement}} - {{.Complement}}{{end}}
  {{.City}} - {{.State}}, {{.Zipcode}}
`

const cancellationSubject = "Delivery canceled"

const cancellationBody = `Hello {{.CourierName}},

The delivery below was canceled on {{.CanceledAtFormatted}}.

Product: {{.Product}}
Reported problem: {{.ProblemDescription}}

It was addressed to:
  {{.RecipientName}}{{if .RecipientPhone}} ({{.RecipientPhone}}){{end}}
  {{.Street}}, {{.Number}}{{if .Complement}} - {{.Complement}}{{end}}
  {{.City}} - {{.State}}, {{.Zipcode}}

Do not attempt to deliver this package.
`

var (
	newDeliveryTemplate  = template.Must(template.New("newDelivery").Parse(newDeliveryBody))
	cancellationTemplate = template.Must(template.New("cancellation").Parse(cancellationBody))
)

// cancellationContext extends the payload with the human-formatted timestamp
// the cancellation template renders.
type cancellationContext struct {
	Payload
	CanceledAtFormatted string
}

// renderJob produces the subject and body for a job.
// Dispatch over JobKind is exhaustive; an unknown kind is a programming error
// and not retryable.
func renderJob(job Job) (subject, body string, err error) {
	var buf bytes.Buffer

	switch job.Kind {
	case NewDeliveryNotification:
		if err = newDeliveryTemplate.Execute(&buf, job.Payload); err != nil {
			return "", "", fmt.Errorf("render %s: %w", job.Kind, err)
		}
		return newDeliverySubject, buf.String(), nil

	case CancellationNotification:
		tmplCtx := cancellationContext{Payload: job.Payload}
		if job.Payload.CanceledAt != nil {
			tmplCtx.CanceledAtFormatted = job.Payload.CanceledAt.Format("January 2, 2006 at 15:04")
		}
		if err = cancellationTemplate.Execute(&buf, tmplCtx); err != nil {
			return "", "", fmt.Errorf("render %s: %w", job.Kind, err)
		}
		return cancellationSubject, buf.String(), nil

	default:
		return "", "", fmt.Errorf("no handler for job kind %d", job.Kind)
	}
}
