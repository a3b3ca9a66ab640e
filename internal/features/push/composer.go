package push

import (
	"time"

	"firebase.google.com/go/v4/messaging"
)

// Override adjusts a composed message for a particular send,
// e.g. the "[TEST]" title prefix on test deliveries.
type Override struct {
	TitlePrefix string
	ExtraData   map[string]string
}

// Message is a provider-ready body, still unaddressed
type Message struct {
	Notification *messaging.Notification
	Data         map[string]string
}

// Compose builds the provider message body from a payload. Pure transform:
// imageUrl is included only when non-empty, data always carries a send
// timestamp, overrides are applied last.
func Compose(p Payload, ov *Override) Message {
	notification := &messaging.Notification{
		Title: p.Title,
		Body:  p.Body,
	}
	if p.ImageURL != "" {
		notification.ImageURL = p.ImageURL
	}

	data := make(map[string]string, len(p.Data)+2)
	for k, v := range p.Data {
		data[k] = v
	}
	data["timestamp"] = time.Now().Format(time.RFC3339)
	if p.ClickAction != "" {
		data["click_action"] = p.ClickAction
	}

	if ov != nil {
		if ov.TitlePrefix != "" {
			notification.Title = ov.TitlePrefix + notification.Title
		}
		for k, v := range ov.ExtraData {
			data[k] = v
		}
	}

	return Message{Notification: notification, Data: data}
}
