package push

import (
	"testing"
	"time"
)

func TestCompose_Notification(t *testing.T) {
	tests := []struct {
		name      string
		payload   Payload
		override  *Override
		wantTitle string
		wantImage string
	}{
		{
			name:      "Plain title and body",
			payload:   Payload{Title: "Hello", Body: "World"},
			wantTitle: "Hello",
		},
		{
			name:      "Image included when set",
			payload:   Payload{Title: "Hello", Body: "World", ImageURL: "https://img.example/x.png"},
			wantTitle: "Hello",
			wantImage: "https://img.example/x.png",
		},
		{
			name:      "Empty image omitted",
			payload:   Payload{Title: "Hello", Body: "World", ImageURL: ""},
			wantTitle: "Hello",
			wantImage: "",
		},
		{
			name:      "Test prefix applied",
			payload:   Payload{Title: "Hello", Body: "World"},
			override:  &Override{TitlePrefix: "[TEST] "},
			wantTitle: "[TEST] Hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := Compose(tt.payload, tt.override)
			if msg.Notification.Title != tt.wantTitle {
				t.Errorf("title = %q, want %q", msg.Notification.Title, tt.wantTitle)
			}
			if msg.Notification.Body != tt.payload.Body {
				t.Errorf("body = %q, want %q", msg.Notification.Body, tt.payload.Body)
			}
			if msg.Notification.ImageURL != tt.wantImage {
				t.Errorf("imageUrl = %q, want %q", msg.Notification.ImageURL, tt.wantImage)
			}
		})
	}
}

func TestCompose_Data(t *testing.T) {
	payload := Payload{
		Title:       "Hello",
		Body:        "World",
		ClickAction: "OPEN_HOME",
		Data:        map[string]string{"type": "promo"},
	}

	msg := Compose(payload, &Override{ExtraData: map[string]string{"campaign": "spring"}})

	if msg.Data["type"] != "promo" {
		t.Errorf("data.type = %q, want %q", msg.Data["type"], "promo")
	}
	if msg.Data["click_action"] != "OPEN_HOME" {
		t.Errorf("data.click_action = %q, want %q", msg.Data["click_action"], "OPEN_HOME")
	}
	if msg.Data["campaign"] != "spring" {
		t.Errorf("data.campaign = %q, want %q", msg.Data["campaign"], "spring")
	}
	if _, err := time.Parse(time.RFC3339, msg.Data["timestamp"]); err != nil {
		t.Errorf("data.timestamp %q is not RFC3339: %v", msg.Data["timestamp"], err)
	}

	// The composer must not mutate the template's own data map
	if _, ok := payload.Data["timestamp"]; ok {
		t.Error("compose mutated the input payload data")
	}
	if _, ok := payload.Data["campaign"]; ok {
		t.Error("compose leaked override data into the input payload")
	}
}
