package automation

import (
	"errors"
	"testing"
	"time"

	"push-console/internal/common/apperr"
)

func datePtr(t time.Time) *time.Time { return &t }

func TestSchedule_IsDue(t *testing.T) {
	// sweeps run every 5 minutes in production
	window := 5 * time.Minute
	now := time.Date(2025, 6, 18, 9, 2, 0, 0, time.UTC) // a Wednesday

	tests := []struct {
		name     string
		schedule *Schedule
		want     bool
	}{
		{
			name:     "Nil schedule never due",
			schedule: nil,
			want:     false,
		},
		{
			name: "Before start date",
			schedule: &Schedule{
				Type:      ScheduleDaily,
				StartDate: now.Add(24 * time.Hour),
			},
			want: false,
		},
		{
			name: "After end date",
			schedule: &Schedule{
				Type:      ScheduleDaily,
				StartDate: now.Add(-48 * time.Hour),
				EndDate:   datePtr(now.Add(-time.Hour)),
			},
			want: false,
		},
		{
			name: "Daily without time fires every sweep",
			schedule: &Schedule{
				Type:      ScheduleDaily,
				StartDate: now.Add(-48 * time.Hour),
			},
			want: true,
		},
		{
			name: "Daily at time inside the window",
			schedule: &Schedule{
				Type:      ScheduleDaily,
				StartDate: now.Add(-48 * time.Hour),
				Time:      "09:00",
			},
			want: true,
		},
		{
			name: "Daily at time outside the window",
			schedule: &Schedule{
				Type:      ScheduleDaily,
				StartDate: now.Add(-48 * time.Hour),
				Time:      "12:00",
			},
			want: false,
		},
		{
			name: "Daily at time already swept",
			schedule: &Schedule{
				Type:      ScheduleDaily,
				StartDate: now.Add(-48 * time.Hour),
				Time:      "08:50",
			},
			want: false,
		},
		{
			name: "Once fires in its start window",
			schedule: &Schedule{
				Type:      ScheduleOnce,
				StartDate: time.Date(2025, 6, 18, 9, 0, 0, 0, time.UTC),
			},
			want: true,
		},
		{
			name: "Once does not fire the next day",
			schedule: &Schedule{
				Type:      ScheduleOnce,
				StartDate: time.Date(2025, 6, 17, 9, 0, 0, 0, time.UTC),
			},
			want: false,
		},
		{
			name: "Weekly on matching weekday",
			schedule: &Schedule{
				Type:       ScheduleWeekly,
				StartDate:  now.Add(-30 * 24 * time.Hour),
				DaysOfWeek: []int{int(time.Wednesday)},
				Time:       "09:00",
			},
			want: true,
		},
		{
			name: "Weekly on other weekday",
			schedule: &Schedule{
				Type:       ScheduleWeekly,
				StartDate:  now.Add(-30 * 24 * time.Hour),
				DaysOfWeek: []int{int(time.Monday)},
				Time:       "09:00",
			},
			want: false,
		},
		{
			name: "Monthly on matching day of month",
			schedule: &Schedule{
				Type:      ScheduleMonthly,
				StartDate: time.Date(2025, 1, 18, 0, 0, 0, 0, time.UTC),
				Time:      "09:00",
			},
			want: true,
		},
		{
			name: "Monthly on other day of month",
			schedule: &Schedule{
				Type:      ScheduleMonthly,
				StartDate: time.Date(2025, 1, 19, 0, 0, 0, 0, time.UTC),
				Time:      "09:00",
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.schedule.IsDue(now, window); got != tt.want {
				t.Errorf("IsDue = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTarget_Platform(t *testing.T) {
	tests := []struct {
		name   string
		target Target
		want   string
	}{
		{name: "All flag", target: Target{All: true}, want: "all"},
		{name: "Both platforms", target: Target{IOS: true, Android: true}, want: "all"},
		{name: "iOS only", target: Target{IOS: true}, want: "ios"},
		{name: "Android only", target: Target{Android: true}, want: "android"},
		{name: "Nothing targeted", target: Target{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.target.Platform(); got != tt.want {
				t.Errorf("Platform() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRule_Mode(t *testing.T) {
	eventRule := &AutomationRule{EventType: "crm_update"}
	if eventRule.Mode() != ModeEvent {
		t.Errorf("mode = %q, want %q", eventRule.Mode(), ModeEvent)
	}
	audienceRule := &AutomationRule{AudienceName: "vip"}
	if audienceRule.Mode() != ModeAudience {
		t.Errorf("mode = %q, want %q", audienceRule.Mode(), ModeAudience)
	}
}

func TestRuleInput_Validate(t *testing.T) {
	notification := NotificationPayload{Title: "Hello", Body: "World"}
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   RuleInput
		wantErr bool
	}{
		{
			name:    "Valid event rule",
			input:   RuleInput{Name: "r", EventType: "crm_update", Notification: notification},
			wantErr: false,
		},
		{
			name:    "Valid audience rule without schedule",
			input:   RuleInput{Name: "r", AudienceName: "vip", Notification: notification},
			wantErr: false,
		},
		{
			name: "Valid audience rule with schedule",
			input: RuleInput{
				Name: "r", AudienceName: "vip", Notification: notification,
				Schedule: &Schedule{Type: ScheduleDaily, StartDate: start, Time: "09:00"},
			},
			wantErr: false,
		},
		{
			name:    "Missing name",
			input:   RuleInput{EventType: "crm_update", Notification: notification},
			wantErr: true,
		},
		{
			name:    "Missing notification body",
			input:   RuleInput{Name: "r", EventType: "crm_update", Notification: NotificationPayload{Title: "Hello"}},
			wantErr: true,
		},
		{
			name:    "Neither event nor audience",
			input:   RuleInput{Name: "r", Notification: notification},
			wantErr: true,
		},
		{
			name:    "Both event and audience",
			input:   RuleInput{Name: "r", EventType: "crm_update", AudienceName: "vip", Notification: notification},
			wantErr: true,
		},
		{
			name:    "Unknown event type",
			input:   RuleInput{Name: "r", EventType: "bogus_event", Notification: notification},
			wantErr: true,
		},
		{
			name: "Event rule with schedule",
			input: RuleInput{
				Name: "r", EventType: "crm_update", Notification: notification,
				Schedule: &Schedule{Type: ScheduleDaily, StartDate: start},
			},
			wantErr: true,
		},
		{
			name: "Bad schedule type",
			input: RuleInput{
				Name: "r", AudienceName: "vip", Notification: notification,
				Schedule: &Schedule{Type: "hourly", StartDate: start},
			},
			wantErr: true,
		},
		{
			name: "Schedule missing start date",
			input: RuleInput{
				Name: "r", AudienceName: "vip", Notification: notification,
				Schedule: &Schedule{Type: ScheduleDaily},
			},
			wantErr: true,
		},
		{
			name: "End date before start date",
			input: RuleInput{
				Name: "r", AudienceName: "vip", Notification: notification,
				Schedule: &Schedule{Type: ScheduleDaily, StartDate: start, EndDate: datePtr(start.Add(-time.Hour))},
			},
			wantErr: true,
		},
		{
			name: "Weekly without days",
			input: RuleInput{
				Name: "r", AudienceName: "vip", Notification: notification,
				Schedule: &Schedule{Type: ScheduleWeekly, StartDate: start},
			},
			wantErr: true,
		},
		{
			name: "Day of week out of range",
			input: RuleInput{
				Name: "r", AudienceName: "vip", Notification: notification,
				Schedule: &Schedule{Type: ScheduleWeekly, StartDate: start, DaysOfWeek: []int{7}},
			},
			wantErr: true,
		},
		{
			name: "Malformed time of day",
			input: RuleInput{
				Name: "r", AudienceName: "vip", Notification: notification,
				Schedule: &Schedule{Type: ScheduleDaily, StartDate: start, Time: "9am"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantErr {
				if !errors.Is(err, apperr.ErrValidation) {
					t.Errorf("err = %v, want a validation error", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
