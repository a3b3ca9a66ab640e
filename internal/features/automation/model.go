package automation

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"push-console/internal/common/apperr"
	"push-console/internal/features/events"
)

// RuleMode tags the two rule variants: rules fired by a named application
// event, and rules targeting an analytics audience on a schedule.
type RuleMode string

const (
	ModeEvent    RuleMode = "event"
	ModeAudience RuleMode = "audience"
)

type ScheduleType string

const (
	ScheduleOnce    ScheduleType = "once"
	ScheduleDaily   ScheduleType = "daily"
	ScheduleWeekly  ScheduleType = "weekly"
	ScheduleMonthly ScheduleType = "monthly"
)

type NotificationPayload struct {
	Title       string            `bson:"title" json:"title"`
	Body        string            `bson:"body" json:"body"`
	ImageURL    string            `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	ClickAction string            `bson:"click_action,omitempty" json:"clickAction,omitempty"`
	Data        map[string]string `bson:"data,omitempty" json:"data,omitempty"`
}

type Schedule struct {
	Type       ScheduleType `bson:"type" json:"type"`
	StartDate  time.Time    `bson:"start_date" json:"startDate"`
	EndDate    *time.Time   `bson:"end_date,omitempty" json:"endDate,omitempty"`
	DaysOfWeek []int        `bson:"days_of_week,omitempty" json:"daysOfWeek,omitempty"` // 0=Sunday .. 6=Saturday
	Time       string       `bson:"time,omitempty" json:"time,omitempty"`               // "HH:MM", 24h
}

// IsDue reports whether the schedule fires within the sweep window ending
// at now. Schedules without a time-of-day are due on every sweep inside
// their date range ("once" excepted: it fires in the single window covering
// its start instant).
func (s *Schedule) IsDue(now time.Time, window time.Duration) bool {
	if s == nil {
		return false
	}
	if now.Before(s.StartDate) {
		return false
	}
	if s.EndDate != nil && now.After(*s.EndDate) {
		return false
	}

	switch s.Type {
	case ScheduleOnce:
		return s.inWindow(s.at(s.StartDate, now.Location()), now, window)
	case ScheduleDaily:
		return s.dueToday(now, window)
	case ScheduleWeekly:
		if !containsDay(s.DaysOfWeek, int(now.Weekday())) {
			return false
		}
		return s.dueToday(now, window)
	case ScheduleMonthly:
		if now.Day() != s.StartDate.Day() {
			return false
		}
		return s.dueToday(now, window)
	default:
		return false
	}
}

func (s *Schedule) dueToday(now time.Time, window time.Duration) bool {
	if s.Time == "" {
		return true
	}
	return s.inWindow(s.at(now, now.Location()), now, window)
}

// at anchors the schedule's clock time onto day's date
func (s *Schedule) at(day time.Time, loc *time.Location) time.Time {
	h, m, err := parseClock(s.Time)
	if err != nil {
		// no (valid) time-of-day: the start instant itself
		h, m = s.StartDate.Hour(), s.StartDate.Minute()
	}
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, loc)
}

func (s *Schedule) inWindow(instant, now time.Time, window time.Duration) bool {
	return instant.After(now.Add(-window)) && !instant.After(now)
}

func containsDay(days []int, day int) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}

func parseClock(clock string) (int, int, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, 0, err
	}
	return t.Hour(), t.Minute(), nil
}

// Target selects the platforms a rule addresses; All implies both
type Target struct {
	All     bool `bson:"all" json:"all"`
	IOS     bool `bson:"ios" json:"ios"`
	Android bool `bson:"android" json:"android"`
}

// Platform reduces the flags to a delivery platform selector,
// or "" when no platform is targeted
func (t Target) Platform() string {
	switch {
	case t.All, t.IOS && t.Android:
		return "all"
	case t.IOS:
		return "ios"
	case t.Android:
		return "android"
	default:
		return ""
	}
}

type Stats struct {
	Sent    int        `bson:"sent" json:"sent"`
	Success int        `bson:"success" json:"success"`
	Failure int        `bson:"failure" json:"failure"`
	LastRun *time.Time `bson:"last_run,omitempty" json:"lastRun,omitempty"`
}

// HistoryEntry is one delivery attempt; entries are immutable once appended
type HistoryEntry struct {
	ID         string    `bson:"id" json:"id"`
	Timestamp  time.Time `bson:"timestamp" json:"timestamp"`
	Success    bool      `bson:"success" json:"success"`
	Error      string    `bson:"error,omitempty" json:"error,omitempty"`
	Recipients int       `bson:"recipients,omitempty" json:"recipients,omitempty"`
}

type Principal struct {
	Email string `bson:"email" json:"email"`
	Name  string `bson:"name" json:"name"`
}

type AutomationRule struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name          string              `bson:"name" json:"name"`
	EventType     string              `bson:"event_type,omitempty" json:"eventType,omitempty"`
	AudienceName  string              `bson:"audience_name,omitempty" json:"audienceName,omitempty"`
	Notification  NotificationPayload `bson:"notification" json:"notification"`
	Schedule      *Schedule           `bson:"schedule,omitempty" json:"schedule,omitempty"`
	Target        Target              `bson:"target" json:"target"`
	Enabled       bool                `bson:"enabled" json:"enabled"`
	Archived      bool                `bson:"archived" json:"archived"`
	Stats         Stats               `bson:"stats" json:"stats"`
	History       []HistoryEntry      `bson:"history,omitempty" json:"history,omitempty"`
	CreatedBy     *Principal          `bson:"created_by,omitempty" json:"createdBy,omitempty"`
	CreatedAt     time.Time           `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time           `bson:"updated_at" json:"updatedAt"`
	LastTriggered *time.Time          `bson:"last_triggered,omitempty" json:"lastTriggered,omitempty"`
}

// Mode returns the rule's variant tag
func (r *AutomationRule) Mode() RuleMode {
	if r.EventType != "" {
		return ModeEvent
	}
	return ModeAudience
}

// ExecutionRecord is the outcome of one delivery attempt, written back to
// the rule's stats and history in a single atomic update
type ExecutionRecord struct {
	Success    bool
	Error      string
	Recipients int
	At         time.Time
}

// RuleInput is the validated request body for create and update
type RuleInput struct {
	Name         string              `json:"name"`
	EventType    string              `json:"eventType"`
	AudienceName string              `json:"audienceName"`
	Notification NotificationPayload `json:"notification"`
	Schedule     *Schedule           `json:"schedule"`
	Target       Target              `json:"target"`
	Enabled      *bool               `json:"enabled"`
}

// Validate rejects malformed input at the boundary, before it can reach
// the data model
func (in *RuleInput) Validate() error {
	if in.Name == "" {
		return apperr.Validationf("name is required")
	}
	if in.Notification.Title == "" || in.Notification.Body == "" {
		return apperr.Validationf("notification title and body are required")
	}

	hasEvent := in.EventType != ""
	hasAudience := in.AudienceName != ""
	if hasEvent == hasAudience {
		return apperr.Validationf("exactly one of eventType and audienceName must be set")
	}
	if hasEvent {
		if !events.IsKnown(in.EventType) {
			return apperr.Validationf("unknown event type %q", in.EventType)
		}
		if in.Schedule != nil {
			return apperr.Validationf("event-triggered rules cannot have a schedule")
		}
		return nil
	}

	if in.Schedule != nil {
		return in.Schedule.validate()
	}
	return nil
}

func (s *Schedule) validate() error {
	switch s.Type {
	case ScheduleOnce, ScheduleDaily, ScheduleWeekly, ScheduleMonthly:
	default:
		return apperr.Validationf("schedule type must be once, daily, weekly or monthly")
	}
	if s.StartDate.IsZero() {
		return apperr.Validationf("schedule startDate is required")
	}
	if s.EndDate != nil && s.EndDate.Before(s.StartDate) {
		return apperr.Validationf("schedule endDate must not precede startDate")
	}
	if s.Type == ScheduleWeekly && len(s.DaysOfWeek) == 0 {
		return apperr.Validationf("weekly schedules require daysOfWeek")
	}
	for _, d := range s.DaysOfWeek {
		if d < 0 || d > 6 {
			return apperr.Validationf("daysOfWeek entries must be in 0..6")
		}
	}
	if s.Time != "" {
		if _, _, err := parseClock(s.Time); err != nil {
			return apperr.Validationf("schedule time must be HH:MM")
		}
	}
	return nil
}

// ListFilter carries the admin list query parameters
type ListFilter struct {
	Status   string // all | active | inactive | archived
	Platform string // all | ios | android
	Search   string
	Sort     string // name | createdAt | updatedAt | sent | success
	Order    string // asc | desc
}

// ListStats is the aggregate block returned alongside the rule list
type ListStats struct {
	Total       int `json:"total"`
	Active      int `json:"active"`
	TodaySent   int `json:"todaySent"`
	SuccessRate int `json:"successRate"`
}
