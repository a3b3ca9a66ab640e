package segments

import "time"

type SegmentType string

const (
	SegmentDefault SegmentType = "default"
	SegmentCustom  SegmentType = "custom"
)

// SegmentInfo is a selectable audience target in the console
type SegmentInfo struct {
	ID          string      `json:"id,omitempty"`
	Name        string      `json:"name"`
	Count       int         `json:"count"`
	Description string      `json:"description,omitempty"`
	Type        SegmentType `json:"type"`
	LastUpdated *time.Time  `json:"lastUpdated,omitempty"`
}

// SegmentStats is the aggregate block returned with the segment list
type SegmentStats struct {
	Total      int `json:"total"`
	Default    int `json:"default"`
	Custom     int `json:"custom"`
	TotalUsers int `json:"totalUsers"`
}

// DefaultSegments returns the built-in audiences every property gets,
// with their last published membership counts.
func DefaultSegments() []SegmentInfo {
	return []SegmentInfo{
		{
			ID:          "inactive_7days",
			Name:        "Inactive for 7 days",
			Count:       143114,
			Description: "Users who have not opened the app in the last 7 days",
			Type:        SegmentDefault,
		},
		{
			ID:          "inactive_30days",
			Name:        "Inactive for 30 days",
			Count:       118060,
			Description: "Users who have not opened the app in the last 30 days",
			Type:        SegmentDefault,
		},
		{
			ID:          "map_qr_no_ride",
			Name:        "Viewed map or QR without riding",
			Count:       443070,
			Description: "Users who checked the map or QR screen but never started a ride",
			Type:        SegmentDefault,
		},
		{
			ID:          "no_purchase",
			Name:        "Never purchased",
			Count:       1121117,
			Description: "Users with no purchase history",
			Type:        SegmentDefault,
		},
		{
			ID:          "test_user",
			Name:        "user_is_test_server_user",
			Count:       86,
			Description: "Test server users",
			Type:        SegmentDefault,
		},
	}
}
