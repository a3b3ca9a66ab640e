package analytics

import (
	"context"
	"fmt"

	admin "cloud.google.com/go/analytics/admin/apiv1alpha"
	"cloud.google.com/go/analytics/admin/apiv1alpha/adminpb"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"push-console/internal/config"
)

// Audience is a custom segment defined in Google Analytics
type Audience struct {
	ID          string
	Name        string
	Description string
	// GA reports membership duration, not a live user count; the console
	// surfaces it as the audience "count" the way the original UI did.
	Count int
}

// Client reads audience definitions from the GA Admin API
type Client struct {
	propertyID string
	credsFile  string
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		propertyID: cfg.AnalyticsPropertyID,
		credsFile:  cfg.FirebaseCredentialsFile,
	}
}

// ListAudiences fetches every audience for the configured property
func (c *Client) ListAudiences(ctx context.Context) ([]Audience, error) {
	if c.propertyID == "" {
		return nil, fmt.Errorf("analytics property ID is not configured")
	}

	svc, err := admin.NewAnalyticsAdminClient(ctx, option.WithCredentialsFile(c.credsFile))
	if err != nil {
		return nil, fmt.Errorf("analytics admin client: %w", err)
	}
	defer svc.Close()

	it := svc.ListAudiences(ctx, &adminpb.ListAudiencesRequest{
		Parent: fmt.Sprintf("properties/%s", c.propertyID),
	})

	var audiences []Audience
	for {
		a, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list audiences: %w", err)
		}

		audiences = append(audiences, Audience{
			ID:          lastPathSegment(a.GetName()),
			Name:        a.GetDisplayName(),
			Description: a.GetDescription(),
			Count:       int(a.GetMembershipDurationDays()),
		})
	}

	return audiences, nil
}

func lastPathSegment(name string) string {
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '/' {
			return name[i+1:]
		}
	}
	return name
}
