package segments

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"push-console/internal/analytics"
)

// AudienceLister is the slice of the analytics provider this service needs
type AudienceLister interface {
	ListAudiences(ctx context.Context) ([]analytics.Audience, error)
}

type SegmentsService interface {
	List(ctx context.Context) ([]SegmentInfo, SegmentStats)
}

type SegmentsServiceImpl struct {
	Lister AudienceLister
	Logger *zap.Logger
}

func NewSegmentsService(lister AudienceLister, logger *zap.Logger) SegmentsService {
	return &SegmentsServiceImpl{
		Lister: lister,
		Logger: logger,
	}
}

// List merges the built-in segments with the property's custom audiences.
// An analytics failure degrades to the defaults only; it never fails the
// request.
func (s *SegmentsServiceImpl) List(ctx context.Context) ([]SegmentInfo, SegmentStats) {
	defaults := DefaultSegments()

	var custom []SegmentInfo
	audiences, err := s.Lister.ListAudiences(ctx)
	if err != nil {
		s.Logger.Warn("analytics audience lookup failed", zap.Error(err))
	} else {
		now := time.Now()
		for _, a := range audiences {
			custom = append(custom, SegmentInfo{
				ID:          a.ID,
				Name:        a.Name,
				Count:       a.Count,
				Description: a.Description,
				Type:        SegmentCustom,
				LastUpdated: &now,
			})
		}
	}

	all := append(defaults, custom...)
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Type != all[j].Type {
			return all[i].Type == SegmentDefault
		}
		return all[i].Name < all[j].Name
	})

	stats := SegmentStats{
		Total:   len(all),
		Default: len(defaults),
		Custom:  len(custom),
	}
	for _, seg := range all {
		stats.TotalUsers += seg.Count
	}

	return all, stats
}
