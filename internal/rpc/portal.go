package rpc

import (
	"context"

	"github.com/daniilsolovey/desa-portal/internal/desa"
	"github.com/vmkteam/zenrpc/v2"
)

//go:generate zenrpc

// PortalService provides read-only RPC methods for the public pages.
type PortalService struct {
	zenrpc.Service
	manager *desa.Manager
}

func NewPortalService(manager *desa.Manager) *PortalService {
	return &PortalService{manager: manager}
}

// News retrieves published news, 9 per page, sorted by publishedAt DESC.
//
//zenrpc:filter news filter
//zenrpc:return page of news summaries
//zenrpc:500 internal server error
func (s *PortalService) News(ctx context.Context, filter NewsFilter) (*NewsPage, error) {
	page, err := s.manager.NewsList(ctx, filter.Kategori, filter.Page)
	if err != nil {
		return nil, err
	}

	return NewNewsPage(page), nil
}

// NewsBySlug retrieves a published article with up to 3 related ones.
//
//zenrpc:slug news slug
//zenrpc:return news with full content
//zenrpc:400 slug is empty
//zenrpc:404 news not found
//zenrpc:500 internal server error
func (s *PortalService) NewsBySlug(ctx context.Context, slug string) (*NewsDetail, error) {
	if slug == "" {
		return nil, zenrpc.NewStringError(400, "slug is empty")
	}

	detail, err := s.manager.NewsBySlug(ctx, slug, false)
	if err != nil {
		return nil, err
	}

	if detail == nil {
		return nil, zenrpc.NewStringError(404, "news not found")
	}

	return NewNewsDetail(detail), nil
}

// CurrentStats retrieves the current population snapshot with breakdowns.
//
//zenrpc:return current snapshot
//zenrpc:404 no statistics recorded
//zenrpc:500 internal server error
func (s *PortalService) CurrentStats(ctx context.Context) (*StatsSnapshot, error) {
	stats, err := s.manager.CurrentStats(ctx)
	if err != nil {
		return nil, err
	}

	if stats == nil {
		return nil, zenrpc.NewStringError(404, "no statistics recorded")
	}

	return NewStatsSnapshot(stats), nil
}

// Services retrieves active village services ordered by sortOrder.
//
//zenrpc:return list of services
//zenrpc:500 internal server error
func (s *PortalService) Services(ctx context.Context) ([]Service, error) {
	list, err := s.manager.Services(ctx, true)
	if err != nil {
		return nil, err
	}

	return Map(list, NewService), nil
}

// Gallery retrieves active gallery photos ordered by sortOrder.
//
//zenrpc:return list of gallery photos
//zenrpc:500 internal server error
func (s *PortalService) Gallery(ctx context.Context) ([]GalleryItem, error) {
	list, err := s.manager.Gallery(ctx, true)
	if err != nil {
		return nil, err
	}

	return Map(list, NewGalleryItem), nil
}
