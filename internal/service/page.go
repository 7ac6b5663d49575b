package service

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"mcpsite/internal/model"
	"mcpsite/internal/page"
	"mcpsite/internal/site"
)

// ErrPageNotFound is returned by Render for unknown slugs.
var ErrPageNotFound = site.ErrPageNotFound

// ApplicationListResult is the service-level DTO for the application records.
type ApplicationListResult struct {
	Items []model.Application `json:"data"`
	Total int                 `json:"total"`
}

// PageListResult is the service-level DTO for navigation entries.
type PageListResult struct {
	Items []model.PageInfo `json:"data"`
}

// PageService defines the use cases for serving the site.
type PageService interface {
	// Render returns the full HTML document for the page identified by slug.
	Render(ctx context.Context, slug string) ([]byte, error)

	// Pages returns the navigation entries in display order.
	Pages(ctx context.Context) *PageListResult

	// Applications returns the application records in declared order.
	Applications(ctx context.Context) *ApplicationListResult

	// Check renders every page once and reports the first failure.
	Check(ctx context.Context) error
}

// pageService is a concrete implementation of PageService.
type pageService struct {
	site   *site.Site
	tracer trace.Tracer
}

// NewPageService constructs a new PageService over s.
func NewPageService(s *site.Site) PageService {
	return &pageService{site: s, tracer: otel.Tracer("mcpsite/internal/service")}
}

func (s *pageService) Render(ctx context.Context, slug string) ([]byte, error) {
	_, span := s.tracer.Start(ctx, "page.render", trace.WithAttributes(attribute.String("page.slug", slug)))
	defer span.End()

	out, err := s.site.Render(slug)
	if err != nil {
		if !errors.Is(err, ErrPageNotFound) {
			span.RecordError(err)
			span.SetStatus(codes.Error, "render failed")
		}
		return nil, err
	}
	span.SetAttributes(attribute.Int("page.bytes", len(out)))
	return out, nil
}

func (s *pageService) Pages(_ context.Context) *PageListResult {
	return &PageListResult{Items: s.site.Pages()}
}

func (s *pageService) Applications(_ context.Context) *ApplicationListResult {
	items := page.ApplicationList()
	return &ApplicationListResult{Items: items, Total: len(items)}
}

func (s *pageService) Check(ctx context.Context) error {
	for _, p := range s.site.Pages() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := s.Render(ctx, p.Slug); err != nil {
			return fmt.Errorf("check %s: %w", p.Slug, err)
		}
	}
	return nil
}
