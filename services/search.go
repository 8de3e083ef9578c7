package services

import (
	"context"
	"strings"

	"github.com/dishcovery/api-go/models"
	"github.com/dishcovery/api-go/utils"
)

// SearchQuery is one text search: the cuisine to match plus optional
// proximity and paging parameters. Origin nil means "no location given".
type SearchQuery struct {
	Cuisine       string
	Origin        *models.GeoPoint
	MaxDistanceKm float64
	Page          int
	PageSize      int
}

// ImageSearchResult pairs the label the classifier settled on with the page
// of restaurants matching it.
type ImageSearchResult struct {
	DetectedCuisine string
	Page            models.PageResult
}

// SearchPipeline wires matching, ranking, and pagination together. It holds
// no state of its own; every call is independent.
type SearchPipeline struct {
	store      RestaurantStore
	classifier *CuisineClassifier
}

func NewSearchPipeline(store RestaurantStore, classifier *CuisineClassifier) *SearchPipeline {
	return &SearchPipeline{store: store, classifier: classifier}
}

// SearchByCuisine matches restaurants by cuisine text, ranks them by
// proximity when an origin is given, and returns the requested page. An
// empty ranked set is a *NotFoundError that distinguishes "no cuisine match"
// from "none within range".
func (p *SearchPipeline) SearchByCuisine(ctx context.Context, q SearchQuery) (*models.PageResult, error) {
	if strings.TrimSpace(q.Cuisine) == "" {
		return nil, ErrInvalidQuery
	}

	records, err := p.store.FindByCuisine(ctx, q.Cuisine)
	if err != nil {
		return nil, err
	}

	ranked := Rank(records, q.Origin, q.MaxDistanceKm)
	if len(ranked) == 0 {
		if q.Origin != nil {
			max := q.MaxDistanceKm
			if max <= 0 {
				max = DefaultMaxDistanceKm
			}
			return nil, &NotFoundError{DistanceFiltered: true, MaxDistanceKm: max}
		}
		return nil, &NotFoundError{}
	}

	page := utils.Paginate(ranked, clampPositive(q.Page, utils.DefaultPage), clampPositive(q.PageSize, utils.DefaultPageSize))
	return &page, nil
}

// SearchByImage classifies the image into a cuisine label and runs the text
// search stages with it. Image-originated searches are not distance-filtered:
// results come back in matcher order, unranked. An empty match set is not an
// error here; the caller gets an empty page alongside the detected label.
func (p *SearchPipeline) SearchByImage(ctx context.Context, image []byte, mimeType string, page, pageSize int) (*ImageSearchResult, error) {
	label, err := p.classifier.Classify(ctx, image, mimeType)
	if err != nil {
		return nil, err
	}

	records, err := p.store.FindByCuisine(ctx, label)
	if err != nil {
		return nil, err
	}

	ranked := Rank(records, nil, 0)
	result := utils.Paginate(ranked, clampPositive(page, utils.DefaultPage), clampPositive(pageSize, utils.DefaultPageSize))
	return &ImageSearchResult{DetectedCuisine: label, Page: result}, nil
}

// GetRestaurant looks one restaurant up by its external id, as-is: no
// ranking, no pagination.
func (p *SearchPipeline) GetRestaurant(ctx context.Context, id string) (*models.Restaurant, error) {
	return p.store.FindByID(ctx, id)
}

func clampPositive(v, def int) int {
	if v < 1 {
		return def
	}
	return v
}
