package chi

import (
	"context"

	domlisting "github.com/kailas-cloud/campushub/internal/domain/listing"
	listinguc "github.com/kailas-cloud/campushub/internal/usecase/listing"
)

// catalog is a listing service with its records already in wire form.
type catalog interface {
	browse(ctx context.Context, state domlisting.State) (PageResponse, error)
	get(ctx context.Context, id string) (any, error)
	tags(ctx context.Context) (TagsResponse, error)
}

type boundCatalog[R, W any] struct {
	svc    *listinguc.Service[R]
	encode func(R) W
}

func bind[R, W any](svc *listinguc.Service[R], encode func(R) W) catalog {
	return &boundCatalog[R, W]{svc: svc, encode: encode}
}

func (c *boundCatalog[R, W]) browse(ctx context.Context, state domlisting.State) (PageResponse, error) {
	page, err := c.svc.Browse(ctx, state)
	if err != nil {
		return PageResponse{}, err //nolint:wrapcheck // already wrapped by the service
	}

	items := make([]W, len(page.Items))
	for i, it := range page.Items {
		items[i] = c.encode(it)
	}

	return PageResponse{
		Items:  items,
		Count:  page.Count,
		Total:  page.Total,
		Filter: filterToAPI(page.State),
	}, nil
}

func (c *boundCatalog[R, W]) get(ctx context.Context, id string) (any, error) {
	rec, err := c.svc.Get(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck // already wrapped by the service
	}
	return c.encode(rec), nil
}

func (c *boundCatalog[R, W]) tags(ctx context.Context) (TagsResponse, error) {
	sum, err := c.svc.Tags(ctx)
	if err != nil {
		return TagsResponse{}, err //nolint:wrapcheck // already wrapped by the service
	}
	return tagsToAPI(sum), nil
}
