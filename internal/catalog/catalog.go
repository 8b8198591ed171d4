package catalog

import (
	"errors"
	"fmt"
	"net/url"

	"posterseed/internal/model"
)

const (
	PosterPrice = 199
	PosterMRP   = 299

	DefaultImageFolder = "etsy peshkuarts"
)

var (
	ErrEmptyImageURLs = errors.New("image url list is empty")
	ErrUnknownItem    = errors.New("item is not in the catalog")
)

// InvalidInputError reports malformed static catalog data.
type InvalidInputError struct {
	ItemID string
	Err    error
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid catalog item %q: %v", e.ItemID, e.Err)
}

func (e *InvalidInputError) Unwrap() error { return e.Err }

// URLBuilder returns the ordered image URLs for an item. The first URL is
// used as the thumbnail.
type URLBuilder func(itemID string) []string

// ImageKitURLs builds the two mockup URLs hosted under
// https://ik.imagekit.io/<endpointID>/<folder>/<itemID>/.
//
// Every path segment is percent-escaped, so "Thani Oruvan" is stored as
// ".../Thani%20Oruvan/mockup1.png". Rows written by earlier tooling kept the
// raw space and will not compare equal to these URLs; the upsert still
// matches them on title and overwrites the URLs.
func ImageKitURLs(endpointID, folder string) URLBuilder {
	if folder == "" {
		folder = DefaultImageFolder
	}
	base := "https://ik.imagekit.io/" + url.PathEscape(endpointID) + "/" + url.PathEscape(folder) + "/"
	return func(itemID string) []string {
		dir := base + url.PathEscape(itemID) + "/"
		return []string{
			dir + "mockup1.png",
			dir + "mockup2.png",
		}
	}
}

// Title is the product title derived from a catalog item.
func Title(itemID string) string {
	return itemID + " Poster"
}

// BuildCatalog maps each item, in order, to a product record. Items missing
// from descriptions get an empty description. The build stops at the first
// item whose URL list is empty.
func BuildCatalog(itemIDs []string, descriptions map[string]string, urls URLBuilder) ([]model.Product, error) {
	products := make([]model.Product, 0, len(itemIDs))
	for _, id := range itemIDs {
		imageURLs := urls(id)
		if len(imageURLs) == 0 {
			return nil, &InvalidInputError{ItemID: id, Err: ErrEmptyImageURLs}
		}

		products = append(products, model.Product{
			Title:        Title(id),
			Description:  descriptions[id],
			Price:        PosterPrice,
			MRP:          PosterMRP,
			ThumbnailURL: imageURLs[0],
			ImageURLs:    imageURLs,
		})
	}
	return products, nil
}

// Select narrows the catalog for a run. Explicit ids are returned in catalog
// order; limit then keeps the first n (limit <= 0 keeps everything).
func Select(itemIDs []string, only []string, limit int) ([]string, error) {
	selected := itemIDs
	if len(only) > 0 {
		wanted := make(map[string]bool, len(only))
		for _, id := range only {
			wanted[id] = true
		}

		selected = make([]string, 0, len(only))
		for _, id := range itemIDs {
			if wanted[id] {
				selected = append(selected, id)
				delete(wanted, id)
			}
		}
		for _, id := range only {
			if wanted[id] {
				return nil, &InvalidInputError{ItemID: id, Err: ErrUnknownItem}
			}
		}
	}

	if limit > 0 && limit < len(selected) {
		selected = selected[:limit]
	}
	return selected, nil
}
