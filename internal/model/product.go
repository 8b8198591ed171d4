package model

// Product is one row of the products table.
type Product struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	MRP          float64  `json:"mrp"` // list price shown struck through
	ThumbnailURL string   `json:"thumbnail_url"`
	ImageURLs    []string `json:"image_urls"`
}

type SeedResult struct {
	Title        string
	Success      bool
	RowsAffected int64
	Err          error
}
