package model

// Product defaults applied when the field is omitted from the request.
const DefaultRating = 4.5

// DefaultSizes is the size run assigned to products created without sizes.
var DefaultSizes = []string{"6", "7", "8", "9", "10", "11", "12"}

// ProductRequest is the body of POST /api/products.
// Pointer fields distinguish an omitted key from a zero value.
type ProductRequest struct {
	Title        *string  `json:"title" validate:"required" doc:"Product title"`
	Description  *string  `json:"description" nullable:"true" doc:"Product description"`
	Price        *float64 `json:"price" validate:"required,gte=0" doc:"Price in dollars"`
	Category     *string  `json:"category" validate:"required" doc:"Product category"`
	Images       []string `json:"images" doc:"List of image URLs"`
	Featured     *bool    `json:"featured" doc:"Whether product is featured on homepage"`
	Rating       *float64 `json:"rating" validate:"omitempty,gte=0,lte=5" doc:"Average rating"`
	ReviewsCount *int     `json:"reviews_count" validate:"omitempty,gte=0" doc:"Number of reviews"`
	Sizes        []string `json:"sizes" doc:"Available sizes"`
	InStock      *bool    `json:"in_stock" doc:"Whether product is in stock"`
}

// Collection returns the collection products are stored in.
func (p *ProductRequest) Collection() string { return CollectionProduct }

// Document converts the request to a store document with defaults applied.
func (p *ProductRequest) Document() Document {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	sizes := p.Sizes
	if sizes == nil {
		sizes = append([]string(nil), DefaultSizes...)
	}

	return Document{
		"title":         valueOrNil(p.Title),
		"description":   valueOrNil(p.Description),
		"price":         valueOrNil(p.Price),
		"category":      valueOrNil(p.Category),
		"images":        images,
		"featured":      valueOr(p.Featured, false),
		"rating":        valueOr(p.Rating, DefaultRating),
		"reviews_count": valueOr(p.ReviewsCount, 0),
		"sizes":         sizes,
		"in_stock":      valueOr(p.InStock, true),
	}
}

// ReviewRequest is a product review. ProductID is not checked against
// the product collection.
type ReviewRequest struct {
	ProductID *string `json:"product_id" validate:"required" doc:"Related product id as string"`
	Name      *string `json:"name" validate:"required" doc:"Reviewer name"`
	Rating    *int    `json:"rating" validate:"required,gte=1,lte=5" doc:"Star rating 1-5"`
	Comment   *string `json:"comment" nullable:"true" doc:"Review text"`
}

func (r *ReviewRequest) Collection() string { return CollectionReview }

func (r *ReviewRequest) Document() Document {
	return Document{
		"product_id": valueOrNil(r.ProductID),
		"name":       valueOrNil(r.Name),
		"rating":     valueOrNil(r.Rating),
		"comment":    valueOrNil(r.Comment),
	}
}

// valueOr dereferences p, returning def when p is nil.
func valueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

// valueOrNil dereferences p, returning an untyped nil when p is nil so the
// stored document holds a null rather than a typed zero.
func valueOrNil[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
