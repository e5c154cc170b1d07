package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domainlistings "stayfront/internal/domain/listings"
	"stayfront/internal/domain/pricing"
)

type ListingRepository struct {
	col *mongo.Collection
}

func NewListingRepository(db *mongo.Database) *ListingRepository {
	return &ListingRepository{col: db.Collection("listings")}
}

func (r *ListingRepository) ByID(ctx context.Context, id domainlistings.ListingID) (*domainlistings.Listing, error) {
	var doc listingDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": string(id)}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainlistings.ErrListingNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *ListingRepository) Save(ctx context.Context, listing *domainlistings.Listing) error {
	doc := newListingDocument(listing)
	opts := options.Replace().SetUpsert(true)
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, opts)
	return err
}

// listingDocument mirrors the stored record. BlackoutDates is bson mixed:
// older records hold datetimes, newer ones canonical YYYY-MM-DD strings; the
// domain normalizes on read.
type listingDocument struct {
	ID              string   `bson:"_id"`
	HostID          string   `bson:"host_id"`
	Title           string   `bson:"title"`
	Description     string   `bson:"description"`
	Category        string   `bson:"category"`
	Rate            float64  `bson:"rate"`
	DiscountPercent float64  `bson:"discount_percent"`
	GuestsLimit     int      `bson:"guests_limit"`
	BlackoutDates   []any    `bson:"blackout_dates"`
	Photos          []string `bson:"photos"`
	ThumbnailURL    string   `bson:"thumbnail_url"`
	City            string   `bson:"city"`
	Country         string   `bson:"country"`
	Rating          float64  `bson:"rating"`
	CreatedAt       int64    `bson:"created_at"`
	UpdatedAt       int64    `bson:"updated_at"`
}

func newListingDocument(l *domainlistings.Listing) listingDocument {
	return listingDocument{
		ID:              string(l.ID),
		HostID:          l.HostID,
		Title:           l.Title,
		Description:     l.Description,
		Category:        string(l.Category),
		Rate:            l.Rate,
		DiscountPercent: l.DiscountPercent,
		GuestsLimit:     l.GuestsLimit,
		BlackoutDates:   l.BlackoutDates,
		Photos:          l.Photos,
		ThumbnailURL:    l.ThumbnailURL,
		City:            l.City,
		Country:         l.Country,
		Rating:          l.Rating,
		CreatedAt:       l.CreatedAt.UnixMilli(),
		UpdatedAt:       l.UpdatedAt.UnixMilli(),
	}
}

func (d listingDocument) toDomain() *domainlistings.Listing {
	return &domainlistings.Listing{
		ID:              domainlistings.ListingID(d.ID),
		HostID:          d.HostID,
		Title:           d.Title,
		Description:     d.Description,
		Category:        pricing.Category(d.Category),
		Rate:            d.Rate,
		DiscountPercent: d.DiscountPercent,
		GuestsLimit:     d.GuestsLimit,
		BlackoutDates:   d.BlackoutDates,
		Photos:          d.Photos,
		ThumbnailURL:    d.ThumbnailURL,
		City:            d.City,
		Country:         d.Country,
		Rating:          d.Rating,
		CreatedAt:       timestampToTime(d.CreatedAt),
		UpdatedAt:       timestampToTime(d.UpdatedAt),
	}
}

func timestampToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
