package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domainavailability "stayfront/internal/domain/availability"
	"stayfront/internal/domain/calday"
	domainlistings "stayfront/internal/domain/listings"
	"stayfront/internal/domain/pricing"
	domainreservation "stayfront/internal/domain/reservation"
)

type ReservationRepository struct {
	col *mongo.Collection
}

func NewReservationRepository(db *mongo.Database) *ReservationRepository {
	return &ReservationRepository{col: db.Collection("reservations")}
}

func (r *ReservationRepository) ByID(ctx context.Context, id string) (*domainreservation.Reservation, error) {
	var doc reservationDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainreservation.ErrReservationNotFound
		}
		return nil, err
	}
	return doc.toDomain()
}

func (r *ReservationRepository) Save(ctx context.Context, res *domainreservation.Reservation) error {
	doc := newReservationDocument(res)
	opts := options.Replace().SetUpsert(true)
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, opts)
	return err
}

// ActiveSpans hands back raw stored dates: the availability index does its
// own normalization and skip accounting.
func (r *ReservationRepository) ActiveSpans(ctx context.Context, listingID domainlistings.ListingID) ([]domainavailability.Span, error) {
	filter := bson.M{
		"listing_id": string(listingID),
		"status": bson.M{"$in": []string{
			string(domainreservation.StatusPending),
			string(domainreservation.StatusConfirmed),
			string(domainreservation.StatusReserved),
		}},
	}
	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var spans []domainavailability.Span
	for cursor.Next(ctx) {
		var doc reservationDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		spans = append(spans, domainavailability.Span{
			CheckIn:  doc.CheckIn,
			CheckOut: doc.CheckOut,
			Status:   doc.Status,
		})
	}
	return spans, cursor.Err()
}

func (r *ReservationRepository) ListByGuest(ctx context.Context, guestID string) ([]*domainreservation.Reservation, error) {
	cursor, err := r.col.Find(ctx, bson.M{"guest_id": guestID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []*domainreservation.Reservation
	for cursor.Next(ctx) {
		var doc reservationDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		res, err := doc.toDomain()
		if err != nil {
			// A record with corrupt dates cannot be surfaced; skip it.
			continue
		}
		out = append(out, res)
	}
	return out, cursor.Err()
}

type reservationDocument struct {
	ID        string             `bson:"_id"`
	ListingID string             `bson:"listing_id"`
	GuestID   string             `bson:"guest_id"`
	CheckIn   primitive.DateTime `bson:"check_in"`
	CheckOut  primitive.DateTime `bson:"check_out"`
	Status    string             `bson:"status"`
	Guests    int                `bson:"guests"`
	Nights    int                `bson:"nights"`
	Category  string             `bson:"category"`
	Total     float64            `bson:"total"`
	CreatedAt int64              `bson:"created_at"`
	UpdatedAt int64              `bson:"updated_at"`
}

func newReservationDocument(r *domainreservation.Reservation) reservationDocument {
	return reservationDocument{
		ID:        r.ID,
		ListingID: string(r.ListingID),
		GuestID:   r.GuestID,
		CheckIn:   primitive.NewDateTimeFromTime(r.CheckIn.Time()),
		CheckOut:  primitive.NewDateTimeFromTime(r.CheckOut.Time()),
		Status:    string(r.Status),
		Guests:    r.Guests,
		Nights:    r.Nights,
		Category:  string(r.Category),
		Total:     r.Total,
		CreatedAt: r.CreatedAt.UnixMilli(),
		UpdatedAt: r.UpdatedAt.UnixMilli(),
	}
}

func (d reservationDocument) toDomain() (*domainreservation.Reservation, error) {
	checkIn, err := calday.Normalize(d.CheckIn)
	if err != nil {
		return nil, err
	}
	checkOut, err := calday.Normalize(d.CheckOut)
	if err != nil {
		return nil, err
	}
	return &domainreservation.Reservation{
		ID:        d.ID,
		ListingID: domainlistings.ListingID(d.ListingID),
		GuestID:   d.GuestID,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		Status:    domainreservation.Status(d.Status),
		Guests:    d.Guests,
		Nights:    d.Nights,
		Category:  pricing.Category(d.Category),
		Total:     d.Total,
		CreatedAt: timestampToTime(d.CreatedAt),
		UpdatedAt: timestampToTime(d.UpdatedAt),
	}, nil
}
