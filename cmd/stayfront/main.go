package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	availabilityapp "stayfront/internal/app/handlers/availability"
	bookingapp "stayfront/internal/app/handlers/booking"
	listingapp "stayfront/internal/app/handlers/listings"
	domainlistings "stayfront/internal/domain/listings"
	"stayfront/internal/domain/pricing"
	domainreservation "stayfront/internal/domain/reservation"
	"stayfront/internal/infra/broker/kafka"
	"stayfront/internal/infra/config"
	mongodb "stayfront/internal/infra/db/mongo"
	ginserver "stayfront/internal/infra/http/gin"
	"stayfront/internal/infra/obs"
	"stayfront/internal/infra/storage/memory"
	"stayfront/internal/infra/storage/s3"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env := getenv("APP_ENV", "dev")
	logger := obs.NewLogger(env)

	cfg, err := config.Load()
	if err != nil {
		logger.Warn("using fallback configuration", "error", err)
		cfg.Env = env
		cfg.HTTPAddr = getenv("HTTP_ADDR", ":8080")
		cfg.ShutdownTimeout = 5 * time.Second
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}

	var (
		listingsRepo     domainlistings.Repository
		reservationsRepo domainreservation.Repository
		ready            = func() error { return nil }
		backend          = "memory"
	)
	if cfg.MongoURI != "" {
		client, err := mongodb.New(cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			logger.Error("mongo connect failed", "error", err)
			os.Exit(1)
		}
		listingsRepo = mongodb.NewListingRepository(client.DB)
		reservationsRepo = mongodb.NewReservationRepository(client.DB)
		ready = func() error {
			pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return client.Ping(pingCtx)
		}
		backend = "mongo"
		logger.Info("mongo repositories enabled", "db", cfg.MongoDB)
	} else {
		memListings := memory.NewListingRepository()
		listingsRepo = memListings
		reservationsRepo = memory.NewReservationRepository()
		fixturesPath := getenv("LISTINGS_FIXTURES", filepath.Join("data", "listings.json"))
		if err := loadListingFixtures(ctx, memListings, fixturesPath, logger); err != nil {
			logger.Warn("listing fixtures load failed", "error", err, "path", fixturesPath)
		}
		logger.Info("in-memory repositories enabled (no MONGO_URI)")
	}

	var events bookingapp.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopicPrefix, nil)
		if err != nil {
			logger.Error("kafka producer init failed", "error", err)
			os.Exit(1)
		}
		defer producer.Close()
		events = producer
		logger.Info("kafka producer enabled", "brokers", cfg.KafkaBrokers)
	}

	var photos listingapp.PhotoStore = s3.NoopPhotoStore{}
	if cfg.S3Endpoint != "" {
		bucket, err := s3.NewPhotoBucket(cfg.S3Endpoint, cfg.S3UseSSL, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3PublicEndpoint, logger)
		if err != nil {
			logger.Error("photo storage init failed", "error", err)
			os.Exit(1)
		}
		photos = bucket
	}

	source := availabilityapp.SnapshotSource{
		Listings:     listingsRepo,
		Reservations: reservationsRepo,
		Logger:       logger,
	}

	handlers := ginserver.Handlers{
		Availability: ginserver.AvailabilityHandler{
			GetCalendar: &availabilityapp.GetCalendarHandler{Source: source},
		},
		Booking: ginserver.BookingHandler{
			CheckRange:        &bookingapp.CheckRangeHandler{Source: source},
			QuoteStay:         &bookingapp.QuoteHandler{Listings: listingsRepo},
			ProposeBooking:    &bookingapp.ProposeBookingHandler{Source: source, Reservations: reservationsRepo, Events: events},
			ListGuestBookings: &bookingapp.ListGuestBookingsHandler{Reservations: reservationsRepo},
		},
		Listing: ginserver.ListingHandler{
			GetOverview: &listingapp.GetOverviewHandler{Listings: listingsRepo},
		},
		HostListing: ginserver.HostListingHandler{
			UpdateBlackoutDates: &listingapp.UpdateBlackoutsHandler{Listings: listingsRepo, Logger: logger},
			UploadListingPhoto:  &listingapp.UploadPhotoHandler{Listings: listingsRepo, Photos: photos},
		},
	}

	server := ginserver.NewServer(cfg, obs.Middleware{Logger: logger}, obs.HealthHandlers{Ready: ready, Backend: backend}, handlers)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
	}()

	logger.Info("HTTP server starting", "addr", cfg.HTTPAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("HTTP server stopped")
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

type listingFixture struct {
	ID              string   `json:"id"`
	Host            string   `json:"host"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Category        string   `json:"category"`
	Rate            float64  `json:"rate"`
	DiscountPercent float64  `json:"discount_percent"`
	GuestsLimit     int      `json:"guests_limit"`
	BlackoutDates   []string `json:"blackout_dates"`
	Photos          []string `json:"photos"`
	ThumbnailURL    string   `json:"thumbnail_url"`
	City            string   `json:"city"`
	Country         string   `json:"country"`
	Rating          float64  `json:"rating"`
}

func loadListingFixtures(ctx context.Context, repo *memory.ListingRepository, path string, logger *slog.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Info("listing fixtures file not found, skipping", "path", path)
			return nil
		}
		return fmt.Errorf("read fixtures: %w", err)
	}

	var fixtures []listingFixture
	if err := json.Unmarshal(data, &fixtures); err != nil {
		return fmt.Errorf("decode fixtures: %w", err)
	}

	now := time.Now()
	for _, fx := range fixtures {
		blackouts := make([]any, 0, len(fx.BlackoutDates))
		for _, d := range fx.BlackoutDates {
			blackouts = append(blackouts, d)
		}
		listing, err := domainlistings.New(domainlistings.CreateParams{
			ID:              domainlistings.ListingID(fx.ID),
			HostID:          fx.Host,
			Title:           fx.Title,
			Description:     fx.Description,
			Category:        pricing.Category(fx.Category),
			Rate:            fx.Rate,
			DiscountPercent: fx.DiscountPercent,
			GuestsLimit:     fx.GuestsLimit,
			BlackoutDates:   blackouts,
			Photos:          fx.Photos,
			ThumbnailURL:    fx.ThumbnailURL,
			City:            fx.City,
			Country:         fx.Country,
			Rating:          fx.Rating,
			Now:             now,
		})
		if err != nil {
			logger.Error("fixture invalid", "listing_id", fx.ID, "error", err)
			continue
		}
		if err := repo.Save(ctx, listing); err != nil {
			logger.Error("cannot store fixture listing", "listing_id", fx.ID, "error", err)
			continue
		}
		logger.Info("listing fixture imported", "listing_id", listing.ID)
	}
	return nil
}
