package listings

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"stayfront/internal/app/dto"
	domainlistings "stayfront/internal/domain/listings"
)

// PhotoStore is the object-storage port; matches the S3 uploader.
type PhotoStore interface {
	Upload(ctx context.Context, key string, reader io.Reader, contentType string) (string, error)
}

type UploadPhotoCommand struct {
	ListingID   string
	Filename    string
	ContentType string
	Content     io.Reader
}

type UploadPhotoHandler struct {
	Listings domainlistings.Repository
	Photos   PhotoStore
	Now      func() time.Time
}

func (h *UploadPhotoHandler) Handle(ctx context.Context, cmd UploadPhotoCommand) (dto.PhotoUpload, error) {
	listing, err := h.Listings.ByID(ctx, domainlistings.ListingID(cmd.ListingID))
	if err != nil {
		return dto.PhotoUpload{}, err
	}

	ext := strings.ToLower(path.Ext(cmd.Filename))
	key := fmt.Sprintf("listings/%s/%s%s", cmd.ListingID, uuid.NewString(), ext)
	url, err := h.Photos.Upload(ctx, key, cmd.Content, cmd.ContentType)
	if err != nil {
		return dto.PhotoUpload{}, err
	}

	listing.AddPhoto(url, h.now())
	if err := h.Listings.Save(ctx, listing); err != nil {
		return dto.PhotoUpload{}, err
	}
	return dto.PhotoUpload{ListingID: cmd.ListingID, URL: url}, nil
}

func (h *UploadPhotoHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}
