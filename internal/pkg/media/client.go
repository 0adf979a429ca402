package media

import (
	"Kazuru/internal/api/config"
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/pkg/errors"
)

// videoThumbnailEager asks the host to derive a 300x300 jpg cover at
// upload time, so videos get a thumbnail without a second transfer.
const videoThumbnailEager = "c_fill,h_300,w_300/f_jpg"

// UploadInput describes one object transfer to the media host. File may be
// an io.Reader, a local path, a remote URL or a base64 data URI, matching
// what the SDK accepts.
type UploadInput struct {
	File           interface{}
	ResourceType   string // image | video
	Folder         string
	EagerThumbnail bool // video only: derive a jpg cover server-side
}

// UploadResult is the subset of the host response the rest of the app needs.
type UploadResult struct {
	SecureURL    string
	PublicID     string
	ThumbnailURL string
}

// Host is the remote media host surface. Implemented by Client; mocked in
// service tests.
type Host interface {
	Upload(ctx context.Context, in UploadInput) (*UploadResult, error)
	Destroy(ctx context.Context, publicID, resourceType string) error
}

// Signer issues browser-direct upload credentials.
type Signer interface {
	SignUpload(timestamp int64, folder string) *SignedUpload
}

// Client wraps the Cloudinary SDK. Constructed once from configuration and
// injected; there is no package-level instance.
type Client struct {
	cld       *cloudinary.Cloudinary
	cloudName string
	apiKey    string
	apiSecret string
}

func NewClient(cfg config.CloudinaryConfig) (*Client, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cloudinary client")
	}
	return &Client{
		cld:       cld,
		cloudName: cfg.CloudName,
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
	}, nil
}

func (c *Client) Upload(ctx context.Context, in UploadInput) (*UploadResult, error) {
	params := uploader.UploadParams{
		ResourceType: in.ResourceType,
		Folder:       in.Folder,
	}
	if in.EagerThumbnail {
		params.Eager = videoThumbnailEager
		params.EagerAsync = api.Bool(false)
	}

	res, err := c.cld.Upload.Upload(ctx, in.File, params)
	if err != nil {
		return nil, errors.Wrap(err, "media host upload failed")
	}
	if res.SecureURL == "" {
		return nil, errors.Errorf("media host returned no locator: %s", res.Error.Message)
	}

	out := &UploadResult{
		SecureURL: res.SecureURL,
		PublicID:  res.PublicID,
	}
	if len(res.Eager) > 0 {
		out.ThumbnailURL = res.Eager[0].SecureURL
	}
	return out, nil
}

func (c *Client) Destroy(ctx context.Context, publicID, resourceType string) error {
	_, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: resourceType,
	})
	if err != nil {
		return errors.Wrap(err, "media host destroy failed")
	}
	return nil
}

// BaseURL is the host's raw delivery prefix for this account. The media
// proxy fetches object bytes from under it.
func (c *Client) BaseURL() string {
	return fmt.Sprintf("https://res.cloudinary.com/%s/image/upload/", c.cloudName)
}
