package storage

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type CloudinaryStore struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryStore(cloudName, apiKey, apiSecret, folder string) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &CloudinaryStore{cld: cld, folder: folder}, nil
}

func (s *CloudinaryStore) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	name, err := cleanName(name)
	if err != nil {
		return "", err
	}
	result, err := s.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:       s.folder,
		PublicID:     PublicID(name),
		Overwrite:    api.Bool(true),
		ResourceType: "auto",
	})
	if err != nil {
		return "", err
	}
	return result.SecureURL, nil
}

// PublicID maps a file name to the Cloudinary public id. The slug keeps the
// id readable; the suffix, derived from the exact name, keeps names that
// slug alike apart. Equal names map to the same id so re-uploads overwrite.
func PublicID(name string) string {
	ext := filepath.Ext(name)
	id := slug.Make(strings.TrimSuffix(name, ext))
	if id == "" {
		id = "file"
	}
	if ext = slug.Make(strings.TrimPrefix(ext, ".")); ext != "" {
		id += "-" + ext
	}
	sum := uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String()
	return id + "-" + sum[:8]
}
