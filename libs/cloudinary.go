package libs

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// BlobStore uploads a local file under a logical folder and returns its
// public download URL.
type BlobStore interface {
	Put(ctx context.Context, folder, localPath string) (string, error)
}

type CloudinaryBlobStore struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryBlobStore() (*CloudinaryBlobStore, error) {
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		cldURL := os.Getenv("CLOUDINARY_URL")
		if cldURL == "" {
			return nil, fmt.Errorf("cloudinary environment variables not set")
		}
		cld, err := cloudinary.NewFromURL(cldURL)
		if err != nil {
			return nil, fmt.Errorf("cloudinary init from URL fail: %v", err)
		}
		return &CloudinaryBlobStore{cld: cld}, nil
	}

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init from params fail: %v", err)
	}
	return &CloudinaryBlobStore{cld: cld}, nil
}

// Put uploads the file and removes the local copy regardless of outcome.
func (s *CloudinaryBlobStore) Put(ctx context.Context, folder, localPath string) (string, error) {
	if _, err := os.Stat(localPath); os.IsNotExist(err) {
		return "", fmt.Errorf("file not found: %s", localPath)
	}

	resp, err := s.cld.Upload.Upload(ctx, localPath, uploader.UploadParams{
		PublicID: fmt.Sprintf("%s_%d", folder, time.Now().UnixNano()),
		Folder:   folder,
	})

	os.Remove(localPath)

	if err != nil {
		return "", err
	}
	if resp == nil {
		return "", fmt.Errorf("cloudinary response is nil")
	}

	if resp.SecureURL == "" {
		if resp.URL != "" {
			return resp.URL, nil
		}
		return "", fmt.Errorf("both SecureURL and URL are empty")
	}

	return resp.SecureURL, nil
}
