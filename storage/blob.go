package storage

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/google/uuid"
)

// BlobStore uploads user-supplied images and returns their public URL.
type BlobStore interface {
	Upload(ctx context.Context, filename string, data []byte) (string, error)
	Delete(ctx context.Context, blobURL string) error
}

// AzureBlobStore stores blobs in a single Azure Storage container.
type AzureBlobStore struct {
	client    *azblob.Client
	container string
}

func NewAzureBlobStore(connectionString, container string) (*AzureBlobStore, error) {
	client, err := azblob.NewClientFromConnectionString(connectionString, nil)
	if err != nil {
		return nil, err
	}
	return &AzureBlobStore{client: client, container: container}, nil
}

// Upload writes the data under a random blob name that keeps the original
// extension, and returns the blob URL.
func (s *AzureBlobStore) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	blobName := uuid.NewString() + path.Ext(filename)
	if _, err := s.client.UploadBuffer(ctx, s.container, blobName, data, nil); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%s/%s", s.client.URL(), s.container, blobName), nil
}

// Delete removes the blob addressed by a URL previously returned by Upload.
func (s *AzureBlobStore) Delete(ctx context.Context, blobURL string) error {
	idx := strings.LastIndex(blobURL, "/")
	if idx < 0 {
		return fmt.Errorf("malformed blob url %q", blobURL)
	}
	blobName := blobURL[idx+1:]
	_, err := s.client.DeleteBlob(ctx, s.container, blobName, nil)
	return err
}
