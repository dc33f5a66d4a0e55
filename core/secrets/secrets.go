package secrets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"roster-sync/core/database"
	"roster-sync/core/storage"

	"github.com/minio/minio-go/v7"
)

// ErrIncompleteBundle is returned when a bundle lacks a user or password.
var ErrIncompleteBundle = errors.New("secret bundle is missing credentials")

// Bundle holds the warehouse credentials kept in the secret store.
type Bundle struct {
	User     string
	Password string
	Account  string
}

// rawBundle accepts both the current keys and the legacy upper-case ones.
type rawBundle struct {
	User           string `json:"user"`
	Password       string `json:"password"`
	Account        string `json:"account"`
	LegacyUser     string `json:"SNOMIUSER"`
	LegacyPassword string `json:"SNOMIPASS"`
	LegacyAccount  string `json:"SNOMIACCOUNT"`
}

// Store retrieves credential bundles by identifier.
type Store interface {
	GetSecret(ctx context.Context, secretID string) (*Bundle, error)
}

// ObjectStore reads bundles stored as JSON objects in a bucket.
type ObjectStore struct {
	client storage.Client
	bucket string
}

// NewObjectStore creates a Store backed by object storage.
func NewObjectStore(client storage.Client, bucket string) *ObjectStore {
	return &ObjectStore{client: client, bucket: bucket}
}

// GetSecret downloads and decodes the bundle stored under secretID.
func (s *ObjectStore) GetSecret(ctx context.Context, secretID string) (*Bundle, error) {
	rc, err := s.client.GetObject(ctx, s.bucket, secretID, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch secret %s: %w", secretID, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read secret %s: %w", secretID, err)
	}

	return ParseBundle(data)
}

// ParseBundle decodes a JSON credential bundle.
func ParseBundle(data []byte) (*Bundle, error) {
	var raw rawBundle
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode secret bundle: %w", err)
	}

	b := &Bundle{
		User:     firstNonEmpty(raw.User, raw.LegacyUser),
		Password: firstNonEmpty(raw.Password, raw.LegacyPassword),
		Account:  firstNonEmpty(raw.Account, raw.LegacyAccount),
	}
	if b.User == "" || b.Password == "" {
		return nil, ErrIncompleteBundle
	}
	return b, nil
}

// Apply overlays the bundle's credentials onto a warehouse configuration.
// The account, when present, replaces the host.
func (b *Bundle) Apply(cfg database.Config) database.Config {
	cfg.User = b.User
	cfg.Password = b.Password
	if b.Account != "" {
		cfg.Host = b.Account
	}
	return cfg
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
