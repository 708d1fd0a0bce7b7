package googleauth

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// DefaultKeyFile is the key file path used when neither flag, environment,
// nor config specifies one.
const DefaultKeyFile = "key.json"

// DefaultScopes is the scope set requested when the config does not
// override it: full Drive access.
var DefaultScopes = []string{drive.DriveScope}

// KeyInfo is the non-secret part of a service-account key, safe to log.
type KeyInfo struct {
	ClientEmail string `json:"client_email"`
	ProjectID   string `json:"project_id"`
}

// ReadKeyInfo extracts the non-secret identity fields from key file data.
func ReadKeyInfo(data []byte) (*KeyInfo, error) {
	var info KeyInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("failed to parse service account key: %w", err)
	}
	if info.ClientEmail == "" {
		return nil, fmt.Errorf("service account key has no client_email")
	}
	return &info, nil
}

// NewDriveService reads a service-account key file and returns a Drive
// service authenticated with the given scopes. An empty scope list selects
// DefaultScopes.
func NewDriveService(ctx context.Context, keyFile string, scopes []string) (*drive.Service, *KeyInfo, error) {
	if keyFile == "" {
		keyFile = DefaultKeyFile
	}
	if len(scopes) == 0 {
		scopes = DefaultScopes
	}

	data, err := os.ReadFile(keyFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read service account key file %s: %w", keyFile, err)
	}

	info, err := ReadKeyInfo(data)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := google.JWTConfigFromJSON(data, scopes...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load service account credentials: %w", err)
	}

	service, err := drive.NewService(ctx, option.WithHTTPClient(cfg.Client(ctx)))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create Drive service: %w", err)
	}

	return service, info, nil
}
