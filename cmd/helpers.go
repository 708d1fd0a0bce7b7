package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/avedra/drivectl/internal/drive"
	"github.com/avedra/drivectl/internal/googleauth"
	"github.com/avedra/drivectl/internal/logging"
)

// newDriveClient authenticates with the configured service-account key and
// returns the Drive client.
func newDriveClient(ctx context.Context) (*drive.Client, error) {
	service, info, err := googleauth.NewDriveService(ctx, cfg.KeyFile, cfg.Scopes)
	if err != nil {
		return nil, err
	}
	slog.Debug("authenticated",
		slog.String("client_email", info.ClientEmail),
		slog.String("project", info.ProjectID))
	return drive.NewClient(service), nil
}

// listOptions builds the configured listing options.
func listOptions() drive.ListOptions {
	return drive.ListOptions{
		PageSize: cfg.PageSize,
		MaxPages: cfg.MaxPages,
	}
}

// resolveFileID turns a name into a file ID. An explicit id bypasses the
// lookup entirely; strict switches from the fast first-page lookup to the
// full scan that rejects ambiguous names.
func resolveFileID(ctx context.Context, cat drive.Catalog, name, id string, kind drive.Kind, strict bool) (string, error) {
	if id != "" {
		return id, nil
	}
	if name == "" {
		return "", fmt.Errorf("a name argument or --id is required")
	}

	find := drive.FindFirst
	if strict {
		find = drive.FindUnique
	}

	info, found, err := find(ctx, cat, name, kind)
	if err != nil {
		return "", err
	}
	if !found {
		return "", fmt.Errorf("%s %q was not found", kind, name)
	}
	slog.Debug("resolved name",
		logging.Name(name),
		logging.FileID(info.ID))
	return info.ID, nil
}

// resolveParents resolves an optional parent folder given either by name or
// by ID. It returns nil when neither is set.
func resolveParents(ctx context.Context, cat drive.Catalog, parentName, parentID string, strict bool) ([]string, error) {
	if parentID != "" {
		return []string{parentID}, nil
	}
	if parentName == "" {
		return nil, nil
	}

	id, err := resolveFileID(ctx, cat, parentName, "", drive.KindFolder, strict)
	if err != nil {
		return nil, err
	}
	return []string{id}, nil
}
