package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/labstack/gommon/log"
	"solidusers/cmd/internal/contract"
	"solidusers/cmd/internal/infrastructure/aws/storage"
	"solidusers/cmd/internal/utils/apierror"
	"time"
)

type UserLister interface {
	Execute() ([]*contract.UserResponse, apierror.ErrorResponse)
}

// UserSnapshot is the document written on every run.
type UserSnapshot struct {
	TakenAt string                   `json:"taken_at"`
	Count   int                      `json:"count"`
	Users   []*contract.UserResponse `json:"users"`
}

// SnapshotPublisher periodically exports the user directory as JSON.
// The export is a report, nothing reads it back into the service.
type SnapshotPublisher struct {
	users    UserLister
	storage  storage.S3Client
	interval time.Duration
	now      func() time.Time
}

func NewSnapshotPublisher(users UserLister, storage storage.S3Client, interval time.Duration) *SnapshotPublisher {
	return &SnapshotPublisher{
		users:    users,
		storage:  storage,
		interval: interval,
		now:      time.Now,
	}
}

func (p *SnapshotPublisher) Start(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	log.Infof("User snapshot job started, interval: %s", p.interval)

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping user snapshot job...")
			return
		case <-ticker.C:
			if _, err := p.Publish(ctx); err != nil {
				log.Errorf("Snapshot: %v", err)
			}
		}
	}
}

// Publish uploads one snapshot and returns the object key.
func (p *SnapshotPublisher) Publish(ctx context.Context) (string, error) {
	users, apierr := p.users.Execute()
	if apierr != nil {
		return "", fmt.Errorf("failed to list users (status %d)", apierr.Code())
	}

	takenAt := p.now().UTC()
	snapshot := &UserSnapshot{
		TakenAt: takenAt.Format(time.RFC3339),
		Count:   len(users),
		Users:   users,
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}

	filename := fmt.Sprintf("users-%s.json", takenAt.Format("20060102T150405Z"))
	key, err := p.storage.UploadFile(ctx, data, filename)
	if err != nil {
		return "", fmt.Errorf("failed to upload snapshot %s: %w", filename, err)
	}

	log.Infof("Snapshot: uploaded %d users to %s", len(users), key)
	return key, nil
}
