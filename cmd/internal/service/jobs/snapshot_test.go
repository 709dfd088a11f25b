package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"solidusers/cmd/internal/contract"
	"solidusers/cmd/internal/utils/apierror"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type stubLister struct {
	users  []*contract.UserResponse
	apierr apierror.ErrorResponse
}

func (s *stubLister) Execute() ([]*contract.UserResponse, apierror.ErrorResponse) {
	return s.users, s.apierr
}

type recordingUploader struct {
	mu    sync.Mutex
	files map[string][]byte
	err   error
}

func (r *recordingUploader) UploadFile(_ context.Context, data []byte, filename string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return "", r.err
	}
	if r.files == nil {
		r.files = make(map[string][]byte)
	}
	r.files[filename] = data
	return "snapshots/" + filename, nil
}

func (r *recordingUploader) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.files)
}

func TestSnapshotPublisher_Publish(t *testing.T) {
	lister := &stubLister{users: []*contract.UserResponse{
		{ID: "1", Name: "Diego", Email: "diego@email.com"},
		{ID: "2", Name: "Ana", Email: "ana@email.com", Admin: true},
	}}
	uploader := &recordingUploader{}
	p := NewSnapshotPublisher(lister, uploader, time.Minute)
	p.now = func() time.Time { return time.Date(2022, 6, 1, 12, 40, 54, 0, time.UTC) }

	key, err := p.Publish(context.Background())
	require.NoError(t, err)
	require.Equal(t, "snapshots/users-20220601T124054Z.json", key)

	var snapshot UserSnapshot
	require.NoError(t, json.Unmarshal(uploader.files["users-20220601T124054Z.json"], &snapshot))
	require.Equal(t, "2022-06-01T12:40:54Z", snapshot.TakenAt)
	require.Equal(t, 2, snapshot.Count)
	require.Equal(t, lister.users, snapshot.Users)
}

func TestSnapshotPublisher_PublishErrors(t *testing.T) {
	p := NewSnapshotPublisher(&stubLister{apierr: apierror.InternalServerError}, &recordingUploader{}, time.Minute)
	_, err := p.Publish(context.Background())
	require.Error(t, err)

	p = NewSnapshotPublisher(&stubLister{}, &recordingUploader{err: errors.New("denied")}, time.Minute)
	_, err = p.Publish(context.Background())
	require.ErrorContains(t, err, "denied")
}

func TestSnapshotPublisher_StartStopsWithContext(t *testing.T) {
	uploader := &recordingUploader{}
	p := NewSnapshotPublisher(&stubLister{}, uploader, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Start(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return uploader.count() > 0 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("snapshot job did not stop")
	}
}
