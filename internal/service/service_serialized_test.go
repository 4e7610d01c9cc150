package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-fort-note/internal/config"
	"github.com/MKhiriev/go-fort-note/internal/logger"
	"github.com/MKhiriev/go-fort-note/internal/mock"
	"github.com/MKhiriev/go-fort-note/internal/store"
	"github.com/MKhiriev/go-fort-note/models"
)

// TestSerializedNoteService_ConcurrentCreates verifies that no
// read-modify-write cycle is lost when many goroutines create notes at once.
func TestSerializedNoteService_ConcurrentCreates(t *testing.T) {
	services, err := NewServices(store.NewMemoryStorage(), config.App{Version: "test"}, logger.Nop())
	require.NoError(t, err)
	svc := services.NoteService

	const workers = 32
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.Create(context.Background(), "T", "<p>x</p>")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	notes, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, notes, workers)

	ids := make(map[string]struct{}, workers)
	for _, n := range notes {
		ids[n.ID] = struct{}{}
	}
	assert.Len(t, ids, workers, "ids are unique")
}

// TestSerializedNoteService_Delegates verifies that every call reaches the
// wrapped service with its arguments and results intact.
func TestSerializedNoteService_Delegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockNoteService(ctrl)
	svc := NewSerializedNoteService(inner)
	ctx := context.Background()

	note := models.Note{ID: "n"}
	bulk := models.BulkResult{Changed: []string{"n"}}

	inner.EXPECT().Create(ctx, "T", "C").Return(note, nil)
	inner.EXPECT().Update(ctx, "n", "T", "C").Return(nil)
	inner.EXPECT().Delete(ctx, "n").Return(nil)
	inner.EXPECT().List(ctx).Return([]models.Note{note}, nil)
	inner.EXPECT().Get(ctx, "n").Return(note, nil)
	inner.EXPECT().Lock(ctx, "n", "pw").Return(nil)
	inner.EXPECT().Unlock(ctx, "n", "pw").Return("plain", nil)
	inner.EXPECT().LockAll(ctx, "pw").Return(bulk, nil)
	inner.EXPECT().UnlockAll(ctx, "pw").Return(bulk, nil)
	inner.EXPECT().Reconcile(ctx).Return(bulk, nil)

	got, err := svc.Create(ctx, "T", "C")
	require.NoError(t, err)
	assert.Equal(t, note, got)
	require.NoError(t, svc.Update(ctx, "n", "T", "C"))
	require.NoError(t, svc.Delete(ctx, "n"))
	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	_, err = svc.Get(ctx, "n")
	require.NoError(t, err)
	require.NoError(t, svc.Lock(ctx, "n", "pw"))
	plain, err := svc.Unlock(ctx, "n", "pw")
	require.NoError(t, err)
	assert.Equal(t, "plain", plain)
	for _, call := range []func(context.Context) (models.BulkResult, error){
		func(ctx context.Context) (models.BulkResult, error) { return svc.LockAll(ctx, "pw") },
		func(ctx context.Context) (models.BulkResult, error) { return svc.UnlockAll(ctx, "pw") },
		svc.Reconcile,
	} {
		res, err := call(ctx)
		require.NoError(t, err)
		assert.Equal(t, bulk, res)
	}
}

func TestNewServices_RequiresVersion(t *testing.T) {
	_, err := NewServices(store.NewMemoryStorage(), config.App{}, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
