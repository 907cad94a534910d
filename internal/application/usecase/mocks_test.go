package usecase

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"assetgate/internal/domain/entity"
	"assetgate/internal/domain/model"
	"assetgate/internal/domain/repository/database"
)

type MockWriter struct{ mock.Mock }

func (m *MockWriter) Write(ctx context.Context, id string, record *model.Record) error {
	args := m.Called(ctx, id, record)

	return args.Error(0)
}

type MockRetriever struct{ mock.Mock }

func (m *MockRetriever) GetByID(ctx context.Context, id string) (*model.Record, error) {
	args := m.Called(ctx, id)
	rec, _ := args.Get(0).(*model.Record)

	return rec, args.Error(1)
}

type MockGetter struct{ mock.Mock }

func (m *MockGetter) GetByKey(ctx context.Context, key string) (*entity.Object, error) {
	args := m.Called(ctx, key)
	if fn, ok := args.Get(0).(func(context.Context, string) *entity.Object); ok {
		return fn(ctx, key), args.Error(1)
	}
	obj, _ := args.Get(0).(*entity.Object)

	return obj, args.Error(1)
}

type MockFetcher struct{ mock.Mock }

func (m *MockFetcher) FetchByURL(ctx context.Context, url string) (*entity.Object, error) {
	args := m.Called(ctx, url)
	obj, _ := args.Get(0).(*entity.Object)

	return obj, args.Error(1)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, message string) error {
	args := m.Called(ctx, message)

	return args.Error(0)
}

type MockObjectUploader struct{ mock.Mock }

func (m *MockObjectUploader) UploadFile(ctx context.Context, body io.Reader, fileSize int64, key,
	expectedType string,
) (entity.UploadResult, error) {
	args := m.Called(ctx, body, fileSize, key, expectedType)

	return args.Get(0).(entity.UploadResult), args.Error(1)
}

// memoryStore is a map-backed metadata store for round-trip tests.
type memoryStore struct {
	records map[string]*model.Record
}

func newMemoryStore() *memoryStore {
	return &memoryStore{records: make(map[string]*model.Record)}
}

func (s *memoryStore) Write(_ context.Context, id string, record *model.Record) error {
	s.records[id] = record

	return nil
}

func (s *memoryStore) GetByID(_ context.Context, id string) (*model.Record, error) {
	rec, ok := s.records[id]
	if !ok {
		return nil, database.ErrNotFound
	}

	return rec, nil
}
