package handler

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"assetgate/internal/domain/dto"
	"assetgate/internal/domain/entity"
)

type MockRegistrar struct{ mock.Mock }

func (m *MockRegistrar) Register(ctx context.Context, id string, req dto.RegisterRequest,
) (*dto.RegisterResponse, error) {
	args := m.Called(ctx, id, req)
	resp, _ := args.Get(0).(*dto.RegisterResponse)

	return resp, args.Error(1)
}

type MockRetriever struct{ mock.Mock }

func (m *MockRetriever) Retrieve(ctx context.Context, id, token string) (*entity.Delivery, error) {
	args := m.Called(ctx, id, token)
	d, _ := args.Get(0).(*entity.Delivery)

	return d, args.Error(1)
}

func (m *MockRetriever) Describe(ctx context.Context, id, token string) (*entity.Delivery, error) {
	args := m.Called(ctx, id, token)
	d, _ := args.Get(0).(*entity.Delivery)

	return d, args.Error(1)
}

type MockUploader struct{ mock.Mock }

func (m *MockUploader) Upload(ctx context.Context, body io.Reader, fileSize int64,
	expectedType string,
) (entity.UploadResult, error) {
	args := m.Called(ctx, body, fileSize, expectedType)

	return args.Get(0).(entity.UploadResult), args.Error(1)
}
