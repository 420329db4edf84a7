package usecase

import (
	"context"
	"fmt"

	"sitesnap/internal/domain/entity"
	"sitesnap/internal/domain/model"
)

type fakeExtractor struct {
	fn func(data []byte) (*entity.Capture, error)
}

func (f *fakeExtractor) Extract(data []byte) (*entity.Capture, error) {
	return f.fn(data)
}

type fakeBlobStore struct {
	objects map[string][]byte
	order   []string
	putErr  error
	failOn  int // 1-based index of the Put call that fails; 0 disables
	puts    int
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{objects: map[string][]byte{}}
}

func (f *fakeBlobStore) Put(_ context.Context, key string, data []byte) (entity.StoredObject, error) {
	f.puts++
	if f.putErr != nil && (f.failOn == 0 || f.puts == f.failOn) {
		return entity.StoredObject{}, f.putErr
	}

	f.objects[key] = data
	f.order = append(f.order, key)

	return entity.StoredObject{
		Key:      key,
		Size:     int64(len(data)),
		Type:     "image/jpeg",
		Location: "http://blobs.local/site-images/" + key,
	}, nil
}

func (f *fakeBlobStore) Read(_ context.Context, key string) ([]byte, error) {
	data, ok := f.objects[key]
	if !ok {
		return nil, fmt.Errorf("object %s not found", key)
	}

	return data, nil
}

type fakeWriter struct {
	records []*model.ImageRecord
	err     error
}

func (f *fakeWriter) Write(_ context.Context, record *model.ImageRecord) error {
	if f.err != nil {
		return f.err
	}

	f.records = append(f.records, record)

	return nil
}

type fakeFinder struct {
	records []model.ImageRecord
	err     error
}

func (f *fakeFinder) FindBySiteAndDate(_ context.Context, _, _ string) ([]model.ImageRecord, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.records, nil
}

type fakePublisher struct {
	events []entity.ImageStored
	err    error
}

func (f *fakePublisher) Publish(_ context.Context, event entity.ImageStored) error {
	if f.err != nil {
		return f.err
	}

	f.events = append(f.events, event)

	return nil
}
