package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/aiwallpaper/internal/client/client"
	"github.com/dmitrijs2005/aiwallpaper/internal/client/models"
	"github.com/dmitrijs2005/aiwallpaper/internal/client/repositories/kv"
	"github.com/dmitrijs2005/aiwallpaper/internal/logging"
)

var errStorage = errors.New("storage unavailable")

// brokenRepo fails every write and optionally every read.
type brokenRepo struct {
	*kv.MemoryRepository
	FailReads bool
	SetCalls  int
}

func newBrokenRepo() *brokenRepo {
	return &brokenRepo{MemoryRepository: kv.NewMemoryRepository()}
}

func (r *brokenRepo) Get(ctx context.Context, key string) ([]byte, error) {
	if r.FailReads {
		return nil, errStorage
	}
	return r.MemoryRepository.Get(ctx, key)
}

func (r *brokenRepo) Set(context.Context, string, []byte) error {
	r.SetCalls++
	return errStorage
}

func (r *brokenRepo) Delete(context.Context, string) error {
	return errStorage
}

func (r *brokenRepo) Update(context.Context, string, kv.UpdateFunc) error {
	return errStorage
}

// fakeImageClient records requests and replays a canned result.
type fakeImageClient struct {
	Ret   models.Image
	Err   error
	Calls int

	LastParts []client.Part
}

func (f *fakeImageClient) GenerateImage(_ context.Context, parts []client.Part) (models.Image, error) {
	f.Calls++
	f.LastParts = parts
	return f.Ret, f.Err
}

func discard() logging.Logger {
	return logging.Discard()
}
