package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/dmitrijs2005/aiwallpaper/internal/client/models"
	"github.com/dmitrijs2005/aiwallpaper/internal/client/repositories/kv"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T) (*SessionService, *kv.MemoryRepository, *kv.MemoryRepository) {
	t.Helper()
	session, profile := kv.NewMemoryRepository(), kv.NewMemoryRepository()
	return NewSessionService(context.Background(), session, profile, discard()), session, profile
}

func TestSessionService_StartsAnonymous(t *testing.T) {
	s, _, _ := newSession(t)
	_, ok := s.CurrentUser()
	assert.False(t, ok)
	assert.Empty(t, s.History())
}

func TestSessionService_AnonymousHistoryIsNoop(t *testing.T) {
	s, _, profile := newSession(t)
	s.AddHistoryItem(context.Background(), models.HistoryEntry{Prompt: "neon city"})
	assert.Empty(t, s.History())
	assert.Empty(t, profile.Keys())
}

func TestSessionService_LoginAddsHistory(t *testing.T) {
	ctx := context.Background()
	s, session, profile := newSession(t)

	s.Login(ctx, "alice")
	u, ok := s.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "alice", u.Username)

	raw, _ := session.Get(ctx, SessionKey)
	assert.JSONEq(t, `{"username":"alice"}`, string(raw))

	s.AddHistoryItem(ctx, models.HistoryEntry{Prompt: "neon city", NegativePrompt: ""})
	want := []models.HistoryEntry{{Prompt: "neon city", NegativePrompt: ""}}
	if diff := cmp.Diff(want, s.History()); diff != "" {
		t.Fatalf("history mismatch (-want +got):\n%s", diff)
	}

	raw, _ = profile.Get(ctx, HistoryKey("alice"))
	assert.JSONEq(t, `[{"prompt":"neon city","negativePrompt":""}]`, string(raw))
}

func TestSessionService_DeduplicatesAndPrepends(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newSession(t)
	s.Login(ctx, "bob")

	a := models.HistoryEntry{Prompt: "a"}
	b := models.HistoryEntry{Prompt: "b", NegativePrompt: "x"}
	s.AddHistoryItem(ctx, a)
	s.AddHistoryItem(ctx, a)
	s.AddHistoryItem(ctx, b)
	s.AddHistoryItem(ctx, models.HistoryEntry{Prompt: "b"})

	want := []models.HistoryEntry{{Prompt: "b"}, b, a}
	if diff := cmp.Diff(want, s.History()); diff != "" {
		t.Fatalf("history mismatch (-want +got):\n%s", diff)
	}
}

func TestSessionService_LogoutKeepsDurableHistory(t *testing.T) {
	ctx := context.Background()
	s, session, _ := newSession(t)

	s.Login(ctx, "alice")
	s.AddHistoryItem(ctx, models.HistoryEntry{Prompt: "one"})
	s.AddHistoryItem(ctx, models.HistoryEntry{Prompt: "two"})
	before := s.History()

	s.Logout(ctx)
	_, ok := s.CurrentUser()
	assert.False(t, ok)
	assert.Empty(t, s.History())
	raw, _ := session.Get(ctx, SessionKey)
	assert.Nil(t, raw)

	s.Login(ctx, "alice")
	assert.Equal(t, before, s.History())
}

func TestSessionService_HistoriesArePerUser(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newSession(t)

	s.Login(ctx, "alice")
	s.AddHistoryItem(ctx, models.HistoryEntry{Prompt: "alice's"})
	s.Logout(ctx)

	s.Login(ctx, "bob")
	assert.Empty(t, s.History())
}

func TestSessionService_RestoresSession(t *testing.T) {
	ctx := context.Background()
	session, profile := kv.NewMemoryRepository(), kv.NewMemoryRepository()
	require.NoError(t, session.Set(ctx, SessionKey, []byte(`{"username":"carol"}`)))
	raw, _ := json.Marshal([]models.HistoryEntry{{Prompt: "p", NegativePrompt: "n"}})
	require.NoError(t, profile.Set(ctx, HistoryKey("carol"), raw))

	s := NewSessionService(ctx, session, profile, discard())
	u, ok := s.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "carol", u.Username)
	assert.Equal(t, []models.HistoryEntry{{Prompt: "p", NegativePrompt: "n"}}, s.History())
}

func TestSessionService_MalformedSessionIsDeleted(t *testing.T) {
	ctx := context.Background()
	for name, payload := range map[string]string{
		"not json":       `{{{`,
		"empty username": `{"username":""}`,
	} {
		t.Run(name, func(t *testing.T) {
			session := kv.NewMemoryRepository()
			require.NoError(t, session.Set(ctx, SessionKey, []byte(payload)))

			s := NewSessionService(ctx, session, kv.NewMemoryRepository(), discard())
			_, ok := s.CurrentUser()
			assert.False(t, ok)
			raw, _ := session.Get(ctx, SessionKey)
			assert.Nil(t, raw)
		})
	}
}

func TestSessionService_CorruptHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("unparseable payload is discarded", func(t *testing.T) {
		s, _, profile := newSession(t)
		require.NoError(t, profile.Set(ctx, HistoryKey("dave"), []byte(`not json`)))

		s.Login(ctx, "dave")
		assert.Empty(t, s.History())
		raw, _ := profile.Get(ctx, HistoryKey("dave"))
		assert.Nil(t, raw)
	})

	t.Run("malformed entries are skipped", func(t *testing.T) {
		s, _, profile := newSession(t)
		require.NoError(t, profile.Set(ctx, HistoryKey("erin"),
			[]byte(`[{"prompt":"ok","negativePrompt":""}, 42, {"prompt":7}, {}, {"prompt":"ok","negativePrompt":""}]`)))

		s.Login(ctx, "erin")
		assert.Equal(t, []models.HistoryEntry{{Prompt: "ok"}}, s.History())
	})
}

func TestSessionService_WriteFailureKeepsMemory(t *testing.T) {
	ctx := context.Background()
	profile := newBrokenRepo()
	s := NewSessionService(ctx, kv.NewMemoryRepository(), profile, discard())

	s.Login(ctx, "frank")
	s.AddHistoryItem(ctx, models.HistoryEntry{Prompt: "kept"})
	assert.Equal(t, []models.HistoryEntry{{Prompt: "kept"}}, s.History())
	assert.Equal(t, 1, profile.SetCalls)
}

func TestSessionService_HistoryIsCopied(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newSession(t)
	s.Login(ctx, "gina")
	s.AddHistoryItem(ctx, models.HistoryEntry{Prompt: "orig"})

	h := s.History()
	h[0].Prompt = "mutated"
	assert.Equal(t, "orig", s.History()[0].Prompt)
}
