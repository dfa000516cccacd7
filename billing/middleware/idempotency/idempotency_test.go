package idempotency

import (
	"context"
	"net/http"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encore.dev"
	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/storage/cache"

	"transfers.app/billing/model"
)

type createResponse struct {
	ID     string `json:"id"`
	Number string `json:"number"`
}

type memoryStore struct {
	entries map[model.IdempotencyKey]model.IdempotencyCacheEntry
	getErr  error
	setErr  error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{entries: make(map[model.IdempotencyKey]model.IdempotencyCacheEntry)}
}

func (s *memoryStore) Get(_ context.Context, key model.IdempotencyKey) (model.IdempotencyCacheEntry, error) {
	if s.getErr != nil {
		return model.IdempotencyCacheEntry{}, s.getErr
	}
	entry, ok := s.entries[key]
	if !ok {
		return model.IdempotencyCacheEntry{}, cache.Miss
	}
	return entry, nil
}

func (s *memoryStore) Set(_ context.Context, key model.IdempotencyKey, entry model.IdempotencyCacheEntry) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.entries[key] = entry
	return nil
}

func (s *memoryStore) Delete(_ context.Context, key model.IdempotencyKey) error {
	delete(s.entries, key)
	return nil
}

func newRequest(key string, payload any) middleware.Request {
	headers := http.Header{}
	if key != "" {
		headers.Set(Header, key)
	}
	return middleware.NewRequest(context.Background(), &encore.Request{
		Path:    "/bills",
		Headers: headers,
		Payload: payload,
		API:     &encore.APIDesc{ResponseType: reflect.TypeOf(&createResponse{})},
	})
}

func newHandler(store Store) *handler {
	return &handler{
		store: store,
		now:   func() time.Time { return time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC) },
	}
}

func TestExtractIdempotencyKey(t *testing.T) {
	testCases := []struct {
		name          string
		headers       http.Header
		expectedKey   string
		expectedError string
	}{
		{
			name:        "valid_key",
			headers:     http.Header{Header: []string{"bill-2024-06-01"}},
			expectedKey: "bill-2024-06-01",
		},
		{
			name:        "trims_spaces",
			headers:     http.Header{Header: []string{"  abc  "}},
			expectedKey: "abc",
		},
		{
			name:          "missing_header",
			headers:       http.Header{},
			expectedError: "X-Idempotency-Key header is required",
		},
		{
			name:          "whitespace_only_header",
			headers:       http.Header{Header: []string{"   "}},
			expectedError: "X-Idempotency-Key header is required",
		},
		{
			name:        "multiple_header_values_takes_first",
			headers:     http.Header{Header: []string{"first-key", "second-key"}},
			expectedKey: "first-key",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := middleware.NewRequest(context.Background(), &encore.Request{Path: "/bills", Headers: tc.headers})

			key, err := extractIdempotencyKey(req)

			if tc.expectedError != "" {
				require.NotNil(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Equal(t, errs.InvalidArgument, err.Code)
				assert.Empty(t, key)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.expectedKey, key)
		})
	}
}

func TestHashing(t *testing.T) {
	assert.Equal(t, "", hashing(nil))
	assert.Equal(t, "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08", hashing([]byte("test")))
	assert.NotEqual(t, hashing([]byte(`{"tax_rate":21}`)), hashing([]byte(`{"tax_rate":10}`)))
}

func TestHandle_FirstRequestIsCached(t *testing.T) {
	store := newMemoryStore()
	h := newHandler(store)

	calls := 0
	next := func(req middleware.Request) middleware.Response {
		calls++
		return middleware.Response{Payload: &createResponse{ID: "b-1", Number: "FACTURA-2024-0001"}}
	}

	payload := map[string]any{"client_id": "c-1", "tax_rate": 21}
	first := h.handle(newRequest("key-1", payload), next)
	require.Nil(t, first.Err)

	entry := store.entries[model.IdempotencyKey{Resource: "/bills", Key: "key-1"}]
	assert.Equal(t, model.IdempotencyCompleted, entry.Status)
	assert.NotEmpty(t, entry.RequestBodyHash)
	assert.JSONEq(t, `{"id":"b-1","number":"FACTURA-2024-0001"}`, string(entry.Response))

	second := h.handle(newRequest("key-1", payload), next)
	require.Nil(t, second.Err)
	assert.Equal(t, 1, calls)
	replayed, ok := second.Payload.(*createResponse)
	require.True(t, ok)
	assert.Equal(t, "FACTURA-2024-0001", replayed.Number)
}

func TestHandle_ConflictingBody(t *testing.T) {
	store := newMemoryStore()
	h := newHandler(store)
	next := func(req middleware.Request) middleware.Response {
		return middleware.Response{Payload: &createResponse{ID: "b-1"}}
	}

	require.Nil(t, h.handle(newRequest("key-1", map[string]any{"tax_rate": 21}), next).Err)

	resp := h.handle(newRequest("key-1", map[string]any{"tax_rate": 10}), next)
	require.NotNil(t, resp.Err)
	assert.Equal(t, errs.InvalidArgument, errs.Code(resp.Err))
	assert.Contains(t, resp.Err.Error(), "idempotency key conflict")
}

func TestHandle_ConcurrentRequest(t *testing.T) {
	store := newMemoryStore()
	store.entries[model.IdempotencyKey{Resource: "/bills", Key: "key-1"}] = model.IdempotencyCacheEntry{
		Status: model.IdempotencyProcessing,
	}
	h := newHandler(store)

	resp := h.handle(newRequest("key-1", map[string]any{"tax_rate": 21}), func(middleware.Request) middleware.Response {
		t.Fatal("next must not run while the key is processing")
		return middleware.Response{}
	})

	require.NotNil(t, resp.Err)
	assert.Equal(t, errs.Aborted, errs.Code(resp.Err))
}

func TestHandle_FailedRequestReleasesKey(t *testing.T) {
	store := newMemoryStore()
	h := newHandler(store)

	resp := h.handle(newRequest("key-1", map[string]any{"tax_rate": 21}), func(middleware.Request) middleware.Response {
		return middleware.Response{Err: &errs.Error{Code: errs.FailedPrecondition, Message: "no billable items"}}
	})

	require.NotNil(t, resp.Err)
	assert.Empty(t, store.entries)
}

func TestHandle_StoreErrors(t *testing.T) {
	testCases := []struct {
		name   string
		getErr error
		setErr error
	}{
		{name: "lookup_fails", getErr: assert.AnError},
		{name: "marking_fails", setErr: assert.AnError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := newMemoryStore()
			store.getErr = tc.getErr
			store.setErr = tc.setErr
			h := newHandler(store)

			resp := h.handle(newRequest("key-1", nil), func(middleware.Request) middleware.Response {
				t.Fatal("next must not run")
				return middleware.Response{}
			})

			require.NotNil(t, resp.Err)
			assert.Equal(t, errs.Internal, errs.Code(resp.Err))
		})
	}
}

func TestIdempotencyMiddleware_MissingKey(t *testing.T) {
	nextCalled := false
	resp := IdempotencyMiddleware(newRequest("", map[string]any{"tax_rate": 21}), func(middleware.Request) middleware.Response {
		nextCalled = true
		return middleware.Response{}
	})

	require.NotNil(t, resp.Err)
	assert.Contains(t, resp.Err.Error(), "X-Idempotency-Key header is required")
	assert.False(t, nextCalled)
	assert.Nil(t, resp.Payload)
}
