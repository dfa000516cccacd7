// Package idempotency makes bill creation safe to retry. Requests tagged
// idempotency must carry an X-Idempotency-Key header; a repeated key replays
// the first successful response, and a key reused with a different body is
// rejected.
package idempotency

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"
	"encore.dev/storage/cache"

	"transfers.app/billing/model"
)

const Header = "X-Idempotency-Key"

var defaultHandler = &handler{
	store: keyspaceStore{ks: IdempotencyCache},
	now:   time.Now,
}

//encore:middleware target=tag:idempotency
func IdempotencyMiddleware(req middleware.Request, next middleware.Next) middleware.Response {
	return defaultHandler.handle(req, next)
}

type handler struct {
	store Store
	now   func() time.Time
}

func (h *handler) handle(req middleware.Request, next middleware.Next) middleware.Response {
	key, err := extractIdempotencyKey(req)
	if err != nil {
		return middleware.Response{Err: err}
	}

	ctx := req.Context()
	cacheKey := model.IdempotencyKey{Resource: req.Data().Path, Key: key}
	bodyHash := requestBodyHash(req)

	entry, getErr := h.store.Get(ctx, cacheKey)
	switch {
	case errors.Is(getErr, cache.Miss):
		return h.process(ctx, req, next, cacheKey, bodyHash)
	case getErr != nil:
		rlog.Error("idempotency lookup failed", "key", key, "error", getErr)
		return middleware.Response{Err: &errs.Error{Code: errs.Internal, Message: "failed to check idempotency"}}
	}

	if entry.RequestBodyHash != "" && bodyHash != "" && entry.RequestBodyHash != bodyHash {
		return middleware.Response{Err: &errs.Error{
			Code:    errs.InvalidArgument,
			Message: "idempotency key conflict: request body does not match previous request",
		}}
	}

	switch entry.Status {
	case model.IdempotencyProcessing:
		rlog.Info("concurrent request detected", "key", key)
		return middleware.Response{Err: &errs.Error{Code: errs.Aborted, Message: "request is already being processed"}}
	case model.IdempotencyCompleted:
		if payload, ok := replay(req, entry); ok {
			rlog.Info("returning cached response", "key", key)
			return middleware.Response{Payload: payload}
		}
		rlog.Warn("cached response unusable, processing again", "key", key)
		return h.process(ctx, req, next, cacheKey, bodyHash)
	default:
		rlog.Warn("unknown idempotency status, processing again", "key", key, "status", entry.Status)
		return h.process(ctx, req, next, cacheKey, bodyHash)
	}
}

// process runs the handler under a processing marker. Failed requests clear
// the marker so the client can retry with the same key.
func (h *handler) process(ctx context.Context, req middleware.Request, next middleware.Next, cacheKey model.IdempotencyKey, bodyHash string) middleware.Response {
	now := h.now()
	if err := h.store.Set(ctx, cacheKey, model.IdempotencyCacheEntry{
		Status:          model.IdempotencyProcessing,
		RequestBodyHash: bodyHash,
		CreatedAt:       now,
		UpdatedAt:       now,
	}); err != nil {
		rlog.Error("failed to mark request as processing", "key", cacheKey.Key, "error", err)
		return middleware.Response{Err: &errs.Error{Code: errs.Internal, Message: "failed to mark request as processing"}}
	}

	resp := next(req)

	if resp.Err != nil {
		if err := h.store.Delete(ctx, cacheKey); err != nil {
			rlog.Error("failed to clear failed request", "key", cacheKey.Key, "error", err)
		}
		return resp
	}

	completed := model.IdempotencyCacheEntry{
		Status:          model.IdempotencyCompleted,
		RequestBodyHash: bodyHash,
		CreatedAt:       now,
		UpdatedAt:       h.now(),
	}
	if resp.Payload != nil {
		payload, err := json.Marshal(resp.Payload)
		if err != nil {
			rlog.Error("failed to marshal response for caching", "key", cacheKey.Key, "error", err)
			return resp
		}
		completed.Response = payload
	}

	if err := h.store.Set(ctx, cacheKey, completed); err != nil {
		rlog.Error("failed to cache response", "key", cacheKey.Key, "error", err)
	}
	return resp
}

func extractIdempotencyKey(req middleware.Request) (string, *errs.Error) {
	var key string
	if headers := req.Data().Headers; headers != nil {
		key = strings.TrimSpace(headers.Get(Header))
	}
	if key == "" {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: Header + " header is required"}
	}
	return key, nil
}

func requestBodyHash(req middleware.Request) string {
	payload := req.Data().Payload
	if payload == nil {
		return ""
	}
	body, err := json.Marshal(payload)
	if err != nil {
		rlog.Error("failed to marshal request body", "error", err)
		return ""
	}
	return hashing(body)
}

// replay decodes a cached payload into the endpoint's response type.
func replay(req middleware.Request, entry model.IdempotencyCacheEntry) (any, bool) {
	if len(entry.Response) == 0 {
		return nil, false
	}
	api := req.Data().API
	if api == nil || api.ResponseType == nil {
		return nil, false
	}

	t := api.ResponseType
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	v := reflect.New(t).Interface()
	if err := json.Unmarshal(entry.Response, v); err != nil {
		rlog.Error("failed to decode cached response", "error", err)
		return nil, false
	}
	return v, true
}

func hashing(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}
