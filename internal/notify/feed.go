package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/odyssey-erp/backoffice/internal/listview"
)

// Kind is the toast severity.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Toast is a published notification.
type Toast struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// String renders the toast as one console line, time in UTC.
func (t Toast) String() string {
	mark := "✔"
	if t.Kind == KindError {
		mark = "✖"
	}
	return t.CreatedAt.UTC().Format("15:04:05") + " " + mark + " " + t.Message
}

var errNoChannel = errors.New("notify: feed has no channel")

const (
	toastKeyPrefix = "backoffice:toast:"
	toastIndexKey  = "backoffice:toasts"
)

// Feed publishes every toast to Redis so other sessions can show it, then
// forwards it to the wrapped notifier. Each toast lives for ttl, matching the
// auto-dismiss timer of the dashboard. Confirmations are not shared.
type Feed struct {
	client  *redis.Client
	base    listview.Notifier
	channel string
	ttl     time.Duration
	logger  *slog.Logger
	now     func() time.Time
}

// NewFeed wraps base. A nil base discards local output.
func NewFeed(client *redis.Client, base listview.Notifier, channel string, ttl time.Duration, logger *slog.Logger) *Feed {
	if base == nil {
		base = listview.Discard
	}
	if logger == nil {
		logger = slog.Default()
	}
	if ttl <= 0 {
		ttl = 3 * time.Second
	}
	return &Feed{client: client, base: base, channel: channel, ttl: ttl, logger: logger, now: time.Now}
}

func (f *Feed) Success(ctx context.Context, msg string) {
	f.base.Success(ctx, msg)
	f.publish(ctx, KindSuccess, msg)
}

func (f *Feed) Error(ctx context.Context, msg string) {
	f.base.Error(ctx, msg)
	f.publish(ctx, KindError, msg)
}

func (f *Feed) Confirm(ctx context.Context, title, msg string) (bool, error) {
	return f.base.Confirm(ctx, title, msg)
}

// publish failures never block the page; they are logged.
func (f *Feed) publish(ctx context.Context, kind Kind, msg string) {
	toast := Toast{ID: uuid.NewString(), Kind: kind, Message: msg, CreatedAt: f.now().UTC()}
	if err := f.Push(ctx, toast); err != nil {
		f.logger.Warn("toast publish failed", slog.String("kind", string(kind)), slog.Any("error", err))
	}
}

// Push stores toast with the feed TTL and announces it on the channel.
func (f *Feed) Push(ctx context.Context, toast Toast) error {
	raw, err := json.Marshal(toast)
	if err != nil {
		return fmt.Errorf("notify: encode toast: %w", err)
	}
	_, err = f.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, toastKeyPrefix+toast.ID, raw, f.ttl)
		pipe.ZAdd(ctx, toastIndexKey, redis.Z{Score: float64(toast.CreatedAt.UnixMilli()), Member: toast.ID})
		return nil
	})
	if err != nil {
		return fmt.Errorf("notify: push toast: %w", err)
	}
	if f.channel == "" {
		return nil
	}
	if err := f.client.Publish(ctx, f.channel, raw).Err(); err != nil {
		return fmt.Errorf("notify: publish toast: %w", err)
	}
	return nil
}

// Recent returns the toasts that have not expired, oldest first. Expired ids
// are pruned from the index.
func (f *Feed) Recent(ctx context.Context) ([]Toast, error) {
	ids, err := f.client.ZRange(ctx, toastIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("notify: read index: %w", err)
	}
	if len(ids) == 0 {
		return []Toast{}, nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = toastKeyPrefix + id
	}
	values, err := f.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("notify: read toasts: %w", err)
	}

	out := make([]Toast, 0, len(values))
	var expired []any
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			expired = append(expired, ids[i])
			continue
		}
		var t Toast
		if err := json.Unmarshal([]byte(s), &t); err != nil {
			return nil, fmt.Errorf("notify: decode toast %s: %w", ids[i], err)
		}
		out = append(out, t)
	}
	if len(expired) > 0 {
		if err := f.client.ZRem(ctx, toastIndexKey, expired...).Err(); err != nil {
			f.logger.Warn("toast index prune failed", slog.Any("error", err))
		}
	}
	return out, nil
}

// Subscribe streams toasts published on the feed channel until ctx is done.
// The subscription is active when Subscribe returns.
func (f *Feed) Subscribe(ctx context.Context) (<-chan Toast, error) {
	if f.channel == "" {
		return nil, errNoChannel
	}
	pubsub := f.client.Subscribe(ctx, f.channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("notify: subscribe %s: %w", f.channel, err)
	}
	out := make(chan Toast)
	go func() {
		defer close(out)
		defer func() { _ = pubsub.Close() }()
		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var t Toast
				if err := json.Unmarshal([]byte(msg.Payload), &t); err != nil {
					f.logger.Warn("toast decode failed", slog.Any("error", err))
					continue
				}
				select {
				case out <- t:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
