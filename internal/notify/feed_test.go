package notify

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	success, failure []string
	answer           bool
}

func (r *recorder) Success(_ context.Context, msg string) { r.success = append(r.success, msg) }
func (r *recorder) Error(_ context.Context, msg string) { r.failure = append(r.failure, msg) }
func (r *recorder) Confirm(context.Context, string, string) (bool, error) {
	return r.answer, nil
}

func newTestFeed(t *testing.T, base *recorder) (*Feed, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewFeed(client, base, "backoffice.toasts", 3*time.Second, nil), mr
}

func TestFeedForwardsAndStores(t *testing.T) {
	base := &recorder{answer: true}
	feed, _ := newTestFeed(t, base)
	ctx := context.Background()

	feed.Success(ctx, "Insumo creado exitosamente")
	feed.Error(ctx, "Error al cargar insumos")

	require.Equal(t, []string{"Insumo creado exitosamente"}, base.success)
	require.Equal(t, []string{"Error al cargar insumos"}, base.failure)

	ok, err := feed.Confirm(ctx, "¿Estás seguro?", "")
	require.NoError(t, err)
	require.True(t, ok)

	toasts, err := feed.Recent(ctx)
	require.NoError(t, err)
	require.Len(t, toasts, 2)
	kinds := map[Kind]string{}
	for _, toast := range toasts {
		require.NotEmpty(t, toast.ID)
		kinds[toast.Kind] = toast.Message
	}
	require.Equal(t, map[Kind]string{
		KindSuccess: "Insumo creado exitosamente",
		KindError:   "Error al cargar insumos",
	}, kinds)
}

func TestFeedToastsExpire(t *testing.T) {
	feed, mr := newTestFeed(t, &recorder{})
	ctx := context.Background()
	feed.Success(ctx, "Proveedor creado exitosamente")

	mr.FastForward(4 * time.Second)
	toasts, err := feed.Recent(ctx)
	require.NoError(t, err)
	require.Empty(t, toasts)

	n, err := feed.client.ZCard(ctx, toastIndexKey).Result()
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestFeedSubscribe(t *testing.T) {
	feed, _ := newTestFeed(t, &recorder{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := feed.Subscribe(ctx)
	require.NoError(t, err)

	feed.Error(ctx, "Hubo un problema al guardar la compra.")
	select {
	case toast := <-ch:
		require.Equal(t, KindError, toast.Kind)
		require.Equal(t, "Hubo un problema al guardar la compra.", toast.Message)
	case <-time.After(2 * time.Second):
		t.Fatal("no toast received")
	}
}

func TestFeedRedisDownStillNotifies(t *testing.T) {
	base := &recorder{}
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	feed := NewFeed(client, base, "backoffice.toasts", time.Second, nil)

	feed.Success(context.Background(), "Cliente eliminado")
	require.Equal(t, []string{"Cliente eliminado"}, base.success)
}

func TestToastString(t *testing.T) {
	at := time.Date(2024, 3, 1, 8, 5, 9, 0, time.FixedZone("ART", -3*3600))
	require.Equal(t, "11:05:09 ✔ Insumo creado exitosamente", Toast{Kind: KindSuccess, Message: "Insumo creado exitosamente", CreatedAt: at}.String())
	require.Equal(t, "11:05:09 ✖ Error al cargar compras", Toast{Kind: KindError, Message: "Error al cargar compras", CreatedAt: at}.String())
}
