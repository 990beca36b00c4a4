package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/backoffice/internal/notify"
)

type stubFeed struct {
	recent    []notify.Toast
	live      chan notify.Toast
	recentErr error
}

func (s *stubFeed) Recent(context.Context) ([]notify.Toast, error) { return s.recent, s.recentErr }

func (s *stubFeed) Subscribe(context.Context) (<-chan notify.Toast, error) {
	if s.live == nil {
		return nil, errors.New("no channel")
	}
	return s.live, nil
}

var toastAt = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

func TestToastsCommandPrintsRecent(t *testing.T) {
	var out, errOut bytes.Buffer
	src := &stubFeed{recent: []notify.Toast{
		{ID: "1", Kind: notify.KindSuccess, Message: "Proveedor creado exitosamente", CreatedAt: toastAt},
	}}
	code := ToastsCommand(context.Background(), src, ToastsOptions{Stdout: &out, Stderr: &errOut})
	require.Equal(t, 0, code)
	require.Equal(t, "09:30:00 ✔ Proveedor creado exitosamente\n", out.String())
	require.Empty(t, errOut.String())
}

func TestToastsCommandFollowSkipsDuplicates(t *testing.T) {
	var out bytes.Buffer
	first := notify.Toast{ID: "1", Kind: notify.KindSuccess, Message: "uno", CreatedAt: toastAt}
	second := notify.Toast{ID: "2", Kind: notify.KindError, Message: "dos", CreatedAt: toastAt}
	src := &stubFeed{recent: []notify.Toast{first}, live: make(chan notify.Toast, 2)}
	src.live <- first
	src.live <- second
	close(src.live)

	code := ToastsCommand(context.Background(), src, ToastsOptions{Follow: true, JSONOutput: true, Stdout: &out})
	require.Equal(t, 0, code)

	dec := json.NewDecoder(&out)
	var got []string
	for dec.More() {
		var toast notify.Toast
		require.NoError(t, dec.Decode(&toast))
		got = append(got, toast.ID)
	}
	require.Equal(t, []string{"1", "2"}, got)
}

func TestToastsCommandErrors(t *testing.T) {
	var errOut bytes.Buffer
	code := ToastsCommand(context.Background(), &stubFeed{}, ToastsOptions{Follow: true, Stdout: &bytes.Buffer{}, Stderr: &errOut})
	require.Equal(t, 1, code)
	require.Contains(t, errOut.String(), "toasts: no channel")

	errOut.Reset()
	code = ToastsCommand(context.Background(), &stubFeed{recentErr: errors.New("redis down")}, ToastsOptions{Stdout: &bytes.Buffer{}, Stderr: &errOut})
	require.Equal(t, 1, code)
	require.Contains(t, errOut.String(), "redis down")
}
