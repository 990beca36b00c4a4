package listview

import (
	"context"
	"errors"
	"strings"
	"sync"
)

type item struct {
	ID   int64
	Name string
}

type form struct {
	ID   int64
	Name string
	Tags []string
}

var errBackend = errors.New("backend exploded")

type fakeStore struct {
	mu        sync.Mutex
	items     []item
	nextID    int64
	listErr   error
	saveErr   error
	deleteErr error
	lists     int
	creates   []any
	updates   map[int64]any
	deletes   []int64
}

func newFakeStore(items ...item) *fakeStore {
	return &fakeStore{items: items, nextID: int64(len(items)) + 1, updates: map[int64]any{}}
}

func (s *fakeStore) List(ctx context.Context) ([]item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists++
	if s.listErr != nil {
		return nil, s.listErr
	}
	return append([]item(nil), s.items...), nil
}

func (s *fakeStore) Create(ctx context.Context, payload any) (item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creates = append(s.creates, payload)
	if s.saveErr != nil {
		return item{}, s.saveErr
	}
	it := item{ID: s.nextID, Name: payload.(map[string]string)["name"]}
	s.nextID++
	s.items = append(s.items, it)
	return it, nil
}

func (s *fakeStore) Update(ctx context.Context, id int64, payload any) (item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updates[id] = payload
	if s.saveErr != nil {
		return item{}, s.saveErr
	}
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Name = payload.(map[string]string)["name"]
			return s.items[i], nil
		}
	}
	return item{}, errors.New("not found")
}

func (s *fakeStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deletes = append(s.deletes, id)
	if s.deleteErr != nil {
		return s.deleteErr
	}
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *fakeStore) listCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lists
}

type toast struct {
	kind, message string
}

type recordingNotifier struct {
	mu       sync.Mutex
	toasts   []toast
	prompts  []string
	decision bool
}

func (n *recordingNotifier) Success(_ context.Context, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.toasts = append(n.toasts, toast{"success", msg})
}

func (n *recordingNotifier) Error(_ context.Context, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.toasts = append(n.toasts, toast{"error", msg})
}

func (n *recordingNotifier) Confirm(_ context.Context, title, msg string) (bool, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.prompts = append(n.prompts, title+"|"+msg)
	return n.decision, nil
}

func testSchema() Schema[item, form] {
	return Schema[item, form]{
		Resource: "things",
		PageSize: 2,
		ID:       func(it item) int64 { return it.ID },
		Name:     func(it item) string { return it.Name },
		Blank:    func() form { return form{} },
		Draft:    func(it item) form { return form{ID: it.ID, Name: it.Name} },
		DraftID:  func(f form) int64 { return f.ID },
		Clone: func(f form) form {
			f.Tags = append([]string(nil), f.Tags...)
			return f
		},
		SetField: func(f *form, name, value string) error {
			switch name {
			case "name":
				f.Name = value
			case "tag":
				f.Tags = append(f.Tags, value)
			default:
				return ErrUnknownField
			}
			return nil
		},
		Validate: func(f form) FieldErrors {
			errs := FieldErrors{}
			if strings.TrimSpace(f.Name) == "" {
				errs["name"] = "name is required"
			}
			return errs
		},
		Payload: func(f form) (any, error) {
			return map[string]string{"name": f.Name}, nil
		},
		Messages: Messages{
			Created:      "created",
			Updated:      "updated",
			Deleted:      "deleted",
			SaveFailed:   "save failed",
			DeleteFailed: "delete failed",
			LoadFailed:   "load failed",
			ConfirmTitle: "Sure?",
			ConfirmText:  func(name string) string { return "delete " + name + "?" },
		},
	}
}
