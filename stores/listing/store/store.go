// Package store keeps the listing entities and fetch status of one session. Every method is
// atomic; readers get copies and never share memory with the store.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"sync"
	"time"

	"github.com/anft-xyz/goapi/domain"
	"github.com/anft-xyz/goapi/domain/listing"
)

type Kind int

const (
	KindList Kind = iota
	KindDetail
)

func (k Kind) String() string {
	if k == KindList {
		return "list"
	}
	return "detail"
}

type Status struct {
	EntitiesLoading      bool              `json:"entitiesLoading"`
	EntityLoading        bool              `json:"entityLoading"`
	FetchEntitiesSuccess bool              `json:"fetchEntitiesSuccess"`
	FetchEntitySuccess   bool              `json:"fetchEntitySuccess"`
	UpdateEntitySuccess  bool              `json:"updateEntitySuccess"`
	ErrorMessage         string            `json:"errorMessage,omitempty"`
	ErrorCode            listing.ErrorCode `json:"errorCode,omitempty"`
	ErrorPayload         json.RawMessage   `json:"errorPayload,omitempty"`
	TotalCount           int               `json:"totalCount"`
	NotFound             bool              `json:"notFound"`
}

// HasError reports whether a rejected fetch has not been consumed yet
func (s Status) HasError() bool {
	return s.ErrorMessage != ""
}

type Notice struct {
	Level   listing.NoticeLevel `json:"level"`
	Message string              `json:"message"`
	At      time.Time           `json:"at"`
}

type Snapshot struct {
	Status
	Entities    []*listing.Listing `json:"entities"`
	FilterState *listing.Filter    `json:"filterState,omitempty"`
}

type Store struct {
	mu sync.Mutex

	ids      []string
	entities map[string]*listing.Listing
	status   Status
	filter   *listing.Filter
	notices  []Notice

	// closed when the running list fetch settles
	listDone    chan struct{}
	listErr     error
	listSettled bool
}

func New() *Store {
	return &Store{
		entities: make(map[string]*listing.Listing),
		listDone: make(chan struct{}),
	}
}

// SetAll replaces the whole collection in page order. It is the only way entities leave the store.
func (s *Store) SetAll(entities []*listing.Listing, totalCount int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ids = make([]string, 0, len(entities))
	s.entities = make(map[string]*listing.Listing, len(entities))
	for _, e := range entities {
		if e == nil {
			continue
		}
		if _, ok := s.entities[e.Id]; !ok {
			s.ids = append(s.ids, e.Id)
		}
		s.entities[e.Id] = e.Clone()
	}
	s.status.TotalCount = totalCount
	s.status.EntitiesLoading = false
	s.status.FetchEntitiesSuccess = true
	s.settleList(nil)
}

// UpsertOne inserts entity or merges its set fields into the stored one
func (s *Store) UpsertOne(entity *listing.Listing) {
	if entity == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.merge(entity)
	s.status.EntityLoading = false
	s.status.FetchEntitySuccess = true
	s.status.NotFound = false
}

// UpdateOne merges like UpsertOne and flags the update, used after stake enrichment
func (s *Store) UpdateOne(entity *listing.Listing) {
	if entity == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.merge(entity)
	s.status.UpdateEntitySuccess = true
}

func (s *Store) merge(entity *listing.Listing) {
	existing, ok := s.entities[entity.Id]
	if !ok {
		s.ids = append(s.ids, entity.Id)
		s.entities[entity.Id] = entity.Clone()
		return
	}
	merged := existing.Clone()
	mergeFields(reflect.ValueOf(merged).Elem(), reflect.ValueOf(entity.Clone()).Elem())
	s.entities[entity.Id] = merged
}

// mergeFields copies every non zero field of src onto dst
func mergeFields(dst, src reflect.Value) {
	for i := 0; i < src.NumField(); i++ {
		f := src.Field(i)
		if !dst.Field(i).CanSet() || f.IsZero() {
			continue
		}
		dst.Field(i).Set(f)
	}
}

func (s *Store) SetFilterState(filter listing.Filter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = &filter
}

func (s *Store) ClearFilterState() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = nil
}

func (s *Store) FilterState() *listing.Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.filter == nil {
		return nil
	}
	f := *s.filter
	return &f
}

// MarkLoading starts a fetch of kind. List and detail loading flags are independent.
func (s *Store) MarkLoading(kind Kind) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch kind {
	case KindList:
		s.status.EntitiesLoading = true
		s.reopenList()
	case KindDetail:
		s.status.EntityLoading = true
		s.status.NotFound = false
	}
}

// Reject records err as the failure of the running fetch of kind
func (s *Store) Reject(kind Kind, err error) {
	if err == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status.ErrorMessage = err.Error()
	s.status.ErrorCode = ErrorCodeOf(err)
	s.status.ErrorPayload = nil
	var apiErr *listing.APIError
	if errors.As(err, &apiErr) {
		s.status.ErrorMessage = apiErr.Message
		s.status.ErrorPayload = apiErr.Payload
	}

	switch kind {
	case KindList:
		s.status.EntitiesLoading = false
		s.settleList(err)
	case KindDetail:
		s.status.EntityLoading = false
		s.status.NotFound = errors.Is(err, domain.ErrNotFound)
	}
}

// SoftReset clears success flags, the error and the filter snapshot. Entities and loading flags
// stay, so a view can recover from an error without flicker.
func (s *Store) SoftReset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.softReset()
}

// HardReset also clears loading flags and the total count
func (s *Store) HardReset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.softReset()
	s.status.EntitiesLoading = false
	s.status.EntityLoading = false
	s.status.TotalCount = 0
	s.status.NotFound = false
	s.reopenList()
}

func (s *Store) softReset() {
	s.status.FetchEntitiesSuccess = false
	s.status.FetchEntitySuccess = false
	s.status.UpdateEntitySuccess = false
	s.status.ErrorMessage = ""
	s.status.ErrorCode = ""
	s.status.ErrorPayload = nil
	s.filter = nil
	s.listErr = nil
}

func (s *Store) reopenList() {
	if s.listSettled {
		s.listDone = make(chan struct{})
		s.listSettled = false
	}
	s.listErr = nil
}

func (s *Store) settleList(err error) {
	s.listErr = err
	if !s.listSettled {
		close(s.listDone)
		s.listSettled = true
	}
}

// WaitEntitiesFetched blocks until the list fetch settles. It returns the list fetch error, or
// ctx.Err() when ctx ends first. A list already fetched returns nil at once, and a fetch restarted
// while waiting is waited for as well.
func (s *Store) WaitEntitiesFetched(ctx context.Context) error {
	for {
		s.mu.Lock()
		if s.status.FetchEntitiesSuccess {
			s.mu.Unlock()
			return nil
		}
		done := s.listDone
		s.mu.Unlock()

		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}

		s.mu.Lock()
		current, err := s.listDone, s.listErr
		s.mu.Unlock()
		if current == done {
			return err
		}
	}
}

func (s *Store) PushNotice(level listing.NoticeLevel, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notices = append(s.notices, Notice{Level: level, Message: message, At: time.Now()})
}

// DrainNotices returns pending notices once
func (s *Store) DrainNotices() []Notice {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.notices
	s.notices = nil
	return n
}

// All returns the entities in page order, followed by those upserted later
func (s *Store) All() []*listing.Listing {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.all()
}

func (s *Store) all() []*listing.Listing {
	res := make([]*listing.Listing, 0, len(s.ids))
	for _, id := range s.ids {
		res = append(res, s.entities[id].Clone())
	}
	return res
}

func (s *Store) ById(id string) (*listing.Listing, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entities[id]
	if !ok {
		return nil, false
	}
	return e.Clone(), true
}

func (s *Store) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		Status:   s.status,
		Entities: s.all(),
	}
	if s.filter != nil {
		f := *s.filter
		snap.FilterState = &f
	}
	return snap
}

// ErrorCodeOf classifies err for clients that should not match on messages
func ErrorCodeOf(err error) listing.ErrorCode {
	var apiErr *listing.APIError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &apiErr):
		return apiErr.Code
	case errors.Is(err, domain.ErrNotFound):
		return listing.ErrorCodeNotFound
	case errors.Is(err, domain.ErrInvalidFilter), errors.Is(err, domain.ErrBadParamInput), errors.Is(err, domain.ErrInvalidAddress):
		return listing.ErrorCodeBadRequest
	case errors.Is(err, domain.ErrNoContract):
		return listing.ErrorCodeUnavailable
	case errors.Is(err, domain.ErrUpstream):
		return listing.ErrorCodeUpstream
	}
	return listing.ErrorCodeInternal
}
