package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/anft-xyz/goapi/base/ctx"
	"github.com/anft-xyz/goapi/base/metrics"
	"github.com/anft-xyz/goapi/domain"
	"github.com/anft-xyz/goapi/domain/listing"
)

// minEvictTick bounds the eviction ticker for tiny idle ttls
const minEvictTick = time.Second

var timeNow = time.Now

type Config struct {
	IdleTtl            time.Duration `mapstructure:"idleTtl"`
	RefetchInitial     time.Duration `mapstructure:"refetchInitial"`
	RefetchLimit       time.Duration `mapstructure:"refetchLimit"`
	RefetchMaxAttempts int           `mapstructure:"refetchMaxAttempts"`
}

func DefaultConfig() Config {
	return Config{
		IdleTtl:            30 * time.Minute,
		RefetchInitial:     1500 * time.Millisecond,
		RefetchLimit:       30 * time.Second,
		RefetchMaxAttempts: 5,
	}
}

// Registry indexes open sessions by id. It is shared by the Manager and the session notifier.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

func (r *Registry) add(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.id] = s
}

func (r *Registry) remove(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	return s, ok
}

func (r *Registry) Lookup(id string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func (r *Registry) list() []*Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		res = append(res, s)
	}
	return res
}

type Manager struct {
	reg        *Registry
	uc         listing.UseCase
	filterRepo listing.FilterStateRepo
	cfg        Config
	met        metrics.Service
}

func NewManager(reg *Registry, uc listing.UseCase, filterRepo listing.FilterStateRepo, cfg Config) *Manager {
	def := DefaultConfig()
	if cfg.IdleTtl <= 0 {
		cfg.IdleTtl = def.IdleTtl
	}
	if cfg.RefetchInitial <= 0 {
		cfg.RefetchInitial = def.RefetchInitial
	}
	if cfg.RefetchLimit <= 0 {
		cfg.RefetchLimit = def.RefetchLimit
	}
	if cfg.RefetchMaxAttempts <= 0 {
		cfg.RefetchMaxAttempts = def.RefetchMaxAttempts
	}
	return &Manager{
		reg:        reg,
		uc:         uc,
		filterRepo: filterRepo,
		cfg:        cfg,
		met:        metrics.New("session"),
	}
}

func (m *Manager) Create(c ctx.Ctx) *Session {
	s := newSession(uuid.NewString(), m.uc, m.filterRepo, m.cfg)
	m.reg.add(s)
	m.met.BumpSum("created", 1)
	c.WithField(ctx.KeySessionId, s.id).Info("session created")
	return s
}

// Get returns an open session and marks it as used
func (m *Manager) Get(id string) (*Session, error) {
	s, ok := m.reg.Lookup(id)
	if !ok || s.Closed() {
		return nil, domain.ErrSessionNotFound
	}
	s.touch(timeNow())
	return s, nil
}

func (m *Manager) Close(id string) error {
	s, ok := m.reg.remove(id)
	if !ok {
		return domain.ErrSessionNotFound
	}
	s.Close()
	m.met.BumpSum("closed", 1)
	return nil
}

// EvictIdle closes every session unused for longer than the idle ttl and returns how many
func (m *Manager) EvictIdle(now time.Time) int {
	n := 0
	for _, s := range m.reg.list() {
		if s.idleSince(now) < m.cfg.IdleTtl {
			continue
		}
		if _, ok := m.reg.remove(s.id); ok {
			s.Close()
			n++
		}
	}
	if n > 0 {
		m.met.BumpSum("evicted", float64(n))
	}
	return n
}

func (m *Manager) evictTick() time.Duration {
	if tick := m.cfg.IdleTtl / 2; tick > minEvictTick {
		return tick
	}
	return minEvictTick
}

// Run evicts idle sessions until c ends, then closes the rest
func (m *Manager) Run(c ctx.Ctx) {
	ticker := time.NewTicker(m.evictTick())
	defer ticker.Stop()
	for {
		select {
		case <-c.Done():
			for _, s := range m.reg.list() {
				m.reg.remove(s.id)
				s.Close()
			}
			return
		case now := <-ticker.C:
			if n := m.EvictIdle(now); n > 0 {
				c.WithField("count", n).Info("idle sessions evicted")
			}
		}
	}
}
