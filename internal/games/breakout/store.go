package breakout

import (
	"errors"
	"fmt"
)

var (
	// ErrPaddleCount reports a store without exactly one paddle.
	ErrPaddleCount = errors.New("breakout: store must hold exactly one paddle")

	// ErrBallCount reports a store without exactly one ball.
	ErrBallCount = errors.New("breakout: store must hold exactly one ball")
)

// Store owns every entity of a session. Entities are kept in spawn order,
// which is also the order colliders are tested in.
//
// Pointers returned by Get, Paddle and Ball stay valid until the next
// Spawn or Despawn.
type Store struct {
	entities []Entity
	index    map[EntityID]int
	counts   [kindCount]int
	nextID   EntityID
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		entities: make([]Entity, 0, 64),
		index:    make(map[EntityID]int),
		nextID:   1,
	}
}

// Spawn adds an entity and returns its assigned ID. Any ID already set on e
// is ignored.
func (s *Store) Spawn(e Entity) EntityID {
	e.ID = s.nextID
	s.nextID++

	s.index[e.ID] = len(s.entities)
	s.entities = append(s.entities, e)
	s.counts[e.Kind]++
	return e.ID
}

// Despawn removes an entity. It returns false if the ID is not present,
// so removing the same entity twice is harmless.
func (s *Store) Despawn(id EntityID) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}

	s.counts[s.entities[i].Kind]--
	delete(s.index, id)

	// Keep spawn order for the remaining entities
	copy(s.entities[i:], s.entities[i+1:])
	s.entities = s.entities[:len(s.entities)-1]
	for j := i; j < len(s.entities); j++ {
		s.index[s.entities[j].ID] = j
	}
	return true
}

// Get returns the entity with the given ID.
func (s *Store) Get(id EntityID) (*Entity, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	return &s.entities[i], true
}

// Len returns the number of live entities.
func (s *Store) Len() int {
	return len(s.entities)
}

// Count returns the number of live entities of a kind.
func (s *Store) Count(k Kind) int {
	if k >= kindCount {
		return 0
	}
	return s.counts[k]
}

// Each calls fn for every live entity in spawn order.
// fn must not spawn or despawn.
func (s *Store) Each(fn func(e *Entity)) {
	for i := range s.entities {
		fn(&s.entities[i])
	}
}

// Colliders returns the IDs of every collider in spawn order.
// The slice is a copy, so callers may despawn while ranging over it.
func (s *Store) Colliders() []EntityID {
	ids := make([]EntityID, 0, len(s.entities))
	for i := range s.entities {
		if s.entities[i].Kind.IsCollider() {
			ids = append(ids, s.entities[i].ID)
		}
	}
	return ids
}

// Validate checks the single-paddle and single-ball preconditions.
func (s *Store) Validate() error {
	if n := s.counts[KindPaddle]; n != 1 {
		return fmt.Errorf("%w: found %d", ErrPaddleCount, n)
	}
	if n := s.counts[KindBall]; n != 1 {
		return fmt.Errorf("%w: found %d", ErrBallCount, n)
	}
	return nil
}

// Paddle returns the paddle. It panics if the store does not hold exactly one.
func (s *Store) Paddle() *Entity {
	return s.single(KindPaddle, ErrPaddleCount)
}

// Ball returns the ball. It panics if the store does not hold exactly one.
func (s *Store) Ball() *Entity {
	return s.single(KindBall, ErrBallCount)
}

func (s *Store) single(k Kind, sentinel error) *Entity {
	if n := s.counts[k]; n != 1 {
		panic(fmt.Errorf("%w: found %d", sentinel, n))
	}
	for i := range s.entities {
		if s.entities[i].Kind == k {
			return &s.entities[i]
		}
	}
	panic(fmt.Errorf("%w: index out of sync", sentinel))
}

// mustValidate panics when the store breaks a session precondition.
func (s *Store) mustValidate() {
	if err := s.Validate(); err != nil {
		panic(err)
	}
}
