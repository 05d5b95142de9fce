package observability

import (
	"time"

	"github.com/aretw0/genotype/pkg/decoder"
)

// EventType defines the category of the event.
type EventType string

const (
	EventSpawn  EventType = "organism_spawn"
	EventDecode EventType = "trait_decode"
	EventMutate EventType = "genome_mutate"
)

// Origin tells where an organism's genome came from.
type Origin string

const (
	OriginRandom   Origin = "random"
	OriginProvided Origin = "provided"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp  time.Time `json:"timestamp"`
	Type       EventType `json:"type"`
	OrganismID string    `json:"organism_id"`
}

// NewBase stamps an event of the given type for an organism.
func NewBase(t EventType, organismID string) EventBase {
	return EventBase{Timestamp: time.Now(), Type: t, OrganismID: organismID}
}

// SpawnEvent is emitted once an organism owns its genome, before the first decode.
type SpawnEvent struct {
	EventBase
	Origin        Origin `json:"origin"`
	GenomeLength  int    `json:"genome_length"`
	RequestedSize int    `json:"requested_size,omitempty"`
	Clamped       bool   `json:"clamped,omitempty"`
}

// DecodeEvent is emitted for every trait on every decode pass.
type DecodeEvent struct {
	EventBase
	Trait string        `json:"trait"`
	Kind  string        `json:"kind"`
	Value decoder.Value `json:"value"`
}

// MutateEvent is emitted after a genome byte was replaced.
type MutateEvent struct {
	EventBase
	Index  int  `json:"index"`
	Old    byte `json:"old"`
	New    byte `json:"new"`
	Random bool `json:"random"`
}

// Hooks defines callbacks for organism observability.
// Nil callbacks are skipped.
type Hooks struct {
	OnSpawn  func(*SpawnEvent)
	OnDecode func(*DecodeEvent)
	OnMutate func(*MutateEvent)
}

// Spawn invokes OnSpawn if set.
func (h Hooks) Spawn(e *SpawnEvent) {
	if h.OnSpawn != nil {
		h.OnSpawn(e)
	}
}

// Decode invokes OnDecode if set.
func (h Hooks) Decode(e *DecodeEvent) {
	if h.OnDecode != nil {
		h.OnDecode(e)
	}
}

// Mutate invokes OnMutate if set.
func (h Hooks) Mutate(e *MutateEvent) {
	if h.OnMutate != nil {
		h.OnMutate(e)
	}
}

// Combine fans every event out to all given hook sets, in order.
func Combine(hooks ...Hooks) Hooks {
	return Hooks{
		OnSpawn: func(e *SpawnEvent) {
			for _, h := range hooks {
				h.Spawn(e)
			}
		},
		OnDecode: func(e *DecodeEvent) {
			for _, h := range hooks {
				h.Decode(e)
			}
		},
		OnMutate: func(e *MutateEvent) {
			for _, h := range hooks {
				h.Mutate(e)
			}
		},
	}
}
