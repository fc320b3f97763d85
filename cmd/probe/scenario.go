package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/fxamacker/cbor/v2"

	"github.com/emberlang/ember-runtime/hashmap"
	"github.com/emberlang/ember-runtime/hashset"
	"github.com/emberlang/ember-runtime/list"
	"github.com/emberlang/ember-runtime/rc"
)

// Scenario is a declarative batch workload: containers to build,
// operations to run on them, and an object lifecycle exercise.
type Scenario struct {
	Name    string     `toml:"name"`
	Lists   []ListStep `toml:"lists"`
	Maps    []MapStep  `toml:"maps"`
	Sets    []SetStep  `toml:"sets"`
	Objects ObjectStep `toml:"objects"`
}

// ListStep builds one list and applies the named operations in order.
// Supported ops: sort, reverse, distinct, clear.
type ListStep struct {
	Name   string   `toml:"name"`
	Values []int64  `toml:"values"`
	Ops    []string `toml:"ops"`
}

// MapStep builds one string-keyed map, then removes the listed keys.
type MapStep struct {
	Name    string           `toml:"name"`
	Entries map[string]int64 `toml:"entries"`
	Remove  []string         `toml:"remove"`
}

// SetStep builds one string set, then removes the listed members.
type SetStep struct {
	Name    string   `toml:"name"`
	Members []string `toml:"members"`
	Remove  []string `toml:"remove"`
}

// ObjectStep constructs tracked objects, retains the first Retain of
// them a second time, then releases every construction reference. The
// retained objects stay alive and are released at the end, so the
// snapshot can show the live counter returning to baseline.
type ObjectStep struct {
	Construct int `toml:"construct"`
	Retain    int `toml:"retain"`
}

// Snapshot is the CBOR-exported final state of a scenario run.
type Snapshot struct {
	Scenario string                      `cbor:"scenario"`
	Lists    map[string][]int64          `cbor:"lists"`
	Maps     map[string]map[string]int64 `cbor:"maps"`
	Sets     map[string][]string         `cbor:"sets"`
	PeakLive int64                       `cbor:"peak_live"`
	Live     int64                       `cbor:"live"`
	Events   EventCounts                 `cbor:"events"`
}

// EventCounts tallies object lifecycle events seen during the run.
type EventCounts struct {
	Created  uint64 `cbor:"created"`
	Retained uint64 `cbor:"retained"`
	Released uint64 `cbor:"released"`
	Dropped  uint64 `cbor:"dropped"`
}

// counter observes rc lifecycle events for the report.
type counter struct {
	counts EventCounts
}

func (c *counter) OnObjectEvent(ev rc.Event) {
	switch ev.Type {
	case rc.EventCreated:
		c.counts.Created++
	case rc.EventRetained:
		c.counts.Retained++
	case rc.EventReleased:
		c.counts.Released++
	case rc.EventDropped:
		c.counts.Dropped++
	}
}

// tracer is the heap object the probe constructs and releases.
type tracer struct {
	rc.Header
	id int
}

func runScenario(scenarioFile, snapshotFile string) error {
	var sc Scenario
	if _, err := toml.DecodeFile(scenarioFile, &sc); err != nil {
		return fmt.Errorf("scenario: %w", err)
	}

	obs := &counter{}
	rc.Subscribe(obs)
	defer rc.Unsubscribe(obs)

	snap := Snapshot{
		Scenario: sc.Name,
		Lists:    make(map[string][]int64),
		Maps:     make(map[string]map[string]int64),
		Sets:     make(map[string][]string),
	}

	fmt.Printf("Scenario: %s\n", sc.Name)

	for _, step := range sc.Lists {
		l := list.FromSlice(step.Values)
		for _, op := range step.Ops {
			switch op {
			case "sort":
				list.Sort(l)
			case "reverse":
				l.Reverse()
			case "distinct":
				l = list.Distinct(l)
			case "clear":
				l.Clear()
			default:
				return fmt.Errorf("list %q: unknown op %q", step.Name, op)
			}
		}
		snap.Lists[step.Name] = l.ToSlice()
		fmt.Printf("  list %s: %v\n", step.Name, snap.Lists[step.Name])
	}

	for _, step := range sc.Maps {
		m := hashmap.New[string, int64]()
		for k, v := range step.Entries {
			m.Put(k, v)
		}
		for _, k := range step.Remove {
			m.Delete(k)
		}
		out := make(map[string]int64, m.Len())
		m.ForEach(func(k string, v int64) { out[k] = v })
		snap.Maps[step.Name] = out
		fmt.Printf("  map %s: %d entries\n", step.Name, m.Len())
	}

	for _, step := range sc.Sets {
		s := hashset.New[string]()
		for _, k := range step.Members {
			s.Add(k)
		}
		for _, k := range step.Remove {
			s.Delete(k)
		}
		snap.Sets[step.Name] = s.ToList().ToSlice()
		fmt.Printf("  set %s: %d members\n", step.Name, s.Len())
	}

	snap.Live, snap.PeakLive = runObjects(sc.Objects)
	snap.Events = obs.counts

	fmt.Printf("  objects: peak live %d, final live %d\n", snap.PeakLive, snap.Live)
	fmt.Printf("  events: %d created, %d retained, %d released, %d dropped\n",
		snap.Events.Created, snap.Events.Retained, snap.Events.Released, snap.Events.Dropped)

	if snapshotFile != "" {
		data, err := cbor.Marshal(snap)
		if err != nil {
			return fmt.Errorf("snapshot encode: %w", err)
		}
		if err := os.WriteFile(snapshotFile, data, 0o644); err != nil {
			return fmt.Errorf("snapshot write: %w", err)
		}
		fmt.Printf("Snapshot: %s (%d bytes)\n", snapshotFile, len(data))
	}
	return nil
}

// runObjects exercises the ownership protocol and returns the final and
// peak live deltas relative to the run's baseline.
func runObjects(step ObjectStep) (final, peak int64) {
	base := rc.Live()

	objs := make([]*tracer, step.Construct)
	for i := range objs {
		objs[i] = rc.New[tracer]()
		objs[i].id = i
	}
	peak = rc.Live() - base

	retained := step.Retain
	if retained > len(objs) {
		retained = len(objs)
	}
	for i := 0; i < retained; i++ {
		rc.Retain(objs[i])
	}
	for _, o := range objs {
		rc.Release(o) // construction references
	}
	for i := 0; i < retained; i++ {
		rc.Release(objs[i])
	}
	return rc.Live() - base, peak
}
