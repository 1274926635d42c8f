package ecs

import (
	"math/rand"
	"testing"

	"github.com/drube17/bossrush/ecs/component"
)

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
			}
		})
	}
}

func TestStaleHandleAfterReuse(t *testing.T) {
	w := NewWorld()
	h := component.NewHandle[int]()

	e := CreateEntity(w)
	if err := Add(w, e, h, intPtr(7)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if !DestroyEntity(w, e) {
		t.Fatal("failed to destroy entity")
	}

	// the slot gets reused with a bumped generation
	reused := CreateEntity(w)
	if reused.id() != e.id() {
		t.Fatalf("expected slot reuse, got id %d vs %d", reused.id(), e.id())
	}
	if reused == e {
		t.Fatal("reused handle should differ in generation")
	}
	if IsAlive(w, e) {
		t.Fatal("stale handle should not be alive")
	}
	if _, ok := Get(w, e, h); ok {
		t.Fatal("stale handle should not see components")
	}
	if _, ok := Get(w, reused, h); ok {
		t.Fatal("reused entity should start with no components")
	}
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func float64Ptr(f float64) *float64 {
	return &f
}

func toSet(ents []Entity) map[Entity]struct{} {
	m := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		m[e] = struct{}{}
	}
	return m
}

func TestComponentsAndQueries(t *testing.T) {
	w := NewWorld()

	h1 := component.NewHandle[int]()
	h2 := component.NewHandle[string]()
	h3 := component.NewHandle[float64]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, h1, intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, h1)
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
			},
			teardown: func() bool { return Remove(w, e1, h1) },
		},
		{
			name: "add_str_to_e1_and_e2",
			setup: func() error {
				if err := Add(w, e1, h2, stringPtr("a")); err != nil {
					return err
				}
				return Add(w, e2, h2, stringPtr("b"))
			},
			check: func(t *testing.T) {
				if !Has(w, e1, h2) || !Has(w, e2, h2) {
					t.Fatalf("expected both entities to have string component")
				}
			},
			teardown: func() bool { return Remove(w, e1, h2) },
		},
		{
			name:  "add_float_and_remove",
			setup: func() error { return Add(w, e1, h3, float64Ptr(1.23)) },
			check: func(t *testing.T) {
				if _, ok := Get(w, e1, h3); !ok {
					t.Fatalf("expected float present")
				}
			},
			teardown: func() bool { return Remove(w, e1, h3) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	h := component.NewHandle[int]()
	e := CreateEntity(w)

	if err := Add(w, e, h, nil); err != component.ErrNilComponent {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}

	DestroyEntity(w, e)
	if err := Add(w, e, h, intPtr(1)); err != component.ErrEntityNotAlive {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestForEach(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		w := NewWorld()
		h := component.NewHandle[int]()

		e1 := CreateEntity(w)
		e2 := CreateEntity(w)
		e3 := CreateEntity(w)

		if err := Add(w, e1, h, intPtr(1)); err != nil {
			t.Fatalf("add failed: %v", err)
		}
		if err := Add(w, e3, h, intPtr(3)); err != nil {
			t.Fatalf("add failed: %v", err)
		}

		var ents []Entity
		ForEach(w, h, func(e Entity, _ *int) { ents = append(ents, e) })
		set := toSet(ents)

		if _, ok := set[e1]; !ok {
			t.Fatalf("expected e1 in ForEach result")
		}
		if _, ok := set[e3]; !ok {
			t.Fatalf("expected e3 in ForEach result")
		}
		if _, ok := set[e2]; ok {
			t.Fatalf("did not expect e2 in ForEach result")
		}
	})

	t.Run("destroy_during_iteration", func(t *testing.T) {
		w := NewWorld()
		h := component.NewHandle[int]()

		for i := 0; i < 4; i++ {
			e := CreateEntity(w)
			if err := Add(w, e, h, intPtr(i)); err != nil {
				t.Fatalf("add failed: %v", err)
			}
		}

		visited := 0
		ForEach(w, h, func(e Entity, _ *int) {
			visited++
			DestroyEntity(w, e)
		})
		if visited != 4 {
			t.Fatalf("expected to visit all 4, got %d", visited)
		}
		if n := Count(w, h); n != 0 {
			t.Fatalf("expected empty store after destroys, got %d", n)
		}
	})
}

func TestForEach3(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				e1 := CreateEntity(w)
				e2 := CreateEntity(w)
				e3 := CreateEntity(w)
				e4 := CreateEntity(w)

				ha := component.NewHandle[int]()
				hb := component.NewHandle[int]()
				hc := component.NewHandle[int]()

				if err := Add(w, e1, ha, intPtr(1)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e2, ha, intPtr(2)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e2, hb, intPtr(3)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e2, hc, intPtr(5)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e3, hb, intPtr(4)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e4, hc, intPtr(6)); err != nil {
					t.Fatal(err)
				}

				var res []Entity
				ForEach3(w, ha, hb, hc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 1 || res[0] != e2 {
					t.Fatalf("expected only e2, got %v", res)
				}
			},
		},
		{
			name: "ignores_dead_entities",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ha := component.NewHandle[int]()
				hb := component.NewHandle[int]()
				hc := component.NewHandle[int]()

				if err := Add(w, e, ha, intPtr(1)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e, hb, intPtr(2)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e, hc, intPtr(3)); err != nil {
					t.Fatal(err)
				}

				if !DestroyEntity(w, e) {
					t.Fatal("failed to destroy entity")
				}

				var res []Entity
				ForEach3(w, ha, hb, hc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty result after destroy, got %v", res)
				}
			},
		},
		{
			name: "missing_store_returns_nothing",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ha := component.NewHandle[int]()
				hb := component.NewHandle[int]()
				hc := component.NewHandle[int]()

				if err := Add(w, e, ha, intPtr(1)); err != nil {
					t.Fatal(err)
				}

				var res []Entity
				ForEach3(w, ha, hb, hc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty when other store missing, got %v", res)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestFirst(t *testing.T) {
	w := NewWorld()
	h := component.NewHandle[string]()

	if _, ok := First(w, h); ok {
		t.Fatal("expected no entity in empty world")
	}

	e := CreateEntity(w)
	if err := Add(w, e, h, stringPtr("only")); err != nil {
		t.Fatal(err)
	}
	got, ok := First(w, h)
	if !ok || got != e {
		t.Fatalf("expected %v, got %v ok=%v", e, got, ok)
	}

	DestroyEntity(w, e)
	if _, ok := First(w, h); ok {
		t.Fatal("expected no entity after destroy")
	}
}

func TestSeededRand(t *testing.T) {
	a := NewWorld()
	b := NewWorld()
	a.SetRand(rand.New(rand.NewSource(42)))
	b.SetRand(rand.New(rand.NewSource(42)))

	for i := 0; i < 10; i++ {
		if av, bv := a.Float64(), b.Float64(); av != bv {
			t.Fatalf("draw %d differs: %v vs %v", i, av, bv)
		}
		if av, bv := a.RandRange(-3, 7), b.RandRange(-3, 7); av != bv {
			t.Fatalf("range draw %d differs: %v vs %v", i, av, bv)
		} else if av < -3 || av >= 7 {
			t.Fatalf("range draw %d out of bounds: %v", i, av)
		}
	}
}

func TestEventQueue(t *testing.T) {
	w := NewWorld()
	w.Events().Push(Event{Type: EventBossDefeated, Data: BossDefeated{Stage: 2, Points: 20000}})
	w.Events().Push(Event{Type: EventPlayerDefeated})

	evts := w.Events().Drain()
	if len(evts) != 2 {
		t.Fatalf("expected 2 events, got %d", len(evts))
	}
	if evts[0].Type != EventBossDefeated || evts[1].Type != EventPlayerDefeated {
		t.Fatalf("unexpected event order: %v", evts)
	}
	d, ok := evts[0].Data.(BossDefeated)
	if !ok || d.Points != 20000 {
		t.Fatalf("unexpected payload: %v", evts[0].Data)
	}

	if got := w.Events().Drain(); len(got) != 0 {
		t.Fatalf("drain should empty the queue, got %v", got)
	}
}
