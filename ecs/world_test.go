package ecs

import (
	"testing"

	"github.com/milk9111/gridpaint/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
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
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("second DestroyEntity should return false")
				}
				if len(Entities(w)) != c.create-1 {
					t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(Entities(w)))
				}
			}
		})
	}
}

func TestStaleHandleAfterReuse(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := CreateEntity(w)
	if err := Add(w, old, h, 1); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	if fresh == old {
		t.Fatalf("reused slot should carry a new generation")
	}
	if IsAlive(w, old) {
		t.Fatalf("stale handle reported alive")
	}
	if Has(w, fresh, h) {
		t.Fatalf("fresh entity inherited a component from the destroyed one")
	}
	if err := Add(w, old, h, 2); err != component.ErrEntityNotAlive {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
	if old.String() != "1#0" || fresh.String() != "1#1" {
		t.Fatalf("handles = %s, %s; want 1#0, 1#1", old, fresh)
	}
}

func TestEntityValid(t *testing.T) {
	if Entity(0).Valid() {
		t.Fatalf("zero entity reported valid")
	}
	if makeEntity(0, 3).Valid() {
		t.Fatalf("slot 0 with a generation reported valid")
	}
	if !makeEntity(5, 0).Valid() {
		t.Fatalf("slot 5 reported invalid")
	}
}

func TestComponents(t *testing.T) {
	w := NewWorld()

	ints := component.NewComponent[int]()
	strs := component.NewComponent[string]()

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
			setup: func() error { return Add(w, e1, ints, 10) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, ints)
				if !ok || v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
			},
			teardown: func() bool { return Remove(w, e1, ints) },
		},
		{
			name: "add_str_to_e1_and_e2",
			setup: func() error {
				if err := Add(w, e1, strs, "a"); err != nil {
					return err
				}
				return Add(w, e2, strs, "b")
			},
			check: func(t *testing.T) {
				if !Has(w, e1, strs) || !Has(w, e2, strs) {
					t.Fatalf("expected both entities to have string component")
				}
				if Count(w, strs) != 2 {
					t.Fatalf("expected 2 strings, got %d", Count(w, strs))
				}
			},
			teardown: func() bool { return Remove(w, e1, strs) && Remove(w, e2, strs) },
		},
		{
			name: "replace_value",
			setup: func() error {
				if err := Add(w, e2, ints, 1); err != nil {
					return err
				}
				return Add(w, e2, ints, 2)
			},
			check: func(t *testing.T) {
				if v, _ := Get(w, e2, ints); v != 2 {
					t.Fatalf("expected replaced value 2, got %d", v)
				}
				if Count(w, ints) != 1 {
					t.Fatalf("replace should not duplicate, count=%d", Count(w, ints))
				}
			},
			teardown: func() bool { return Remove(w, e2, ints) },
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

func TestForEach(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	if err := Add(w, e1, h, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := Add(w, e3, h, 3); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	sum := 0
	seen := map[Entity]bool{}
	ForEach(w, h, func(e Entity, v int) {
		seen[e] = true
		sum += v
	})

	if !seen[e1] || !seen[e3] || seen[e2] {
		t.Fatalf("unexpected ForEach set: %v", seen)
	}
	if sum != 4 {
		t.Fatalf("expected sum 4, got %d", sum)
	}
}

func TestForEachAllowsDestroy(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	for i := 0; i < 5; i++ {
		Add(w, CreateEntity(w), h, i)
	}

	ForEach(w, h, func(e Entity, _ int) {
		DestroyEntity(w, e)
	})

	if Count(w, h) != 0 || len(Entities(w)) != 0 {
		t.Fatalf("expected empty world, got %d components %d entities", Count(w, h), len(Entities(w)))
	}
}

func TestQuery(t *testing.T) {
	w := NewWorld()
	a := component.NewComponent[int]()
	b := component.NewComponent[int]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	Add(w, e1, a, 1)
	Add(w, e2, a, 2)
	Add(w, e2, b, 3)
	Add(w, e3, b, 4)

	tests := []struct {
		name string
		ids  []component.ComponentID
		want []Entity
	}{
		{"only_a", []component.ComponentID{a.ID()}, []Entity{e1, e2}},
		{"a_and_b", []component.ComponentID{a.ID(), b.ID()}, []Entity{e2}},
		{"none", nil, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Query(w, tc.ids...)
			if len(got) != len(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			set := map[Entity]bool{}
			for _, e := range got {
				set[e] = true
			}
			for _, e := range tc.want {
				if !set[e] {
					t.Fatalf("missing %v in %v", e, got)
				}
			}
		})
	}
}

type countSystem struct{ n int }

func (s *countSystem) Update(*World) { s.n++ }

func TestSystemsRunInOrder(t *testing.T) {
	w := NewWorld()
	s := &countSystem{}
	w.AddSystem(s)
	w.AddSystem(nil)
	w.Update()
	w.Update()
	if s.n != 2 {
		t.Fatalf("expected 2 updates, got %d", s.n)
	}
}
