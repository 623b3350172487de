package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testVelocityComponent struct {
	VX, VY float64
}

type testTagComponent struct{}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testPositionComponent{X: 100, Y: 200})

	comp, found := em.GetComponent(id, reflect.TypeOf(&testPositionComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}
	retrieved := comp.(*testPositionComponent)
	if retrieved.X != 100 || retrieved.Y != 200 {
		t.Errorf("Component data mismatch, expected (100, 200), got (%f, %f)", retrieved.X, retrieved.Y)
	}
}

func TestDestroyEntityIsDeferred(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{})

	em.DestroyEntity(id)

	// 清理前实体仍存在，但已被标记
	if !em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Entity should still exist before cleanup")
	}
	if !em.IsMarkedForDestruction(id) {
		t.Error("Entity should be marked for destruction")
	}

	if removed := em.RemoveMarkedEntities(); removed != 1 {
		t.Errorf("RemoveMarkedEntities() = %d, want 1", removed)
	}
	if em.Exists(id) {
		t.Error("Entity should be removed after cleanup")
	}
	if em.IsMarkedForDestruction(id) {
		t.Error("Mark should be cleared after cleanup")
	}
}

func TestDestroyEntityTwiceRemovesOnce(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.DestroyEntity(id)
	em.DestroyEntity(id)

	if removed := em.RemoveMarkedEntities(); removed != 1 {
		t.Errorf("RemoveMarkedEntities() = %d, want 1", removed)
	}
}

func TestDestroyUnknownEntityIgnored(t *testing.T) {
	em := NewEntityManager()
	em.DestroyEntity(EntityID(42))

	if em.IsMarkedForDestruction(EntityID(42)) {
		t.Error("Unknown entity must not be marked")
	}
	if removed := em.RemoveMarkedEntities(); removed != 0 {
		t.Errorf("RemoveMarkedEntities() = %d, want 0", removed)
	}
}

func TestGetEntitiesWithOrderedByID(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	em.AddComponent(id1, &testPositionComponent{})
	em.AddComponent(id1, &testVelocityComponent{})

	id2 := em.CreateEntity()
	em.AddComponent(id2, &testPositionComponent{})

	id3 := em.CreateEntity()
	em.AddComponent(id3, &testVelocityComponent{})

	id4 := em.CreateEntity()
	em.AddComponent(id4, &testPositionComponent{})
	em.AddComponent(id4, &testVelocityComponent{})

	both := em.GetEntitiesWith(
		reflect.TypeOf(&testPositionComponent{}),
		reflect.TypeOf(&testVelocityComponent{}),
	)
	if len(both) != 2 || both[0] != id1 || both[1] != id4 {
		t.Errorf("Expected [%d %d], got %v", id1, id4, both)
	}

	pos := em.GetEntitiesWith(reflect.TypeOf(&testPositionComponent{}))
	want := []EntityID{id1, id2, id4}
	if len(pos) != len(want) {
		t.Fatalf("Expected %d entities, got %d", len(want), len(pos))
	}
	for i := range want {
		if pos[i] != want[i] {
			t.Errorf("pos[%d] = %d, want %d", i, pos[i], want[i])
		}
	}
}

func TestClear(t *testing.T) {
	em := NewEntityManager()
	for i := 0; i < 5; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testTagComponent{})
	}
	em.DestroyEntity(EntityID(1))

	em.Clear()

	if em.EntityCount() != 0 {
		t.Errorf("EntityCount() = %d after Clear, want 0", em.EntityCount())
	}
	if em.IsMarkedForDestruction(EntityID(1)) {
		t.Error("Clear should drop pending marks")
	}

	// ID 不复用
	if id := em.CreateEntity(); id != 6 {
		t.Errorf("CreateEntity() after Clear = %d, want 6", id)
	}
}

func TestGenericAccessors(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testPositionComponent{X: 3, Y: 4})
	AddComponent(em, id, &testVelocityComponent{VX: -1})

	pos, ok := GetComponent[*testPositionComponent](em, id)
	if !ok || pos.X != 3 || pos.Y != 4 {
		t.Fatalf("GetComponent = (%v, %v), want (3,4) true", pos, ok)
	}

	// 泛型与反射接口共享同一份存储
	if !em.HasComponent(id, reflect.TypeOf(&testVelocityComponent{})) {
		t.Error("reflect lookup should see component added via generic API")
	}

	if !HasComponent[*testVelocityComponent](em, id) {
		t.Error("HasComponent should be true")
	}
	RemoveComponent[*testVelocityComponent](em, id)
	if HasComponent[*testVelocityComponent](em, id) {
		t.Error("HasComponent should be false after RemoveComponent")
	}

	if _, ok := GetComponent[*testTagComponent](em, id); ok {
		t.Error("GetComponent should fail for absent component")
	}
}

func TestCountWith1SkipsMarked(t *testing.T) {
	em := NewEntityManager()
	a := em.CreateEntity()
	AddComponent(em, a, &testTagComponent{})
	b := em.CreateEntity()
	AddComponent(em, b, &testTagComponent{})

	em.DestroyEntity(a)

	if got := CountWith1[*testTagComponent](em); got != 1 {
		t.Errorf("CountWith1 = %d, want 1", got)
	}
	if got := len(GetEntitiesWith1[*testTagComponent](em)); got != 2 {
		t.Errorf("GetEntitiesWith1 = %d entities, want 2 before sweep", got)
	}
}

func BenchmarkGetEntitiesWith2(b *testing.B) {
	em := NewEntityManager()
	for i := 0; i < 200; i++ {
		id := em.CreateEntity()
		AddComponent(em, id, &testPositionComponent{X: float64(i)})
		if i%2 == 0 {
			AddComponent(em, id, &testVelocityComponent{})
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	}
}
