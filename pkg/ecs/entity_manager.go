// Package ecs 提供最小的实体-组件存储
//
// 组件按类型分表存放；查询结果按实体ID升序返回，
// 因此同一帧内的遍历顺序就是实体的创建顺序。
package ecs

import (
	"reflect"
	"slices"
)

// EntityID 是实体的唯一标识符
type EntityID uint64

// EntityManager 管理所有实体和组件
type EntityManager struct {
	nextID uint64
	// 存活实体集合
	entities map[EntityID]struct{}
	// 组件表: ComponentType -> EntityID -> Component实例
	components map[reflect.Type]map[EntityID]any
	// 待删除的实体ID列表
	entitiesToDestroy []EntityID
	pending           map[EntityID]struct{}
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:     1, // ID从1开始,0保留为无效ID
		entities:   make(map[EntityID]struct{}),
		components: make(map[reflect.Type]map[EntityID]any),
		pending:    make(map[EntityID]struct{}),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.entities[id] = struct{}{}
	return id
}

// DestroyEntity 标记实体待删除(不立即删除)
// 重复标记同一实体是安全的
func (em *EntityManager) DestroyEntity(id EntityID) {
	if _, exists := em.entities[id]; !exists {
		return
	}
	if _, marked := em.pending[id]; marked {
		return
	}
	em.pending[id] = struct{}{}
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// IsMarkedForDestroy 实体是否已被标记删除
func (em *EntityManager) IsMarkedForDestroy(id EntityID) bool {
	_, marked := em.pending[id]
	return marked
}

// IsAlive 实体存在且未被标记删除
func (em *EntityManager) IsAlive(id EntityID) bool {
	if _, exists := em.entities[id]; !exists {
		return false
	}
	return !em.IsMarkedForDestroy(id)
}

// RemoveMarkedEntities 清理所有标记删除的实体
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.entitiesToDestroy {
		delete(em.entities, id)
		delete(em.pending, id)
		for _, table := range em.components {
			delete(table, id)
		}
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0]
}

// EntityCount 返回存活实体数量（包括已标记但未清理的实体）
func (em *EntityManager) EntityCount() int {
	return len(em.entities)
}

func (em *EntityManager) table(t reflect.Type) map[EntityID]any {
	tbl, ok := em.components[t]
	if !ok {
		tbl = make(map[EntityID]any)
		em.components[t] = tbl
	}
	return tbl
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// AddComponent 为实体添加组件
// 同类型组件会被覆盖；实体不存在时忽略
func AddComponent[T any](em *EntityManager, id EntityID, component T) {
	if _, exists := em.entities[id]; !exists {
		return
	}
	em.table(typeOf[T]())[id] = component
}

// GetComponent 获取实体的特定类型组件
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	tbl, ok := em.components[typeOf[T]()]
	if !ok {
		return zero, false
	}
	comp, found := tbl[id]
	if !found {
		return zero, false
	}
	return comp.(T), true
}

// HasComponent 检查实体是否拥有特定类型组件
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	_, ok := GetComponent[T](em, id)
	return ok
}

// GetEntitiesWith1 查询拥有组件 A 的所有实体，按ID升序
func GetEntitiesWith1[A any](em *EntityManager) []EntityID {
	tbl := em.components[typeOf[A]()]
	result := make([]EntityID, 0, len(tbl))
	for id := range tbl {
		result = append(result, id)
	}
	slices.Sort(result)
	return result
}
