/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package kvaccessor

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/suparena/kvaccessor/delegate"
)

// PlanStore manages compiled Plans keyed by host type, so a host type's
// accessor layout is declared once and every instance binds at construction.
type PlanStore struct {
	mu    sync.RWMutex
	plans map[reflect.Type]any
}

// NewPlanStore creates a new PlanStore
func NewPlanStore() *PlanStore {
	return &PlanStore{
		plans: make(map[reflect.Type]any),
	}
}

// RegisterPlan registers the plan for host type T.
func RegisterPlan[T any, K comparable, V any](ps *PlanStore, plan *Plan[K, V]) error {
	t := hostType[T]()

	ps.mu.Lock()
	defer ps.mu.Unlock()

	if _, exists := ps.plans[t]; exists {
		return fmt.Errorf("plan for host type %s already registered", t)
	}
	ps.plans[t] = plan
	return nil
}

// PlanFor retrieves the plan registered for host type T.
func PlanFor[T any, K comparable, V any](ps *PlanStore) (*Plan[K, V], error) {
	t := hostType[T]()

	ps.mu.RLock()
	defer ps.mu.RUnlock()

	stored, exists := ps.plans[t]
	if !exists {
		return nil, fmt.Errorf("no plan registered for host type %s", t)
	}
	plan, ok := stored.(*Plan[K, V])
	if !ok {
		return nil, fmt.Errorf("plan for host type %s has key/value types %T", t, stored)
	}
	return plan, nil
}

// BindFor binds the plan registered for host type T to the given delegate.
func BindFor[T any, K comparable, V any](ps *PlanStore, index delegate.Index[K, V]) (*Accessor[K, V], error) {
	plan, err := PlanFor[T, K, V](ps)
	if err != nil {
		return nil, err
	}
	return plan.Bind(index), nil
}

// RemovePlan deletes the plan registered for host type T.
func RemovePlan[T any](ps *PlanStore) error {
	t := hostType[T]()

	ps.mu.Lock()
	defer ps.mu.Unlock()

	if _, exists := ps.plans[t]; !exists {
		return fmt.Errorf("no plan registered for host type %s", t)
	}
	delete(ps.plans, t)
	return nil
}

// List returns the names of all registered host types.
func (ps *PlanStore) List() []string {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	names := make([]string, 0, len(ps.plans))
	for t := range ps.plans {
		names = append(names, t.String())
	}
	return names
}

func hostType[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
