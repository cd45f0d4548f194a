/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"reflect"
	"sync"

	"github.com/suparena/kvaccessor"
)

// TableRegistry associates Go host types with their generated accessor tables.
// Generated code registers here from init(), so the table behind a host type
// can be introspected without an instance, for example to pick the fields a
// serializer may touch. Composite-key layouts register compiled plans in a
// PlanStore instead; this registry covers the string-keyed codegen path.

var (
	tableRegistry = make(map[reflect.Type]kvaccessor.Table[string])
	mu            sync.RWMutex
)

// RegisterTable associates host type T with its accessor table.
func RegisterTable[T any](table kvaccessor.Table[string]) {
	t := reflect.TypeOf((*T)(nil)).Elem()

	mu.Lock()
	defer mu.Unlock()
	tableRegistry[t] = table.Clone()
}

// GetTable retrieves the accessor table for host type T, if any.
func GetTable[T any]() (kvaccessor.Table[string], bool) {
	t := reflect.TypeOf((*T)(nil)).Elem()

	mu.RLock()
	defer mu.RUnlock()
	table, ok := tableRegistry[t]
	if !ok {
		return nil, false
	}
	return table.Clone(), true
}
