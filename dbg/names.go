// Package dbg assigns readable names to otherwise anonymous values in
// debug traces. Edge records in the sweep have no mesh index, so printing
// them raw gives indistinguishable pointer strings; a random petname per
// value is much easier to follow across a trace.
package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// The table never shrinks, which is fine for debugging sessions and wrong
// for anything else. Names are generated on demand, so the same value can
// have different names between runs.
var (
	mu    sync.Mutex
	names = map[interface{}]string{}
)

func init() {
	petname.NonDeterministicMode()
}

// Name returns a stable readable name for obj within this process.
func Name(obj interface{}) string {
	if obj == nil || (reflect.ValueOf(obj).Kind() == reflect.Ptr && reflect.ValueOf(obj).IsNil()) {
		return "Ø"
	}

	mu.Lock()
	defer mu.Unlock()
	if name, ok := names[obj]; ok {
		return name
	}
	name := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	names[obj] = name
	return name
}
