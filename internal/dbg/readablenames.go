package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// Turns graph objects into short readable names like "BraveOtter", so that
// nodes and edges can be told apart in log output and drawings without
// squinting at pointer values. Names are assigned lazily and never freed, which
// is fine for a debugging aid.

var (
	memoMu sync.Mutex
	memo   = make(map[interface{}]string)
)

func init() {
	// Names are handed out in order of demand, so make them vary between runs
	// as a reminder that a name means nothing outside of one run.
	petname.NonDeterministicMode()
}

// Name returns the memoized name for obj, which must be a pointer. A nil
// pointer is named "Ø".
func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	if v := reflect.ValueOf(obj); v.Kind() == reflect.Ptr && v.IsNil() {
		return "Ø"
	}

	memoMu.Lock()
	defer memoMu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}
