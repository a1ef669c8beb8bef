package initchecker

import (
	"fmt"
	"reflect"
	"strings"
)

// CheckInit takes name/dependency pairs and panics listing every dependency that is nil,
// including typed nil pointers hidden behind an interface.
func CheckInit(pairs ...any) {
	if len(pairs)%2 != 0 {
		panic("CheckInit: odd number of arguments")
	}
	var missing []string
	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			panic(fmt.Sprintf("CheckInit: argument %d must be a dependency name", i))
		}
		if isNil(pairs[i+1]) {
			missing = append(missing, name)
		}
	}
	if len(missing) != 0 {
		panic(fmt.Sprintf("dependencies not initialized: %s", strings.Join(missing, ", ")))
	}
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
