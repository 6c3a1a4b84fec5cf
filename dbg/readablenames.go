package dbg

import (
	"reflect"
	"strings"
	"unicode"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts pointers into readable names, so that fragments and points are
// easy to tell apart in logs. Names are generated lazily and never forgotten,
// so only use this while debugging.

var memo = make(map[interface{}]string)

func init() {
	// Since the names are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

// Name returns the same two word name every time it is given the same
// pointer. Nil gives "Ø".
func Name(obj interface{}) string {
	if isNil(obj) {
		return "Ø"
	}
	if name, ok := memo[obj]; ok {
		return name
	}
	name := capitalize(petname.Adjective()) + capitalize(petname.Name())
	memo[obj] = name
	return name
}

func isNil(obj interface{}) bool {
	if obj == nil {
		return true
	}
	v := reflect.ValueOf(obj)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	runes := []rune(word)
	runes[0] = unicode.ToUpper(runes[0])
	return strings.TrimSpace(string(runes))
}
