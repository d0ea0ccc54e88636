package libgl

import (
	"log"
	"reflect"
	"unsafe"
)

// Pointer returns the address of the first byte of data for handing it to gl.
// data has to be a slice or a pointer, an empty slice yields nil.
func Pointer(data any) unsafe.Pointer {
	if data == nil {
		return nil
	}
	v := reflect.ValueOf(data)
	switch v.Kind() {
	case reflect.Slice:
		if v.Len() == 0 {
			return nil
		}
		return v.UnsafePointer()
	case reflect.Ptr:
		return v.UnsafePointer()
	}
	log.Panicf("cannot take the address of %T, expected a slice or pointer", data)
	return nil
}
