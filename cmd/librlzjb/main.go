// Command librlzjb exposes the decoder to foreign callers as a C shared library.
//
// Build:
//
//	go build -buildmode=c-shared -o librlzjb.so ./cmd/librlzjb
//
// Every result with success set owns a malloc'd buffer and must be passed to
// free_result exactly once. Failed results own nothing and must not be freed.
package main

/*
#include <stdbool.h>
#include <stddef.h>
#include <stdint.h>
#include <stdlib.h>

typedef struct {
	bool success;
	size_t size;
	const uint8_t *data;
	size_t capacity;
} rlzjb_result;
*/
import "C"

import (
	"unsafe"
)

func main() {}

//export decompress_external
func decompress_external(bsPtr *C.uint8_t, bsSize C.size_t, size C.size_t) C.rlzjb_result {
	n, ok := toLen(uint64(bsSize), "bs_size")
	if !ok {
		return C.rlzjb_result{}
	}

	var src []byte
	if bsPtr != nil {
		src = unsafe.Slice((*byte)(unsafe.Pointer(bsPtr)), n)
	}

	target, ok := toLen(uint64(size), "size")
	if !ok {
		return C.rlzjb_result{}
	}

	out, ok := decode(src, target)
	if !ok {
		return C.rlzjb_result{}
	}

	// The C side owns the copy; out stays with the Go collector.
	capacity := max(len(out), 1)
	buf := C.malloc(C.size_t(capacity))
	copy(unsafe.Slice((*byte)(buf), len(out)), out)

	return C.rlzjb_result{
		success:  true,
		size:     C.size_t(len(out)),
		data:     (*C.uint8_t)(buf),
		capacity: C.size_t(capacity),
	}
}

//export free_result
func free_result(result C.rlzjb_result) {
	if !bool(result.success) || result.data == nil {
		return
	}

	C.free(unsafe.Pointer(result.data))
}
