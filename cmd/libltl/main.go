// Command libltl exports the formula registries to C hosts.
//
// Build with:
//
//	go build -buildmode=c-shared -o libltl.so ./cmd/libltl
//
// Error contract:
//   - constructors return a non-zero handle ID, or 0 on failure;
//   - render returns a string the host frees with ltl_string_free, or NULL
//     on failure;
//   - release returns false on failure;
//   - ltl_code_is_true returns 1 or 0, or -1 on failure.
//
// Every call resets the message returned by ltl_last_error, which is empty
// after a successful call and names the rejected handle otherwise.
package main

/*
#include <stdbool.h>
#include <stdint.h>
#include <stdlib.h>
*/
import "C"

import "unsafe"

var lib = newLibrary()

func cText(s string, ok bool) *C.char {
	if !ok {
		return nil
	}
	return C.CString(s)
}

//export ltl_last_error
func ltl_last_error() *C.char {
	return C.CString(lib.lastError())
}

//export ltl_string_free
func ltl_string_free(s *C.char) {
	C.free(unsafe.Pointer(s))
}

//export ltl_name_atomic
func ltl_name_atomic(label *C.char) C.uint64_t {
	return C.uint64_t(lib.nameAtomic(C.GoString(label)))
}

//export ltl_name_conjunction
func ltl_name_conjunction(lhs, rhs C.uint64_t) C.uint64_t {
	return C.uint64_t(lib.nameConjunction(uint64(lhs), uint64(rhs)))
}

//export ltl_name_disjunction
func ltl_name_disjunction(lhs, rhs C.uint64_t) C.uint64_t {
	return C.uint64_t(lib.nameDisjunction(uint64(lhs), uint64(rhs)))
}

//export ltl_name_negation
func ltl_name_negation(inner C.uint64_t) C.uint64_t {
	return C.uint64_t(lib.nameNegation(uint64(inner)))
}

//export ltl_name_eventually
func ltl_name_eventually(inner C.uint64_t) C.uint64_t {
	return C.uint64_t(lib.nameEventually(uint64(inner)))
}

//export ltl_name_always
func ltl_name_always(inner C.uint64_t) C.uint64_t {
	return C.uint64_t(lib.nameAlways(uint64(inner)))
}

//export ltl_name_render
func ltl_name_render(h C.uint64_t) *C.char {
	return cText(lib.nameRender(uint64(h)))
}

//export ltl_name_release
func ltl_name_release(h C.uint64_t) C.bool {
	return C.bool(lib.nameRelease(uint64(h)))
}

//export ltl_code_atomic
func ltl_code_atomic(label C.int16_t) C.uint64_t {
	return C.uint64_t(lib.codeAtomic(int16(label)))
}

//export ltl_code_boolean
func ltl_code_boolean(v C.bool) C.uint64_t {
	return C.uint64_t(lib.codeBoolean(bool(v)))
}

//export ltl_code_conjunction
func ltl_code_conjunction(lhs, rhs C.uint64_t) C.uint64_t {
	return C.uint64_t(lib.codeConjunction(uint64(lhs), uint64(rhs)))
}

//export ltl_code_disjunction
func ltl_code_disjunction(lhs, rhs C.uint64_t) C.uint64_t {
	return C.uint64_t(lib.codeDisjunction(uint64(lhs), uint64(rhs)))
}

//export ltl_code_negation
func ltl_code_negation(inner C.uint64_t) C.uint64_t {
	return C.uint64_t(lib.codeNegation(uint64(inner)))
}

//export ltl_code_eventually
func ltl_code_eventually(inner C.uint64_t) C.uint64_t {
	return C.uint64_t(lib.codeEventually(uint64(inner)))
}

//export ltl_code_always
func ltl_code_always(inner C.uint64_t) C.uint64_t {
	return C.uint64_t(lib.codeAlways(uint64(inner)))
}

//export ltl_code_is_true
func ltl_code_is_true(h C.uint64_t) C.int {
	return C.int(lib.codeIsTrue(uint64(h)))
}

//export ltl_code_render
func ltl_code_render(h C.uint64_t) *C.char {
	return cText(lib.codeRender(uint64(h)))
}

//export ltl_code_release
func ltl_code_release(h C.uint64_t) C.bool {
	return C.bool(lib.codeRelease(uint64(h)))
}

func main() {}
