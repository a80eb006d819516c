// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lq

import "code.hybscloud.com/iox"

// ErrWouldBlock indicates that TryRemove found the queue empty.
//
// ErrWouldBlock is a control flow signal, not a failure. The caller should
// insert more elements or retry later rather than propagating the error.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err indicates the queue was empty.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}

// Precondition violations panic with these messages.
const (
	errNilQueue    = "lq: nil queue"
	errEmptyRemove = "lq: Remove on empty queue"
)

// checkState panics unless s is stateCreated.
func checkState(s state, op string) {
	switch s {
	case stateCreated:
		return
	case stateDestroyed:
		panic("lq: " + op + " on destroyed queue")
	default:
		panic("lq: " + op + " on uninitialized queue")
	}
}
