// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bo answers one question: which byte order the machine runs.
//
// Known Go ports resolve at compile time via build tags; anything else
// falls back to a one-time runtime probe.
package bo
