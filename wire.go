// SPDX-License-Identifier: MIT

package microlz

// Wire format tag bits (spec §3 "Wire format (shared)", §4.3).
const (
	markLiteral = 1
	markBackref = 0
)
