// Package bitmask provides a growable set of small non-negative integers.
//
// A Bitmask stores up to 63 bits in a single machine word without any heap
// allocation. Setting a bit beyond that capacity migrates the mask to a
// heap-backed word array (a [bitset.BitSet]); the migration is permanent
// and the mask never returns to the inline form, even if every bit is later
// cleared.
//
// The zero value is an empty inline mask, ready to use:
//
//	var m bitmask.Bitmask
//	m.Set(3, true)
//	m.Set(100, true) // migrates to the heap form
//	m.Foreach(func(bit int) bool {
//	    fmt.Println(bit)
//	    return true
//	})
//
// Bitmask is not safe for concurrent use.
package bitmask
