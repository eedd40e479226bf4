// Package insts provides CHIP-8 instruction definitions and decoding.
//
// This package implements decoding of raw 16-bit opcode words into
// structured instruction representations. Decoding is pure and stateless:
// the same opcode always yields the same instruction, and no machine state
// is consulted or mutated.
//
// Usage:
//
//	decoder := insts.NewDecoder()
//	inst, err := decoder.Decode(0x6A02) // V10 := 2
//	if err != nil {
//		// opcode has no defined mapping
//	}
//	fmt.Println(inst) // textual rendering for diagnostics
package insts
