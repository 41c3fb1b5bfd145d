// Command costlz factorizes a byte file into a bounded-cost LZ-like phrase
// sequence, or self-tests an annotated suffix tree built over it.
//
//	costlz <filename> <COST>
//	costlz selftest <filename>
//
// Phrases are written one per line to standard output as
// "(source_position_0based,length,next_literal_byte_code)", followed by a
// trailing line reporting the total phrase count. Progress and diagnostics
// go to standard error. Exit code is 0 on success, 1 on any input, I/O, or
// internal invariant failure.
package main
