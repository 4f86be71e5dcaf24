/*
Package seq provides the Sequence type: a single named run of residues whose
symbols are checked against an alphabet.Kind when the sequence is created.

Sequences are immutable values. Every method that derives a new sequence
(Slice, for example) returns an independent copy, and Residues hands out a
copy of the underlying bytes. This makes a Sequence safe to share between
goroutines without synchronization.

For codon sequences, lengths and positions are measured in codons (triples of
nucleotides), not characters.
*/
package seq
