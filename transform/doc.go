/*
Package transform derives new sequences from existing ones: the reverse
complement of a nucleotide sequence, the translation of a nucleotide or codon
sequence into amino acids, and the consensus of an alignment.

Nothing in this package modifies its input. Every function returns a new
seq.Sequence, or an error and no sequence at all.
*/
package transform
