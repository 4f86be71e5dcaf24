/*
Package alphabet is the registry of valid symbols for each kind of biological
sequence handled by bseq: nucleotides, amino acids and codons.

Alphabets are built once when the package is initialized and never change
afterwards. All lookups are upper case only; callers that accept lower case
input (like the FASTA reader) are responsible for normalizing it first.

The gap symbol '-' is not a member of any biological alphabet, but it is
accepted everywhere a residue is, since aligned sequences contain gaps. For
codons, the gap is the triple "---".
*/
package alphabet
