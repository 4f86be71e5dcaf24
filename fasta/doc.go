/*
Package fasta provides routines for reading and writing FASTA files. Routines
are also provided to write aligned FASTA files; reading them into an alignment
is done by the msa package.

The format read and written is the one described by NCBI:
http://blast.ncbi.nlm.nih.gov/blastcgihelp.shtml

A header line starts with '>'. The name of the record is the first whitespace
delimited token after the '>', and the rest of the line is its description.
Sequence lines following a header are concatenated until the next header or
the end of input. Leading and trailing whitespace on every line is ignored,
as are blank lines anywhere in the input.

By default, residues are upper cased and then checked against the alphabet of
the sequence kind requested by the caller (see package alphabet). A record
that fails the check either stops the read or is skipped, depending on the
reader's ErrorPolicy. Skipped records are always logged and can be retrieved
with (*Reader).Skipped.
*/
package fasta
