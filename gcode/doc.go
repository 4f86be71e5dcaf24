/*
Package gcode provides genetic code tables mapping nucleotide codons to amino
acid symbols.

Tables are data, not code: each one is built at initialization from the
compact representation NCBI uses to publish its translation tables, that is,
a 64 character amino acid string indexed by codons ordered TCAG at each
position. See
https://www.ncbi.nlm.nih.gov/Taxonomy/Utils/wprintgc.cgi for the source of
the tables. Tables never change after they are built.
*/
package gcode
