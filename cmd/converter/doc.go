// 21 Feb 2025

/*
Converter reads a multiple sequence alignment in one format and writes it
in another. Formats come from the file extensions: a2m, a3m, fasta (or
fas, fa, afa, fst), sto, clustal, aln or pfam. A trailing .gz means
gzipped, for input or output.

Usage:

	converter -in_file=in.sto -out_file=out.a3m [flags]

The flags are:

	-in_file name
		alignment to read
	-out_file name
		where to write it
	-alphabet n
		0 protein, 1 RNA, 2 DNA
	-check_validation
		complain about letters not in the alphabet (default true)
	-n
		dry run, read but do not write

Writing a3m drops gaps in columns where the query has a gap and writes
residues there in lower case. Writing aln drops those columns completely.
*/
package main
