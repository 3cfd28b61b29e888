// 20 Feb 2025

/*
Neff calculates the number of effective sequences in a multiple sequence
alignment. Each sequence is weighted by one over the number of sequences
it is similar to, including itself, and NEFF is the sum of the weights,
usually divided by the square root of the alignment length.

The alignment format comes from the file extension: a2m, a3m, fasta (or
fas, fa, afa, fst), sto, clustal, aln or pfam. Files may be gzipped.
Several files can be given, separated by commas. They are merged and
repeated sequences are only counted once.

Usage:

	neff -file=in.a3m [flags]

Flags can be written with one or two minus signs.

	-file names
		comma separated alignment files (required)
	-alphabet n
		0 protein, 1 RNA, 2 DNA
	-check_validation
		complain about letters not in the alphabet
	-threshold x
		fraction identity for two sequences to count as similar (default 0.8)
	-norm n
		0 divide by sqrt(length), 1 divide by length, 2 leave alone
	-omit_query_gaps
		remove columns where the first sequence has a gap (default true)
	-is_symmetric
		one similarity cutoff for all pairs, from the alignment length
		(default true). With false, each sequence gets a cutoff from
		its own number of residues.
	-non_standard_option n
		0 non-standard letters are residues, 1 residues but not counted
		for the cutoff, 2 treated as gaps
	-depth n
		use only the first n sequences
	-gap_cutoff x
		remove columns with at least this fraction of gaps (default 1,
		remove nothing)
	-pos_start n, -pos_end n
		only use positions n to m of the query, counting from 1
	-only_weights
		print the weight of each sequence instead of NEFF
	-residue_neff
		print NEFF for each column and their median
	-multimer_MSA -stoichiom s -chain_length list
		NEFF for a multimer alignment. Stoichiometry is like A4 for a
		homomer or A2B1 for a heteromer. A heteromer needs the length of
		each chain.
	-mask_enabled -mask_count n -mask_frac x
		leave out a random fraction of the sequences n times and keep the
		set with the highest NEFF. Results are written to files.
	-mask_out prefix
		where the masking files go. By default, next to the first input.
	-seed n
		random number seed for masking
	-profile filename
		write the weighted fraction of each residue type in each column
	-t
		print timing
	-v n
		verbosity
*/
package main
