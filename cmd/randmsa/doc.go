// 31 July 2020

/*

Randmsa is for making random alignments for testing the code.
Usage:
	randmsa [options] fname nseq length
will generate nseq aligned sequences of length length and write them to
fname in fasta format. fname "-" means standard output.

Flags:
	-a
		alphabet, 0 protein, 1 RNA, 2 DNA
	-g
		no gaps in the output sequences
	-gapfrac
		chance of a gap at each position
	-mut
		chance of changing a residue away from the first sequence
	-w
		do not scatter white space in the sequences
	-e
		provoke errors. The last sequence will be one shorter than the rest.
	-r
		random number seed

The first sequence is random and has no gaps. The others are mutated
copies of it, so NEFF comes out somewhere between 1 and the number of
sequences, depending on -mut.

*/
package main
