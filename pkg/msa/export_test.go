package msa

var SeqRange = seqRange
