package neff

var Cutoff = cutoff
var NMasked = nMasked
