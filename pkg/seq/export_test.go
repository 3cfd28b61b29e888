package seq

var SetFastaRdSize = setFastaRdSize

const DefaultReadSize = defaultReadSize

func (s seq) Header() string { return s.header() }
