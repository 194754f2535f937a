package rrdata

// EncodeCNAME returns the wire payload for a CNAME record: the target name
// as a length-prefixed, null-terminated label sequence.
func EncodeCNAME(target string) ([]byte, error) {
	return EncodeDomainName(target)
}
