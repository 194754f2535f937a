package domain

// RRClass represents a DNS class.
type RRClass uint16

// RRClassIN is the only class this server ever sets or expects: the
// Internet class, by far the only one seen in practice.
const RRClassIN RRClass = 1
