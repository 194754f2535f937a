package domain

import "fmt"

// Question is a single entry in a DNS message's question section. It carries
// no identifier of its own: the message ID lives on the Header, one level up.
type Question struct {
	Name  string
	Type  RRType
	Class RRClass
}

// NewQuestion constructs a Question, rejecting an empty name.
func NewQuestion(name string, qtype RRType, qclass RRClass) (Question, error) {
	if name == "" {
		return Question{}, fmt.Errorf("question name must not be empty")
	}
	return Question{Name: name, Type: qtype, Class: qclass}, nil
}
