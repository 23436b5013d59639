package genotypefasta

import (
	"fmt"
	"strings"
)

// UnknownPolicy decides what happens to a genotype call that EncodeCall does
// not recognize.
type UnknownPolicy byte

const (
	// UnknownGap writes a gap symbol in place of the call.
	UnknownGap UnknownPolicy = iota
	// UnknownError aborts the conversion.
	UnknownError
	// UnknownPassthrough copies the raw call into the sequence. Sequences may
	// then be longer than the number of sites.
	UnknownPassthrough
)

var unknownPolicyNames = map[UnknownPolicy]string{
	UnknownGap:         "gap",
	UnknownError:       "error",
	UnknownPassthrough: "passthrough",
}

func (p UnknownPolicy) String() string {
	if name, exists := unknownPolicyNames[p]; exists {
		return name
	}

	return fmt.Sprintf("UnknownPolicy(%d)", p)
}

// ParseUnknownPolicy accepts "gap", "error" or "passthrough", in any case.
func ParseUnknownPolicy(name string) (UnknownPolicy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for policy, candidate := range unknownPolicyNames {
		if candidate == name {
			return policy, nil
		}
	}

	return UnknownGap, fmt.Errorf("%w: unknown-call policy %q is not one of gap, error, passthrough", ErrConfig, name)
}
