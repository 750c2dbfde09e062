package mark

// Mark is one opaque runner tag attached to a test case. The adapter
// never interprets marks itself; the runner decides what skip or
// expected-failure means at run time.
type Mark struct {
	Kind   KindEnum
	Name   string
	Reason string
}

// Skip returns a mark telling the runner to skip the case.
func Skip(reason string) Mark {
	return Mark{Kind: KindSkip, Name: "skip", Reason: reason}
}

// XFail returns a mark telling the runner the case is expected to fail.
func XFail(reason string) Mark {
	return Mark{Kind: KindXFail, Name: "xfail", Reason: reason}
}

// Custom returns a free-form label mark.
func Custom(name string) Mark {
	return Mark{Kind: KindCustom, Name: name}
}

// String returns "name" or "name(reason)".
func (m Mark) String() string {
	if m.Reason == "" {
		return m.Name
	}

	return m.Name + "(" + m.Reason + ")"
}
