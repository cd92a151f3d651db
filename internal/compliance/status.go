package compliance

// StatusKind is the tagged classification an evaluator assigns. Whether a
// kind blocks activation is a property of the kind itself, so a result can
// never carry a blocking status without being blocked (or vice versa).
type StatusKind string

const (
	StatusMissing     StatusKind = "missing"
	StatusExpired     StatusKind = "expired"
	StatusInvalid     StatusKind = "invalid"
	StatusBlocked     StatusKind = "blocked"
	StatusBarred      StatusKind = "barred"
	StatusVerified    StatusKind = "verified"
	StatusValid       StatusKind = "valid"
	StatusPending     StatusKind = "pending"
	StatusPassThrough StatusKind = "pass_through"
)

func (k StatusKind) Blocking() bool {
	switch k {
	case StatusMissing, StatusExpired, StatusInvalid, StatusBlocked, StatusBarred:
		return true
	}
	return false
}

// Status pairs the classification with the raw store value it came from.
// Raw is only meaningful for pass-through and raw-derived kinds.
type Status struct {
	Kind StatusKind
	Raw  string
}

// PassThrough wraps a store status the rules have no opinion about.
func PassThrough(raw string) Status {
	return Status{Kind: StatusPassThrough, Raw: raw}
}

// Label is the string written into the downstream staff record.
func (s Status) Label() string {
	if s.Kind == StatusPassThrough {
		return s.Raw
	}
	return string(s.Kind)
}
