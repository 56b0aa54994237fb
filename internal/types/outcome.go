package types

// VerificationStatus is the decision a place verification ends in
type VerificationStatus int

const (
	// VerificationNotFound means the geocoder returned no match at all
	VerificationNotFound VerificationStatus = iota
	// VerificationLowConfidence means a match was found but rejected by the
	// strict acceptance policy
	VerificationLowConfidence
	// VerificationVerified means the match was accepted
	VerificationVerified
)

func (s VerificationStatus) String() string {
	switch s {
	case VerificationVerified:
		return "verified"
	case VerificationLowConfidence:
		return "low-confidence"
	default:
		return "not-found"
	}
}

// VerificationOutcome is the decision plus, where available, the best
// candidate. Place is nil for NotFound; for LowConfidence it carries the
// rejected candidate so callers can offer "did you mean" style hints, but it
// must never be presented as a definitive match.
type VerificationOutcome struct {
	Status VerificationStatus
	Place  *PlaceRecord
}

func Verified(place *PlaceRecord) VerificationOutcome {
	return VerificationOutcome{Status: VerificationVerified, Place: place}
}

func NotFound() VerificationOutcome {
	return VerificationOutcome{Status: VerificationNotFound}
}

func LowConfidence(candidate *PlaceRecord) VerificationOutcome {
	return VerificationOutcome{Status: VerificationLowConfidence, Place: candidate}
}
