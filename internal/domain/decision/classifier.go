package decision

type Segment string

const (
	SegmentDebt Segment = "DEBT"
	Segment1    Segment = "SEGMENT_1"
	Segment2    Segment = "SEGMENT_2"
	Segment3    Segment = "SEGMENT_3"
)

var segmentModifiers = map[Segment]int{
	SegmentDebt: 0,
	Segment1:    100,
	Segment2:    300,
	Segment3:    1000,
}

// knownProfiles maps the fixed test identities to their segment. Anything
// else is treated as SegmentDebt.
var knownProfiles = map[string]Segment{
	"49002010965": SegmentDebt,
	"49002010976": Segment1,
	"49002010987": Segment2,
	"49002010998": Segment3,
}

type CreditProfile struct {
	Segment  Segment
	Modifier int
}

// HasDebt reports whether no loan can ever be approved for the profile.
func (p CreditProfile) HasDebt() bool {
	return p.Modifier == 0
}

type Classifier interface {
	Classify(personalCode string) CreditProfile
}

type ClassifierFunc func(personalCode string) CreditProfile

func (f ClassifierFunc) Classify(personalCode string) CreditProfile {
	return f(personalCode)
}

// Classify resolves the credit profile of an already validated personal code.
func Classify(personalCode string) CreditProfile {
	segment, ok := knownProfiles[personalCode]
	if !ok {
		segment = SegmentDebt
	}
	return CreditProfile{Segment: segment, Modifier: segmentModifiers[segment]}
}
