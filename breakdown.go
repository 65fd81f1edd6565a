package emvscope

// Severity classifies how concerning a decoded field is.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityNone:
		return "none"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Standard meanings for values that decode without a concrete outcome.
const (
	MeaningRFU    = "Reserved For Future Use"
	MeaningMasked = "Unknown (masked)"
)

// BitSpan locates an entry within its source value. Offset counts from the
// least-significant bit of the whole value; Len is the width in bits.
type BitSpan struct {
	Offset uint8
	Len    uint8
}

// Entry is one decoded field within a Breakdown.
type Entry struct {
	Name     string
	Bits     BitSpan
	Meaning  string
	Severity Severity
	Children *Breakdown
}

// Breakdown is the semantic decomposition of one decoded value. It owns
// only derived text and severity data, never the source buffer, so its
// lifetime is independent of the TLV tree it was decoded from.
type Breakdown struct {
	Label   string
	RawHex  string
	Entries []Entry
}

// MaxSeverity returns the highest severity across the breakdown and all of
// its nested children.
func (b *Breakdown) MaxSeverity() Severity {
	max := SeverityNone
	for _, e := range b.Entries {
		if e.Severity > max {
			max = e.Severity
		}
		if e.Children != nil {
			if s := e.Children.MaxSeverity(); s > max {
				max = s
			}
		}
	}
	return max
}
