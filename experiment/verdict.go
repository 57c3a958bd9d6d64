package experiment

// Verdict labels the outcome of a significance test. All three values are
// expected research outcomes; none is an error.
type Verdict string

const (
	// Significant: p below the strict threshold.
	Significant Verdict = "SIGNIFICANT"
	// WeakSignal: p between the strict and loose thresholds.
	WeakSignal Verdict = "WEAK_SIGNAL"
	// NotSignificant: p at or above the loose threshold.
	NotSignificant Verdict = "NOT_SIGNIFICANT"
)

// Verdict thresholds on the empirical p-value.
const (
	SignificantP = 0.01
	WeakSignalP  = 0.05
)

// verdictFor maps an empirical p-value onto its label.
func verdictFor(p float64) Verdict {
	switch {
	case p < SignificantP:
		return Significant
	case p < WeakSignalP:
		return WeakSignal
	default:
		return NotSignificant
	}
}
