package advice

import (
	"sort"
	"strings"
	"unicode"
)

// Advice is the remediation content for one disease label.
type Advice struct {
	Explanation    string
	TreatmentSteps []string
	PreventionTips []string
	IsSafeOrganic  bool
}

// Entry is one record of the reference dataset.
type Entry struct {
	// Label is the dataset class name, e.g. "Tomato___Early_blight".
	Label   string
	Crop    string
	Disease string
	Healthy bool
	Advice  Advice
}

// Fallback content used when a label is not in the dataset.
const (
	FallbackExplanation = "Scientific analysis pending."
	FallbackTreatment   = "Monitor crop health."
	FallbackPrevention  = "Maintain soil health."
)

// registry is the package-level dataset, keyed by normalized label.
var registry map[string]*Entry

// byCrop indexes entries by crop name.
var byCrop map[string][]*Entry

func init() {
	registry = make(map[string]*Entry, len(seedEntries))
	byCrop = make(map[string][]*Entry)
	for i := range seedEntries {
		e := &seedEntries[i]
		registry[Normalize(e.Label)] = e
		byCrop[strings.ToLower(e.Crop)] = append(byCrop[strings.ToLower(e.Crop)], e)
	}
}

// Normalize folds a disease label into its registry key. Case, and runs of
// separators, are ignored so "Tomato___Early_blight", "Tomato_Early_blight"
// and "tomato early blight" share one key.
func Normalize(label string) string {
	var b strings.Builder
	sep := false
	for _, r := range strings.ToLower(label) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if sep && b.Len() > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
			sep = false
			continue
		}
		sep = true
	}
	return b.String()
}

// Find returns the entry for label, or false if the dataset has none.
func Find(label string) (Entry, bool) {
	e, ok := registry[Normalize(label)]
	if !ok {
		return Entry{}, false
	}
	return e.clone(), true
}

// Lookup returns advice for label. It never fails: unknown labels get the
// generic fallback record.
func Lookup(label string) Advice {
	if e, ok := Find(label); ok {
		return e.Advice
	}
	return Fallback()
}

// Fallback returns the generic advice record for unrecognized labels.
func Fallback() Advice {
	return Advice{
		Explanation:    FallbackExplanation,
		TreatmentSteps: []string{FallbackTreatment},
		PreventionTips: []string{FallbackPrevention},
		IsSafeOrganic:  false,
	}
}

// Labels returns every dataset label in sorted order.
func Labels() []string {
	labels := make([]string, 0, len(seedEntries))
	for _, e := range seedEntries {
		labels = append(labels, e.Label)
	}
	sort.Strings(labels)
	return labels
}

// ByCrop returns the entries for a crop, case-insensitively.
func ByCrop(crop string) []Entry {
	entries := byCrop[strings.ToLower(strings.TrimSpace(crop))]
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.clone())
	}
	return out
}

// All returns every entry in dataset order.
func All() []Entry {
	out := make([]Entry, 0, len(seedEntries))
	for i := range seedEntries {
		out = append(out, seedEntries[i].clone())
	}
	return out
}

func (e *Entry) clone() Entry {
	out := *e
	out.Advice = e.Advice.clone()
	return out
}

func (a Advice) clone() Advice {
	a.TreatmentSteps = append([]string(nil), a.TreatmentSteps...)
	a.PreventionTips = append([]string(nil), a.PreventionTips...)
	return a
}
