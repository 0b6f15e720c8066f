package expert

// FactSet holds the symptoms currently asserted true. The zero value is an
// empty set.
type FactSet struct {
	m map[Symptom]struct{}
}

// NewFactSet returns a set containing the given symptoms.
func NewFactSet(symptoms ...Symptom) FactSet {
	fs := FactSet{m: make(map[Symptom]struct{}, len(symptoms))}
	for _, s := range symptoms {
		fs.m[s] = struct{}{}
	}
	return fs
}

// FactSetFromSelections builds a set from checkbox state. Only entries
// set to true are asserted.
func FactSetFromSelections(selected map[Symptom]bool) FactSet {
	fs := NewFactSet()
	for s, on := range selected {
		if on {
			fs.m[s] = struct{}{}
		}
	}
	return fs
}

// Add asserts s.
func (f *FactSet) Add(s Symptom) {
	if f.m == nil {
		f.m = make(map[Symptom]struct{})
	}
	f.m[s] = struct{}{}
}

// Remove retracts s.
func (f *FactSet) Remove(s Symptom) {
	delete(f.m, s)
}

// Has reports whether s is asserted.
func (f FactSet) Has(s Symptom) bool {
	_, ok := f.m[s]
	return ok
}

// Len returns the number of asserted symptoms.
func (f FactSet) Len() int {
	return len(f.m)
}

// Symptoms returns the asserted symptoms in form order. Identifiers outside
// the known enumeration are omitted.
func (f FactSet) Symptoms() []Symptom {
	out := make([]Symptom, 0, len(f.m))
	for _, s := range AllSymptoms() {
		if f.Has(s) {
			out = append(out, s)
		}
	}
	return out
}
