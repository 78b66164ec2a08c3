package certgen

// subjectKeys is the fixed set of distinguished-name keys recognized in the
// request configuration, in the order they are rendered.
var subjectKeys = []string{"C", "ST", "L", "O", "OU", "CN"}

// Attributes maps distinguished-name keys to subject values. Like url.Values,
// each key carries a slice; only the first element is used, so multi-valued
// historical inputs degrade to their first entry. Keys outside the recognized
// set {C, ST, L, O, OU, CN} are ignored rather than rejected, and no key is
// required.
type Attributes map[string][]string

// Set replaces the values for key with the single given value.
func (a Attributes) Set(key, value string) {
	a[key] = []string{value}
}

// Get returns the first value for key, or the empty string if the key is
// absent or has no values.
func (a Attributes) Get(key string) string {
	if vs := a[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// Has reports whether key is present with at least one value.
func (a Attributes) Has(key string) bool {
	return len(a[key]) > 0
}
