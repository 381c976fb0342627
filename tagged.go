package oshandle

// Tagged pairs a category with a raw handle value. Many OS categories share a
// single raw representation; the category type parameter keeps them distinct,
// so a value tagged for one category never resolves against another
// category's trait record even when the raw types are identical.
//
// Tagged is a carrier, not an owner. It attaches no release behavior to the
// value it holds; hand it to an Owner (see Own) to establish ownership.
type Tagged[H comparable, T Traits[H]] struct {
	Raw H
}

// MakeTagged tags raw with category T.
func MakeTagged[H comparable, T Traits[H]](raw H) Tagged[H, T] {
	return Tagged[H, T]{Raw: raw}
}

// EmptyTagged returns a tagged value holding T's invalid sentinel.
func EmptyTagged[H comparable, T Traits[H]]() Tagged[H, T] {
	return Tagged[H, T]{Raw: SentinelFor[H, T]()}
}

// SentinelFor returns the invalid sentinel for category T. Pure query.
func SentinelFor[H comparable, T Traits[H]]() H {
	var t T
	return t.Sentinel()
}

// Valid reports whether the raw value is live per T's trait record.
func (v Tagged[H, T]) Valid() bool {
	var t T
	return t.Valid(v.Raw)
}

// Own transfers the raw value into a fresh Owner, which becomes solely
// responsible for releasing it.
func (v Tagged[H, T]) Own() *Owner[H, T] {
	return New[H, T](v.Raw)
}
