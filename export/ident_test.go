package export

import "testing"

func TestFallbackResolverFallsBackOnMiss(t *testing.T) {
	inner := StaticResolver{"alice": {Name: "Alice A", Email: "alice@example.com"}}
	r := FallbackResolver{Inner: inner}

	got := r.Resolve("alice")
	assertEqual(t, got.String(), "Alice A <alice@example.com>")

	miss := r.Resolve("bob")
	assertEqual(t, miss.String(), "bob <>")
}

func TestFallbackResolverNilInner(t *testing.T) {
	r := FallbackResolver{}
	got := r.Resolve("carol")
	assertEqual(t, got.String(), "carol <>")
}
