package proptest

// OneOf returns a random element from the provided values.
// Panics if values is empty.
func OneOf[T any](g *Generator, values ...T) T {
	if len(values) == 0 {
		panic("proptest: OneOf called with no values")
	}
	return values[g.Intn(len(values))]
}

// UniqueIdentifiers generates n unique identifiers.
func (g *Generator) UniqueIdentifiers(n, maxLen int) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, n)

	maxAttempts := n * 10
	for i := 0; i < maxAttempts && len(result) < n; i++ {
		s := g.IdentifierLower(maxLen)
		if !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}

	return result
}
