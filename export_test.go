package bimap

// Verify exposes the invariant check to the external test package.
func (m *core[K, V, FI, BI]) Verify() error {
	return m.verify()
}
