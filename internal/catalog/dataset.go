package catalog

// Dataset is the immutable in-memory bundle collection for one catalogue
// version. Construction happens once at startup through the loader; after that
// the dataset is only ever read, which is what makes lock-free concurrent
// queries safe.
type Dataset struct {
	version string
	bundles []*ServiceBundle
	index   map[Key]*ServiceBundle
}

// Version returns the catalogue version this dataset was loaded for.
func (d *Dataset) Version() string {
	return d.version
}

// Len returns the number of bundles in the dataset.
func (d *Dataset) Len() int {
	return len(d.bundles)
}

// Bundles returns the bundles in fixture order. Callers must treat the slice
// as read-only.
func (d *Dataset) Bundles() []*ServiceBundle {
	return d.bundles
}

// ByKey looks up a bundle by its (prefix, suffix) identity.
func (d *Dataset) ByKey(prefix, suffix string) (*ServiceBundle, bool) {
	b, ok := d.index[Key{Prefix: prefix, Suffix: suffix}]
	return b, ok
}
