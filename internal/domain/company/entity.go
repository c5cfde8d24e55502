package company

// Company is the stored company row. Name is both the display name and the
// external lookup key.
type Company struct {
	ID   int64
	Name string
}
