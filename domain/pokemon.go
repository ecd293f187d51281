package domain

// Pokemon is one entry of the national dex reference dataset.
// The dataset is read-only: it exists purely for input validation
// and sprite lookup.
type Pokemon struct {
	ID         int
	Name       string
	SpritePath string
}
