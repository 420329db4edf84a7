package entity

// Archive points at a finished zip on local disk. The caller owns the file
// and must remove it once streamed.
type Archive struct {
	Path    string
	Entries int
}
