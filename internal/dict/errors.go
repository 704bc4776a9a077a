package dict

import "fmt"

// NotFoundError indicates a dictionary file or directory is missing.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("dictionary file not found: %s", e.Path)
}

// EmptyCategoryError indicates a category file was read but contained
// no usable entries.
type EmptyCategoryError struct {
	Category Category
}

func (e *EmptyCategoryError) Error() string {
	return fmt.Sprintf("no usable words in category %q", e.Category)
}
