package project

import "fmt"

// AlreadyExistsError reports that the target project path is occupied by an
// existing file or directory. Nothing was written when this is returned.
type AlreadyExistsError struct {
	Path string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("project directory already exists: %s", e.Path)
}
