package dirsync

import "fmt"

//Fatal errors: any of these aborts the whole synchronization call before further mutation.

//ValidationError signals that a precondition on the source or destination root failed.
type ValidationError struct {
	Path   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %q", e.Reason, e.Path)
}

//ConflictError signals that the source and destination resolve to the same
//underlying filesystem entity, which would make the sync self-destructive.
type ConflictError struct {
	Source      string
	Destination string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("source and destination resolve to the same location: %q vs %q", e.Source, e.Destination)
}

//Recoverable errors: logged per entry, the traversal continues. None of them is ever
//returned past the stage that produced it.

//PathError signals that a path relative to the stage's root could not be computed.
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("cannot compute relative path for %q: %v", e.Path, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

//CopyError signals that a single file could not be copied to its destination.
type CopyError struct {
	Source      string
	Destination string
	Err         error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("cannot copy %q to %q: %v", e.Source, e.Destination, e.Err)
}

func (e *CopyError) Unwrap() error {
	return e.Err
}

//RemoveError signals that a single destination entry could not be removed.
type RemoveError struct {
	Path string
	Err  error
}

func (e *RemoveError) Error() string {
	return fmt.Sprintf("cannot remove %q: %v", e.Path, e.Err)
}

func (e *RemoveError) Unwrap() error {
	return e.Err
}
