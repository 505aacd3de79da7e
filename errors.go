package newpost

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidSlug is returned for slugs that cannot name a single directory.
	ErrInvalidSlug = errors.New("invalid slug")
	// ErrPostExists is returned when the target directory is already present.
	ErrPostExists = errors.New("post already exists")
	// ErrPostsRootMissing is returned when the posts directory itself is
	// absent. It is never created implicitly.
	ErrPostsRootMissing = errors.New("posts directory does not exist")
	// ErrUnknownLayout is returned for an index layout with no template.
	ErrUnknownLayout = errors.New("unknown layout")
)

// Step names one filesystem side effect of Create.
type Step string

const (
	StepMkdir        Step = "mkdir"
	StepWriteIndex   Step = "write index"
	StepWriteContent Step = "write content"
)

// StepError reports a failed step together with everything created before
// it. Nothing is rolled back.
type StepError struct {
	Step    Step
	Path    string
	Created []string
	Err     error
}

func (e *StepError) Error() string {
	msg := fmt.Sprintf("%s %s: %v", e.Step, e.Path, e.Err)
	if len(e.Created) > 0 {
		msg += " (left on disk: " + strings.Join(e.Created, ", ") + ")"
	}
	return msg
}

func (e *StepError) Unwrap() error {
	return e.Err
}
