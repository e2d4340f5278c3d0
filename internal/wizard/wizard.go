// Package wizard implements the linear multi-step form engine shared by the
// candidate onboarding, partner registration and contact intake flows. A
// flow is an ordered list of steps, each with a required-field predicate
// over the draft payload. Next advances only while the active step's
// predicate holds; Back always succeeds and never revalidates; Submit is
// available only from the final step and revalidates the whole flow.
package wizard

import (
	"fmt"

	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/entity"
)

type Step[T any] struct {
	Name string
	// Complete reports whether the step's required fields are satisfied.
	// attached holds the staged attachment fields for the draft.
	Complete func(data T, attached map[string]bool) error
}

type Flow[T any] struct {
	Kind  entity.FlowKind
	Steps []Step[T]
}

func (f *Flow[T]) Len() int {
	return len(f.Steps)
}

// Next validates the active step and returns the step to move to.
func (f *Flow[T]) Next(step int, data T, attached map[string]bool) (int, error) {
	if step < 1 || step > len(f.Steps) {
		return 0, fmt.Errorf("%w: step %d out of range", entity.ErrIncorrectRequestBody, step)
	}

	if step == len(f.Steps) {
		return 0, fmt.Errorf("%w: already on the last step", entity.ErrIncorrectRequestBody)
	}

	err := f.Steps[step-1].Complete(data, attached)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %s", entity.ErrStepIncomplete, f.Steps[step-1].Name, err)
	}

	return step + 1, nil
}

// Back never revalidates and never fails below step one.
func (f *Flow[T]) Back(step int) int {
	if step <= 1 {
		return 1
	}

	return step - 1
}

// CanSubmit checks that the draft sits on the final step and that every
// step's predicate still holds. Drafts stay mutable after advancing, so a
// submission cannot trust earlier steps to have stayed complete.
func (f *Flow[T]) CanSubmit(step int, data T, attached map[string]bool) error {
	if step != len(f.Steps) {
		return fmt.Errorf("%w: on step %d of %d", entity.ErrNotLastStep, step, len(f.Steps))
	}

	for _, s := range f.Steps {
		if err := s.Complete(data, attached); err != nil {
			return fmt.Errorf("%w: %s: %s", entity.ErrStepIncomplete, s.Name, err)
		}
	}

	return nil
}
