package compose

import "github.com/adnsv/flagship/model"

type StepStatus int

const (
	StepDone = StepStatus(iota)
	StepSkipped
	StepFailed
)

func (s StepStatus) String() string {
	switch s {
	case StepDone:
		return "done"
	case StepSkipped:
		return "skipped"
	case StepFailed:
		return "failed"
	default:
		return "<invalid>"
	}
}

// Step is the outcome of one stage of BuildAll.
type Step struct {
	Name   string
	Status StepStatus
	Output string
	Err    error
}

type Report struct {
	Project string
	Steps   []*Step
	Media   []*model.MediaAsset
}

func (r *Report) add(name string, status StepStatus, output string, err error) {
	r.Steps = append(r.Steps, &Step{Name: name, Status: status, Output: output, Err: err})
}

// Step returns the named step, or nil if it did not run.
func (r *Report) Step(name string) *Step {
	for _, s := range r.Steps {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Failed lists the steps that ended with an error.
func (r *Report) Failed() []*Step {
	ret := []*Step{}
	for _, s := range r.Steps {
		if s.Status == StepFailed {
			ret = append(ret, s)
		}
	}
	return ret
}
