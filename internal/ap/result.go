package ap

// StepResult records the outcome of one best-effort step so callers and
// tests can see which failures were suppressed instead of inferring them
// from silence.
type StepResult struct {
	Name    string
	Err     error
	Ignored bool
}

// OK reports whether the step succeeded.
func (s StepResult) OK() bool {
	return s.Err == nil
}

// Report collects the step results of a Start or Stop run.
type Report struct {
	Steps []StepResult
}

func (r *Report) add(name string, err error, ignored bool) {
	r.Steps = append(r.Steps, StepResult{Name: name, Err: err, Ignored: ignored})
}

// IgnoredFailures returns the steps whose errors were suppressed.
func (r *Report) IgnoredFailures() []StepResult {
	var out []StepResult
	for _, s := range r.Steps {
		if s.Err != nil && s.Ignored {
			out = append(out, s)
		}
	}
	return out
}
