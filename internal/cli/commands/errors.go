package commands

// Stage identifies where in the pipeline an error occurred.
type Stage int

const (
	// StageArguments covers option parsing and configuration resolution.
	StageArguments Stage = iota
	// StageRuntime covers reading the file and producing output.
	StageRuntime
)

// StageError tags an error with the stage that produced it.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return e.Err.Error()
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Prefix returns the human-readable label printed before the message.
func (e *StageError) Prefix() string {
	switch e.Stage {
	case StageArguments:
		return "Problem parsing arguments"
	default:
		return "Application error"
	}
}

func argumentError(err error) error {
	return &StageError{Stage: StageArguments, Err: err}
}

func runtimeError(err error) error {
	return &StageError{Stage: StageRuntime, Err: err}
}
