package booking

// Result is the outcome of a booking operation: a success flag plus a
// human-readable line for the caller. Operations never return errors;
// storage faults are folded into a failed Result.
type Result struct {
	OK      bool
	Message string
}

func Success(message string) Result { return Result{OK: true, Message: message} }

func Failure(message string) Result { return Result{OK: false, Message: message} }
