package common

type Checker interface {
	GetFuncs() []CheckerFunc
}

type CheckerDeferFunc func(int, Checker, error)

var DefaultDeferFunc CheckerDeferFunc = func(int, Checker, error) {}

type CheckerFunc func(Checker, ...interface{}) error

type DefaultChecker struct {
	Funcs []CheckerFunc
}

func (c *DefaultChecker) GetFuncs() []CheckerFunc {
	return c.Funcs
}

// CheckerErrorStop stops the remaining `CheckerFunc`s; it is not a failure.
type CheckerErrorStop struct {
	Message string
}

func NewCheckerErrorStop(message string) CheckerErrorStop {
	return CheckerErrorStop{Message: message}
}

func (c CheckerErrorStop) Error() string {
	return c.Message
}

// RunChecker runs the `CheckerFunc`s of checker in order and returns the
// first error. `CheckerErrorStop` is returned as-is, so the caller can tell
// the stopped chain from the failed one.
func RunChecker(checker Checker, deferFunc CheckerDeferFunc, args ...interface{}) error {
	if deferFunc == nil {
		deferFunc = DefaultDeferFunc
	}

	var err error
	for i, f := range checker.GetFuncs() {
		if err = f(checker, args...); err != nil {
			deferFunc(i, checker, err)
			return err
		}
		deferFunc(i, checker, err)
	}
	return nil
}

// IsCheckerErrorStop reports whether err only stopped the chain.
func IsCheckerErrorStop(err error) bool {
	_, ok := err.(CheckerErrorStop)
	return ok
}
