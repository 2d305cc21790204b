package shell

import "errors"

// ErrGraphIncomplete is returned by Analyze when given a graph whose
// Finish was never called.
var ErrGraphIncomplete = errors.New("shell: graph incomplete, Finish was never called")
