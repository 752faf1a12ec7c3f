// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import "fmt"

// fakeDiagnostics records every Warnf/Errorf call for assertions, instead of
// discarding them the way nopDiagnostics does.
type fakeDiagnostics struct {
	warnings []string
	errors   []string
}

func (f *fakeDiagnostics) Warnf(format string, args ...interface{}) {
	f.warnings = append(f.warnings, fmt.Sprintf(format, args...))
}

func (f *fakeDiagnostics) Errorf(format string, args ...interface{}) {
	f.errors = append(f.errors, fmt.Sprintf(format, args...))
}
