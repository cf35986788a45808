// Copyright 2020-2023 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package reporter

// Handler accumulates errors and warnings reported while lexing, parsing,
// or validating a single file. It implements the bounded-collector and
// continue-on-error behavior spec'd for the parser (spec.md §4.2, §6) and
// is reused, unmodified, by the validator (spec.md §4.4) so the two
// components never duplicate error-accumulation policy.
//
// A Handler is not safe for concurrent use; per spec.md §5 a single parse
// or validate invocation is synchronous and owns its Handler exclusively.
type Handler struct {
	maxErrors       int
	continueOnError bool

	errs     []ErrorWithPos
	warnings []ErrorWithPos
	stopped  bool
}

// NewHandler builds a Handler with the given bounds. maxErrors <= 0 means
// unbounded; continueOnError false means the first reported error stops
// further reporting (HandleError then always returns ErrInvalidSource).
func NewHandler(maxErrors int, continueOnError bool) *Handler {
	return &Handler{maxErrors: maxErrors, continueOnError: continueOnError}
}

// HandleError records err. It returns nil if the caller should keep going
// (continueOnError and the bound has not been reached), or ErrInvalidSource
// once reporting should stop.
func (h *Handler) HandleError(err ErrorWithPos) error {
	if h.stopped {
		return ErrInvalidSource
	}
	h.errs = append(h.errs, err)
	if !h.continueOnError {
		h.stopped = true
		return ErrInvalidSource
	}
	if h.maxErrors > 0 && len(h.errs) >= h.maxErrors {
		h.stopped = true
		return ErrInvalidSource
	}
	return nil
}

// HandleWarning records a non-fatal diagnostic. Warnings never stop
// reporting and are not subject to maxErrors.
func (h *Handler) HandleWarning(err ErrorWithPos) {
	h.warnings = append(h.warnings, err)
}

// Errors returns all errors reported so far, in report order.
func (h *Handler) Errors() []ErrorWithPos { return h.errs }

// Warnings returns all warnings reported so far, in report order.
func (h *Handler) Warnings() []ErrorWithPos { return h.warnings }

// ReporterError returns ErrInvalidSource if reporting has been stopped
// (bound reached, or continueOnError is false and an error was reported),
// else nil.
func (h *Handler) ReporterError() error {
	if h.stopped {
		return ErrInvalidSource
	}
	return nil
}

// Stopped reports whether further errors are being suppressed.
func (h *Handler) Stopped() bool { return h.stopped }
