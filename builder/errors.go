// SPDX-License-Identifier: MIT
package builder

import "errors"

// ErrTooFewVertices indicates a topology constructor received a vertex
// count below its minimum meaningful size.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNilBuilder indicates a Constructor was invoked with a nil GraphBuilder.
var ErrNilBuilder = errors.New("builder: nil GraphBuilder")
