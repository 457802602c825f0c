package cast

import "go.dw1.io/safemath"

// Integer is an alias for [safemath.Integer].
type Integer = safemath.Integer
