package domain

import "errors"

// ErrBaselineRequired indicates the request lacks a truthy baseline.revenue
// or baseline.net_profit. Its text is shown to the client as-is.
var ErrBaselineRequired = errors.New("baseline.revenue ve baseline.net_profit zorunlu")
