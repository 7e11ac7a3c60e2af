// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package bip85

import "github.com/btcsuite/btclog"

// Subsystem defines the logging code for this package.
const Subsystem = "BP85"

// log is a logger that is initialized with no output filters. This means
// the package will not perform any logging by default until the caller
// requests it.
var log = btclog.Disabled

// DisableLog disables all library log output.
func DisableLog() {
	UseLogger(btclog.Disabled)
}

// UseLogger uses a specified Logger to output package logging info. Key
// material and entropy are never logged, only paths and applications.
func UseLogger(logger btclog.Logger) {
	log = logger
}
