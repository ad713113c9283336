// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package zoq

import "regexp"

// Reserved patterns marking string nodes as DATE or TIME columns. They are
// matched by pointer, so callers must pass these values to String.Regex.
var (
	// RegExpDate matches 0001-01-01 through 9999-12-31.
	RegExpDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	// RegExpTime matches 00:00:00 through 23:59:59.999999.
	RegExpTime = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}(\.\d{1,6})?$`)
)
