// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package zoq derives BigQuery table schemas from validation schemas.
//
// # Basic Usage
//
// Describe the record once with the zschema builders and convert it:
//
//	import (
//	    "github.com/minodisk/zoq"
//	    z "github.com/minodisk/zoq/zschema"
//	)
//
//	user := z.ObjectOf(
//	    z.Prop("id", z.Num().Int()),
//	    z.Prop("name", z.Str()),
//	    z.Prop("birthday", z.NullableOf(z.Str().Regex(zoq.RegExpDate))),
//	    z.Prop("tags", z.ArrayOf(z.Str())),
//	)
//
//	fields, err := zoq.Convert(user)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Dates and Times
//
// BigQuery DATE and TIME columns are stored as strings on the validation
// side. A string node becomes DATE or TIME only when it carries a regex
// check using the exact RegExpDate or RegExpTime value exported here. A
// separately compiled expression with the same source stays STRING.
//
// # Unsupported Types
//
// Functions, promises, lazy nodes and the undefined, null, any, unknown,
// never and void markers are dropped without error. Unions, discriminated
// unions, intersections and unknown kinds fail the whole conversion with an
// *UnsupportedKindError.
package zoq
