// Package schemas embeds the JSON Schemas shipped with the module.
package schemas

import _ "embed"

// AnalysisProfile is the schema for the optional pre-structured profile
// document accepted by the CLI and the HTTP API.
//
//go:embed analysis_profile.schema.json
var AnalysisProfile string
