// Package provider contains translation sources: the REST backend, a
// published-spreadsheet reader, an AI fill source, and a test mock.
package provider

import translations "github.com/armenasatryan9603/job-portal-mobile-sub002"

// Source is the interface for dictionary backends.
// This is an alias to the main package interface for convenience.
type Source = translations.Source

// Dictionary is an alias to the main package type.
type Dictionary = translations.Dictionary
