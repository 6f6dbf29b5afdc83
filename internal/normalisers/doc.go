// Package normalisers provides implementations of the RecordNormaliser
// interface. Each normaliser knows how to flatten the record shape of a
// specific catalog into the artifact relations.
package normalisers
