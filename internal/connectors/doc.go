// Package connectors provides implementations of the CatalogClient interface
// for remote object catalogs. Each connector knows how to request one page
// of records from a specific catalog API.
package connectors
