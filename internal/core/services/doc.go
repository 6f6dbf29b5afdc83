// Package services implements the driving port interfaces.
// Services hold the collection, query and settings logic and reach
// infrastructure only through driven ports.
package services
