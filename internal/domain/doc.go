// Package domain defines the fixed-size key material types and interfaces
// shared across the app. It contains plain value types, their validating
// constructors, and contracts (interfaces) only.
package domain
