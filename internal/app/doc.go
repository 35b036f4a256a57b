// Package app is the application layer. It is the only component that
// references multiple domain components and orchestrates all use cases:
// account signup and signin, feedback submission with sentiment
// classification, and sentiment reporting.
package app
