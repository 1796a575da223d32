// Package service contains the application's business logic, orchestrating
// domain entities and store collaborators to implement account operations.
package service
