// Package store defines the persistence interfaces consumed by the service
// layer, along with the sentinel errors shared by every backend. Concrete
// implementations live under internal/platform (postgres, sqlite); services
// depend only on these interfaces so the study engine can be tested against
// in-memory fakes.
package store
