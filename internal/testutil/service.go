package testutil

import (
	appstandings "github.com/preston-bernstein/standings-service/internal/app/standings"
	domain "github.com/preston-bernstein/standings-service/internal/domain/standings"
	"github.com/preston-bernstein/standings-service/internal/store"
)

// NewServiceWithSnapshots builds a standings service over a fresh store
// tracking every league, with snaps already published.
func NewServiceWithSnapshots(snaps ...domain.Snapshot) *appstandings.Service {
	svc := appstandings.NewService(store.NewSnapshotStore())
	for _, snap := range snaps {
		if err := svc.Publish(snap); err != nil {
			panic(err)
		}
	}
	return svc
}
