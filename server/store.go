package server

import (
	"sync"
	"time"

	"github.com/Thezuko82/soltrans"
)

// a completed run held for chart and CSV retrieval
type run struct {
	ID  string
	Mdl soltrans.Model
	Par soltrans.Parameter
	Out soltrans.Series
	At  time.Time
}

const storeCap = 100 // oldest runs are dropped beyond this

type runStore struct {
	mu    sync.Mutex
	order []string
	runs  map[string]*run
}

func newRunStore() *runStore {
	return &runStore{runs: make(map[string]*run)}
}

func (rs *runStore) put(r *run) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.runs[r.ID] = r
	rs.order = append(rs.order, r.ID)
	for len(rs.order) > storeCap {
		delete(rs.runs, rs.order[0])
		rs.order = rs.order[1:]
	}
}

func (rs *runStore) get(id string) (*run, bool) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	r, ok := rs.runs[id]
	return r, ok
}
