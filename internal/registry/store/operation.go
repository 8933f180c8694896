package store

import (
	"context"
)

// opSeq tracks the request ids of one named operation. started is the
// id handed to the newest invocation; applied is the newest id whose
// terminal signal has reached the state. A terminal signal with an id
// below applied lost the race to a newer response and is discarded, so
// an older response can never overwrite a newer one.
type opSeq struct {
	started uint64
	applied uint64
}

// begin fires the started signal: loading on, stale error cleared.
// Returns the request id used to order this invocation's terminal
// signal against concurrent ones.
func (s *Store) begin(op string, sel func(*State) *Status) uint64 {
	var id uint64
	s.dispatch(func(st *State) {
		seq := s.seq(op)
		seq.started++
		id = seq.started

		status := sel(st)
		status.Loading = true
		status.Err = ""
	})
	return id
}

// settle fires a terminal signal. Returns false when the signal was
// stale and dropped.
func (s *Store) settle(op string, id uint64, reduce func(*State)) bool {
	applied := true
	s.dispatch(func(st *State) {
		seq := s.seq(op)
		if id < seq.applied {
			applied = false
			return
		}
		seq.applied = id
		reduce(st)
	})
	return applied
}

// seq must be called while holding the store lock (dispatch does).
func (s *Store) seq(op string) *opSeq {
	seq, ok := s.seqs[op]
	if !ok {
		seq = &opSeq{}
		s.seqs[op] = seq
	}
	return seq
}

// run executes one operation lifecycle: exactly one started signal,
// then exactly one terminal signal. On success the slice-specific
// apply reducer merges the payload; on failure the collection is left
// untouched and the error is normalized to a user-facing message on
// the slice. The raw error is also returned for callers that branch
// on it (forms inspecting conflicts); it never escapes unhandled —
// ignoring the return value is always safe.
func run[T any](ctx context.Context, s *Store, op string, sel func(*State) *Status, call func(context.Context) (T, error), apply func(*State, T)) error {
	id := s.begin(op, sel)

	v, err := call(ctx)

	applied := s.settle(op, id, func(st *State) {
		status := sel(st)
		status.Loading = false
		if err != nil {
			status.Err = errorMessage(op, err)
			return
		}
		status.Err = ""
		apply(st, v)
	})
	if !applied {
		s.log.Debug(ctx, "stale response dropped", "op", op, "request", id)
	}
	if err != nil {
		s.log.Warn(ctx, "operation failed", "op", op, "err", err)
	}
	return err
}
