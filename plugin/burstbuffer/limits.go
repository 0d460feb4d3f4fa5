package burstbuffer

// limits tracks per-user space in use against an optional per-user cap,
// ported from the generic plugin's _add_user_load/_remove_user_load and
// _test_user_limit. A nil limit means unlimited.
type limits struct {
	userLoad map[uint32]Size
}

func newLimits() *limits {
	return &limits{userLoad: make(map[uint32]Size)}
}

// addUserLoad adds sz to uid's running total, mirroring _add_user_load.
func (l *limits) addUserLoad(uid uint32, sz Size) {
	l.userLoad[uid] = l.userLoad[uid].Add(sz)
}

// removeUserLoad subtracts sz from uid's running total, floored at zero
// rather than underflowing, mirroring _remove_user_load.
func (l *limits) removeUserLoad(uid uint32, sz Size) {
	l.userLoad[uid] = l.userLoad[uid].Sub(sz)
	if l.userLoad[uid].Magnitude() == 0 {
		delete(l.userLoad, uid)
	}
}

// testUserLimit reports whether adding sz to uid's load would stay within
// limit. A nil limit always passes (_test_user_limit's "no limit configured"
// branch).
func (l *limits) testUserLimit(uid uint32, sz Size, limit *Size) bool {
	if limit == nil {
		return true
	}
	return l.userLoad[uid].Add(sz).Magnitude() <= limit.Magnitude()
}

// testJobLimit reports whether sz alone fits within a configured per-job
// cap. A nil limit always passes.
func testJobLimit(sz Size, limit *Size) bool {
	if limit == nil {
		return true
	}
	return sz.Magnitude() <= limit.Magnitude()
}
