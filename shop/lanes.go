package shop

import "sync"

// lanes serializes work per key: at most one holder per session at a time.
type lanes struct {
	mu sync.Mutex
	m  map[string]*lane
}

type lane struct {
	sync.Mutex
	refs int
}

func (l *lanes) acquire(key string) (release func()) {
	l.mu.Lock()
	if l.m == nil {
		l.m = make(map[string]*lane)
	}
	ln, ok := l.m[key]
	if !ok {
		ln = &lane{}
		l.m[key] = ln
	}
	ln.refs++
	l.mu.Unlock()

	ln.Lock()
	return func() {
		ln.Unlock()
		l.mu.Lock()
		ln.refs--
		if ln.refs == 0 {
			delete(l.m, key)
		}
		l.mu.Unlock()
	}
}

func (l *lanes) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.m)
}
