package proxy

import "sync"

// Loop 는 세션 하나의 모든 이벤트를 단일 goroutine 위로 직렬화합니다.
// 세션 코어에는 락이 없으므로, 세션을 만지는 모든 코드는 반드시
// 같은 Loop 를 통해 실행되어야 합니다.
//
// Loop serializes every event of one session onto a single goroutine. The
// session core holds no locks; all access must go through the owning Loop.
type Loop struct {
	ch   chan func()
	stop chan struct{}
	once sync.Once
}

// NewLoop 는 실행되지 않은 Loop 를 생성합니다. Run 을 별도 goroutine 에서 호출하세요.
func NewLoop() *Loop {
	return &Loop{
		ch:   make(chan func(), 64),
		stop: make(chan struct{}),
	}
}

// Run 은 Stop 이 호출될 때까지 게시된 이벤트를 순서대로 실행합니다.
func (l *Loop) Run() {
	for {
		select {
		case fn := <-l.ch:
			fn()
		case <-l.stop:
			// 종료 전 남은 이벤트를 비웁니다.
			for {
				select {
				case fn := <-l.ch:
					fn()
				default:
					return
				}
			}
		}
	}
}

// Post 는 이벤트를 루프 뒤에 게시합니다. 루프가 이미 종료되었다면 버려집니다.
func (l *Loop) Post(fn func()) {
	select {
	case l.ch <- fn:
	case <-l.stop:
	}
}

// Stop 은 루프를 종료시킵니다. 여러 번 호출해도 안전합니다.
func (l *Loop) Stop() {
	l.once.Do(func() {
		close(l.stop)
	})
}
