package binder_test

import (
	"testing"

	"github.com/sghaida/thisbind/binder"
)

type benchTarget struct {
	Name string
}

func (b *benchTarget) name() (string, error) { return b.Name, nil }

var benchSink string

/*
   Benchmarks
*/

func BenchmarkCall_Direct(b *testing.B) {
	obj := &benchTarget{Name: "direct"}
	for i := 0; i < b.N; i++ {
		benchSink, _ = binder.Call(obj, (*benchTarget).name)
	}
}

func BenchmarkDetach_WithReceiver(b *testing.B) {
	obj := &benchTarget{Name: "detached"}
	h := binder.Detach("name", (*benchTarget).name)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink, _ = h(obj)
	}
}

func BenchmarkWrap(b *testing.B) {
	h := binder.Wrap(&benchTarget{Name: "wrapped"}, (*benchTarget).name)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink, _ = h(nil)
	}
}

func BenchmarkSlotVia(b *testing.B) {
	slot := binder.NewSlot[benchTarget]()
	slot.Store(&benchTarget{Name: "slot"})
	h := slot.Via("name", (*benchTarget).name)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink, _ = h(nil)
	}
}

func BenchmarkBind(b *testing.B) {
	h := binder.Bind(&benchTarget{Name: "bound"}, (*benchTarget).name)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink, _ = h(nil)
	}
}

func BenchmarkObject_WithAll(b *testing.B) {
	atts := []binder.Attacher[benchTarget]{
		binder.Attaching(binder.Key("a"), binder.StrategyPreBind, func(t *benchTarget) binder.Handler {
			return binder.Bind(t, (*benchTarget).name)
		}),
		binder.Attaching(binder.Key("b"), binder.StrategyWrap, func(t *benchTarget) binder.Handler {
			return binder.Wrap(t, (*benchTarget).name)
		}),
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		o := binder.Init(func() *benchTarget { return &benchTarget{Name: "obj"} })
		_, _ = o.WithAll(atts...)
	}
}
