package scene

import (
	"fmt"
	"sort"

	"github.com/tliron/commonlog"

	"github.com/sghaida/thisbind/binder"
	"github.com/sghaida/thisbind/dispatch"
	"github.com/sghaida/thisbind/examples"
)

var log = commonlog.GetLogger("thisbind.scene")

// factory turns a constructed object into a handler for one behavior.
type factory func(obj any) binder.Handler

// behaviors lists, per kind and behavior name, the strategies a button may use.
var behaviors = map[Kind]map[string]map[binder.Strategy]factory{
	KindPerson: {
		string(examples.KeySayName): {
			binder.StrategyNone: func(obj any) binder.Handler {
				return obj.(*examples.Person).Behaviors().MustHandler(examples.KeySayName)
			},
			binder.StrategyWrap: func(obj any) binder.Handler {
				return binder.Wrap(obj.(*examples.Person), (*examples.Person).SayName)
			},
		},
	},
	KindDog: {
		string(examples.KeyLogHeight): {
			binder.StrategyExternal: func(obj any) binder.Handler {
				return obj.(*examples.Dog).Behaviors().MustHandler(examples.KeyLogHeight)
			},
		},
	},
	KindCat: {
		string(examples.KeyLogHeight): {
			binder.StrategyPreBind: func(obj any) binder.Handler {
				return obj.(*examples.Cat).Behaviors().MustHandler(examples.KeyLogHeight)
			},
		},
	},
	KindFish: {
		string(examples.KeyLogHeight): {
			binder.StrategyCapture: func(obj any) binder.Handler {
				return obj.(*examples.Fish).Behaviors().MustHandler(examples.KeyLogHeight)
			},
		},
	},
	KindWeapon: {
		string(examples.KeyTellMaterial): {
			binder.StrategyCapture: func(obj any) binder.Handler {
				return obj.(*examples.Weapon).Behaviors().MustHandler(examples.KeyTellMaterial)
			},
		},
		string(examples.KeySayName): {
			binder.StrategyNone: func(obj any) binder.Handler {
				return obj.(*examples.Weapon).Behaviors().MustHandler(examples.KeySayName)
			},
			binder.StrategyWrap: func(obj any) binder.Handler {
				return binder.Wrap(obj.(*examples.Weapon), (*examples.Weapon).SayName)
			},
		},
	},
}

// Strategies returns the strategies supported for kind and behavior, in order.
func Strategies(kind Kind, behavior string) []binder.Strategy {
	fs := behaviors[kind][behavior]
	out := make([]binder.Strategy, 0, len(fs))
	for s := range fs {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Stage is a built scene: its objects by id and the registry holding its buttons.
type Stage struct {
	Objects  map[string]any
	Registry *dispatch.Registry
	Buttons  []string
}

// Build validates sc, constructs its objects in declaration order and registers
// one handler per button on reg.
func Build(sc *Scene, reg *dispatch.Registry) (*Stage, error) {
	if err := Validate(sc); err != nil {
		return nil, err
	}

	dogs := binder.NewSlot[examples.Dog]()
	stage := &Stage{
		Objects:  make(map[string]any, len(sc.Objects)),
		Registry: reg,
		Buttons:  sc.ButtonIDs(),
	}
	kinds := make(map[string]Kind, len(sc.Objects))

	for _, o := range sc.Objects {
		stage.Objects[o.ID] = construct(o, dogs)
		kinds[o.ID] = o.Kind
		log.Debugf("built %s %q", o.Kind, o.ID)
	}
	if dogs.Generation() > 1 {
		log.Noticef("%d dogs share one slot; dog buttons report the last one", dogs.Generation())
	}

	for _, b := range sc.Buttons {
		strategy, _ := binder.ParseStrategy(b.Strategy)
		h := behaviors[kinds[b.Object]][b.Behavior][strategy](stage.Objects[b.Object])
		reg.On(b.ID, h)
		log.Debugf("button %q -> %s.%s (%s)", b.ID, b.Object, b.Behavior, strategy)
	}
	return stage, nil
}

func construct(o Object, dogs *binder.Slot[examples.Dog]) any {
	switch o.Kind {
	case KindPerson:
		return examples.NewPerson(o.FirstName, o.LastName)
	case KindDog:
		return examples.NewDog(dogs, o.Name, o.Height)
	case KindCat:
		return examples.NewCat(o.Name, o.Height)
	case KindFish:
		return examples.NewFish(o.Name, o.Height)
	case KindWeapon:
		return examples.NewWeapon(o.Name, o.Material)
	default:
		panic(fmt.Sprintf("scene: unvalidated kind %q", o.Kind))
	}
}
