package scene

import (
	"strconv"
	"strings"

	"github.com/sghaida/thisbind/binder"
)

// ValidationError lists every problem found in a scene.
type ValidationError struct {
	Problems []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "scene: invalid: " + strings.Join(e.Problems, "; ")
}

// Validate checks ids, kinds, required fields, references and that every button
// uses a strategy its object's behavior supports.
func Validate(sc *Scene) error {
	var problems []string
	add := func(msg string) { problems = append(problems, msg) }

	if sc == nil {
		return &ValidationError{Problems: []string{"nil scene"}}
	}
	if len(sc.Buttons) == 0 {
		add("buttons (must have at least 1)")
	}

	kinds := make(map[string]Kind, len(sc.Objects))
	for i, o := range sc.Objects {
		where := "objects[" + strconv.Itoa(i) + "]"
		if strings.TrimSpace(o.ID) == "" {
			add(where + ": missing id")
		} else if _, dup := kinds[o.ID]; dup {
			add(where + ": duplicate id " + strconv.Quote(o.ID))
		}

		var missing []string
		requireNonEmpty := func(field, value string) {
			if strings.TrimSpace(value) == "" {
				missing = append(missing, field)
			}
		}
		requireHeight := func() {
			if o.Height <= 0 {
				missing = append(missing, "height (must be > 0)")
			}
		}

		switch o.Kind {
		case KindPerson:
			requireNonEmpty("firstName", o.FirstName)
			requireNonEmpty("lastName", o.LastName)
		case KindDog, KindCat, KindFish:
			requireNonEmpty("name", o.Name)
			requireHeight()
		case KindWeapon:
			requireNonEmpty("name", o.Name)
			requireNonEmpty("material", o.Material)
		default:
			add(where + ": unknown kind " + strconv.Quote(string(o.Kind)))
		}
		if len(missing) > 0 {
			add(where + ": missing " + strings.Join(missing, ", "))
		}

		if o.ID != "" {
			if _, dup := kinds[o.ID]; !dup {
				kinds[o.ID] = o.Kind
			}
		}
	}

	seen := make(map[string]struct{}, len(sc.Buttons))
	for i, b := range sc.Buttons {
		where := "buttons[" + strconv.Itoa(i) + "]"
		if strings.TrimSpace(b.ID) == "" {
			add(where + ": missing id")
		} else if _, dup := seen[b.ID]; dup {
			add(where + ": duplicate id " + strconv.Quote(b.ID))
		}
		seen[b.ID] = struct{}{}

		kind, ok := kinds[b.Object]
		if !ok {
			add(where + ": unknown object " + strconv.Quote(b.Object))
			continue
		}
		fs, ok := behaviors[kind][b.Behavior]
		if !ok {
			add(where + ": " + string(kind) + " has no behavior " + strconv.Quote(b.Behavior))
			continue
		}
		strategy, err := binder.ParseStrategy(b.Strategy)
		if err != nil {
			add(where + ": unknown strategy " + strconv.Quote(b.Strategy))
			continue
		}
		if _, ok := fs[strategy]; !ok {
			add(where + ": " + string(kind) + "." + b.Behavior + " does not support " + strategy.String())
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
