package scene

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghaida/thisbind/binder"
	"github.com/sghaida/thisbind/dispatch"
	"github.com/sghaida/thisbind/examples"
)

//
// -----------------------------------------------------------------------------
// FormatOf / Parse / Load
// -----------------------------------------------------------------------------

func TestFormatOf(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{path: "a.yaml", want: FormatYAML},
		{path: "a.YML", want: FormatYAML},
		{path: "dir/a.toml", want: FormatTOML},
		{path: "a.json", wantErr: true},
		{path: "noext", wantErr: true},
	}

	for _, tc := range testCases {
		got, err := FormatOf(tc.path)
		if tc.wantErr {
			assert.ErrorIs(t, err, ErrUnsupportedFormat, tc.path)
			continue
		}
		require.NoError(t, err, tc.path)
		assert.Equal(t, tc.want, got)
	}
}

func TestDefault_MirrorsOriginalButtons(t *testing.T) {
	t.Parallel()

	sc, err := Default()
	require.NoError(t, err)
	assert.Len(t, sc.Objects, 6)
	assert.Equal(t, []string{
		"btn-tony",
		"btn-paulie",
		"btn-get-size-dog",
		"btn-get-size-cat",
		"btn-get-size-fish",
		"btn-sword-material",
		"btn-sword-name",
	}, sc.ButtonIDs())
}

func TestLoad_TOML(t *testing.T) {
	t.Parallel()

	sc, err := Load(filepath.Join("testdata", "two_dogs.toml"))
	require.NoError(t, err)
	require.Len(t, sc.Objects, 2)
	assert.Equal(t, Object{ID: "rex", Kind: KindDog, Name: "Rex", Height: 55}, sc.Objects[1])
	assert.Equal(t, Button{ID: "btn-rex", Object: "rex", Behavior: "logHeight", Strategy: "external"}, sc.Buttons[1])
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "scene.json"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("objects = [[[ nope"), 0o644))
	_, err = Load(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse error")
	assert.Contains(t, err.Error(), bad)
}

func TestParse_UnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("{}"), Format("ini"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestParse_YAMLError(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("objects: [unclosed"), FormatYAML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse error")
}

//
// -----------------------------------------------------------------------------
// Validate
// -----------------------------------------------------------------------------

func TestValidate_CollectsEveryProblem(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join("testdata", "invalid.yaml"))
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{
		"objects[0]: missing lastName",
		`objects[1]: duplicate id "tony"`,
		`objects[1]: unknown kind "robot"`,
		"buttons[0]: person.sayName does not support prebind",
		`buttons[1]: duplicate id "btn"`,
		`buttons[1]: unknown object "ghost"`,
	}, verr.Problems)
	assert.Contains(t, err.Error(), "scene: invalid: objects[0]: missing lastName; ")
}

func TestValidate_Branches(t *testing.T) {
	t.Parallel()

	base := func() Scene {
		return Scene{
			Objects: []Object{
				{ID: "rex", Kind: KindDog, Name: "Rex", Height: 55},
				{ID: "sword", Kind: KindWeapon, Name: "Sword", Material: "Wood"},
			},
			Buttons: []Button{
				{ID: "b1", Object: "rex", Behavior: "logHeight", Strategy: "external"},
			},
		}
	}

	testCases := []struct {
		name    string
		mutate  func(s *Scene)
		wantErr string
	}{
		{name: "ok", mutate: func(s *Scene) {}},
		{
			name:    "no buttons",
			mutate:  func(s *Scene) { s.Buttons = nil },
			wantErr: "buttons (must have at least 1)",
		},
		{
			name:    "missing object id",
			mutate:  func(s *Scene) { s.Objects[1].ID = " " },
			wantErr: "objects[1]: missing id",
		},
		{
			name:    "zero height",
			mutate:  func(s *Scene) { s.Objects[0].Height = 0 },
			wantErr: "objects[0]: missing height (must be > 0)",
		},
		{
			name:    "weapon without material",
			mutate:  func(s *Scene) { s.Objects[1].Material = "" },
			wantErr: "objects[1]: missing material",
		},
		{
			name:    "missing button id",
			mutate:  func(s *Scene) { s.Buttons[0].ID = "" },
			wantErr: "buttons[0]: missing id",
		},
		{
			name:    "unknown behavior",
			mutate:  func(s *Scene) { s.Buttons[0].Behavior = "bark" },
			wantErr: `buttons[0]: dog has no behavior "bark"`,
		},
		{
			name:    "unknown strategy",
			mutate:  func(s *Scene) { s.Buttons[0].Strategy = "arrow" },
			wantErr: `buttons[0]: unknown strategy "arrow"`,
		},
		{
			name:    "unsupported strategy",
			mutate:  func(s *Scene) { s.Buttons[0].Strategy = "wrap" },
			wantErr: "buttons[0]: dog.logHeight does not support wrap",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			sc := base()
			tc.mutate(&sc)
			err := Validate(&sc)
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestValidate_NilScene(t *testing.T) {
	t.Parallel()

	assert.EqualError(t, Validate(nil), "scene: invalid: nil scene")
}

func TestStrategies(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []binder.Strategy{binder.StrategyNone, binder.StrategyWrap}, Strategies(KindPerson, "sayName"))
	assert.Equal(t, []binder.Strategy{binder.StrategyExternal}, Strategies(KindDog, "logHeight"))
	assert.Empty(t, Strategies(KindDog, "sayName"))
	assert.Empty(t, Strategies(Kind("robot"), "sayName"))
}

//
// -----------------------------------------------------------------------------
// Build
// -----------------------------------------------------------------------------

func clickAll(t *testing.T, st *Stage) map[string]string {
	t.Helper()

	out := make(map[string]string, len(st.Buttons))
	for _, id := range st.Buttons {
		lines, err := st.Registry.Click(id)
		require.Len(t, lines, 1)
		if err != nil {
			out[id] = "error: " + err.Error()
			continue
		}
		out[id] = lines[0]
	}
	return out
}

func TestBuild_DefaultScene(t *testing.T) {
	t.Parallel()

	sc, err := Default()
	require.NoError(t, err)

	st, err := Build(sc, dispatch.NewRegistry())
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"btn-tony":           "Tony's last name is: Soprano",
		"btn-paulie":         `error: binder: undefined receiver for "sayName" (got *dispatch.Element)`,
		"btn-get-size-dog":   "Roger's height is: 80",
		"btn-get-size-cat":   "Millie's height is: 40",
		"btn-get-size-fish":  "Fishy's height is: 10",
		"btn-sword-material": "The Sword is made out of Wood",
		"btn-sword-name":     `error: binder: undefined receiver for "sayName" (got *dispatch.Element)`,
	}, clickAll(t, st))

	tony, ok := st.Objects["tony"].(*examples.Person)
	require.True(t, ok)
	assert.Equal(t, "Soprano", tony.LastName)
}

func TestBuild_DogsShareOneSlot(t *testing.T) {
	t.Parallel()

	sc, err := Load(filepath.Join("testdata", "two_dogs.toml"))
	require.NoError(t, err)

	st, err := Build(sc, dispatch.NewRegistry())
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"btn-roger": "Rex's height is: 55",
		"btn-rex":   "Rex's height is: 55",
	}, clickAll(t, st))
}

func TestBuild_WrapStrategies(t *testing.T) {
	t.Parallel()

	sc := &Scene{
		Objects: []Object{
			{ID: "paulie", Kind: KindPerson, FirstName: "Paulie", LastName: "Gualtieri"},
			{ID: "sword", Kind: KindWeapon, Name: "Sword", Material: "Wood"},
		},
		Buttons: []Button{
			{ID: "p", Object: "paulie", Behavior: "sayName", Strategy: "wrap"},
			{ID: "s", Object: "sword", Behavior: "sayName", Strategy: "WRAP"},
		},
	}

	st, err := Build(sc, dispatch.NewRegistry())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"p": "Paulie's last name is: Gualtieri",
		"s": "This is a Sword",
	}, clickAll(t, st))
}

func TestBuild_InvalidSceneRegistersNothing(t *testing.T) {
	t.Parallel()

	reg := dispatch.NewRegistry()
	_, err := Build(&Scene{}, reg)
	require.Error(t, err)
	assert.Empty(t, reg.IDs())
}
