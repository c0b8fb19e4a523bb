package cli

import (
	"fmt"
	"os"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ngoguened/zoo/internal/paths"
	"github.com/ngoguened/zoo/internal/zoo"
	"github.com/ngoguened/zoo/pkg/types"
)

// sampleLayout is written by init: a small zoo with one habitat of each
// kind, a picnic area nobody can reach, and a stocked cash machine.
var sampleLayout = types.Layout{
	Fee: types.Fee{Pounds: 5},
	Cash: map[int]int{
		int(types.TenPoundNote):    2,
		int(types.FivePoundNote):   4,
		int(types.TwoPoundCoin):    5,
		int(types.OnePoundCoin):    10,
		int(types.FiftyPenceCoin):  10,
		int(types.TwentyPenceCoin): 10,
		int(types.TenPenceCoin):    10,
	},
	Areas: []types.AreaSpec{
		{Name: "savannah", Kind: types.KindEnclosure, Capacity: 4},
		{Name: "reef", Kind: types.KindAquarium, Capacity: 5},
		{Name: "aviary", Kind: types.KindCage, Capacity: 2},
		{Name: "picnic", Kind: types.KindPicnicArea},
	},
	Connections: []types.ConnectionSpec{
		{From: types.EntranceName, To: "savannah", Bidirectional: true},
		{From: "savannah", To: "reef"},
		{From: "reef", To: "aviary"},
		{From: "aviary", To: types.EntranceName},
	},
	Animals: []types.AnimalSpec{
		{Nickname: "Stripes", Species: types.SpeciesZebra, Area: "savannah"},
		{Nickname: "Dash", Species: types.SpeciesGazelle, Area: "savannah"},
		{Nickname: "Blubber", Species: types.SpeciesSeal, Area: "reef"},
		{Nickname: "Star", Species: types.SpeciesStarfish, Area: "reef"},
		{Nickname: "Polly", Species: types.SpeciesParrot, Area: "aviary"},
	},
}

// loadLayout reads a layout file. Species and area kinds are decoded through
// their text unmarshalers, so "Zebra" and "picnic area" are accepted.
func loadLayout(path string) (types.Layout, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return types.Layout{}, fmt.Errorf("read layout %s: %w", path, err)
	}

	var layout types.Layout
	hook := viper.DecodeHook(mapstructure.TextUnmarshallerHookFunc())
	if err := v.Unmarshal(&layout, hook); err != nil {
		return types.Layout{}, fmt.Errorf("decode layout %s: %w", path, err)
	}
	return layout, nil
}

// writeLayoutIfMissing writes layout to path unless a file already exists
// there. It reports whether it wrote the file.
func writeLayoutIfMissing(path string, layout types.Layout) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat layout: %w", err)
	}

	data, err := yaml.Marshal(&layout)
	if err != nil {
		return false, fmt.Errorf("marshal layout: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, err
	}
	return true, nil
}

// layoutPath resolves the layout file for this invocation.
func (a *app) layoutPath() (string, error) {
	return paths.ResolveLayoutPath(a.flags.layout, a.cfg.GetString(cfgKeyLayout), a.configDir)
}

// loadZoo builds the zoo described by the resolved layout file.
func (a *app) loadZoo() (*zoo.Zoo, map[string]int, error) {
	path, err := a.layoutPath()
	if err != nil {
		return nil, nil, &exitError{code: exitSysError, err: fmt.Errorf("resolve layout: %w", err)}
	}
	layout, err := loadLayout(path)
	if err != nil {
		return nil, nil, err
	}
	z, ids, err := zoo.Build(layout, zoo.WithLogger(a.log))
	if err != nil {
		return nil, nil, fmt.Errorf("build zoo from %s: %w", path, err)
	}
	a.log.Debug("layout loaded", "path", path, "areas", len(ids))
	return z, ids, nil
}
