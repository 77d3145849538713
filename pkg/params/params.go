// 15 Oct 2026

// Package params reads a parameter file for the readers. The file is
// TOML and everything in it is optional.
//
//	max_records = -1      # negative or missing means read everything
//	min_score = 0.0       # cross-links below this are dropped by xlparse
//	chains = "AB"         # DSSP chains to keep, "" for all
//	[name_map]            # names in cross-link files to molecule names
//	"Nup84-GFP" = "Nup84"
//	[offsets]             # added to residue numbers, by molecule name
//	Nup84 = 100
package params

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/andrew-torda/rstrdata/pkg/rderr"
	"github.com/andrew-torda/rstrdata/pkg/xlink"
	"github.com/pelletier/go-toml"
)

// Params is what we found in the file, or the defaults.
type Params struct {
	MaxRecords int
	MinScore   float64
	Chains     string
	NameMap    map[string]string
	Offsets    map[string]int
}

// Default changes nothing and reads everything
func Default() *Params {
	return &Params{
		MaxRecords: xlink.Unlimited,
		NameMap:    make(map[string]string),
		Offsets:    make(map[string]int),
	}
}

var knownKeys = map[string]bool{
	"max_records": true, "min_score": true, "chains": true,
	"name_map": true, "offsets": true,
}

// Load reads parameters from a file.
func Load(fname string) (*Params, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, rderr.NotFound(fname, err)
	}
	defer fp.Close()
	p, err := Read(fp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return p, nil
}

func typeErr(tree *toml.Tree, key, want string, got interface{}) error {
	return fmt.Errorf("%s %v: wanted %s, got %T", key, tree.GetPosition(key), want, got)
}

// Read reads parameters from r. A key we do not know is an error, since
// it is probably a typing mistake.
func Read(r io.Reader) (*Params, error) {
	tree, err := toml.LoadReader(r)
	if err != nil {
		return nil, err
	}
	keys := tree.Keys()
	sort.Strings(keys)
	for _, k := range keys {
		if !knownKeys[k] {
			return nil, fmt.Errorf("unknown key \"%s\" %v", k, tree.GetPosition(k))
		}
	}
	p := Default()
	if v := tree.Get("max_records"); v != nil {
		n, ok := v.(int64)
		if !ok {
			return nil, typeErr(tree, "max_records", "integer", v)
		}
		p.MaxRecords = int(n)
	}
	if v := tree.Get("min_score"); v != nil {
		switch x := v.(type) {
		case float64:
			p.MinScore = x
		case int64:
			p.MinScore = float64(x)
		default:
			return nil, typeErr(tree, "min_score", "number", v)
		}
	}
	if v := tree.Get("chains"); v != nil {
		s, ok := v.(string)
		if !ok {
			return nil, typeErr(tree, "chains", "string", v)
		}
		p.Chains = s
	}
	if v := tree.Get("name_map"); v != nil {
		sub, ok := v.(*toml.Tree)
		if !ok {
			return nil, typeErr(tree, "name_map", "table", v)
		}
		for k, x := range sub.ToMap() {
			s, ok := x.(string)
			if !ok {
				return nil, fmt.Errorf("name_map.%s: wanted string, got %T", k, x)
			}
			p.NameMap[k] = s
		}
	}
	if v := tree.Get("offsets"); v != nil {
		sub, ok := v.(*toml.Tree)
		if !ok {
			return nil, typeErr(tree, "offsets", "table", v)
		}
		for k, x := range sub.ToMap() {
			n, ok := x.(int64)
			if !ok {
				return nil, fmt.Errorf("offsets.%s: wanted integer, got %T", k, x)
			}
			p.Offsets[k] = int(n)
		}
	}
	return p, nil
}

// XlOptions gives the options for the cross-link reader.
func (p *Params) XlOptions() *xlink.Options {
	return &xlink.Options{
		MaxRecords: p.MaxRecords,
		NameMap:    p.NameMap,
		Offsets:    p.Offsets,
	}
}
