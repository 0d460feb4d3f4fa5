package registry

import (
	"fmt"
	"math/bits"

	"github.com/wlmkit/dataparser/flagarray"
)

// SelfCheck validates the closed-world invariants the rest of the engine
// assumes hold for every registered descriptor. It is meant to run once at
// process startup (e.g. from an init() in package model, or a dedicated
// test), not on a hot path. A violation here is a programming mistake in a
// descriptor's construction, not a runtime data error, so callers are
// expected to treat a non-nil return as fatal.
func SelfCheck() error {
	for t, d := range table {
		if d.Type != t {
			return fmt.Errorf("registry: descriptor stored under Type %d declares Type %d", t, d.Type)
		}
		if d.TypeName == "" {
			return fmt.Errorf("registry: type %d has empty TypeName", t)
		}
		if d.Deprecated.IsSet() && d.Removed.IsSet() && d.Deprecated > d.Removed {
			return fmt.Errorf("registry: type %q deprecated version %d comes after removed version %d", d.TypeName, d.Deprecated, d.Removed)
		}

		if err := checkLink(d.ListElemType, "ListElemType", d.TypeName); err != nil {
			return err
		}
		if err := checkLink(d.ArrayElemType, "ArrayElemType", d.TypeName); err != nil {
			return err
		}
		if err := checkLink(d.PtrTargetType, "PtrTargetType", d.TypeName); err != nil {
			return err
		}

		switch d.Model {
		case ModelArray:
			if err := selfCheckFields(d); err != nil {
				return err
			}
		case ModelFlagArray:
			if err := selfCheckFlagBits(d); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkLink(linked Type, field, owner string) error {
	if linked == TypeInvalid {
		return nil
	}
	if _, err := Find(linked); err != nil {
		return fmt.Errorf("registry: type %q references unknown %s=%d", owner, field, linked)
	}
	return nil
}

func selfCheckFields(d *Descriptor) error {
	seenKeys := map[string]int{}
	overloadCounts := map[string]int{}
	for _, f := range d.Fields {
		if f.Model == ModelArraySkipField {
			continue
		}
		if f.Key != "" {
			seenKeys[f.Key]++
		}
		if f.Required && f.Removed.IsSet() {
			return fmt.Errorf("registry: type %q field %q is both required and removed", d.TypeName, f.Key)
		}
		if err := checkLink(f.LinkType, fmt.Sprintf("field %q LinkType", f.Key), d.TypeName); err != nil {
			return err
		}
		if f.NativeFieldName != "" {
			overloadCounts[f.NativeFieldName]++
		}
	}
	for k, n := range seenKeys {
		if n > 1 {
			return fmt.Errorf("registry: type %q has duplicate field key %q", d.TypeName, k)
		}
	}
	for native, n := range overloadCounts {
		if n == 1 {
			continue
		}
		// Overloaded siblings must agree on their own declared count; a
		// mismatch means one of them was constructed without knowing about
		// its siblings.
		for _, f := range d.Fields {
			if f.NativeFieldName == native && f.OverloadCount != n {
				return fmt.Errorf("registry: type %q field sharing native slot %q declares OverloadCount=%d, but %d siblings share it", d.TypeName, native, f.OverloadCount, n)
			}
		}
	}
	return nil
}

func selfCheckFlagBits(d *Descriptor) error {
	seen := map[string]bool{}
	for _, e := range d.FlagBits {
		if e.FlagName == "" {
			return fmt.Errorf("registry: type %q has a flag entry with empty FlagName", d.TypeName)
		}
		if seen[e.FlagName] {
			return fmt.Errorf("registry: type %q has duplicate flag name %q", d.TypeName, e.FlagName)
		}
		seen[e.FlagName] = true
		if e.Kind == flagarray.Bit && e.Mask == 0 && bits.OnesCount64(e.Value) != 1 {
			return fmt.Errorf("registry: type %q flag %q is Kind=Bit with an implicit mask but Value=%#x is not a single bit", d.TypeName, e.FlagName, e.Value)
		}
		if e.Kind == flagarray.Equal && e.Mask == 0 {
			return fmt.Errorf("registry: type %q flag %q is Kind=Equal with a zero Mask", d.TypeName, e.FlagName)
		}
	}
	return nil
}
