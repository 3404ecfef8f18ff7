// Package loader reads the plant database YAML files into the typed
// dataset consumed by pkg/audit.
//
// The loader is deliberately forgiving: a missing or unreadable file yields
// an empty collection plus a LoadError for the caller to surface, and a
// missing top-level key is simply an empty collection. Mapping order is
// preserved so downstream findings follow the source file order.
package loader

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/greenstack-labs/plantaudit/pkg/audit"
)

// Dataset file names inside the data directory.
const (
	PlantsFile            = "plants.yaml"
	SoilMixesFile         = "soil-mixes.yaml"
	ComponentsFile        = "components.yaml"
	FertilizersFile       = "fertilizers.yaml"
	WaterRequirementsFile = "water-requirements.yaml"
)

// LoadError records a file that could not be loaded.
type LoadError struct {
	File string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("cannot load %s: %v", e.File, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load reads all dataset files from dir. Every file that fails to read or
// parse contributes a LoadError and an empty collection; Load itself never
// fails, so a partially broken database can still be audited.
func Load(dir string) (*audit.Dataset, []LoadError) {
	ds := &audit.Dataset{}
	var errs []LoadError

	fail := func(file string, err error) {
		errs = append(errs, LoadError{File: file, Err: err})
	}

	if root, err := loadFile(filepath.Join(dir, PlantsFile)); err != nil {
		fail(PlantsFile, err)
	} else if plants, err := decodePlants(root); err != nil {
		fail(PlantsFile, err)
	} else {
		ds.Plants = plants
	}

	if root, err := loadFile(filepath.Join(dir, SoilMixesFile)); err != nil {
		fail(SoilMixesFile, err)
	} else if mixes, err := decodeSoilMixes(root); err != nil {
		fail(SoilMixesFile, err)
	} else {
		ds.SoilMixes = mixes
	}

	if root, err := loadFile(filepath.Join(dir, ComponentsFile)); err != nil {
		fail(ComponentsFile, err)
	} else if comps, err := decodeComponents(root); err != nil {
		fail(ComponentsFile, err)
	} else {
		ds.Components = comps
	}

	// Fertilizers carry no audited invariants yet; the file is still parsed
	// so a corrupt one surfaces like any other load failure.
	if _, err := loadFile(filepath.Join(dir, FertilizersFile)); err != nil {
		fail(FertilizersFile, err)
	}

	if root, err := loadFile(filepath.Join(dir, WaterRequirementsFile)); err != nil {
		fail(WaterRequirementsFile, err)
	} else if reqs, groups, err := decodeWaterRequirements(root); err != nil {
		fail(WaterRequirementsFile, err)
	} else {
		ds.WaterRequirements = reqs
		ds.WaterGroups = groups
	}

	return ds, errs
}

// loadFile parses a YAML file and returns its document root mapping.
// An empty file yields a nil root, which decodes to empty collections.
func loadFile(path string) (*yaml.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	return doc.Content[0], nil
}
