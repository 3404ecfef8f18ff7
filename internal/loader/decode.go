package loader

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/greenstack-labs/plantaudit/pkg/audit"
)

// scalarString decodes any YAML scalar as its literal text, so numeric
// fields like "mix_number: 2" and quoted "mix_number: '2'" compare equal.
type scalarString string

func (s *scalarString) UnmarshalYAML(value *yaml.Node) error {
	*s = scalarString(value.Value)
	return nil
}

// mappingValue returns the value node for key within a mapping node.
func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

// eachEntry visits the key/value pairs of a mapping node in source order.
func eachEntry(node *yaml.Node, visit func(key string, value *yaml.Node) error) error {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if err := visit(node.Content[i].Value, node.Content[i+1]); err != nil {
			return err
		}
	}
	return nil
}

type plantDoc struct {
	Name string `yaml:"name"`
	Soil struct {
		MixNumber      scalarString `yaml:"mix_number"`
		AlternativeMix string       `yaml:"alternative_mix"`
	} `yaml:"soil"`
	Watering struct {
		Method string `yaml:"method"`
	} `yaml:"watering"`
	WickWatering struct {
		Recommended *bool `yaml:"recommended"`
	} `yaml:"wick_watering"`
}

func decodePlants(root *yaml.Node) ([]audit.Plant, error) {
	var plants []audit.Plant
	err := eachEntry(mappingValue(root, "plants"), func(id string, value *yaml.Node) error {
		var doc plantDoc
		if err := value.Decode(&doc); err != nil {
			return fmt.Errorf("plant %q: %w", id, err)
		}
		plants = append(plants, audit.Plant{
			ID:   id,
			Name: doc.Name,
			Soil: audit.SoilSelection{
				MixNumber:      string(doc.Soil.MixNumber),
				AlternativeMix: doc.Soil.AlternativeMix,
			},
			Watering:     audit.Watering{Method: doc.Watering.Method},
			WickWatering: audit.WickWatering{Recommended: doc.WickWatering.Recommended},
		})
		return nil
	})
	return plants, err
}

func decodeSoilMixes(root *yaml.Node) ([]audit.SoilMix, error) {
	var mixes []audit.SoilMix
	err := eachEntry(mappingValue(root, "soil_mixes"), func(id string, value *yaml.Node) error {
		var doc struct {
			Number scalarString `yaml:"number"`
		}
		if err := value.Decode(&doc); err != nil {
			return fmt.Errorf("soil mix %q: %w", id, err)
		}
		mixes = append(mixes, audit.SoilMix{ID: id, Number: string(doc.Number)})
		return nil
	})
	return mixes, err
}

func decodeComponents(root *yaml.Node) ([]audit.Component, error) {
	components := mappingValue(root, "soil_components")

	var result []audit.Component
	for _, category := range []string{audit.CategoryBasicSubstrates, audit.CategoryAdditionalComponents} {
		err := eachEntry(mappingValue(components, category), func(id string, value *yaml.Node) error {
			var doc struct {
				Name string `yaml:"name"`
			}
			if err := value.Decode(&doc); err != nil {
				return fmt.Errorf("component %q: %w", id, err)
			}
			result = append(result, audit.Component{ID: id, Category: category, Name: doc.Name})
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func decodeWaterRequirements(root *yaml.Node) ([]audit.WaterRequirement, []audit.WaterGroup, error) {
	waterRoot := mappingValue(root, "water_requirements")

	var reqs []audit.WaterRequirement
	err := eachEntry(mappingValue(waterRoot, "individual_requirements"), func(id string, value *yaml.Node) error {
		var doc struct {
			PlantName string       `yaml:"plant_name"`
			Group     scalarString `yaml:"group"`
			PPMRange  scalarString `yaml:"ppm_range"`
			PHRange   scalarString `yaml:"ph_range"`
		}
		if err := value.Decode(&doc); err != nil {
			return fmt.Errorf("water requirement %q: %w", id, err)
		}
		reqs = append(reqs, audit.WaterRequirement{
			ID:        id,
			PlantName: doc.PlantName,
			Group:     string(doc.Group),
			PPMRange:  string(doc.PPMRange),
			PHRange:   string(doc.PHRange),
		})
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	var groups []audit.WaterGroup
	err = eachEntry(mappingValue(waterRoot, "water_groups"), func(id string, value *yaml.Node) error {
		var doc struct {
			Plants []string `yaml:"plants"`
		}
		if err := value.Decode(&doc); err != nil {
			return fmt.Errorf("water group %q: %w", id, err)
		}
		groups = append(groups, audit.WaterGroup{ID: id, Plants: doc.Plants})
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return reqs, groups, nil
}
