package catalog

import (
	"context"
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

type yamlSource struct {
	path string
}

// NewYAMLSource returns a Source that reads package definitions from a
// YAML file. The file holds a list of packages:
//
//	- tier: starter
//	  name: Starter
//	  price: 35000
//	  limits:
//	    max_forms: 10
//	    max_dashboards: 5
//	    max_users: 3
//	    monthly_tokens: 60000
//	    additional_user_cost: 7000
//	  features: [pdf_export, csv_export]
//
// Limit values of -1 mean unlimited.
func NewYAMLSource(path string) Source {
	return &yamlSource{path: path}
}

func (s *yamlSource) Load(ctx context.Context) (map[Tier]Package, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadPackages, err)
	}

	var packages []Package
	if err := yaml.Unmarshal(raw, &packages); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	result := make(map[Tier]Package, len(packages))
	for _, pkg := range packages {
		result[pkg.Tier] = pkg
	}
	return result, nil
}
