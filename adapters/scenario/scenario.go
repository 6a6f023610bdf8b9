// Package scenario parses HCL scenario files into raw parameter sets.
// A scenario file holds one or more service blocks:
//
//	service "lakefront-monitoring" {
//	  mode            = "subscription"
//	  shape           = "areal"
//	  area_km2        = 181.8
//	  revisit_minutes = 1440
//
//	  pricing {
//	    target_gross_margin = 0.5
//	  }
//
//	  tasking {
//	    missions = 12
//	    profile  = "express"
//	  }
//	}
//
// Attribute names match the canonical field names in core/params. Values
// are carried as raw strings so that the ParseDecimal coercion boundary
// applies uniformly, comma decimals included.
package scenario

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"stratocost/core/params"
	"stratocost/internal/errors"
)

// Scenario is one parsed service block
type Scenario struct {
	// Name is the service block label
	Name string

	// Raw is the untyped parameter set for params.Build
	Raw params.Raw
}

// Load reads and parses a scenario file
func Load(path string) ([]Scenario, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Scenario(fmt.Sprintf("failed to read %s", path), err)
	}
	return Parse(src, path)
}

// Parse parses scenario source. filename is used in diagnostics only.
func Parse(src []byte, filename string) ([]Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diagError(filename, diags)
	}

	content, _, diags := file.Body.PartialContent(&hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{
			{Type: "service", LabelNames: []string{"name"}},
		},
	})
	if diags.HasErrors() {
		return nil, diagError(filename, diags)
	}

	var scenarios []Scenario
	for _, block := range content.Blocks {
		if block.Type != "service" {
			continue
		}
		sc, err := parseService(block, filename)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, sc)
	}

	if len(scenarios) == 0 {
		return nil, errors.Scenario(fmt.Sprintf("%s: no service blocks found", filename), nil)
	}
	return scenarios, nil
}

func parseService(block *hcl.Block, filename string) (Scenario, error) {
	raw := params.Raw{}
	name := ""
	if len(block.Labels) > 0 {
		name = block.Labels[0]
	}
	raw[params.FieldName] = name

	body, _, diags := block.Body.PartialContent(&hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{
			{Type: "pricing"},
			{Type: "tasking"},
		},
	})
	if diags.HasErrors() {
		return Scenario{}, diagError(filename, diags)
	}

	// Top-level attributes.
	if err := collectAttributes(block.Body, raw, filename); err != nil {
		return Scenario{}, err
	}

	// Nested pricing and tasking blocks share the flat field namespace.
	for _, nested := range body.Blocks {
		if err := collectAttributes(nested.Body, raw, filename); err != nil {
			return Scenario{}, err
		}
	}

	return Scenario{Name: name, Raw: raw}, nil
}

// collectAttributes copies every evaluable attribute of a body into raw.
// Attributes referencing variables or functions are not supported in
// scenario files and surface as errors.
func collectAttributes(body hcl.Body, raw params.Raw, filename string) error {
	attrs, _ := body.JustAttributes()
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return errors.Scenario(
				fmt.Sprintf("%s:%d: attribute %q is not a literal value",
					filename, attr.Range.Start.Line, name), nil)
		}
		raw[name] = valueToString(val)
	}
	return nil
}

// valueToString renders a cty literal as the raw string the coercion
// boundary expects.
func valueToString(val cty.Value) string {
	if val.IsNull() || !val.IsKnown() {
		return ""
	}
	switch val.Type() {
	case cty.String:
		return val.AsString()
	case cty.Number:
		return val.AsBigFloat().Text('f', -1)
	case cty.Bool:
		if val.True() {
			return "true"
		}
		return "false"
	}
	return ""
}

func diagError(filename string, diags hcl.Diagnostics) error {
	for _, diag := range diags {
		if diag.Severity != hcl.DiagError {
			continue
		}
		line := 0
		if diag.Subject != nil {
			line = diag.Subject.Start.Line
		}
		return errors.Scenario(
			fmt.Sprintf("%s:%d: %s: %s", filename, line, diag.Summary, diag.Detail), nil)
	}
	return errors.Scenario(filename+": parse failed", nil)
}
