// Package sourceconfig parses the declarative HCL source definitions the
// agent accepts in Test/Develop mode: a structured alternative to a
// single connection-string env var, letting a local run point the blob
// connector at an arbitrary filesystem tree without a live control plane.
//
//	source "blob" "local-fixtures" {
//	  root_path           = "./testdata/fixtures"
//	  classification_id   = "demo-classification"
//	  filename_exclusions = ["*.tmp", "vpcflowlogs*"]
//	}
package sourceconfig

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/catherinevee/sensiscan/pkg/models"
)

// Definition is one parsed `source "<type>" "<name>" { ... }` block.
type Definition struct {
	Type               string
	Name               string
	RootPath           string
	ClassificationID   string
	FilenameExclusions []string
	Region             string
	AccountID          string
	Attributes         map[string]interface{}
}

// ToSource converts a Definition into the models.Source shape
// chunkstate/scanpipeline consume, synthesizing an id from the source's
// type and name since Test/Develop mode sources have no control-plane
// assigned id.
func (d Definition) ToSource() models.Source {
	return models.Source{
		ID:               d.Type + "/" + d.Name,
		Name:             d.Name,
		ConnectorType:    d.Type,
		Region:           d.Region,
		AccountID:        d.AccountID,
		ClassificationID: d.ClassificationID,
		Configuration: map[string]string{
			"root_path": d.RootPath,
		},
	}
}

var sourceBlockSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "source", LabelNames: []string{"type", "name"}},
	},
}

// ParseFile reads and parses every `source` block in an HCL file.
func ParseFile(path string) ([]Definition, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sourceconfig: reading %s: %w", path, err)
	}
	return Parse(src, path)
}

// Parse parses every `source` block out of HCL source bytes. filename is
// used only for diagnostic messages.
func Parse(src []byte, filename string) ([]Definition, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("sourceconfig: parsing %s: %s", filename, diags.Error())
	}

	content, _, diags := file.Body.PartialContent(sourceBlockSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("sourceconfig: extracting source blocks from %s: %s", filename, diags.Error())
	}

	var defs []Definition
	for _, block := range content.Blocks {
		if len(block.Labels) != 2 {
			continue
		}
		def := Definition{
			Type:       block.Labels[0],
			Name:       block.Labels[1],
			Attributes: make(map[string]interface{}),
		}

		attrs, diags := block.Body.JustAttributes()
		if diags.HasErrors() {
			return nil, fmt.Errorf("sourceconfig: reading attributes for source %q %q: %s", def.Type, def.Name, diags.Error())
		}

		for name, attr := range attrs {
			val, err := attributeValue(attr)
			if err != nil {
				return nil, fmt.Errorf("sourceconfig: source %q %q attribute %q: %w", def.Type, def.Name, name, err)
			}
			def.Attributes[name] = val

			switch name {
			case "root_path":
				if s, ok := val.(string); ok {
					def.RootPath = s
				}
			case "classification_id":
				if s, ok := val.(string); ok {
					def.ClassificationID = s
				}
			case "region":
				if s, ok := val.(string); ok {
					def.Region = s
				}
			case "account_id":
				if s, ok := val.(string); ok {
					def.AccountID = s
				}
			case "filename_exclusions":
				if ss, ok := val.([]string); ok {
					def.FilenameExclusions = ss
				}
			}
		}

		defs = append(defs, def)
	}

	return defs, nil
}

// attributeValue decodes a literal HCL attribute into a Go value: string,
// bool, number (float64), or a []string for a list-of-strings expression.
// Anything else (variable references, function calls) is rendered as its
// source-text representation, matching the teacher's fallback for
// non-literal Terraform expressions.
func attributeValue(attr *hcl.Attribute) (interface{}, error) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return fmt.Sprintf("%v", attr.Expr), nil
	}

	switch {
	case val.Type() == cty.String:
		return val.AsString(), nil
	case val.Type() == cty.Bool:
		return val.True(), nil
	case val.Type() == cty.Number:
		f, _ := val.AsBigFloat().Float64()
		return f, nil
	case val.Type().IsTupleType() || val.Type().IsListType():
		var out []string
		it := val.ElementIterator()
		for it.Next() {
			_, ev := it.Element()
			if ev.Type() == cty.String {
				out = append(out, ev.AsString())
			}
		}
		return out, nil
	default:
		return fmt.Sprintf("%v", attr.Expr), nil
	}
}
