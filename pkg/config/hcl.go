// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
//
//	override = true
//	delete   = ["N3FJP%", "APP_*"]
//
//	add "OPERATOR" {
//	  value = env.OPERATOR
//	}
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return hasExt(filename, ".hcl")
}

// 📝 Parse parses the recipe from HCL
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Recipe, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "recipe.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// env.<NAME> resolves to environment variables
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": environment(),
		},
	}

	type hclAdd struct {
		Name  string `hcl:"name,label"`
		Value string `hcl:"value"`
	}
	type hclRecipe struct {
		Mode     string   `hcl:"mode,optional"`
		Override bool     `hcl:"override,optional"`
		Delete   []string `hcl:"delete,optional"`
		Jobs     int      `hcl:"jobs,optional"`
		Add      []hclAdd `hcl:"add,block"`
	}

	var hclRcp hclRecipe
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclRcp)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	rcp := &Recipe{
		Mode:     hclRcp.Mode,
		Override: hclRcp.Override,
		Delete:   hclRcp.Delete,
		Jobs:     hclRcp.Jobs,
	}
	for _, a := range hclRcp.Add {
		rcp.Add = append(rcp.Add, AddField{Name: a.Name, Value: a.Value})
	}

	return rcp, nil
}

func environment() cty.Value {
	vars := map[string]cty.Value{}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" || !utf8.ValidString(v) {
			continue
		}
		vars[k] = cty.StringVal(v)
	}
	if len(vars) == 0 {
		return cty.MapValEmpty(cty.String)
	}
	return cty.MapVal(vars)
}
