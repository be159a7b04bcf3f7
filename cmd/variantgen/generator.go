// Copyright 2025 go-netsort Authors
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

package main

import (
	"bytes"
	"fmt"
	"text/template"

	"golang.org/x/tools/imports"
)

// Engine describes one recursive engine of netsort/sort.
type Engine struct {
	Func  string // generic engine function, also the entry point prefix
	Const string // engine name constant
	Desc  string
}

// Policy describes one policy.Policy implementation.
type Policy struct {
	Suffix string // entry point suffix
	Type   string // type name in package policy
	Const  string // short name constant in package policy
	Doc    string
}

// Engines lists the engines in output order.
var Engines = []Engine{
	{Func: "MergeSort", Const: "EngineMerge", Desc: "merge sort"},
	{Func: "QuickSort", Const: "EngineQuick", Desc: "quick sort"},
}

// Policies lists the policies in output order.
var Policies = []Policy{
	{"Classic", "Classic", "NameClassic", "recursing down to single elements"},
	{"3To8", "Current3To8", "NameCurrent3To8", "delegating sizes 3 to 8 to fixed networks"},
	{"3", "Network3", "NameNetwork3", "delegating size 3 to a fixed network"},
	{"3To4", "Networks3To4", "NameNetworks3To4", "delegating sizes 3 and 4 to fixed networks"},
	{"3To5", "Networks3To5", "NameNetworks3To5", "delegating sizes 3 to 5 to fixed networks"},
	{"Even", "NetworksEven", "NameNetworksEven", "delegating sizes 4, 6 and 8 to fixed networks"},
	{"Odd", "NetworksOdd", "NameNetworksOdd", "delegating sizes 3, 5 and 7 to fixed networks"},
	{"PowerOf2", "NetworksPowerOf2", "NameNetworksPowerOf2", "delegating sizes 4 and 8 to fixed networks"},
	{"VarSort3", "VarSort3", "NameVarSort3", "delegating sizes up to 3 to a length-prefixed network"},
	{"VarSort4", "VarSort4", "NameVarSort4", "delegating sizes up to 4 to a length-prefixed network"},
	{"VarSort5", "VarSort5", "NameVarSort5", "delegating sizes up to 5 to a length-prefixed network"},
}

var fileTemplate = template.Must(template.New("variants").Parse(`// Copyright 2025 go-netsort Authors
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

// Code generated by variantgen. DO NOT EDIT.

package {{.Package}}

import (
	"github.com/ajroetker/go-netsort/netsort/policy"
	"golang.org/x/exp/constraints"
)
{{range $e := .Engines}}{{range $.Policies}}
// {{$e.Func}}{{.Suffix}} sorts data in place with {{$e.Desc}}, {{.Doc}}.
func {{$e.Func}}{{.Suffix}}[T constraints.Signed](data []T) {
	{{$e.Func}}(data, policy.{{.Type}}[T]{})
}
{{end}}{{end}}
func variants[T constraints.Signed]() []Variant[T] {
	return []Variant[T]{
{{- range $e := .Engines}}{{range $.Policies}}
		{Engine: {{$e.Const}}, Policy: policy.{{.Const}}, Sort: {{$e.Func}}{{.Suffix}}[T]},
{{- end}}{{end}}
	}
}
`))

// Generate renders the entry points file for package pkg. filename is only
// used by the formatter to resolve imports.
func Generate(pkg, filename string) ([]byte, error) {
	var buf bytes.Buffer
	err := fileTemplate.Execute(&buf, struct {
		Package  string
		Engines  []Engine
		Policies []Policy
	}{pkg, Engines, Policies})
	if err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	src, err := imports.Process(filename, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w\n%s", err, buf.Bytes())
	}
	return src, nil
}
