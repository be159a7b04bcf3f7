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

package policy

// Short names of the policies, in the order they are listed everywhere else.
const (
	NameClassic          = "classic"
	NameCurrent3To8      = "3to8"
	NameNetwork3         = "3"
	NameNetworks3To4     = "3to4"
	NameNetworks3To5     = "3to5"
	NameNetworksEven     = "even"
	NameNetworksOdd      = "odd"
	NameNetworksPowerOf2 = "pow2"
	NameVarSort3         = "var3"
	NameVarSort4         = "var4"
	NameVarSort5         = "var5"
)

// Names returns the short names of all policies.
func Names() []string {
	return []string{
		NameClassic,
		NameCurrent3To8,
		NameNetwork3,
		NameNetworks3To4,
		NameNetworks3To5,
		NameNetworksEven,
		NameNetworksOdd,
		NameNetworksPowerOf2,
		NameVarSort3,
		NameVarSort4,
		NameVarSort5,
	}
}
