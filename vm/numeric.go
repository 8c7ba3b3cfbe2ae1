// This file is part of whitespace-interpreter - https://github.com/squancy/whitespace-interpreter
//
// Copyright 2024 squancy
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

package vm

import "math/big"

// Division in Whitespace floors the quotient and gives the remainder the
// sign of the divisor. big.Int's Quo/Rem truncate and Div/Mod are Euclidean,
// so both operations are derived from QuoRem here.

// floorDiv returns ⌊b/a⌋. a must be non-zero.
func floorDiv(b, a *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(b, a, new(big.Int))
	if r.Sign() != 0 && r.Sign() != a.Sign() {
		q.Sub(q, intOne)
	}
	return q
}

// floorMod returns b mod a with the sign of a. a must be non-zero.
func floorMod(b, a *big.Int) *big.Int {
	r := new(big.Int).Rem(b, a)
	if r.Sign() != 0 && r.Sign() != a.Sign() {
		r.Add(r, a)
	}
	return r
}

var intOne = big.NewInt(1)
