// Package terms provides the additive sum-of-terms accumulator shared by
// the fermionic and qubit operator representations.
//
// Sum maps an operator code to its accumulated real coefficient. Adding a
// code that is already present adds to the stored coefficient instead of
// replacing it; zero-valued entries are kept like any other. Iteration order
// over entries is unspecified, so consumers must compare by key lookup or by
// a sorted snapshot, never by raw enumeration order.
//
// FermionSum and PauliSum are the two concrete instantiations used by the
// Jordan-Wigner mapping, and carry the JSON envelope understood by the
// serialization and file layers:
//
//	{
//	    "type": "sumrepr",
//	    "encoding": "fermions",
//	    "terms": [
//	        {"code": [1, 2], "value": 0.2}
//	    ]
//	}
package terms
