// Package drift holds the domain types shared between the drift
// configuration layer and the migration engine: version tokens, cherry-pick
// patterns, the resolver and callback contracts, and the named registry used
// to construct resolver and callback instances from configuration values.
//
// The configuration layer itself lives in the config subpackage.
package drift
