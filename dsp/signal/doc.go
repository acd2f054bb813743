// Package signal generates deterministic complex test sequences: impulses,
// steps, complex exponentials and seeded noise.
package signal
