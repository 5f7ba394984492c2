// Package aggregates contains the write-side infrastructure shared by every
// registry service: the transaction runner, store error mapping, write hooks
// and the explicit cascade used when a producer is removed.
package aggregates
